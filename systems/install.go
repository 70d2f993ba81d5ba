package systems

import (
	"github.com/lixenwraith/balloon-math/audio"
	"github.com/lixenwraith/balloon-math/engine"
)

// Install registers the simulation systems and event handlers on a game
func Install(g *engine.Game, player audio.Player) {
	g.AddSystem(NewEffectSystem())
	g.AddSystem(NewClockSystem())
	g.AddSystem(NewSpawnSystem())
	g.AddSystem(NewMotionSystem())
	g.AddSystem(NewParticleSystem())

	g.RegisterHandler(NewScoreSystem())
	g.RegisterHandler(NewAudioSystem(player))
}
