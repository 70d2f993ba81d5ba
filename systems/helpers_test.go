package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/balloon-math/audio"
	"github.com/lixenwraith/balloon-math/components"
	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/problem"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

const tickStep = 16 * time.Millisecond

// recordingPlayer captures played sounds
type recordingPlayer struct {
	sounds []audio.SoundType
}

func (p *recordingPlayer) Play(st audio.SoundType) {
	p.sounds = append(p.sounds, st)
}

func (p *recordingPlayer) count(st audio.SoundType) int {
	n := 0
	for _, s := range p.sounds {
		if s == st {
			n++
		}
	}
	return n
}

// testGame bundles a game driven by a mock clock
type testGame struct {
	*engine.Game
	clock  *engine.MockTimeProvider
	player *recordingPlayer
}

// newTestGame builds a game with the score and audio handlers plus the given tick systems
func newTestGame(t *testing.T, systems ...engine.System) *testGame {
	t.Helper()
	clock := engine.NewMockTimeProvider(testEpoch)
	cfg := engine.DefaultConfig()
	cfg.Seed = 7
	cfg.SplashDelay = 0

	g, err := engine.NewGame(cfg, nil, clock)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	player := &recordingPlayer{}
	g.RegisterHandler(NewScoreSystem())
	g.RegisterHandler(NewAudioSystem(player))
	for _, sys := range systems {
		g.AddSystem(sys)
	}

	tg := &testGame{Game: g, clock: clock, player: player}
	tg.step(1)
	if g.State() != engine.StateHome {
		t.Fatalf("Expected Home, got %s", g.State())
	}
	return tg
}

// play starts a level and clears navigation sounds
func (tg *testGame) play(t *testing.T, id int) *engine.Session {
	t.Helper()
	tg.Stats().Level = max(tg.Stats().Level, id)
	if !tg.Play() || !tg.SelectLevel(id) {
		t.Fatalf("Could not start level %d from %s", id, tg.State())
	}
	tg.player.sounds = nil
	return tg.Session()
}

func (tg *testGame) step(n int) {
	for i := 0; i < n; i++ {
		tg.clock.Advance(tickStep)
		tg.Update()
	}
}

// advance moves the clock by d in ticks no longer than tickStep
func (tg *testGame) advance(d time.Duration) {
	for d > 0 {
		dt := min(d, tickStep)
		tg.clock.Advance(dt)
		tg.Update()
		d -= dt
	}
}

// place inserts a balloon with a known answer
func place(sess *engine.Session, answer int, y float64, cat components.Category) *components.Balloon {
	b := components.NewBalloon(100, y, 1, cat, problem.Problem{Question: "?", Answer: answer}, 0)
	sess.AddBalloon(b)
	return b
}
