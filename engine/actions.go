package engine

import (
	"log"

	"github.com/lixenwraith/balloon-math/audio"
)

// registerGraph binds the guard and action names used by the state graph
func (g *Game) registerGraph() {
	m := g.machine

	m.RegisterGuard("SplashAutoElapsed", func(g *Game) bool {
		return g.cfg.SplashPolicy == SplashAuto && g.machine.TimeInState() >= g.cfg.SplashDelay
	})
	m.RegisterGuard("SplashElapsed", func(g *Game) bool {
		return g.machine.TimeInState() >= g.cfg.SplashDelay
	})
	m.RegisterGuard("LevelUnlocked", func(g *Game) bool {
		return g.stats.Unlocked(g.pendingLevel)
	})
	m.RegisterGuard("FinalLevel", func(g *Game) bool {
		return g.session != nil && g.session.Final
	})
	m.RegisterGuard("NotFinalLevel", func(g *Game) bool {
		return g.session != nil && !g.session.Final
	})

	m.RegisterAction("StartSession", func(g *Game, _ string) { g.startSession() })
	m.RegisterAction("AbandonSession", func(g *Game, _ string) { g.abandonSession() })
	m.RegisterAction("ResumeClock", func(g *Game, _ string) {
		if g.session != nil {
			g.session.LastTick = g.clock.Now()
		}
	})
	m.RegisterAction("CreditLevel", func(g *Game, _ string) { g.creditLevel() })
	m.RegisterAction("PlaySound", func(g *Game, arg string) {
		sound, err := audio.ParseSoundType(arg)
		if err != nil {
			log.Printf("PlaySound: %v", err)
			return
		}
		g.notify(sound)
	})
}

// startSession begins a fresh attempt of the pending level under a new generation
func (g *Game) startSession() {
	cfg := g.catalog.Resolve(g.pendingLevel)
	g.pendingLevel = cfg.ID
	g.generation++
	g.session = NewSession(
		g.generation,
		cfg,
		g.catalog.IsFinal(cfg.ID),
		&g.stats,
		g.cfg.Field,
		&g.schedule,
		g.rng,
		g.queue,
		g.clock.Now(),
	)
	log.Printf("session: level %d (%s) generation %d", cfg.ID, cfg.Title, g.generation)
}

// abandonSession discards the attempt; pending effects become stale
func (g *Game) abandonSession() {
	if g.session == nil {
		return
	}
	g.generation++
	g.schedule.Purge(g.generation)
	g.session = nil
}

// creditLevel records the completed level and queues its successor
func (g *Game) creditLevel() {
	if g.session == nil {
		return
	}
	id := g.session.Level.ID
	g.stats.Credit(id)
	if next, ok := g.catalog.Next(id); ok {
		g.pendingLevel = next.ID
	}
	log.Printf("credit: level %d, unlocked %d, stars %d", id, g.stats.Level, g.stats.Stars)
}
