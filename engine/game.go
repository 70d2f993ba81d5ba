package engine

import (
	_ "embed"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/lixenwraith/balloon-math/audio"
	"github.com/lixenwraith/balloon-math/components"
	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/engine/fsm"
	"github.com/lixenwraith/balloon-math/event"
	"github.com/lixenwraith/balloon-math/level"
)

//go:embed states.yaml
var defaultGraph []byte

// State names of the screen graph
const (
	StateSplash        = "Splash"
	StateHome          = "Home"
	StateLevelMap      = "LevelMap"
	StateSession       = "Session"
	StatePlaying       = "Playing"
	StatePaused        = "Paused"
	StateLevelComplete = "LevelComplete"
	StateGameOver      = "GameOver"
	StateFinalTrophy   = "FinalTrophy"
)

// SplashPolicy selects how the splash screen is dismissed
type SplashPolicy int

const (
	// SplashAuto moves to HOME on its own once the delay elapsed
	SplashAuto SplashPolicy = iota
	// SplashManual waits for a start action after the delay
	SplashManual
)

// ParseSplashPolicy accepts "auto" and "manual"
func ParseSplashPolicy(s string) (SplashPolicy, error) {
	switch s {
	case "auto", "":
		return SplashAuto, nil
	case "manual":
		return SplashManual, nil
	}
	return SplashAuto, fmt.Errorf("unknown splash policy %q", s)
}

// Config collects game construction options
type Config struct {
	Field        Field
	SplashPolicy SplashPolicy
	SplashDelay  time.Duration
	Seed         uint64 // 0 = random
	FSMPath      string // Empty = embedded graph
	Muted        bool
}

// DefaultConfig returns the standard configuration
func DefaultConfig() Config {
	return Config{
		Field:       DefaultField(),
		SplashDelay: constants.SplashDelay,
	}
}

// Game owns the state machine, the active session and the systems that drive it
// Not safe for concurrent use; the frontend loop is the only caller
type Game struct {
	cfg     Config
	catalog *level.Catalog
	clock   TimeProvider

	machine *fsm.Machine[*Game]
	queue   *event.EventQueue
	router  *event.Router[*Game]
	systems []System

	rng        *rand.Rand
	stats      Stats
	schedule   Schedule
	session    *Session
	generation uint64

	pendingLevel int
	muted        bool
	lastUpdate   time.Time
}

// NewGame builds the game and enters the initial state
func NewGame(cfg Config, catalog *level.Catalog, clock TimeProvider) (*Game, error) {
	if catalog == nil {
		catalog = level.Default()
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		cfg.Field = DefaultField()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	queue := event.NewEventQueue()
	g := &Game{
		cfg:          cfg,
		catalog:      catalog,
		clock:        clock,
		machine:      fsm.NewMachine[*Game](),
		queue:        queue,
		router:       event.NewRouter[*Game](queue),
		rng:          rand.New(rand.NewPCG(seed, seed^0x5bd1e995)),
		stats:        NewStats(catalog.First().ID),
		pendingLevel: catalog.First().ID,
		muted:        cfg.Muted,
		lastUpdate:   clock.Now(),
	}

	g.registerGraph()
	if err := g.machine.LoadConfigFile(cfg.FSMPath, defaultGraph); err != nil {
		return nil, fmt.Errorf("load state graph: %w", err)
	}
	g.machine.OnTransition = func(from, to string) {
		log.Printf("state: %s -> %s", from, to)
	}
	if err := g.machine.Init(g); err != nil {
		return nil, fmt.Errorf("init state graph: %w", err)
	}
	g.dispatch()
	return g, nil
}

// AddSystem registers a per-tick system; systems run in ascending priority
func (g *Game) AddSystem(sys System) {
	g.systems = append(g.systems, sys)
	slices.SortStableFunc(g.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// RegisterHandler subscribes a handler to routed events
func (g *Game) RegisterHandler(h event.Handler[*Game]) {
	g.router.Register(h)
}

// Update advances the game by one tick
func (g *Game) Update() {
	now := g.clock.Now()
	dt := min(max(now.Sub(g.lastUpdate), 0), constants.MaxTickDelta)
	g.lastUpdate = now

	g.machine.Update(g, dt)
	g.dispatch()

	if g.session != nil && g.machine.InState(StateSession) {
		playing := g.machine.CurrentName() == StatePlaying
		for _, sys := range g.systems {
			if !playing && !runsWhilePaused(sys) {
				continue
			}
			sys.Update(g.session, now)
			// Effects of one system are visible to the next
			g.dispatch()
			if g.session == nil || !g.machine.InState(StateSession) {
				break
			}
			if playing && g.machine.CurrentName() != StatePlaying {
				break
			}
		}
	}
}

// dispatch drains the queue: each event goes to the state machine, then to handlers
// Handlers may emit further events; cascades are bounded by MaxDispatchRounds
func (g *Game) dispatch() {
	for round := 0; round < constants.MaxDispatchRounds; round++ {
		events := g.queue.Consume()
		if len(events) == 0 {
			return
		}
		for _, ev := range events {
			if ev.Type == event.EventSoundRequest && g.muted {
				continue
			}
			g.machine.HandleEvent(g, ev.Type)
			g.router.Dispatch(g, ev)
		}
	}
	if n := g.queue.Len(); n > 0 {
		log.Printf("dispatch: %d events deferred to next tick", n)
	}
}

// Emit queues an event outside of a session
func (g *Game) Emit(et event.EventType, payload any) {
	g.queue.Emit(et, payload)
}

func (g *Game) notify(sound audio.SoundType) {
	g.queue.Emit(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: sound})
}

// navigate feeds a navigation event to the state machine; a click plays when it moved
func (g *Game) navigate(et event.EventType) bool {
	if !g.machine.HandleEvent(g, et) {
		return false
	}
	g.notify(audio.SoundClick)
	g.dispatch()
	return true
}

// SelectAnswer submits a tapped option value; ignored outside PLAYING
func (g *Game) SelectAnswer(value int) bool {
	if g.machine.CurrentName() != StatePlaying || g.session == nil {
		return false
	}
	g.queue.Emit(event.EventAnswerSelected, &event.AnswerPayload{Value: value})
	g.dispatch()
	return true
}

// SelectOption submits the option at index i of the current set
func (g *Game) SelectOption(i int) bool {
	if g.session == nil || i < 0 || i >= len(g.session.Options) {
		return false
	}
	return g.SelectAnswer(g.session.Options[i])
}

// Start dismisses the splash screen
func (g *Game) Start() bool { return g.navigate(event.EventStart) }

// Play opens the level map
func (g *Game) Play() bool { return g.navigate(event.EventPlay) }

// SelectLevel starts an unlocked level; unknown ids resolve to the first level
func (g *Game) SelectLevel(id int) bool {
	prev := g.pendingLevel
	g.pendingLevel = g.catalog.Resolve(id).ID
	if !g.navigate(event.EventSelectLevel) {
		g.pendingLevel = prev
		return false
	}
	return true
}

// Pause suspends the simulation
func (g *Game) Pause() bool { return g.navigate(event.EventPause) }

// Resume continues a paused session
func (g *Game) Resume() bool { return g.navigate(event.EventResume) }

// TogglePause pauses while playing and resumes while paused
func (g *Game) TogglePause() bool {
	if g.machine.CurrentName() == StatePaused {
		return g.Resume()
	}
	return g.Pause()
}

// QuitHome abandons any session
func (g *Game) QuitHome() bool { return g.navigate(event.EventQuitHome) }

// OpenMap returns to the level map
func (g *Game) OpenMap() bool { return g.navigate(event.EventOpenMap) }

// NextLevel starts the level after a completed one
func (g *Game) NextLevel() bool { return g.navigate(event.EventNextLevel) }

// Retry restarts the current level after a game over
func (g *Game) Retry() bool { return g.navigate(event.EventRetry) }

// Confirm performs the primary action of the current screen
func (g *Game) Confirm() bool {
	switch g.machine.CurrentName() {
	case StateSplash:
		return g.Start()
	case StateHome:
		return g.Play()
	case StatePaused:
		return g.Resume()
	case StateLevelComplete:
		return g.NextLevel()
	case StateGameOver:
		return g.Retry()
	case StateFinalTrophy:
		return g.QuitHome()
	}
	return false
}

// ToggleMute flips sound suppression and returns the new value
func (g *Game) ToggleMute() bool {
	g.muted = !g.muted
	if !g.muted {
		g.notify(audio.SoundClick)
		g.dispatch()
	}
	return g.muted
}

// Muted reports whether sound requests are suppressed
func (g *Game) Muted() bool { return g.muted }

// State returns the active state name
func (g *Game) State() string { return g.machine.CurrentName() }

// Session returns the active or last finished attempt, nil on HOME and LEVEL_MAP
func (g *Game) Session() *Session { return g.session }

// Stats returns the player record
func (g *Game) Stats() *Stats { return &g.stats }

// Catalog returns the level table
func (g *Game) Catalog() *level.Catalog { return g.catalog }

// Snapshot copies the state needed to draw one frame
func (g *Game) Snapshot() Snapshot {
	now := g.clock.Now()
	snap := Snapshot{
		State:       g.machine.CurrentName(),
		Field:       g.cfg.Field,
		Threshold:   constants.ScoreThreshold,
		Unlocked:    g.stats.Level,
		Stars:       g.stats.Stars,
		Muted:       g.muted,
		Multiplier:  1,
		SplashReady: g.machine.TimeInState() >= g.cfg.SplashDelay,
	}

	levels := g.catalog.All()
	snap.Levels = make([]LevelSummary, len(levels))
	for i := range levels {
		snap.Levels[i] = LevelSummary{
			ID:          levels[i].ID,
			Title:       levels[i].Title,
			Description: levels[i].Description,
			Unlocked:    g.stats.Unlocked(levels[i].ID),
		}
	}

	s := g.session
	if s == nil {
		return snap
	}

	snap.LevelID = s.Level.ID
	snap.LevelTitle = s.Level.Title
	snap.Final = s.Final
	snap.Score = s.Stats.Score
	snap.Lives = s.Stats.Lives
	snap.Combo = s.Stats.Combo
	snap.MaxCombo = s.Stats.MaxCombo
	snap.Multiplier = s.Multiplier(now)
	snap.Frozen = s.Frozen(now)
	snap.Timed = s.Timed()
	snap.TimeLeft = s.TimeLeft
	snap.Options = slices.Clone(s.Options)
	snap.Particles = slices.Clone(s.Particles)
	snap.Balloons = make([]components.Balloon, len(s.Balloons))
	for i, b := range s.Balloons {
		snap.Balloons[i] = *b
	}
	return snap
}

// Now returns the game clock's current time
func (g *Game) Now() time.Time { return g.clock.Now() }
