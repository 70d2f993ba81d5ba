package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balloon-math/audio"
	"github.com/lixenwraith/balloon-math/cmd/internal/debuglog"
	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/input"
	"github.com/lixenwraith/balloon-math/level"
	"github.com/lixenwraith/balloon-math/render"
	"github.com/lixenwraith/balloon-math/render/renderers"
	"github.com/lixenwraith/balloon-math/systems"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/balloon-math.log")
	levelsFlag = flag.String("levels", "", "Level catalog YAML (default: built-in levels)")
	fsmFlag    = flag.String("fsm", "", "State graph YAML (default: built-in graph)")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	seedFlag   = flag.Uint64("seed", 0, "Random seed (0 = random)")
	splashFlag = flag.String("splash", "auto", "Splash dismissal: auto, manual")
)

func main() {
	flag.Parse()

	logFile := debuglog.Setup(*debugFlag, "balloon-math.log")
	code := run()
	// os.Exit skips deferred calls; flush the log first
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

// run plays until the player quits and returns the process exit code
func run() (code int) {
	game, err := newGame()
	if err != nil {
		log.Printf("startup: %v", err)
		fmt.Fprintf(os.Stderr, "balloon-math: %v\n", err)
		return 1
	}

	// Sound failure is not fatal; the game runs silent
	soundManager := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := soundManager.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer soundManager.Cleanup()

	systems.Install(game, soundManager)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Printf("screen: %v", err)
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		log.Printf("screen: %v", err)
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Printf("crash: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBALLOON-MATH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	loop(game, screen)
	return 0
}

func newGame() (*engine.Game, error) {
	cfg := engine.DefaultConfig()
	cfg.FSMPath = *fsmFlag
	cfg.Muted = *muteFlag
	cfg.Seed = *seedFlag

	policy, err := engine.ParseSplashPolicy(*splashFlag)
	if err != nil {
		return nil, err
	}
	cfg.SplashPolicy = policy

	var catalog *level.Catalog
	if *levelsFlag != "" {
		if catalog, err = level.Load(*levelsFlag); err != nil {
			return nil, err
		}
	}
	return engine.NewGame(cfg, catalog, nil)
}

func loop(game *engine.Game, screen tcell.Screen) {
	orchestrator := render.NewRenderOrchestrator(screen)

	type rendererDef struct {
		factory  func() render.SystemRenderer
		priority render.RenderPriority
	}

	rendererList := []rendererDef{
		{func() render.SystemRenderer { return renderers.NewFieldRenderer() }, render.PriorityBackground},
		{func() render.SystemRenderer { return renderers.NewBalloonRenderer() }, render.PriorityEntities},
		{func() render.SystemRenderer { return renderers.NewParticleRenderer() }, render.PriorityParticle},
		{func() render.SystemRenderer { return renderers.NewHUDRenderer() }, render.PriorityUI},
		{func() render.SystemRenderer { return renderers.NewOptionsRenderer() }, render.PriorityUI},
		{func() render.SystemRenderer { return renderers.NewScreenRenderer() }, render.PriorityOverlay},
	}
	for _, def := range rendererList {
		orchestrator.Register(def.factory(), def.priority)
	}

	field := game.Snapshot().Field
	handler := input.NewHandler(game, func() render.Layout {
		return orchestrator.Layout(field)
	})

	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if resize, ok := ev.(*tcell.EventResize); ok {
				w, h := resize.Size()
				orchestrator.Resize(w, h)
			}
			if !handler.HandleEvent(ev) {
				log.Printf("quit requested in %s", game.State())
				return
			}

		case <-frameTicker.C:
			game.Update()
			snap := game.Snapshot()
			orchestrator.RenderFrame(&snap, handler.Cursor(), game.Now())
		}
	}
}
