package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/balloon-math/audio"
	"github.com/lixenwraith/balloon-math/cmd/internal/debuglog"
	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/gui"
	"github.com/lixenwraith/balloon-math/level"
	"github.com/lixenwraith/balloon-math/systems"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/balloon-math-gui.log")
	levelsFlag = flag.String("levels", "", "Level catalog YAML (default: built-in levels)")
	fsmFlag    = flag.String("fsm", "", "State graph YAML (default: built-in graph)")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	seedFlag   = flag.Uint64("seed", 0, "Random seed (0 = random)")
	splashFlag = flag.String("splash", "auto", "Splash dismissal: auto, manual")
)

func main() {
	flag.Parse()

	logFile := debuglog.Setup(*debugFlag, "balloon-math-gui.log")
	err := run()
	if err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "balloon-math-gui: %v\n", err)
	}
	// os.Exit skips deferred calls; flush the log first
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// run builds the game and blocks until the window closes
func run() error {
	cfg := engine.DefaultConfig()
	cfg.FSMPath = *fsmFlag
	cfg.Muted = *muteFlag
	cfg.Seed = *seedFlag
	policy, err := engine.ParseSplashPolicy(*splashFlag)
	if err != nil {
		return err
	}
	cfg.SplashPolicy = policy

	var catalog *level.Catalog
	if *levelsFlag != "" {
		if catalog, err = level.Load(*levelsFlag); err != nil {
			return err
		}
	}

	game, err := engine.NewGame(cfg, catalog, nil)
	if err != nil {
		return err
	}

	soundManager := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := soundManager.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer soundManager.Cleanup()

	systems.Install(game, soundManager)

	return gui.Run(gui.NewApp(game, cfg.Field), "Balloon Math")
}
