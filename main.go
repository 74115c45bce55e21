package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"stonecrawl/pkg/engine/audio"
	"stonecrawl/pkg/engine/surface"
	"stonecrawl/pkg/game/config"
	"stonecrawl/pkg/game/devtools"
	"stonecrawl/pkg/game/gameplay"
	"stonecrawl/pkg/game/locale"
	"stonecrawl/pkg/game/renderer"
	"stonecrawl/pkg/game/renderer/ebiten"
	"stonecrawl/pkg/game/renderer/tui"
	"stonecrawl/pkg/game/state"
	"stonecrawl/pkg/game/view"
	"stonecrawl/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Log.WithError(err).Error("stonecrawl failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromOS()
	if err != nil {
		return err
	}

	logger.Init()
	if cfg.LogFile != "" {
		f, err := logger.ToFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
	} else if cfg.Backend == config.BackendTUI && !cfg.DumpMap {
		logger.Discard()
	}

	if err := locale.Load(cfg.Locale); err != nil {
		return err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Log.WithFields(logrus.Fields{
		"seed":      cfg.Seed,
		"backend":   cfg.Backend,
		"generator": cfg.Generator.Name(),
	}).Info("starting")

	s := state.NewSession(cfg.Seed, cfg.Generator, nil)
	if cfg.HasQuest || cfg.DumpMap {
		t := cfg.Quest
		if !cfg.HasQuest {
			t = gameplay.NextQuestType(s)
		}
		if err := gameplay.StartQuest(s, t); err != nil {
			return err
		}
	}

	if cfg.DumpMap {
		return devtools.PrintMap(os.Stdout, s)
	}

	var cue view.Cue
	if cfg.Audio {
		p := audio.NewPlayer()
		if err := p.Init(); err != nil {
			logger.Log.WithError(err).Warn("audio disabled")
		} else {
			defer p.Close()
			cue = p
		}
	}

	hooks := view.Hooks{
		Screenshot: func(frame *surface.Bitmap) (string, error) {
			return devtools.SaveScreenshot(cfg.OutputDir, frame, time.Now())
		},
		MapDump: func(s *state.Session) (string, error) {
			return devtools.DumpMapToFile(cfg.OutputDir, s)
		},
	}
	v, err := view.New(s, cue, hooks, time.Now())
	if err != nil {
		return err
	}

	bindings := cfg.Bindings
	var fe renderer.Frontend
	switch cfg.Backend {
	case config.BackendTUI:
		fe = tui.New(bindings, nil)
	default:
		fe = ebiten.New(bindings, cfg.Scale)
	}

	logger.Log.Debug(renderer.KeyHelp(bindings))
	if err := fe.Run(v); err != nil {
		return fmt.Errorf("%s frontend: %w", fe.Name(), err)
	}

	logger.Log.WithFields(logrus.Fields{
		"quests_completed": s.QuestsCompleted,
		"deaths":           s.Deaths,
		"gold":             s.Player.Gold,
	}).Info(locale.Get("GOODBYE"))
	return nil
}
