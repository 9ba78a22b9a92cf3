package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zhuyin-fighter/app"
	"github.com/lixenwraith/zhuyin-fighter/audio"
	"github.com/lixenwraith/zhuyin-fighter/config"
	"github.com/lixenwraith/zhuyin-fighter/core"
	"github.com/lixenwraith/zhuyin-fighter/input"
	"github.com/lixenwraith/zhuyin-fighter/status"
)

var (
	configFlag   = flag.String("config", "zhuyin-fighter.yaml", "Path to the YAML config file")
	debugFlag    = flag.Bool("debug", false, "Write debug logs to "+logDir+"/"+logFileName)
	mutedFlag    = flag.Bool("muted", false, "Start with sound off")
	audioDirFlag = flag.String("audio-dir", "", "Directory holding NN.mp3 symbol clips")
	writeConfig  = flag.String("write-config", "", "Write the effective config to this path and exit")
)

func main() {
	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info("starting", "config", *configFlag, "tick_rate", cfg.TickRate)

	keys := input.DefaultKeyTable()
	if err := keys.ApplyBindings(cfg.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Audio is optional, the game runs silent without a device
	sound := audio.NewSoundManager(cfg.Volume, cfg.Muted, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer sound.Cleanup()

	voice := audio.NewVoice(sound, cfg.AudioDir, logger)
	logger.Info("voice clips loaded", "dir", cfg.AudioDir, "count", voice.Preload())

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	core.SetResetHook(screen.Fini)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats := status.NewRegistry()
	a := app.New(app.Options{
		Config: cfg,
		Logger: logger,
		Voice:  voice,
		Tones:  sound,
		Muter:  sound,
		Keys:   keys,
		Screen: screen,
		Stats:  stats,
	})
	err = a.Run(ctx)
	logger.Info("session stats", "stats", stats)
	if err != nil {
		logger.Error("exit with error", "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger.Info("bye")
}

// loadConfig reads path over the defaults and applies command-line overrides
// A missing file is not an error
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "muted":
			cfg.Muted = *mutedFlag
		case "audio-dir":
			cfg.AudioDir = *audioDirFlag
		}
	})
	return cfg, cfg.Validate()
}
