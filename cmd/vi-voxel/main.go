// Command vi-voxel is a terminal voxel world viewer and editor
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-voxel/config"
	"github.com/lixenwraith/vi-voxel/core"
	"github.com/lixenwraith/vi-voxel/engine"
	"github.com/lixenwraith/vi-voxel/parameter"
	"github.com/lixenwraith/vi-voxel/status"
	"github.com/lixenwraith/vi-voxel/world"
)

var (
	configPath = flag.String("config", "vi-voxel.toml", "settings file, missing file uses defaults")
	debugFlag  = flag.Bool("debug", false, "write debug logs to the log directory")
	seedFlag   = flag.Int64("seed", 0, "terrain seed, overrides the config (0 keeps it)")
	levelFlag  = flag.String("level", "", "level file, overrides world.save_path")
	freshFlag  = flag.Bool("new", false, "generate a new level even if a save exists")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-voxel: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, warnings, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.World.Seed = *seedFlag
	}
	if *levelFlag != "" {
		cfg.World.SavePath = *levelFlag
	}

	log, logFile, err := setupLogging(cfg.Logging, *debugFlag)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer log.Sync()
	for _, w := range warnings {
		log.Warn("config", zap.String("path", *configPath), zap.String("issue", w))
	}

	catalog, err := loadCatalog(cfg.World.Materials)
	if err != nil {
		return err
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}
	level := openLevel(cfg.World, catalog, *freshFlag, log)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	core.RegisterScreen(screen)
	core.OnCrash(func(r any) {
		log.Error("crash", zap.Any("panic", r), zap.Stack("stack"))
		_ = log.Sync()
		if logFile != nil {
			_ = logFile.Close()
		}
	})
	defer func() {
		core.RegisterScreen(nil)
		core.ResetCrashHooks()
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := engine.NewDriver(engine.Options{
		Screen:           screen,
		Level:            level,
		Time:             engine.NewSystemTime(),
		Log:              log,
		Registry:         status.NewRegistry(),
		Keys:             keys,
		Seed:             uint64(level.Seed()),
		TickRateHz:       cfg.Timing.TickRateHz,
		MaxTicksPerFrame: cfg.Timing.MaxTicksPerFrame,
		FrameRateCap:     cfg.Timing.FrameRateCap,
		KeyHoldTicks:     cfg.Timing.KeyHoldTicks,
		InvertY:          cfg.View.InvertY,
		Zombies:          cfg.World.Zombies,
		SavePath:         cfg.World.SavePath,
		Version:          parameter.Version,
	})
	driver.Run(ctx)
	return nil
}

// loadCatalog reads a material YAML file, or returns the built-in set for an empty path
func loadCatalog(path string) (*world.Catalog, error) {
	if path == "" {
		return world.DefaultCatalog(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("materials %s: %w", path, err)
	}
	return world.LoadCatalog(raw)
}

// openLevel loads the saved level, generating a new one when there is none or it is unreadable
func openLevel(wc config.WorldConfig, catalog *world.Catalog, fresh bool, log *zap.Logger) *world.Level {
	seed := wc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	level := world.NewLevel(wc.Width, wc.Height, wc.Depth, catalog, seed)

	if !fresh {
		err := level.Load(wc.SavePath)
		if err == nil {
			log.Info("level loaded", zap.String("path", wc.SavePath), zap.Int64("seed", level.Seed()))
			return level
		}
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("level load failed, generating", zap.String("path", wc.SavePath), zap.Error(err))
		}
	}

	start := time.Now()
	level.Generate(seed)
	log.Info("level generated",
		zap.Int64("seed", seed),
		zap.Int("width", wc.Width), zap.Int("height", wc.Height), zap.Int("depth", wc.Depth),
		zap.Duration("took", time.Since(start)),
	)
	return level
}
