package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/akmonengine/hearth"
	"github.com/akmonengine/hearth/audio"
	"github.com/akmonengine/hearth/config"
	"github.com/akmonengine/hearth/logger"
	"github.com/akmonengine/hearth/render"
	"github.com/akmonengine/hearth/room"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "hearth:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	closeLog, err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("%w: %v", render.ErrNoSurface, err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", render.ErrNoSurface, err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	terminal, err := render.NewTerminal(screen, room.Sky)
	if err != nil {
		return err
	}

	events := hearth.NewEvents()
	scene := hearth.NewRoomScene(cfg.Room())
	scheduler := hearth.NewScheduler(scene, terminal, hearth.NewClock(nil), events, cfg.Scheduler.Interval)
	if err := scheduler.Mount(); err != nil {
		return err
	}
	defer scheduler.Teardown()

	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio.Volume)
		if err := player.Start(); err != nil {
			slog.Warn("continuing without sound", "error", err)
		} else {
			defer player.Close()
			defer player.Attach(events).Unsubscribe()
		}
	}

	h := newHost(events, cfg.Host.KeyRelease, cfg.Host.PixelAspect)
	defer events.Subscribe(hearth.FRAME, func(hearth.Event) { h.releaseStale() }).Unsubscribe()

	width, height := screen.Size()
	h.handle(tcell.NewEventResize(width, height))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Scene constants follow the file; the rest of the configuration is read once
	if configPath != "" {
		watcher, err := config.NewWatcher(configPath)
		if err != nil {
			slog.Warn("config changes will be ignored", "error", err)
		} else {
			go watcher.Run(ctx, func(next *config.Config) {
				scheduler.Retune(next.Room())
			})
		}
	}

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if !h.handle(ev) {
				cancel()
				return
			}
		}
	}()

	slog.Info("hearth started", "width", width, "height", height, "interval", cfg.Scheduler.Interval)
	err = scheduler.Run(ctx)
	slog.Info("hearth stopped", "ticks", scheduler.Ticks())

	return err
}
