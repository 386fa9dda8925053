package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mini-fps/config"
	"github.com/lixenwraith/mini-fps/engine"
	"github.com/lixenwraith/mini-fps/input"
	"github.com/lixenwraith/mini-fps/notify"
	"github.com/lixenwraith/mini-fps/scene"
	"github.com/lixenwraith/mini-fps/status"
	"golang.org/x/sync/errgroup"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	keymapFlag = flag.String("keymap", "", "Path to TOML keymap file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/mini-fps.log")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mini-fps: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	logFile, logger := setupLogging(*debugFlag || cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	keys, err := loadKeyTable(cfg, *keymapFlag)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	crashHandler := func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMINI-FPS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}
	defer crashHandler()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Completion scopes: the embedding parent, then this process once the driver exists
	dispatcher := notify.NewDispatcher()

	var hub *notify.Hub
	var srv *http.Server
	if cfg.Notify.Addr != "" {
		hub = notify.NewHub(logger, cfg.Notify.OriginPatterns)
		dispatcher.Register(hub)
		srv = notify.NewServer(cfg.Notify.Addr, cfg.Notify.Path, hub)
	}

	stats := status.NewRegistry()
	camera := scene.NewCamera(cfg.PlayerStart(), cfg.Player.MoveStep, cfg.Player.TurnStep, cfg.Player.ArenaExtent)
	session := engine.NewSession(cfg.Rules(), camera, dispatcher, engine.NewMonotonicTimeProvider(), logger)
	driver := scene.NewDriver(screen, session, camera, scene.Options{
		FrameInterval: cfg.FrameInterval(),
		CellsPerUnit:  cfg.Display.CellsPerUnit,
		RowsPerUnit:   cfg.Display.RowsPerUnit,
		KeyTable:      keys,
		Logger:        logger,
		Status:        stats,
	})
	dispatcher.Register(notify.NewLogListener(logger, driver.OnCompletion))

	logger.Info("session created", "session_id", session.ID(), "notify_addr", cfg.Notify.Addr)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer crashHandler()
		// Quitting the scene stops everything else
		defer stop()
		return driver.Run(gctx)
	})

	if srv != nil {
		g.Go(func() error {
			logger.Info("notify endpoint listening", "addr", srv.Addr, "path", cfg.Notify.Path)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("notify server: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			hub.Close()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("graceful shutdown failed", "error", err)
				return srv.Close()
			}
			return nil
		})
	}

	err = g.Wait()
	snap := session.Snapshot()
	logger.Info("shutdown complete",
		slog.Int("score", snap.Score),
		slog.Bool("completed", snap.Completed),
		slog.Any("status", stats),
	)
	return err
}

// loadKeyTable merges the config [keys] section and an optional keymap file over the defaults
func loadKeyTable(cfg *config.Config, keymapPath string) (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()

	override, err := input.ParseKeyBindings(cfg.Keys.Runes, cfg.Keys.Special)
	if err != nil {
		return nil, fmt.Errorf("config keys: %w", err)
	}
	kt = input.MergeKeyTable(kt, override)

	if keymapPath == "" {
		return kt, nil
	}

	data, err := os.ReadFile(keymapPath)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", keymapPath, err)
	}
	override, err = input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", keymapPath, err)
	}
	return input.MergeKeyTable(kt, override), nil
}
