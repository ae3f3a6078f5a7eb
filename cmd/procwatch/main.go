package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"procwatch/internal/auth"
	"procwatch/internal/cli"
	"procwatch/internal/config"
	"procwatch/internal/domain"
	"procwatch/internal/logger"
	"procwatch/internal/monitor"
	"procwatch/internal/sampler"
	"procwatch/internal/storage/snapshot"
	"procwatch/internal/system"
	"procwatch/internal/telemetry"
	"procwatch/internal/transport/rest"
	ws "procwatch/internal/transport/websocket"
	"procwatch/internal/tui"
)

var errProcUnavailable = errors.New("proc filesystem unavailable")

func main() {
	cfg := config.Load()
	cfg.ApplyArgs(os.Args[1:])

	log, closer := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := run(ctx, cfg, log)
	stop()

	if err != nil {
		log.Error("procwatch failed", "mode", cfg.Mode, "error", err)
		closer.Close()
		// Top mode discards logs, so the reason must reach the terminal too.
		fmt.Fprintf(os.Stderr, "procwatch: %v\n", err)
		os.Exit(1)
	}

	closer.Close()
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	reader, err := system.NewReader(cfg.ProcRoot,
		system.WithPasswdPath(cfg.PasswdPath),
		system.WithOSReleasePath(cfg.OSReleasePath),
		system.WithLogger(log.With("component", "system")),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", errProcUnavailable, err)
	}
	if err := reader.Check(); err != nil {
		return fmt.Errorf("%w: %w", errProcUnavailable, err)
	}

	policy := monitor.KeepStale
	if cfg.EvictStalePIDs {
		policy = monitor.DropStale
	}

	mon := monitor.New(reader,
		monitor.WithEvictionPolicy(policy),
		monitor.WithLogger(log.With("component", "monitor")),
	)

	log.Info("procwatch starting", "mode", cfg.Mode, "proc_root", cfg.ProcRoot, "eviction", policy.String())

	switch cfg.Mode {
	case config.ModeServe:
		return serve(ctx, cfg, log, mon)

	case config.ModeSnapshot:
		smp := sampler.New(mon, cfg.ProcessLimit, log.With("component", "sampler"))
		return cli.Snapshot(ctx, smp, sampler.RefreshInterval, cli.NewSpinner(os.Stderr), os.Stdout)

	default:
		smp := sampler.New(mon, cfg.ProcessLimit, log.With("component", "sampler"))
		return tui.Run(ctx, smp)
	}
}

// serve runs the HTTP API. The scheduler goroutine is the only one that
// touches the monitor; handlers read the latest snapshot from the store.
func serve(ctx context.Context, cfg *config.Config, log logger.Logger, mon *monitor.Monitor) error {
	store := snapshot.NewMonitorStore()
	exporter := telemetry.NewExporter(cfg.ProcessLimit)
	hub := ws.NewHub(log.With("component", "ws"))

	// Keep every row so the API can page through all processes.
	smp := sampler.New(mon, 0, log.With("component", "sampler"))
	scheduler := sampler.NewScheduler(sampler.RefreshInterval, log, smp.Collect, func(s domain.Snapshot) {
		store.Set(s)
		exporter.Observe(s)
		hub.Publish(s)
	})

	authService := auth.NewService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTExpiry)
	if !authService.Enabled() {
		log.Warn("authentication disabled, set JWT_SECRET and ADMIN_PASSWORD_HASH to enable it")
	}

	router := rest.NewRouter(cfg, log.With("component", "http"), &rest.RouterDeps{
		Monitor:     rest.NewMonitorHandler(store, cfg.ProcessLimit),
		Auth:        rest.NewAuthHandler(authService, log),
		Metrics:     exporter.Handler(),
		Ws:          ws.NewHandler(hub, store, cfg.AllowedOrigins, log.With("component", "ws")).Serve,
		AuthService: authService,
	})

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		scheduler.Start(gCtx)
		return nil
	})

	g.Go(func() error {
		hub.Run(gCtx)
		return nil
	})

	g.Go(func() error {
		log.Info("http: starting server", "address", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("http: server shutdown error", "error", err)
		}
		return nil
	})

	err := g.Wait()
	log.Info("server stopped")

	return err
}
