package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jessevdk/go-flags"

	"github.com/blogem/emma-oauth/authenticator"
	"github.com/blogem/emma-oauth/config"
	"github.com/blogem/emma-oauth/controllers"
	"github.com/blogem/emma-oauth/database"
	"github.com/blogem/emma-oauth/instrumentation"
	appmiddleware "github.com/blogem/emma-oauth/middleware"
	"github.com/blogem/emma-oauth/repositories"
	"github.com/blogem/emma-oauth/security"
	"github.com/blogem/emma-oauth/services"
)

// version is set with -ldflags at build time.
var version = "dev"

// options are the command-line flags, parsed by go-flags.
type options struct {
	EnvFile string `long:"env-file" default:".env" description:"path of the .env file to load"`
	Port    string `short:"p" long:"port" description:"listen port, overrides PORT"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// Load environment variables from .env file
	if err := config.LoadDotEnv(opts.EnvFile); err != nil {
		log.Fatalf("Failed to load the env vars: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if opts.Port != "" {
		cfg.Port = opts.Port
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// app is everything setupRouter needs, built from the configuration
type app struct {
	ctrl        *controllers.Controllers
	services    *services.Services
	inst        *instrumentation.Instrumentation
	auditor     *security.Auditor
	rateLimiter *security.RateLimiter
	logger      *slog.Logger
	proxy       security.ProxyConfig
	adminToken  string
}

func run(cfg config.Config, logger *slog.Logger) error {
	// Initialize database
	db, err := database.InitializeDatabase(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	inst, err := instrumentation.New(instrumentation.Config{
		ServiceName:    controllers.ServiceName,
		ServiceVersion: version,
		Enabled:        cfg.MetricsEnabled,
		TraceEndpoint:  cfg.TraceEndpoint,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize instrumentation: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := inst.Shutdown(ctx); err != nil {
			logger.Error("Failed to shut down instrumentation", "error", err)
		}
	}()

	// Initialize Emma provider
	provider, err := authenticator.NewEmmaProvider(cfg.Authenticator())
	if err != nil {
		return fmt.Errorf("failed to initialize Emma provider: %w", err)
	}

	a := newApp(cfg, provider, repositories.NewRepositories(db), inst, logger)
	defer a.rateLimiter.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go purgeExpiredStates(ctx, a.services.Login, cfg.StateTTL, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("🚀 Emma OAuth client starting on port %s\n", cfg.Port)
	fmt.Printf("📂 open http://localhost:%s\n", cfg.Port)
	fmt.Printf("🗃️  Database: %s\n", cfg.DatabasePath)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newApp wires repositories, services and controllers
func newApp(cfg config.Config, provider authenticator.Provider, repos *repositories.Repositories, inst *instrumentation.Instrumentation, logger *slog.Logger) *app {
	auditor := security.NewAuditor(logger, cfg.AuditEnabled)

	srvs := services.NewServices(services.Dependencies{
		Provider:        provider,
		Repositories:    repos,
		Instrumentation: inst,
		Auditor:         auditor,
		Logger:          logger,
	}, services.LoginOptions{
		VerifyState: cfg.VerifyState,
		StateTTL:    cfg.StateTTL,
	})

	ctrl := controllers.NewControllers(srvs, inst, controllers.Options{
		SecureCookies: cfg.UseHTTPS,
		StateTTL:      cfg.StateTTL,
	})

	return &app{
		ctrl:        ctrl,
		services:    srvs,
		inst:        inst,
		auditor:     auditor,
		rateLimiter: security.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, logger),
		logger:      logger,
		proxy:       cfg.Proxy(),
		adminToken:  cfg.AdminToken,
	}
}

// setupRouter configures all routes
func setupRouter(a *app) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(appmiddleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(90 * time.Second)) // must outlast the token exchange timeout
	r.Use(appmiddleware.SecurityHeaders)
	r.Use(appmiddleware.RequestContext(a.logger, a.inst.Metrics(), a.proxy))

	r.Get("/health", a.ctrl.Health.Health)

	// Login flow, rate limited per client IP
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RateLimit(a.rateLimiter, a.auditor, a.inst.Metrics()))

		r.Get("/", a.ctrl.Auth.Login)
		r.Get("/callback", a.ctrl.Auth.Callback)
	})

	// OPERATOR ROUTES (bearer token required)
	if a.adminToken != "" {
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.RequireAdminToken(a.adminToken))

			r.Get("/exchanges", a.ctrl.Exchanges.List)
			r.Get("/exchanges/{id}", a.ctrl.Exchanges.Get)
			r.Get("/metrics", a.ctrl.Metrics.Show)
		})
	}

	return r
}

// purgeExpiredStates removes abandoned logins until ctx is done
func purgeExpiredStates(ctx context.Context, login services.LoginService, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := login.PurgeExpiredStates(ctx)
			if err != nil {
				logger.Error("Failed to purge expired states", "error", err)
				continue
			}
			if n > 0 {
				logger.Debug("Purged expired states", "count", n)
			}
		}
	}
}
