package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/swasthyasetu/portal/internal/config"
	"github.com/swasthyasetu/portal/internal/domain/auditlog"
	"github.com/swasthyasetu/portal/internal/domain/claims"
	"github.com/swasthyasetu/portal/internal/domain/diagnosis"
	"github.com/swasthyasetu/portal/internal/domain/identity"
	"github.com/swasthyasetu/portal/internal/domain/mapping"
	"github.com/swasthyasetu/portal/internal/domain/passport"
	"github.com/swasthyasetu/portal/internal/domain/patientclaims"
	"github.com/swasthyasetu/portal/internal/domain/records"
	syncdomain "github.com/swasthyasetu/portal/internal/domain/sync"
	"github.com/swasthyasetu/portal/internal/domain/users"
	"github.com/swasthyasetu/portal/internal/platform/auth"
	"github.com/swasthyasetu/portal/internal/platform/dispatch"
	"github.com/swasthyasetu/portal/internal/platform/middleware"
	"github.com/swasthyasetu/portal/internal/platform/notify"
	"github.com/swasthyasetu/portal/pkg/browse"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portal-server",
		Short: "SwasthyaSetu healthcare portal API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the portal API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// exportCmd writes a dashboard export artifact to disk without starting
// the server, for demos and smoke checks.
func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [users|claims|audit-logs|mappings|records]",
		Short: "Write a dashboard export artifact to a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir, _ := cmd.Flags().GetString("out")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			feed := notify.NewFeed(cfg.ToastBuffer)
			dispatcher := dispatch.New(0, feed, zerolog.Nop())

			ctx := context.Background()
			all := browse.Criteria{}

			var (
				data     []byte
				filename string
			)
			switch args[0] {
			case "users":
				data, filename, err = users.NewService(users.NewMemRepo(), dispatcher).ExportCSV(ctx, all)
			case "claims":
				data, filename, err = claims.NewService(claims.NewMemRepo(), dispatcher).ExportCSV(ctx, all)
			case "audit-logs":
				data, filename, err = auditlog.NewService(auditlog.NewMemRepo()).ExportCSV(ctx, all)
			case "mappings":
				data, filename, err = mapping.NewService(mapping.NewMemRepo(), dispatcher).ExportJSON(ctx, all)
			case "records":
				data, filename, err = records.NewService(records.NewMemRepo()).ExportJSON(ctx)
			default:
				return fmt.Errorf("unknown export kind %q", args[0])
			}
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, filename)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d bytes)\n", path, len(data))
			return nil
		},
	}
	cmd.Flags().String("out", ".", "Directory to write the artifact into")
	return cmd
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	e := buildServer(cfg, logger)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// buildServer assembles the fully wired echo application: middleware
// chain, stores, services, and every dashboard's routes.
func buildServer(cfg *config.Config, logger zerolog.Logger) *echo.Echo {
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL())
	feed := notify.NewFeed(cfg.ToastBuffer)
	dispatcher := dispatch.New(cfg.ActionLatency(), feed, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}

	// The login route sits outside the token guard; everything else on
	// /api/v1 requires a session.
	public := e.Group("/api/v1")
	public.Use(middleware.RateLimit(rateLimitCfg))

	// The token guard runs before the limiter here so guarded traffic is
	// throttled per account rather than per address.
	api := e.Group("/api/v1")
	if cfg.IsDev() {
		api.Use(auth.DevMiddleware(issuer))
	} else {
		api.Use(auth.Middleware(issuer))
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	// Audit trail: every guarded access is logged and appended to the
	// audit log store the admin dashboard browses.
	auditSvc := auditlog.NewService(auditlog.NewMemRepo())
	api.Use(middleware.Audit(logger, auditSvc))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// -- Register Domain Handlers --

	identitySvc := identity.NewService(issuer, feed)
	identity.NewHandler(identitySvc).RegisterRoutes(public, api)

	usersSvc := users.NewService(users.NewMemRepo(), dispatcher)
	users.NewHandler(usersSvc).RegisterRoutes(api)

	auditlog.NewHandler(auditSvc).RegisterRoutes(api)

	claimsSvc := claims.NewService(claims.NewMemRepo(), dispatcher)
	claims.NewHandler(claimsSvc).RegisterRoutes(api)

	mappingSvc := mapping.NewService(mapping.NewMemRepo(), dispatcher)
	mapping.NewHandler(mappingSvc).RegisterRoutes(api)

	syncSvc := syncdomain.NewService(syncdomain.NewMemRepo(), dispatcher, cfg.SyncLatency())
	syncdomain.NewHandler(syncSvc).RegisterRoutes(api)

	diagSvc := diagnosis.NewService(diagnosis.NewMemPatientRepo(), diagnosis.NewMemSuggestionRepo(), dispatcher, cfg.SyncLatency())
	diagnosis.NewHandler(diagSvc).RegisterRoutes(api)

	recordsSvc := records.NewService(records.NewMemRepo())
	records.NewHandler(recordsSvc).RegisterRoutes(api)

	pclaimsSvc := patientclaims.NewService(patientclaims.NewMemRepo(), dispatcher, cfg.SyncLatency())
	patientclaims.NewHandler(pclaimsSvc).RegisterRoutes(api)

	passport.NewHandler(passport.NewService()).RegisterRoutes(api)

	// Toast feed for dashboard polling
	notify.NewHandler(feed).RegisterRoutes(api)

	return e
}
