package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentcare/agentcare/internal/agent"
	"github.com/agentcare/agentcare/internal/config"
	"github.com/agentcare/agentcare/internal/domain/monitoring"
	"github.com/agentcare/agentcare/internal/domain/patient"
	"github.com/agentcare/agentcare/internal/domain/pharma"
	"github.com/agentcare/agentcare/internal/domain/scheduling"
	"github.com/agentcare/agentcare/internal/platform/llm"
	"github.com/agentcare/agentcare/internal/platform/middleware"
	"github.com/agentcare/agentcare/internal/platform/telemetry"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "agentcare-server",
		Short: "Healthcare AI request router",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the request router server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Metrics + completion client
	metrics := telemetry.New()
	completion := agent.InstrumentClient(
		llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.LLMModel, time.Duration(cfg.LLMTimeoutSeconds)*time.Second),
		metrics,
	)

	// Registries live for the life of the process; nothing persists.
	patientSvc := patient.NewService(patient.NewMemoryRepo())
	schedulingSvc := scheduling.NewService(scheduling.NewMemoryRepo())
	monitoringSvc := monitoring.NewService(monitoring.NewMemoryAlertRepo())

	agents := map[agent.Type]agent.Agent{
		agent.TypeAppointment:   agent.NewAppointmentAgent(completion, schedulingSvc),
		agent.TypeDrugDiscovery: agent.NewDrugDiscoveryAgent(completion, pharma.NewStaticSource()),
		agent.TypeMonitoring:    agent.NewMonitoringAgent(completion, monitoringSvc, patientSvc),
		agent.TypeGeneral:       agent.NewGeneralAgent(completion),
	}
	coordinator := agent.NewCoordinator(completion, agents, metrics, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/metrics", metrics.Handler())

	// API routes
	apiV1 := e.Group("/api/v1")
	agent.NewHandler(coordinator, metrics).RegisterRoutes(apiV1)
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)
	scheduling.NewHandler(schedulingSvc).RegisterRoutes(apiV1)
	monitoring.NewHandler(monitoringSvc).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("model", cfg.LLMModel).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
