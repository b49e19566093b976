package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	domainerr "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/error"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/usecase/session"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/infrastructure/adapter/validation"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Thresholds are fixed here, before any concurrent logging starts
	thresholds, err := cfg.Logger.Thresholds()
	if err != nil {
		log.Fatalf("Invalid log configuration: %v", err)
	}
	appLogger := newRouter(thresholds, cfg.Logger.SyslogTag)

	reporter := domainerr.NewReporter(appLogger)
	store := session.NewStore(reporter)
	nodeValidator := validation.NewNodeValidator(appLogger, cfg.Validation.FirstErrorOnly)
	sessionUseCase := session.NewService(store, nodeValidator, appLogger)

	sessionHandler := handler.NewSessionHandler(sessionUseCase, appLogger)
	logHandler := handler.NewLogHandler(appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, sessionHandler, logHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Infof("Starting diagnostics server on %s (%s).", server.Addr, cfg.Environment)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Log(core.SeverityError, "Failed to start server (%s).", err)
			_ = appLogger.Close()
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Infof("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Log(core.SeverityError, "Server forced to shutdown (%s).", err)
	}

	appLogger.Infof("Server exited gracefully with %d open sessions.", store.Len())

	if err := appLogger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "closing log sinks: %v\n", err)
	}
}

// newRouter builds the log router; a missing system log leaves only the console
func newRouter(thresholds logger.Thresholds, syslogTag string) *logger.Router {
	console := logger.NewConsoleSink()

	if thresholds.Syslog == core.SeverityNone {
		return logger.NewRouter(thresholds, console, nil)
	}

	syslogSink, err := logger.NewSyslogSink(syslogTag)
	if err != nil {
		router := logger.NewRouter(thresholds, console, nil)
		router.Warnf("System log unavailable, logging to console only (%s).", err)
		return router
	}
	return logger.NewRouter(thresholds, console, syslogSink)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Logger.SyslogTag == "" {
		missingConfigs = append(missingConfigs, "logger.syslogTag")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
