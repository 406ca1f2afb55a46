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

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"fitnessai/docs"
	"fitnessai/internal/config"
	"fitnessai/internal/controllers"
	"fitnessai/internal/logging"
	"fitnessai/internal/metrics"
	"fitnessai/internal/services"
	"fitnessai/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fitnessai:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	// Old files go before today's file is opened.
	removed, rotateErr := logging.RotateLogs(cfg.Logging.Dir, cfg.Retention(), time.Now())

	log, err := logging.New(logging.Config{
		Dir:        cfg.Logging.Dir,
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Production: cfg.IsProduction(),
	})
	if err != nil {
		return err
	}
	defer log.Close()

	if rotateErr != nil {
		log.Warn("log rotation failed", "error", rotateErr)
	}
	for _, name := range removed {
		log.Info("removed old log file", "file", name)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "FitnessAI API"
	docs.SwaggerInfo.Description = "Rule-based diet, stress and workout recommendations."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	m := metrics.New()
	recommendationController := controllers.NewRecommendationController(
		services.NewDietAnalyzer(log, time.Now),
		services.NewStressAnalyzer(log, time.Now),
		services.NewWorkoutAnalyzer(log, time.Now),
		log,
		m,
	)
	healthController := controllers.NewHealthController(time.Now)

	gin.SetMode(gin.ReleaseMode)
	router := routes.NewRouter(log, m, recommendationController, healthController)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(router)

	server := &http.Server{
		Addr:           cfg.Addr(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", server.Addr, "environment", cfg.Server.Environment)
		log.Info("api documentation", "url", "http://localhost:"+cfg.Server.Port+"/swagger/index.html")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
