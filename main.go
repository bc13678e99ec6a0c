package main

import (
	"context"
	"deskgauge/internal/config"
	"deskgauge/internal/logging"
	"deskgauge/internal/middleware"
	"deskgauge/internal/routes"
	"deskgauge/internal/services"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig(config.DefaultPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logCloser := logging.Init(cfg.Log)
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sampler := services.NewSampler(services.HostMetrics{}, cfg.DiskPath)
	shell := services.NewShell(cfg.Geometry(), cfg.InitialTheme(), cfg.TrayOnClose)
	thresholds := services.Thresholds{Warning: cfg.Thresholds.Warning, Critical: cfg.Thresholds.Critical}

	if cfg.Surface == config.SurfaceTerminal {
		runTerminal(ctx, cfg, sampler, shell, thresholds)
		return
	}
	runBrowser(ctx, cfg, sampler, shell, thresholds)
}

// runTerminal draws the widget on stdout and reads commands from stdin
func runTerminal(ctx context.Context, cfg *config.Config, sampler *services.Sampler, shell *services.Shell, thresholds services.Thresholds) {
	surface := services.NewTerminalSurface(os.Stdout, true)
	loop := services.NewDisplayLoop(sampler, surface, shell, cfg.PollInterval(), thresholds)

	go func() {
		if err := services.ReadTerminalCommands(os.Stdin, loop); err != nil {
			log.Printf("[TERM] Input error: %v", err)
		}
	}()

	if err := loop.Run(ctx); err != nil {
		log.Fatalf("Display loop failed: %v", err)
	}
}

// runBrowser serves the widget page and drives it over the websocket
func runBrowser(ctx context.Context, cfg *config.Config, sampler *services.Sampler, shell *services.Shell, thresholds services.Thresholds) {
	services.InitAuthService("", cfg.TokenExpiry())
	middleware.NewSecurityLogger()

	hub := services.InitWebSocketHub()
	defer services.StopWebSocketHub()

	loop := services.NewDisplayLoop(sampler, hub, shell, cfg.PollInterval(), thresholds)
	services.RegisterDisplayLoop(loop)

	gin.SetMode(gin.ReleaseMode)
	r, err := routes.NewRouter()
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: r,
	}

	go func() {
		log.Printf("Widget available at http://%s/", cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	if err := loop.Run(ctx); err != nil {
		log.Printf("Display loop failed: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}
}
