package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/internal/emr"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/config"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize EMR Service
	service, err := emr.New(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize EMR Service: %v", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	// Start service in a goroutine
	go func() {
		logger.Infof("Starting EMR Service on %s", addr)
		if err := service.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start EMR Service: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down EMR Service...")
	if err := service.Stop(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
	logger.Info("EMR Service stopped")
}
