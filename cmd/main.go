package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"msx-backend/config"
	"msx-backend/server"
)

func main() {
	envErr := config.LoadEnvFile(".env")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Cannot load configuration: %v", err)
	}

	config.InitLogger(cfg.LogDir, cfg.AppEnv)
	defer config.SyncLogger()

	if envErr != nil {
		config.Logger.Warn("No env file loaded, using process environment", zap.Error(envErr))
	}

	app, err := server.Bootstrap(cfg)
	if err != nil {
		config.Logger.Fatal("Cannot build server", zap.Error(err))
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		sig := <-quit
		config.Logger.Info("Shutting down", zap.String("signal", sig.String()))
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			config.Logger.Error("Shutdown failed", zap.Error(err))
		}
	}()

	config.Logger.Info("MSX Player Server starting",
		zap.String("port", cfg.Port),
		zap.String("base_url", cfg.BaseURL),
		zap.String("env", cfg.AppEnv),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		config.Logger.Fatal("Server failed", zap.String("port", cfg.Port), zap.Error(err))
	}
	config.Logger.Info("Server stopped")
}
