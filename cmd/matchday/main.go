package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/burakmert236/matchday/app"
	"github.com/burakmert236/matchday/common/config"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	env := config.NewEnvLoader("MATCHDAY")
	configPath := env.GetString("CONFIG_PATH", "./config")

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	application, appErr := app.New(ctx, cfg)
	if appErr != nil {
		log.Fatalf("Failed to init application: %v", appErr)
	}

	application.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	application.Stop()
}
