package main

import (
	"context"
	"log"

	"cv-builder-backend/internal/bootstrap"
	"cv-builder-backend/internal/shared/config"
	"cv-builder-backend/internal/shared/server"
	"cv-builder-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Close()

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{
		"addr": addr,
		"env":  cfg.Env,
	})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
