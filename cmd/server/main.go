package main

import (
	"log/slog"
	"net/http"

	"github.com/casefolio/casefolio/internal/app"
	"github.com/casefolio/casefolio/internal/config"
	"github.com/casefolio/casefolio/internal/logger"
	"github.com/casefolio/casefolio/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	app := app.New(cfg)

	handler := routes.SetupRoutes(app)
	slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "url", "http://localhost:"+cfg.Port)

	err := http.ListenAndServe(":"+cfg.Port, handler)
	if err != nil {
		slog.Error("server failed", "error", err)
		panic(err)
	}
}
