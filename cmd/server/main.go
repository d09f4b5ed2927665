package main

import (
	"os"

	"notekeeper/internal/app/server"
	"notekeeper/internal/app/server/config"
	"notekeeper/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)
	log.Info("starting notekeeper", "env", cfg.Env)

	if err := server.Run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
