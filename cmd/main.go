package main

import (
	"github.com/AnoopG7/Day-Tracker-sub001/config"
	"github.com/AnoopG7/Day-Tracker-sub001/routes"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := config.NewLogger(cfg.AppEnv)
	defer log.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	r := routes.SetupRouter(cfg, db, log)

	log.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
