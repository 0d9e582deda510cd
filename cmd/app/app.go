package main

import (
	"os"

	"github.com/shoplens/go-backend/internal/app"
	config "github.com/shoplens/go-backend/internal/cfg"
	"github.com/shoplens/go-backend/pkg/logger"
)

//	@title			ShopLens Catalog API
//	@version		1.0
//	@description	Product catalog analytics and recommendations over a seeded sample dataset.
//	@BasePath		/api/v1

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
