package main

import (
	stdlog "log"

	"github.com/rs/zerolog/log"

	"github.com/babumoltbot/saasname/app"
	"github.com/babumoltbot/saasname/app/config"
	"github.com/babumoltbot/saasname/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		stdlog.Fatalf("failed to load config: %v", err)
	}
	log.Logger = logger.NewLogger(cfg.Logs)

	app.MustInitDB()
	app.InitStripe()
	app.MustInitServices()

	router, err := app.NewRouter()
	if err != nil {
		stdlog.Fatalf("failed to initialize router: %v", err)
	}
	router.Run(cfg.ListenAddr)
}
