package main

import (
	"github.com/rs/zerolog/log"

	"github.com/ajit0013/SugarHealthTracker/config"
	"github.com/ajit0013/SugarHealthTracker/routes"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	config.InitDB()

	r := routes.SetupRouter()
	log.Info().Str("addr", config.App.ListenAddr).Msg("starting server")
	if err := r.Run(config.App.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
