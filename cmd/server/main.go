// Package main starts the wallet tracker API server.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/finwise/wallet-tracker/cmd/httpserver"
	"github.com/finwise/wallet-tracker/internal/middleware"
	"github.com/finwise/wallet-tracker/pkg/configpkg"
	"github.com/finwise/wallet-tracker/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	if err = dbpkg.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("cannot run migrations")
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("WALLET TRACKER API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
