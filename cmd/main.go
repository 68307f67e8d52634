// Package main starts the cash card API server.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-petr/cashcard/cmd/httpserver"
	"github.com/go-petr/cashcard/internal/cardrepo"
	"github.com/go-petr/cashcard/internal/middleware"
	"github.com/go-petr/cashcard/pkg/configpkg"
	"github.com/go-petr/cashcard/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	var server *httpserver.Server

	if config.DBDriver == configpkg.MemoryDriver {
		server, err = httpserver.NewWithRepo(cardrepo.NewRepoMem(), logger, config)
		if err != nil {
			logger.Fatal().Err(err).Msg("cannot create server")
		}
	} else {
		db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
		if err != nil {
			logger.Fatal().Err(err).Msg("cannot connect to database")
		}

		server, err = httpserver.New(db, logger, config)
		if err != nil {
			logger.Fatal().Err(err).Msg("cannot create server")
		}
	}

	logger.Info().Msg("CASH CARD API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
