package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/cab/pkg/api"
	"github.com/travigo/cab/pkg/commands"
	"github.com/travigo/cab/pkg/util"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if util.GetEnvironmentVariable("CAB_LOG_FORMAT", "") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if util.GetEnvironmentVariable("CAB_DEBUG", "") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "cab",
		Description: "Complex action browser - resolves announcement action trees from an action database",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			commands.RegisterTrainNumbersCLI(),
			commands.RegisterActionsCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
