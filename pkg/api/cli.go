package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/cab/pkg/config"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the complex action browser web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					registry, err := config.RegistryFromEnvironment()
					if err != nil {
						return err
					}

					for _, database := range registry.Databases {
						log.Info().Str("identifier", database.Identifier).Str("path", database.Path).Msg("Registered database")
					}

					return SetupServer(c.String("listen"), registry)
				},
			},
		},
	}
}
