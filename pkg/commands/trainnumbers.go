package commands

import (
	"github.com/gocarina/gocsv"
	"github.com/travigo/cab/pkg/actiontree"
	"github.com/urfave/cli/v2"
)

func RegisterTrainNumbersCLI() *cli.Command {
	return &cli.Command{
		Name:  "trainnumbers",
		Usage: "Browse the train numbers of a database",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list one train number per line and circulation",
				Flags: []cli.Flag{
					databaseFlag,
					formatFlag(formatJSON, formatCSV),
				},
				Action: func(c *cli.Context) error {
					database, options, err := selectDatabase(c)
					if err != nil {
						return err
					}

					document := actiontree.FetchTrainNumbers(c.Context, database.Opener(), options)

					trainNumbers, ok := document.([]*actiontree.TrainNumber)
					if ok && c.String("format") == formatCSV {
						return gocsv.Marshal(trainNumbers, c.App.Writer)
					}

					return writeDocument(c.App.Writer, document, c.String("format"))
				},
			},
		},
	}
}
