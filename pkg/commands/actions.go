package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/cab/pkg/actiontree"
	"github.com/urfave/cli/v2"
)

func RegisterActionsCLI() *cli.Command {
	return &cli.Command{
		Name:  "actions",
		Usage: "Resolve action trees",
		Subcommands: []*cli.Command{
			{
				Name:  "tree",
				Usage: "resolve the line, section, event and action tree of a train number",
				Flags: []cli.Flag{
					databaseFlag,
					formatFlag(formatJSON, formatPretty),
					&cli.Int64Flag{
						Name:     "id",
						Usage:    "train number id",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					database, options, err := selectDatabase(c)
					if err != nil {
						return err
					}

					document := actiontree.FetchLineTree(c.Context, database.Opener(), c.Int64("id"), options)

					return writeDocument(c.App.Writer, document, c.String("format"))
				},
			},
			{
				Name:  "complex",
				Usage: "resolve the complex action tree below an action",
				Flags: []cli.Flag{
					databaseFlag,
					formatFlag(formatJSON, formatPretty),
					&cli.Int64Flag{Name: "action-id", Required: true},
					&cli.Int64Flag{Name: "action-list-id"},
					&cli.Int64Flag{Name: "action-detail-id"},
					&cli.StringFlag{Name: "action-type", Required: true},
					&cli.StringFlag{Name: "media-type"},
				},
				Action: func(c *cli.Context) error {
					database, options, err := selectDatabase(c)
					if err != nil {
						return err
					}

					root := actiontree.ActionDescriptor{
						ActionID:       c.Int64("action-id"),
						ActionListID:   c.Int64("action-list-id"),
						ActionDetailID: c.Int64("action-detail-id"),
						ActionType:     c.String("action-type"),
						MediaType:      c.String("media-type"),
					}

					document := actiontree.FetchComplexActionTree(c.Context, database.Opener(), root, options)

					return writeDocument(c.App.Writer, document, c.String("format"))
				},
			},
			{
				Name:  "export",
				Usage: "resolve the tree of every train number into <id>.json files",
				Flags: []cli.Flag{
					databaseFlag,
					&cli.StringFlag{
						Name:     "out",
						Usage:    "directory the trees are written to",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "concurrency",
						Value: 4,
						Usage: "number of trees resolved at once",
					},
				},
				Action: func(c *cli.Context) error {
					database, options, err := selectDatabase(c)
					if err != nil {
						return err
					}

					if c.Int("concurrency") < 1 {
						return errors.New("concurrency must be at least 1")
					}

					outDirectory := c.String("out")
					if err := os.MkdirAll(outDirectory, 0o755); err != nil {
						return err
					}

					document := actiontree.FetchTrainNumbers(c.Context, database.Opener(), options)
					trainNumbers, ok := document.([]*actiontree.TrainNumber)
					if !ok {
						return writeDocument(c.App.ErrWriter, document, formatJSON)
					}

					p := pool.New().WithErrors().WithMaxGoroutines(c.Int("concurrency"))

					for _, trainNumber := range trainNumbers {
						p.Go(func() error {
							// Every resolution opens its own store handle
							tree := actiontree.FetchLineTree(c.Context, database.Opener(), trainNumber.TrainNumberID, options)

							if _, failed := tree.(actiontree.ErrorDocument); failed {
								log.Warn().Int64("train_number_id", trainNumber.TrainNumberID).Msg("Exporting error document")
							}

							return writeTreeFile(filepath.Join(outDirectory, fmt.Sprintf("%d.json", trainNumber.TrainNumberID)), tree)
						})
					}

					if err := p.Wait(); err != nil {
						return err
					}

					log.Info().Int("trees", len(trainNumbers)).Str("out", outDirectory).Msg("Exported action trees")

					return nil
				},
			},
		},
	}
}

func writeTreeFile(path string, tree any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	return errors.Join(encodeJSON(file, tree), file.Close())
}
