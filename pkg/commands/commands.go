// Package commands holds the cab subcommands that resolve trees from the
// command line.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/cab/pkg/actiontree"
	"github.com/travigo/cab/pkg/config"
	"github.com/urfave/cli/v2"
)

const (
	formatJSON   = "json"
	formatCSV    = "csv"
	formatPretty = "pretty"
)

var databaseFlag = &cli.StringFlag{
	Name:  "database",
	Value: config.DefaultDatabaseIdentifier,
	Usage: "identifier of the registered database to read",
}

func formatFlag(formats ...string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "format",
		Value: formats[0],
		Usage: fmt.Sprintf("output format, one of %v", formats),
	}
}

// selectDatabase looks up the --database flag in the environment registry
func selectDatabase(c *cli.Context) (*config.Database, actiontree.Options, error) {
	registry, err := config.RegistryFromEnvironment()
	if err != nil {
		return nil, actiontree.Options{}, err
	}

	database := registry.Get(c.String("database"))
	if database == nil {
		return nil, actiontree.Options{}, fmt.Errorf("database %s is not registered", c.String("database"))
	}

	location, err := database.Location()
	if err != nil {
		return nil, actiontree.Options{}, err
	}

	logger := log.With().Str("database", database.Identifier).Logger()

	return database, actiontree.Options{Location: location, Logger: &logger}, nil
}

func writeDocument(w io.Writer, document any, format string) error {
	switch format {
	case formatJSON:
		if err := encodeJSON(w, document); err != nil {
			return err
		}
	case formatPretty:
		// Structures are linked lists underneath, print their decoded form
		encoded, err := json.Marshal(document)
		if err != nil {
			return err
		}
		var decoded any
		if err := json.Unmarshal(encoded, &decoded); err != nil {
			return err
		}
		if _, err := pretty.Fprintf(w, "%# v\n", decoded); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %s", format)
	}

	if errorDocument, ok := document.(actiontree.ErrorDocument); ok {
		return errors.New(errorDocument.Exception)
	}

	return nil
}

func encodeJSON(w io.Writer, document any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(document)
}
