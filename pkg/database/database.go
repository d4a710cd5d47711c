package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/cab/pkg/util"
)

const defaultDatabasePath = "cab.sqlite"

// Store is a read-only handle on one action database. Every lookup returns its
// rows in the order the database defines for them.
type Store interface {
	TrainNumbers(ctx context.Context) ([]TrainNumberRow, error)
	TrainNumberByID(ctx context.Context, trainNumberID int64) ([]TrainNumberRow, error)
	LineSectionsByLineID(ctx context.Context, lineID int64) ([]LineSectionRow, error)
	LineEventsByLineSectionID(ctx context.Context, lineSectionID int64) ([]LineEventRow, error)
	ActionsByActionListID(ctx context.Context, actionListID int64) ([]ActionRow, error)
	ComplexActionByActionID(ctx context.Context, actionID int64) ([]ComplexActionRow, error)
	AttributesByAttributeListID(ctx context.Context, attributeListID int64) ([]AttributeRow, error)

	Close() error
}

// Opener acquires a fresh Store. Each resolution owns the handle it opens.
type Opener func(ctx context.Context) (Store, error)

type StoreError struct {
	Lookup string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s", e.Lookup, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// DefaultPath is the database used when no registry entry is selected
func DefaultPath() string {
	return util.GetEnvironmentVariable("CAB_DATABASE", defaultDatabasePath)
}

// SQLiteOpener opens a new SQLite handle on path for every call
func SQLiteOpener(path string) Opener {
	return func(ctx context.Context) (Store, error) {
		startTime := time.Now()

		store, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}

		log.Debug().Str("path", path).Str("latency", time.Since(startTime).String()).Msg("Opened database")

		return store, nil
	}
}
