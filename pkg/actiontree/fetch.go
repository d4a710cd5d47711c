package actiontree

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/cab/pkg/database"
	"github.com/travigo/cab/pkg/packeddate"
)

type Options struct {
	// Location used to decode validity dates, time.Local when nil
	Location *time.Location
	// Logger is the parent of the per resolution logger, the global logger when nil
	Logger *zerolog.Logger
}

func (o Options) resolutionLogger(key string, id int64) zerolog.Logger {
	parent := log.Logger
	if o.Logger != nil {
		parent = *o.Logger
	}

	return parent.With().
		Str("resolution", uuid.NewString()).
		Int64(key, id).
		Logger()
}

// FetchLineTree resolves the fixed hierarchy of a train number on its own store
// handle. It returns the tree Structure or an ErrorDocument.
func FetchLineTree(ctx context.Context, open database.Opener, trainNumberID int64, options Options) any {
	logger := options.resolutionLogger("train_number_id", trainNumberID)

	document, err := withStore(ctx, open, func(store database.Store) (any, error) {
		line, err := NewLineResolver(store, logger, options.Location).Resolve(ctx, trainNumberID)
		if err != nil {
			return nil, err
		}

		return line.ToStructure()
	})
	if err != nil {
		return failure(logger, err)
	}

	return document
}

// FetchComplexActionTree resolves the complex action tree below root on its own
// store handle. It returns the tree Structure or an ErrorDocument.
func FetchComplexActionTree(ctx context.Context, open database.Opener, root ActionDescriptor, options Options) any {
	logger := options.resolutionLogger("action_id", root.ActionID)

	document, err := withStore(ctx, open, func(store database.Store) (any, error) {
		action, err := NewComplexActionResolver(store, logger).Resolve(ctx, root)
		if err != nil {
			return nil, err
		}

		return action.ToStructure()
	})
	if err != nil {
		return failure(logger, err)
	}

	return document
}

// FetchTrainNumbers returns a []*TrainNumber or an ErrorDocument
func FetchTrainNumbers(ctx context.Context, open database.Opener, options Options) any {
	logger := options.resolutionLogger("train_numbers", 0)

	document, err := withStore(ctx, open, func(store database.Store) (any, error) {
		return ListTrainNumbers(ctx, store, options.Location)
	})
	if err != nil {
		return failure(logger, err)
	}

	return document
}

func withStore(ctx context.Context, open database.Opener, resolve func(database.Store) (any, error)) (document any, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			document = nil
			err = &PanicError{Value: recovered, Stack: debug.Stack()}
		}
	}()

	store, err := open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		closeErr := store.Close()
		if closeErr != nil && err == nil {
			document = nil
			err = &database.StoreError{Lookup: "close", Err: closeErr}
		}
	}()

	return resolve(store)
}

func failure(logger zerolog.Logger, err error) ErrorDocument {
	kind := Classify(err)

	event := logger.Error().Err(err).Str("error_kind", string(kind))

	var storeError *database.StoreError
	var notFound *NotFoundError
	var invalidDate *packeddate.InvalidDateError
	var cyclic *CyclicActionError
	var panicked *PanicError

	switch {
	case errors.As(err, &storeError):
		event = event.Str("origin", storeError.Lookup)
	case errors.As(err, &notFound):
		event = event.Str("origin", notFound.Entity).Int64("node_id", notFound.ID)
	case errors.As(err, &invalidDate):
		event = event.Str("origin", "date decoding").Uint32("packed", invalidDate.Packed)
	case errors.As(err, &cyclic):
		event = event.Str("origin", "complex action expansion").Int64("node_id", cyclic.ActionID)
	case errors.As(err, &panicked):
		event = event.Str("origin", "panic").Bytes("stack", panicked.Stack)
	}

	event.Msg("Resolution failed")

	return ErrorDocument{Exception: err.Error()}
}
