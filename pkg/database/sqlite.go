package database

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens an existing database file. The file is never created.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &StoreError{Lookup: "open", Err: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StoreError{Lookup: "open", Err: err}
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &StoreError{Lookup: "open", Err: err}
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) TrainNumbers(ctx context.Context) ([]TrainNumberRow, error) {
	return queryRows(ctx, s.db, LookupTrainNumbers, queryTrainNumbers, nil, scanTrainNumber)
}

func (s *SQLiteStore) TrainNumberByID(ctx context.Context, trainNumberID int64) ([]TrainNumberRow, error) {
	return queryRows(ctx, s.db, LookupTrainNumber, queryTrainNumberByID, []any{trainNumberID}, scanTrainNumber)
}

func (s *SQLiteStore) LineSectionsByLineID(ctx context.Context, lineID int64) ([]LineSectionRow, error) {
	return queryRows(ctx, s.db, LookupLineSections, queryLineSections, []any{lineID}, func(rows *sql.Rows) (LineSectionRow, error) {
		var row LineSectionRow
		err := rows.Scan(
			&row.LineSectionID,
			&row.FromStationID,
			&row.FromStationName,
			&row.FromStationAbbr,
			&row.ToStationID,
			&row.ToStationName,
			&row.ToStationAbbr,
			&row.LineSectionTypeID,
		)
		return row, err
	})
}

func (s *SQLiteStore) LineEventsByLineSectionID(ctx context.Context, lineSectionID int64) ([]LineEventRow, error) {
	return queryRows(ctx, s.db, LookupLineEvents, queryLineEvents, []any{lineSectionID}, func(rows *sql.Rows) (LineEventRow, error) {
		var row LineEventRow
		err := rows.Scan(&row.LineEventID, &row.ActionListID, &row.TriggerType, &row.TriggerName)
		return row, err
	})
}

func (s *SQLiteStore) ActionsByActionListID(ctx context.Context, actionListID int64) ([]ActionRow, error) {
	return queryRows(ctx, s.db, LookupActions, queryActions, []any{actionListID}, func(rows *sql.Rows) (ActionRow, error) {
		var row ActionRow
		err := rows.Scan(&row.ActionID, &row.ActionDetailID, &row.ActionType, &row.MediaType, &row.SequenceListID)
		return row, err
	})
}

func (s *SQLiteStore) ComplexActionByActionID(ctx context.Context, actionID int64) ([]ComplexActionRow, error) {
	return queryRows(ctx, s.db, LookupComplexActions, queryComplexAction, []any{actionID}, func(rows *sql.Rows) (ComplexActionRow, error) {
		var row ComplexActionRow
		err := rows.Scan(
			&row.ComplexActionID,
			&row.RuleTypeName,
			&row.RuleAttributeListID,
			&row.AttributeListID,
			&row.ChildActionID,
			&row.ChildActionDetailID,
			&row.ChildActionType,
			&row.ChildMediaType,
			&row.ChildSequenceListID,
		)
		return row, err
	})
}

func (s *SQLiteStore) AttributesByAttributeListID(ctx context.Context, attributeListID int64) ([]AttributeRow, error) {
	return queryRows(ctx, s.db, LookupAttributes, queryAttributes, []any{attributeListID, attributeListID}, func(rows *sql.Rows) (AttributeRow, error) {
		var row AttributeRow
		var position int64
		err := rows.Scan(&row.Name, &row.DataType, &row.IntegerValue, &row.TextValue, &position)
		return row, err
	})
}

func scanTrainNumber(rows *sql.Rows) (TrainNumberRow, error) {
	var row TrainNumberRow
	var fromDate, untilDate int64

	err := rows.Scan(
		&row.TrainNumberID,
		&row.LineID,
		&row.ShortName,
		&row.CirculationID,
		&row.CirculationShortName,
		&row.TimetablePeriod,
		&fromDate,
		&untilDate,
	)
	if err != nil {
		return row, err
	}

	for _, packed := range []int64{fromDate, untilDate} {
		if packed < 0 || packed > math.MaxUint32 {
			return row, fmt.Errorf("packed date %d out of range", packed)
		}
	}

	row.FromDate = uint32(fromDate)
	row.UntilDate = uint32(untilDate)

	return row, nil
}

func queryRows[T any](ctx context.Context, db *sql.DB, lookup string, query string, args []any, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &StoreError{Lookup: lookup, Err: err}
	}
	defer rows.Close()

	var results []T
	for rows.Next() {
		row, err := scan(rows)
		if err != nil {
			return nil, &StoreError{Lookup: lookup, Err: fmt.Errorf("scan row: %w", err)}
		}

		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, &StoreError{Lookup: lookup, Err: err}
	}

	return results, nil
}
