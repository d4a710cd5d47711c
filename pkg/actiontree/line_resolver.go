package actiontree

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/travigo/cab/pkg/database"
)

// LineResolver builds the fixed train number -> section -> event -> action tree
type LineResolver struct {
	store    database.Store
	logger   zerolog.Logger
	location *time.Location
}

func NewLineResolver(store database.Store, logger zerolog.Logger, location *time.Location) *LineResolver {
	return &LineResolver{
		store:    store,
		logger:   logger,
		location: location,
	}
}

// Resolve returns the tree of trainNumberID. The grouped lookup yields one row
// per line and circulation, so several rows only occur for a train number
// running on several lines. The first row describes the line and the sections
// of each distinct line are attached once, in row order.
func (r *LineResolver) Resolve(ctx context.Context, trainNumberID int64) (*Line, error) {
	rows, err := r.store.TrainNumberByID(ctx, trainNumberID)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, &NotFoundError{Entity: "train number", ID: trainNumberID}
	}

	line := &Line{
		TrainNumberID: trainNumberID,
		ShortName:     rows[0].ShortName,
		LineID:        rows[0].LineID,
		CirculationID: rows[0].CirculationID,
		FromDate:      rows[0].FromDate,
		UntilDate:     rows[0].UntilDate,
		Sections:      []*LineSection{},
		location:      r.location,
	}

	resolvedLines := map[int64]bool{}
	for _, row := range rows {
		if resolvedLines[row.LineID] {
			continue
		}
		resolvedLines[row.LineID] = true

		sections, err := r.lineSections(ctx, row.LineID)
		if err != nil {
			return nil, err
		}

		line.Sections = append(line.Sections, sections...)
	}

	r.logger.Debug().
		Int64("line_id", line.LineID).
		Int("sections", len(line.Sections)).
		Msg("Resolved train number")

	return line, nil
}

func (r *LineResolver) lineSections(ctx context.Context, lineID int64) ([]*LineSection, error) {
	rows, err := r.store.LineSectionsByLineID(ctx, lineID)
	if err != nil {
		return nil, err
	}

	sections := make([]*LineSection, 0, len(rows))
	for _, row := range rows {
		section := &LineSection{
			LineSectionID:     row.LineSectionID,
			FromStationID:     row.FromStationID,
			FromStationName:   row.FromStationName,
			FromStationAbbr:   row.FromStationAbbr,
			ToStationID:       row.ToStationID,
			ToStationName:     row.ToStationName,
			ToStationAbbr:     row.ToStationAbbr,
			LineSectionTypeID: row.LineSectionTypeID,
		}

		section.Events, err = r.lineEvents(ctx, row.LineSectionID)
		if err != nil {
			return nil, err
		}

		sections = append(sections, section)
	}

	return sections, nil
}

func (r *LineResolver) lineEvents(ctx context.Context, lineSectionID int64) ([]*LineEvent, error) {
	rows, err := r.store.LineEventsByLineSectionID(ctx, lineSectionID)
	if err != nil {
		return nil, err
	}

	events := make([]*LineEvent, 0, len(rows))
	for _, row := range rows {
		event := &LineEvent{
			LineEventID:  row.LineEventID,
			ActionListID: row.ActionListID,
			TriggerName:  row.TriggerName,
		}

		event.Actions, err = r.actions(ctx, row.ActionListID)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	return events, nil
}

func (r *LineResolver) actions(ctx context.Context, actionListID int64) ([]*Action, error) {
	rows, err := r.store.ActionsByActionListID(ctx, actionListID)
	if err != nil {
		return nil, err
	}

	actions := make([]*Action, 0, len(rows))
	for _, row := range rows {
		actions = append(actions, &Action{
			ActionID:       row.ActionID,
			ActionDetailID: row.ActionDetailID,
			ActionType:     row.ActionType,
			MediaType:      row.MediaType,
		})
	}

	return actions, nil
}
