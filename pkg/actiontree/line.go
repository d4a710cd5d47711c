package actiontree

import (
	"time"

	"github.com/travigo/cab/pkg/packeddate"
)

// Line is a train number occurrence, the root of the fixed hierarchy
type Line struct {
	TrainNumberID int64
	ShortName     string
	LineID        int64
	CirculationID int64
	FromDate      uint32
	UntilDate     uint32

	Sections []*LineSection

	location *time.Location
}

func (l *Line) ToStructure() (*Structure, error) {
	fromDate, err := packeddate.DecodeUnix(l.FromDate, l.location)
	if err != nil {
		return nil, err
	}
	toDate, err := packeddate.DecodeUnix(l.UntilDate, l.location)
	if err != nil {
		return nil, err
	}

	children, err := childStructures(l.Sections)
	if err != nil {
		return nil, err
	}

	structure := newStructure()
	structure.Set("childType", "trainNumber")
	structure.Set("trainNumberId", l.TrainNumberID)
	structure.Set("trainNumberShortName", l.ShortName)
	structure.Set("lineId", l.LineID)
	structure.Set("circulationId", l.CirculationID)
	structure.Set("fromDate", fromDate)
	structure.Set("toDate", toDate)
	structure.Set("children", children)

	return structure, nil
}

// LineSection is a directed segment between two stations
type LineSection struct {
	LineSectionID     int64
	FromStationID     *int64
	FromStationName   *string
	FromStationAbbr   *string
	ToStationID       int64
	ToStationName     string
	ToStationAbbr     string
	LineSectionTypeID int64

	Events []*LineEvent
}

func (s *LineSection) ToStructure() (*Structure, error) {
	children, err := childStructures(s.Events)
	if err != nil {
		return nil, err
	}

	structure := newStructure()
	structure.Set("childType", "lineSection")
	structure.Set("lineSectionId", s.LineSectionID)
	structure.Set("fromStationId", s.FromStationID)
	structure.Set("fromStation", s.FromStationName)
	structure.Set("fromStationAbbr", s.FromStationAbbr)
	structure.Set("toStationId", s.ToStationID)
	structure.Set("toStation", s.ToStationName)
	structure.Set("toStationAbbr", s.ToStationAbbr)
	structure.Set("lineSectionType", s.LineSectionTypeID)
	structure.Set("children", children)

	return structure, nil
}

// LineEvent is a trigger on a section firing an action list
type LineEvent struct {
	LineEventID  int64
	ActionListID int64
	TriggerName  string

	Actions []*Action
}

func (e *LineEvent) ToStructure() (*Structure, error) {
	children, err := childStructures(e.Actions)
	if err != nil {
		return nil, err
	}

	structure := newStructure()
	structure.Set("childType", "lineEvent")
	structure.Set("eventId", e.LineEventID)
	structure.Set("actionListId", e.ActionListID)
	structure.Set("trigger", e.TriggerName)
	structure.Set("children", children)

	return structure, nil
}

type Action struct {
	ActionID       int64
	ActionDetailID int64
	ActionType     string
	MediaType      string
}

func (a *Action) ToStructure() (*Structure, error) {
	structure := newStructure()
	structure.Set("childType", "action")
	structure.Set("actionId", a.ActionID)
	structure.Set("actionDetailId", a.ActionDetailID)
	structure.Set("actionType", a.ActionType)
	structure.Set("mediaType", a.MediaType)

	return structure, nil
}
