package database

type TrainNumberRow struct {
	TrainNumberID        int64
	LineID               int64
	ShortName            string
	CirculationID        int64
	CirculationShortName *string
	TimetablePeriod      *string
	FromDate             uint32
	UntilDate            uint32
}

type LineSectionRow struct {
	LineSectionID     int64
	FromStationID     *int64
	FromStationName   *string
	FromStationAbbr   *string
	ToStationID       int64
	ToStationName     string
	ToStationAbbr     string
	LineSectionTypeID int64
}

type LineEventRow struct {
	LineEventID  int64
	ActionListID int64
	TriggerType  *int64
	TriggerName  string
}

type ActionRow struct {
	ActionID       int64
	ActionDetailID int64
	ActionType     string
	MediaType      string
	SequenceListID *int64
}

// ComplexActionRow is one child slot of a complex action. The child columns are
// all nil when the complex action has no children.
type ComplexActionRow struct {
	ComplexActionID     int64
	RuleTypeName        *string
	RuleAttributeListID *int64
	AttributeListID     *int64

	ChildActionID       *int64
	ChildActionDetailID *int64
	ChildActionType     *string
	ChildMediaType      *string
	ChildSequenceListID *int64
}

const (
	AttributeDataTypeInteger = "Integer"
	AttributeDataTypeText    = "Text"
)

type AttributeRow struct {
	Name         string
	DataType     string
	IntegerValue *int64
	TextValue    *string
}
