package database

const (
	LookupTrainNumbers   = "train-numbers"
	LookupTrainNumber    = "train-number-by-id"
	LookupLineSections   = "line-sections-by-line-id"
	LookupLineEvents     = "line-events-by-line-section-id"
	LookupActions        = "actions-by-action-list-id"
	LookupComplexActions = "complex-action-by-action-id"
	LookupAttributes     = "attributes-by-attribute-list-id"
)

const trainNumberColumns = `tr.TrainNumberID, tr.LineID, tr.ShortName, tr.CirculationID, ci.ShortName, tp.ShortName,
vc.FromDateDate, vc.UntilDateDate
FROM trainnumber tr
INNER JOIN line li ON tr.LineID = li.LineID
INNER JOIN circulation ci ON tr.CirculationID = ci.CirculationID
INNER JOIN timetableperiod tp ON tp.TimetablePeriodID = ci.TimetablePeriodID
INNER JOIN validcycle vc ON vc.ValidCycleListID = ci.ValidCycleListID`

var queryTrainNumbers = `SELECT ` + trainNumberColumns + `
GROUP BY tr.LineID, ci.CirculationID
ORDER BY tr.LineID, ci.CirculationID`

var queryTrainNumberByID = `SELECT ` + trainNumberColumns + `
WHERE tr.TrainNumberID = ?
GROUP BY tr.LineID, ci.CirculationID
ORDER BY tr.LineID, ci.CirculationID`

const queryLineSections = `SELECT ls.LineSectionID, ls.FromStationID, st1.ShortName, st1.Abbreviation,
ls.ToStationID, st2.ShortName, st2.Abbreviation, ls.LineSectionTypeID
FROM linesection ls
LEFT JOIN station st1 ON ls.FromStationID = st1.StationID
INNER JOIN station st2 ON ls.ToStationID = st2.StationID
WHERE ls.LineID = ?
ORDER BY ls.OrderIndex`

const queryLineEvents = `SELECT le.LineEventID, le.ActionListID, et.TriggerType, et.ShortName
FROM lineevent le
INNER JOIN eventtrigger et ON le.EventTriggerID = et.EventTriggerID
WHERE le.LineSectionID = ?
ORDER BY le.OrderIndex`

const queryActions = `SELECT a.ActionID, a.ActionDetailID, at.ShortName, mt.ParamIdentifier, a.SequenceListID
FROM action a
INNER JOIN actiontype at ON a.ActionTypeID = at.ActionTypeID
INNER JOIN mediatype mt ON a.MediaTypeID = mt.MediaTypeID
WHERE a.ActionListID = ?
ORDER BY a.rowid`

const queryComplexAction = `SELECT ca.ComplexActionID, ert.TypeName, er.AttributeListID, ca.AttributeListID,
child_a.ActionID, child_a.ActionDetailID, at.ShortName, mt.ParamIdentifier, child_a.SequenceListID
FROM action parent_a
INNER JOIN complexaction ca ON parent_a.ActionDetailID = ca.ComplexActionID
LEFT JOIN executionrule er ON ca.ExecutionRuleID = er.ExecutionRuleID
LEFT JOIN executionruletype ert ON er.ExecutionRuleTypeID = ert.ExecutionRuleTypeID
LEFT JOIN complexactionchildlist cacl ON ca.ComplexActionID = cacl.ComplexActionID
LEFT JOIN action child_a ON cacl.ActionID = child_a.ActionID
LEFT JOIN mediatype mt ON mt.MediaTypeID = child_a.MediaTypeID
LEFT JOIN actiontype at ON child_a.ActionTypeID = at.ActionTypeID
WHERE parent_a.ActionID = ?
ORDER BY cacl.OrderIndex`

// Integer and text attributes live in separate tables; the rowid of the
// attribute row keeps the list order across the union.
const queryAttributes = `SELECT aty.TypeName, adt.TypeName, ai.Attribute, NULL, a.rowid AS position
FROM attribute a
INNER JOIN attributedatatype adt ON a.AttributeDataTypeID = adt.AttributeDataTypeID AND adt.TypeName != 'Text'
INNER JOIN attributeint ai ON ai.AttributeIntID = a.AttributeDetailID
INNER JOIN attributetype aty ON aty.AttributeTypeID = ai.AttributeTypeID
WHERE a.AttributeListID = ?
UNION ALL
SELECT aty.TypeName, adt.TypeName, NULL, atx.Attribute, a.rowid AS position
FROM attribute a
INNER JOIN attributedatatype adt ON a.AttributeDataTypeID = adt.AttributeDataTypeID AND adt.TypeName = 'Text'
INNER JOIN attributetext atx ON atx.AttributeTextID = a.AttributeDetailID
INNER JOIN attributetype aty ON aty.AttributeTypeID = atx.AttributeTypeID
WHERE a.AttributeListID = ?
ORDER BY position`
