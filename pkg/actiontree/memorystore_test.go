package actiontree

import (
	"context"
	"errors"

	"github.com/travigo/cab/pkg/database"
)

// memoryStore is a database.Store over fixed rows that counts every lookup
type memoryStore struct {
	trainNumbers   []database.TrainNumberRow
	lineSections   map[int64][]database.LineSectionRow
	lineEvents     map[int64][]database.LineEventRow
	actions        map[int64][]database.ActionRow
	complexActions map[int64][]database.ComplexActionRow
	attributes     map[int64][]database.AttributeRow

	failLookup string
	panicOn    string

	lookups map[string]int
	closed  int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		lineSections:   map[int64][]database.LineSectionRow{},
		lineEvents:     map[int64][]database.LineEventRow{},
		actions:        map[int64][]database.ActionRow{},
		complexActions: map[int64][]database.ComplexActionRow{},
		attributes:     map[int64][]database.AttributeRow{},
		lookups:        map[string]int{},
	}
}

func (m *memoryStore) opener() database.Opener {
	return func(ctx context.Context) (database.Store, error) {
		return m, nil
	}
}

func (m *memoryStore) lookup(name string) error {
	m.lookups[name]++

	if m.panicOn == name {
		panic("unexpected row shape in " + name)
	}
	if m.failLookup == name {
		return &database.StoreError{Lookup: name, Err: errors.New("disk I/O error")}
	}

	return nil
}

func (m *memoryStore) TrainNumbers(ctx context.Context) ([]database.TrainNumberRow, error) {
	if err := m.lookup(database.LookupTrainNumbers); err != nil {
		return nil, err
	}
	return m.trainNumbers, nil
}

func (m *memoryStore) TrainNumberByID(ctx context.Context, trainNumberID int64) ([]database.TrainNumberRow, error) {
	if err := m.lookup(database.LookupTrainNumber); err != nil {
		return nil, err
	}

	var rows []database.TrainNumberRow
	for _, row := range m.trainNumbers {
		if row.TrainNumberID == trainNumberID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (m *memoryStore) LineSectionsByLineID(ctx context.Context, lineID int64) ([]database.LineSectionRow, error) {
	if err := m.lookup(database.LookupLineSections); err != nil {
		return nil, err
	}
	return m.lineSections[lineID], nil
}

func (m *memoryStore) LineEventsByLineSectionID(ctx context.Context, lineSectionID int64) ([]database.LineEventRow, error) {
	if err := m.lookup(database.LookupLineEvents); err != nil {
		return nil, err
	}
	return m.lineEvents[lineSectionID], nil
}

func (m *memoryStore) ActionsByActionListID(ctx context.Context, actionListID int64) ([]database.ActionRow, error) {
	if err := m.lookup(database.LookupActions); err != nil {
		return nil, err
	}
	return m.actions[actionListID], nil
}

func (m *memoryStore) ComplexActionByActionID(ctx context.Context, actionID int64) ([]database.ComplexActionRow, error) {
	if err := m.lookup(database.LookupComplexActions); err != nil {
		return nil, err
	}
	return m.complexActions[actionID], nil
}

func (m *memoryStore) AttributesByAttributeListID(ctx context.Context, attributeListID int64) ([]database.AttributeRow, error) {
	if err := m.lookup(database.LookupAttributes); err != nil {
		return nil, err
	}
	return m.attributes[attributeListID], nil
}

func (m *memoryStore) Close() error {
	m.closed++
	return nil
}

func ptr[T any](value T) *T {
	return &value
}

func integerAttribute(name string, value int64) database.AttributeRow {
	return database.AttributeRow{Name: name, DataType: database.AttributeDataTypeInteger, IntegerValue: &value}
}

func textAttribute(name string, value string) database.AttributeRow {
	return database.AttributeRow{Name: name, DataType: database.AttributeDataTypeText, TextValue: &value}
}

func childSlot(parentID int64, rule string, childID int64, childType string) database.ComplexActionRow {
	return database.ComplexActionRow{
		ComplexActionID:     parentID,
		RuleTypeName:        &rule,
		ChildActionID:       &childID,
		ChildActionDetailID: ptr(childID * 10),
		ChildActionType:     &childType,
		ChildMediaType:      ptr("audio"),
	}
}
