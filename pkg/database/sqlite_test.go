package database_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/travigo/cab/pkg/database"
	"github.com/travigo/cab/pkg/database/databasetest"
)

type SQLiteStoreSuite struct {
	suite.Suite
	store *database.SQLiteStore
}

func (s *SQLiteStoreSuite) SetupTest() {
	path := databasetest.NewDatabase(s.T(), databasetest.Fixtures)

	store, err := database.OpenSQLite(context.Background(), path)
	s.Require().NoError(err)
	s.store = store
}

func (s *SQLiteStoreSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *SQLiteStoreSuite) TestTrainNumbers() {
	rows, err := s.store.TrainNumbers(context.Background())
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	s.Equal(int64(1), rows[0].TrainNumberID)
	s.Equal(int64(100), rows[0].LineID)
	s.Equal("IC 1", rows[0].ShortName)
	s.Equal(int64(7), rows[0].CirculationID)
	s.Equal("C7", *rows[0].CirculationShortName)
	s.Equal("TT2024", *rows[0].TimetablePeriod)
	s.Equal(uint32(1036394), rows[0].FromDate)
	s.Equal(uint32(1036639), rows[0].UntilDate)

	s.Equal(int64(2), rows[1].TrainNumberID)
}

func (s *SQLiteStoreSuite) TestTrainNumberByID() {
	rows, err := s.store.TrainNumberByID(context.Background(), 2)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(int64(200), rows[0].LineID)

	rows, err = s.store.TrainNumberByID(context.Background(), 404)
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *SQLiteStoreSuite) TestLineSectionsOrdered() {
	rows, err := s.store.LineSectionsByLineID(context.Background(), 100)
	s.Require().NoError(err)
	s.Require().Len(rows, 3)

	s.Equal(int64(999), rows[0].LineSectionID)
	s.Nil(rows[0].FromStationID)
	s.Nil(rows[0].FromStationName)
	s.Equal("ZUE", rows[0].ToStationAbbr)

	s.Equal(int64(1000), rows[1].LineSectionID)
	s.Equal("Zurich HB", *rows[1].FromStationName)
	s.Equal("OL", rows[1].ToStationAbbr)

	s.Equal(int64(1001), rows[2].LineSectionID)
}

func (s *SQLiteStoreSuite) TestLineEvents() {
	rows, err := s.store.LineEventsByLineSectionID(context.Background(), 1000)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)

	s.Equal(int64(5000), rows[0].LineEventID)
	s.Equal(int64(50), rows[0].ActionListID)
	s.Equal("Departure", rows[0].TriggerName)
}

func (s *SQLiteStoreSuite) TestActions() {
	rows, err := s.store.ActionsByActionListID(context.Background(), 50)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	s.Equal(int64(10), rows[0].ActionID)
	s.Equal("Announcement", rows[0].ActionType)
	s.Equal("audio", rows[0].MediaType)
	s.Equal(int64(11), rows[1].ActionID)
}

func (s *SQLiteStoreSuite) TestComplexActionChildSlotsOrdered() {
	rows, err := s.store.ComplexActionByActionID(context.Background(), 20)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	for _, row := range rows {
		s.Equal(int64(300), row.ComplexActionID)
		s.Equal("Serial", *row.RuleTypeName)
		s.Equal(int64(60), *row.RuleAttributeListID)
		s.Equal(int64(61), *row.AttributeListID)
	}

	s.Equal(int64(21), *rows[0].ChildActionID)
	s.Equal("Announcement", *rows[0].ChildActionType)
	s.Equal(int64(22), *rows[1].ChildActionID)
	s.Equal("CANonstatic", *rows[1].ChildActionType)
	s.Equal(int64(301), *rows[1].ChildActionDetailID)
}

func (s *SQLiteStoreSuite) TestComplexActionWithoutRuleAttributes() {
	rows, err := s.store.ComplexActionByActionID(context.Background(), 22)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)

	s.Equal("Parallel", *rows[0].RuleTypeName)
	s.Nil(rows[0].RuleAttributeListID)
	s.Equal(int64(62), *rows[0].AttributeListID)
}

func (s *SQLiteStoreSuite) TestComplexActionOfLeaf() {
	rows, err := s.store.ComplexActionByActionID(context.Background(), 10)
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *SQLiteStoreSuite) TestAttributesKeepListOrder() {
	rows, err := s.store.AttributesByAttributeListID(context.Background(), 60)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	s.Equal("Speed", rows[0].Name)
	s.Equal(database.AttributeDataTypeInteger, rows[0].DataType)
	s.Equal(int64(10), *rows[0].IntegerValue)
	s.Nil(rows[0].TextValue)

	s.Equal("Language", rows[1].Name)
	s.Equal(database.AttributeDataTypeText, rows[1].DataType)
	s.Nil(rows[1].IntegerValue)
	s.Equal("de", *rows[1].TextValue)
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, new(SQLiteStoreSuite))
}

func TestOpenSQLiteMissingFile(t *testing.T) {
	_, err := database.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "missing.sqlite"))

	var storeError *database.StoreError
	if !errors.As(err, &storeError) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if storeError.Lookup != "open" {
		t.Errorf("expected open lookup, got %s", storeError.Lookup)
	}
}

func TestLookupOnBrokenSchema(t *testing.T) {
	path := databasetest.NewDatabase(t, "DROP TABLE linesection")

	store, err := database.OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	_, err = store.LineSectionsByLineID(context.Background(), 100)

	var storeError *database.StoreError
	if !errors.As(err, &storeError) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if storeError.Lookup != database.LookupLineSections {
		t.Errorf("unexpected lookup %s", storeError.Lookup)
	}
}

func TestSQLiteOpener(t *testing.T) {
	path := databasetest.NewDatabase(t, databasetest.Fixtures)

	store, err := database.SQLiteOpener(path)(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	rows, err := store.ActionsByActionListID(context.Background(), 51)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].ActionID != 20 {
		t.Errorf("unexpected rows %+v", rows)
	}
}

func TestTrainNumberPackedDateOutOfRange(t *testing.T) {
	for name, statement := range map[string]string{
		"above 32 bits": "UPDATE validcycle SET UntilDateDate = 4294967296 + 1036639",
		"negative":      "UPDATE validcycle SET FromDateDate = -1",
	} {
		t.Run(name, func(t *testing.T) {
			path := databasetest.NewDatabase(t, databasetest.Fixtures, statement)

			store, err := database.OpenSQLite(context.Background(), path)
			require.NoError(t, err)
			defer store.Close()

			rows, err := store.TrainNumberByID(context.Background(), 1)

			var storeError *database.StoreError
			require.True(t, errors.As(err, &storeError), "unexpected error %v", err)
			assert.Equal(t, database.LookupTrainNumber, storeError.Lookup)
			assert.Contains(t, err.Error(), "out of range")
			assert.Empty(t, rows)
		})
	}
}
