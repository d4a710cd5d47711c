package actiontree

import (
	"context"
	"time"

	"github.com/jinzhu/copier"
	"github.com/travigo/cab/pkg/database"
	"github.com/travigo/cab/pkg/packeddate"
)

type TrainNumber struct {
	TrainNumberID        int64   `json:"trainNumberId" csv:"trainNumberId" groups:"basic,detailed"`
	ShortName            string  `json:"trainNumberShortName" csv:"trainNumberShortName" groups:"basic,detailed"`
	LineID               int64   `json:"lineId" csv:"lineId" groups:"basic,detailed"`
	CirculationID        int64   `json:"circulationId" csv:"circulationId" groups:"basic,detailed"`
	CirculationShortName *string `json:"circulationShortName" csv:"circulationShortName" groups:"detailed"`
	TimetablePeriod      *string `json:"timetablePeriod" csv:"timetablePeriod" groups:"detailed"`
	FromDate             int64   `json:"fromDate" csv:"fromDate" groups:"basic,detailed"`
	ToDate               int64   `json:"toDate" csv:"toDate" groups:"basic,detailed"`
}

// ListTrainNumbers returns one entry per line and circulation
func ListTrainNumbers(ctx context.Context, store database.Store, location *time.Location) ([]*TrainNumber, error) {
	rows, err := store.TrainNumbers(ctx)
	if err != nil {
		return nil, err
	}

	trainNumbers := make([]*TrainNumber, 0, len(rows))
	for _, row := range rows {
		trainNumber := &TrainNumber{}
		if err := copier.Copy(trainNumber, &row); err != nil {
			return nil, err
		}

		trainNumber.FromDate, err = packeddate.DecodeUnix(row.FromDate, location)
		if err != nil {
			return nil, err
		}
		trainNumber.ToDate, err = packeddate.DecodeUnix(row.UntilDate, location)
		if err != nil {
			return nil, err
		}

		trainNumbers = append(trainNumbers, trainNumber)
	}

	return trainNumbers, nil
}
