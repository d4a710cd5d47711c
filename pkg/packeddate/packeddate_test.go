package packeddate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	year, month, day := Split(2024<<9 | 3<<5 | 17)

	assert.Equal(t, 2024, year)
	assert.Equal(t, 3, month)
	assert.Equal(t, 17, day)
}

func TestDecode(t *testing.T) {
	zurich, err := time.LoadLocation("Europe/Zurich")
	require.NoError(t, err)

	date, err := Decode(2023<<9|12<<5|10, zurich)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, time.December, 10, 0, 0, 0, 0, zurich), date)
	assert.Equal(t, 0, date.Hour())
	assert.Equal(t, zurich, date.Location())
}

func TestDecodeNilLocationUsesLocal(t *testing.T) {
	date, err := Decode(2020<<9|2<<5|29, nil)
	require.NoError(t, err)

	assert.Equal(t, time.Local, date.Location())
	assert.Equal(t, time.Date(2020, time.February, 29, 0, 0, 0, 0, time.Local).Unix(), date.Unix())
}

func TestDecodeUnix(t *testing.T) {
	seconds, err := DecodeUnix(1970<<9|1<<5|2, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, int64(86400), seconds)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name   string
		packed uint32
	}{
		{"month zero", 2024<<9 | 0<<5 | 1},
		{"month thirteen", 2024<<9 | 13<<5 | 1},
		{"day zero", 2024<<9 | 1<<5 | 0},
		{"thirtieth of february", 2024<<9 | 2<<5 | 30},
		{"twenty ninth of february in a common year", 2023<<9 | 2<<5 | 29},
		{"thirty first of april", 2024<<9 | 4<<5 | 31},
		{"year zero", 0<<9 | 1<<5 | 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decode(test.packed, time.UTC)

			var invalidDate *InvalidDateError
			require.True(t, errors.As(err, &invalidDate))
			assert.Equal(t, test.packed, invalidDate.Packed)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	location, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start := time.Date(1999, time.January, 1, 0, 0, 0, 0, location)
	for date := start; date.Year() < 2002; date = date.AddDate(0, 0, 1) {
		packed := Encode(date)

		decoded, err := Decode(packed, location)
		require.NoError(t, err)

		assert.True(t, decoded.Equal(date), "decoded %s, expected %s", decoded, date)
		assert.Equal(t, packed, Encode(decoded))
	}
}

func TestEncodeIgnoresClockTime(t *testing.T) {
	assert.Equal(t, uint32(2021<<9|7<<5|4), Encode(time.Date(2021, time.July, 4, 23, 59, 59, 0, time.UTC)))
}
