package nlpearl

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString(t *testing.T) {
	paris := time.FixedZone("CET", 3600)

	tests := []struct {
		name     string
		date     Date
		expected string
	}{
		{
			name:     "date only is midnight UTC",
			date:     On(civil.Date{Year: 2024, Month: time.January, Day: 15}),
			expected: "2024-01-15T00:00:00Z",
		},
		{
			name:     "UTC time",
			date:     At(time.Date(2024, 1, 15, 13, 45, 30, 0, time.UTC)),
			expected: "2024-01-15T13:45:30Z",
		},
		{
			name:     "zoned time keeps the instant",
			date:     At(time.Date(2024, 1, 15, 13, 45, 30, 0, paris)),
			expected: "2024-01-15T12:45:30Z",
		},
		{
			name:     "fractional seconds preserved",
			date:     At(time.Date(2024, 1, 15, 13, 45, 30, 500_000_000, time.UTC)),
			expected: "2024-01-15T13:45:30.5Z",
		},
		{
			name: "civil date time read as UTC",
			date: AtCivil(civil.DateTime{
				Date: civil.Date{Year: 2024, Month: time.March, Day: 1},
				Time: civil.Time{Hour: 9, Minute: 30},
			}),
			expected: "2024-03-01T09:30:00Z",
		},
		{
			name:     "string passed through",
			date:     DateString("2024-01-15"),
			expected: "2024-01-15",
		},
		{
			name:     "malformed string passed through",
			date:     DateString("last tuesday"),
			expected: "last tuesday",
		},
		{
			name:     "zero value",
			date:     Date{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.date.String())
		})
	}
}

func TestDateIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, DateString("").IsZero())
	assert.False(t, At(time.Time{}).IsZero())
}

func TestDaySpan(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		from, to Date
		expected int
	}{
		{"same instant", At(d), At(d), 0},
		{"ninety days", At(d), At(d.AddDate(0, 0, 90)), 90},
		{"ninety one days", At(d), At(d.AddDate(0, 0, 91)), 91},
		{"partial day floors", At(d), At(d.Add(36 * time.Hour)), 1},
		{"reversed", At(d.AddDate(0, 0, 1)), At(d), -1},
		{"reversed by an hour", At(d.Add(time.Hour)), At(d), -1},
		{"civil dates", On(civil.Date{Year: 2024, Month: time.January, Day: 1}), On(civil.Date{Year: 2024, Month: time.March, Day: 1}), 60},
		{"date strings", DateString("2024-01-01"), DateString("2024-01-31"), 30},
		{"RFC 3339 strings", DateString("2024-01-01T00:00:00Z"), DateString("2024-01-02T00:00:00+00:00"), 1},
		{"mixed forms", DateString("2024-01-01"), At(d.AddDate(0, 0, 5)), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, err := DaySpan(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, span)
		})
	}

	t.Run("unparseable string", func(t *testing.T) {
		_, err := DaySpan(DateString("soon"), At(d))
		assert.Error(t, err)
	})

	t.Run("unset date", func(t *testing.T) {
		_, err := DaySpan(Date{}, At(d))
		assert.Error(t, err)
	})
}

func TestCheckRange(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("accepts zero span", func(t *testing.T) {
		assert.NoError(t, CheckRange("Pearl.GetAnalytics", At(d), At(d)))
	})

	t.Run("accepts exactly ninety days", func(t *testing.T) {
		assert.NoError(t, CheckRange("Pearl.GetAnalytics", At(d), At(d.AddDate(0, 0, 90))))
	})

	t.Run("rejects ninety one days", func(t *testing.T) {
		err := CheckRange("Pearl.GetAnalytics", At(d), At(d.AddDate(0, 0, 91)))
		var argErr *InvalidArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "Pearl.GetAnalytics", argErr.Op)
		assert.ErrorIs(t, err, ErrRangeTooLong)
	})

	t.Run("rejects negative span", func(t *testing.T) {
		err := CheckRange("Pearl.GetAnalytics", At(d.AddDate(0, 0, 3)), At(d))
		assert.True(t, IsInvalidArgument(err))
		assert.ErrorIs(t, err, ErrNegativeRange)
	})

	t.Run("rejects unset bounds", func(t *testing.T) {
		err := CheckRange("Pearl.GetAnalytics", Date{}, At(d))
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("rejects unparseable strings", func(t *testing.T) {
		err := CheckRange("Pearl.GetAnalytics", DateString("yesterday"), At(d))
		assert.True(t, IsInvalidArgument(err))
	})
}
