package nlpearl

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// MaxAnalyticsDays is the longest date range accepted by analytics operations.
const MaxAnalyticsDays = 90

type dateKind int

const (
	dateUnset dateKind = iota
	dateOnly
	dateTime
	dateString
)

// Date is a point in time accepted by date-filtered operations.
// Build one with On, At, AtCivil or DateString.
type Date struct {
	kind dateKind
	t    time.Time
	s    string
}

// On returns a date-only value. It is sent as midnight UTC.
func On(d civil.Date) Date {
	return Date{kind: dateOnly, t: d.In(time.UTC)}
}

// At returns a zone-aware date and time.
func At(t time.Time) Date {
	return Date{kind: dateTime, t: t}
}

// AtCivil returns a wall-clock date and time. It is interpreted as UTC.
func AtCivil(dt civil.DateTime) Date {
	return Date{kind: dateTime, t: dt.In(time.UTC)}
}

// DateString returns a pre-formatted ISO-8601 date. The string is sent
// unchanged; the caller is responsible for its format.
func DateString(s string) Date {
	return Date{kind: dateString, s: s}
}

// IsZero reports whether d was never set.
func (d Date) IsZero() bool {
	return d.kind == dateUnset
}

// String returns the wire form: RFC 3339 in UTC for typed values,
// the original text for DateString values.
func (d Date) String() string {
	switch d.kind {
	case dateString:
		return d.s
	case dateOnly, dateTime:
		return d.t.UTC().Format(time.RFC3339Nano)
	default:
		return ""
	}
}

// stringLayouts are tried in order when a DateString must be interpreted.
var stringLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time returns the instant d represents. Strings without an offset are read as UTC.
func (d Date) Time() (time.Time, error) {
	switch d.kind {
	case dateOnly, dateTime:
		return d.t, nil
	case dateString:
		for _, layout := range stringLayouts {
			if t, err := time.ParseInLocation(layout, d.s, time.UTC); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized date %q", d.s)
	default:
		return time.Time{}, fmt.Errorf("date not set")
	}
}

// DaySpan returns the number of whole days from from to to.
// Equal instants give 0; a to before from gives a negative span.
func DaySpan(from, to Date) (int, error) {
	ft, err := from.Time()
	if err != nil {
		return 0, err
	}
	tt, err := to.Time()
	if err != nil {
		return 0, err
	}
	const day = 24 * time.Hour
	d := tt.Sub(ft)
	days := d / day
	if d%day < 0 {
		days--
	}
	return int(days), nil
}

// CheckRange validates an analytics date range for op.
// The range must not be negative nor exceed MaxAnalyticsDays.
func CheckRange(op string, from, to Date) error {
	if from.IsZero() {
		return &InvalidArgumentError{Op: op, Arg: "from", Reason: "date is required", Cause: ErrEmptyInput}
	}
	if to.IsZero() {
		return &InvalidArgumentError{Op: op, Arg: "to", Reason: "date is required", Cause: ErrEmptyInput}
	}
	span, err := DaySpan(from, to)
	if err != nil {
		return &InvalidArgumentError{Op: op, Arg: "date range", Reason: err.Error(), Cause: err}
	}
	if span < 0 {
		return &InvalidArgumentError{Op: op, Arg: "date range", Reason: fmt.Sprintf("to is %d days before from", -span), Cause: ErrNegativeRange}
	}
	if span > MaxAnalyticsDays {
		return &InvalidArgumentError{Op: op, Arg: "date range", Reason: fmt.Sprintf("%d days exceeds the %d day maximum", span, MaxAnalyticsDays), Cause: ErrRangeTooLong}
	}
	return nil
}
