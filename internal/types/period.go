// Package types implements special types for the budget engine.
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var ErrPeriodInverted = errors.New("the period must not end before it starts")

const day = 24 * time.Hour

// Period is a budget period. Both boundaries are inclusive: a time
// instant equal to Start or End is part of the period.
type Period struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// NewPeriod returns a new Period with both boundaries in UTC.
func NewPeriod(start, end time.Time) (Period, error) {
	if end.Before(start) {
		return Period{}, ErrPeriodInverted
	}

	return Period{Start: start.In(time.UTC), End: end.In(time.UTC)}, nil
}

// MonthPeriod returns the period covering a calendar month, from the
// first day at midnight UTC to the very end of the last day.
func MonthPeriod(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// String returns the period formatted as "YYYY-MM-DD/YYYY-MM-DD".
func (p Period) String() string {
	return fmt.Sprintf("%s/%s", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}

// Contains reports whether the time instant is within the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Days returns the length of the period in whole days, with a started
// day counting as a full one.
func (p Period) Days() int {
	return ceilDays(p.End.Sub(p.Start))
}

// DaysRemaining returns the number of whole days between asOf and the
// end of the period, with a started day counting as a full one. It is
// 0 when asOf is at or after the end of the period, never negative.
func (p Period) DaysRemaining(asOf time.Time) int {
	return ceilDays(p.End.Sub(asOf))
}

// IsZero reports if the period is the zero value.
func (p Period) IsZero() bool {
	return p.Start.IsZero() && p.End.IsZero()
}

// Overlaps reports whether two periods share at least one instant.
func (p Period) Overlaps(o Period) bool {
	return !p.End.Before(o.Start) && !o.End.Before(p.Start)
}

func ceilDays(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	days := int(d / day)
	if d%day != 0 {
		days++
	}

	return days
}

// State describes where a point in time lies relative to a period.
type State string

const (
	StateNotStarted State = "NOT_STARTED"
	StateActive     State = "ACTIVE"
	StateExpired    State = "EXPIRED"
)

// StateAt returns the period state for the given instant. The state is
// a pure function of time and is recomputed on every call.
func (p Period) StateAt(asOf time.Time) State {
	switch {
	case asOf.Before(p.Start):
		return StateNotStarted
	case asOf.After(p.End):
		return StateExpired
	default:
		return StateActive
	}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Boundaries can be RFC3339 timestamps or "2006-01-02" dates.
func (p *Period) UnmarshalJSON(data []byte) error {
	var raw struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	start, err := parseInstant(raw.Start)
	if err != nil {
		return err
	}

	end, err := parseInstant(raw.End)
	if err != nil {
		return err
	}

	period, err := NewPeriod(start, end)
	if err != nil {
		return err
	}

	*p = period
	return nil
}

func parseInstant(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	// This allows to parse strings in the "2006-01-02" format
	match, err := regexp.MatchString("^[0-9]{4}-[0-9]{2}-[0-9]{2}$", value)
	if err != nil {
		return time.Time{}, err
	}

	pattern := time.RFC3339
	if match {
		pattern = "2006-01-02"
	}

	return time.Parse(pattern, value)
}
