package daterange

import (
	"strings"
	"time"

	"smarthost/internal/domain/shared/domainerr"
)

// DateLayout is the ISO-8601 calendar date form used at storage and transport boundaries.
const DateLayout = "2006-01-02"

var (
	ErrInvalidRange = domainerr.Invalid("check_out", "must be after check_in")
)

// DateRange represents a half-open interval [checkIn, checkOut) of calendar days.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func New(checkIn, checkOut time.Time) (DateRange, error) {
	dr := DateRange{CheckIn: Day(checkIn), CheckOut: Day(checkOut)}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

func (dr DateRange) Validate() error {
	if dr.CheckOut.IsZero() || dr.CheckIn.IsZero() {
		return ErrInvalidRange
	}
	if !dr.CheckOut.After(dr.CheckIn) {
		return ErrInvalidRange
	}
	return nil
}

func (dr DateRange) Nights() int {
	return int(dr.CheckOut.Sub(dr.CheckIn).Hours() / 24)
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate reads a YYYY-MM-DD value. A full RFC3339 timestamp is accepted and truncated.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domainerr.Invalid("date", "must be formatted as YYYY-MM-DD")
	}
	return Day(t), nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
