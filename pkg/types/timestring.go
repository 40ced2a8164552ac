package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeString is returned for values that are not "HH:MM"
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")
)

// TimeString represents a wall-clock time of day as a zero-padded "HH:MM"
// string. Values of this type are stored as-is in the database; the
// zero-padded form makes lexicographic ordering match chronological order.
type TimeString string

// NewTimeString creates a TimeString from the wall-clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// FromMinuteOfDay builds a TimeString from minutes counted since midnight
func FromMinuteOfDay(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// Validate checks that the value is a well-formed "HH:MM" time
func (t TimeString) Validate() error {
	if _, err := time.Parse("15:04", string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero returns true for the empty value
func (t TimeString) IsZero() bool {
	return t == ""
}

// MinuteOfDay returns the value as minutes counted since midnight
func (t TimeString) MinuteOfDay() (int, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by m minutes
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	minutes, err := t.MinuteOfDay()
	if err != nil {
		return "", err
	}
	shifted := minutes + m
	if shifted < 0 || shifted >= 24*60 {
		return "", fmt.Errorf("%w: %q shifted by %d minutes leaves the day", ErrInvalidTimeString, string(t), m)
	}
	return FromMinuteOfDay(shifted), nil
}

// String returns the raw "HH:MM" form
func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner. Accepts text columns and TIME columns
// (which lib/pq returns as time.Time).
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, value)
	}
	// Normalise "08:30:00" style values coming from TIME columns
	if len(*t) > 5 {
		*t = (*t)[:5]
	}
	return t.Validate()
}
