package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"mallbook/shared/constant"
	"strings"
	"time"
)

var (
	ErrMissingDay    = errors.New("availability must define all seven days")
	ErrInvalidClock  = errors.New("clock must be HH:MM")
	ErrInvertedHours = errors.New("open must not be after close")
	ErrUnknownDay    = errors.New("unknown weekday")
)

var weekdays = func() map[string]time.Weekday {
	days := make(map[string]time.Weekday, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		days[DayKey(day)] = day
	}

	return days
}()

// Window is the opening window of one weekday, in "HH:MM" wall-clock time.
type Window struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"is_open"`
}

// Contains reports whether minute (minutes after midnight) falls inside the window. Both bounds
// are inclusive, so a slot may start exactly at closing time. A closed or malformed window
// contains nothing.
func (w Window) Contains(minute int) bool {
	if !w.IsOpen {
		return false
	}

	open, err := ParseClock(w.Open)
	if err != nil {
		return false
	}

	closing, err := ParseClock(w.Close)
	if err != nil {
		return false
	}

	return open <= minute && minute <= closing
}

func (w Window) validate() error {
	open, err := ParseClock(w.Open)
	if err != nil {
		return fmt.Errorf("open %q: %w", w.Open, err)
	}

	closing, err := ParseClock(w.Close)
	if err != nil {
		return fmt.Errorf("close %q: %w", w.Close, err)
	}

	if open > closing {
		return fmt.Errorf("%s-%s: %w", w.Open, w.Close, ErrInvertedHours)
	}

	return nil
}

// Availability maps a lowercase weekday name ("monday" ... "sunday") to its window. It is stored
// as JSONB.
type Availability map[string]Window

// DefaultAvailability is applied to services created without a calendar.
func DefaultAvailability() Availability {
	weekday := Window{Open: "09:00", Close: "18:00", IsOpen: true}

	return Availability{
		DayKey(time.Monday):    weekday,
		DayKey(time.Tuesday):   weekday,
		DayKey(time.Wednesday): weekday,
		DayKey(time.Thursday):  weekday,
		DayKey(time.Friday):    weekday,
		DayKey(time.Saturday):  weekday,
		DayKey(time.Sunday):    {Open: "10:00", Close: "16:00", IsOpen: true},
	}
}

// DayKey is the map key used for weekday.
func DayKey(weekday time.Weekday) string {
	return strings.ToLower(weekday.String())
}

// Day returns the window for weekday. A missing day is treated as closed.
func (a Availability) Day(weekday time.Weekday) Window {
	return a[DayKey(weekday)]
}

// Validate checks that all seven days are present with well-formed clocks and open <= close.
func (a Availability) Validate() error {
	var errs []error

	for day := time.Sunday; day <= time.Saturday; day++ {
		window, ok := a[DayKey(day)]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w", DayKey(day), ErrMissingDay))

			continue
		}

		if err := window.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", DayKey(day), err))
		}
	}

	for key := range a {
		if _, ok := weekdays[key]; !ok {
			errs = append(errs, fmt.Errorf("%q: %w", key, ErrUnknownDay))
		}
	}

	return errors.Join(errs...)
}

func (a Availability) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}

	raw, err := json.Marshal(map[string]Window(a))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal availability: %w", err)
	}

	return raw, nil
}

func (a *Availability) Scan(src any) error {
	var raw []byte

	switch value := src.(type) {
	case nil:
		*a = nil

		return nil
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	default:
		return fmt.Errorf("unsupported availability type %T", src)
	}

	windows := map[string]Window{}
	if err := json.Unmarshal(raw, &windows); err != nil {
		return fmt.Errorf("failed to unmarshal availability: %w", err)
	}

	*a = windows

	return nil
}

// ParseClock converts "HH:MM" (24h) to minutes after midnight.
func ParseClock(clock string) (int, error) {
	if len(clock) != len(constant.ClockFormat) {
		return 0, ErrInvalidClock
	}

	parsed, err := time.Parse(constant.ClockFormat, clock)
	if err != nil {
		return 0, ErrInvalidClock
	}

	return parsed.Hour()*60 + parsed.Minute(), nil
}

// FormatClock is the inverse of ParseClock.
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
