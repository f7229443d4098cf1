// Package timezone pins wall-clock computations to the mall's configured
// location (APP_TIMEZONE). Booking dates, opening hours and "today" are all
// mall-local, so every caller goes through this package instead of time.Now.
package timezone

import (
	"fmt"
	"mallbook/config"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	location atomic.Pointer[time.Location]
	loadOnce sync.Once
)

// Location returns the mall location, loading it from configuration on first use.
func Location() *time.Location {
	loadOnce.Do(func() {
		if location.Load() != nil {
			return
		}

		name := config.Get().App.Timezone
		if name == "" {
			log.Warn().Msg("APP_TIMEZONE not set, mall clock runs on UTC")
			location.Store(time.UTC)

			return
		}

		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Error().Err(err).Str("timezone", name).Msg("unknown IANA timezone, mall clock runs on UTC")
			location.Store(time.UTC)

			return
		}

		log.Info().Str("timezone", loc.String()).Msg("mall clock initialized")
		location.Store(loc)
	})

	return location.Load()
}

// SetLocation overrides the configured location.
func SetLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", name, err)
	}

	location.Store(loc)

	return nil
}

func Now() time.Time {
	return time.Now().In(Location())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(Location())
}

// Parse interprets value as mall-local time.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, Location())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// StartOfDay truncates t to mall-local midnight.
func StartOfDay(t time.Time) time.Time {
	year, month, day := ToAppTime(t).Date()

	return time.Date(year, month, day, 0, 0, 0, 0, Location())
}

// Today is mall-local midnight of the current day.
func Today() time.Time {
	return StartOfDay(Now())
}
