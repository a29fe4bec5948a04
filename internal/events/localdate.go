package events

import (
	"time"

	"github.com/keifergrainger/cities/internal/city"
)

// The fetch window and the bucketer must agree on what "today" means for a
// city regardless of the server's own timezone. Both go through the helpers
// below; do not reimplement this math at a call site.

// cityLocation resolves a city's IANA timezone, falling back to UTC when the
// identifier is unknown to the zone database.
func cityLocation(c city.City) *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// localDayStart returns midnight of the city-local calendar day containing
// the given instant, expressed in the city's timezone.
func localDayStart(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// localDateString projects an absolute instant through the timezone and
// formats the resulting calendar date as zero-padded "YYYY-MM-DD".
func localDateString(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
