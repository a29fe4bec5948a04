package events

import "time"

// Event is one normalized listing, built fresh on every request from the
// upstream response or the fallback generator. Optional fields are empty
// strings when the source did not supply them.
type Event struct {
	ID       string
	Name     string
	Category string

	// Start is the absolute start instant. LocalDate is Start projected
	// through the city's timezone as "YYYY-MM-DD" — never the server's
	// timezone, or events near midnight land in the wrong bucket.
	Start     time.Time
	LocalDate string

	VenueName string
	Address   string
	Area      string
	URL       string
}

// Bucketed partitions a week of events for display. Each list is truncated
// to its display limit; the HasMore flags report whether matches were cut.
type Bucketed struct {
	Tonight        []Event
	LaterThisWeek  []Event
	TonightHasMore bool
	LaterHasMore   bool
}

// Display limits for the two page sections.
const (
	tonightLimit = 2
	laterLimit   = 3
)
