package events

import "github.com/keifergrainger/cities/internal/city"

// SplitByDate partitions events into "tonight" and "later this week" by
// comparing city-local calendar dates. An event is tonight iff its local
// date equals the city-local today; later-this-week covers the six days
// after that; anything outside the window (including stale past events)
// is dropped. Incoming order is preserved within each bucket.
func SplitByDate(evts []Event, c city.City) Bucketed {
	loc := cityLocation(c)

	today := localDayStart(clock.Now(), loc)
	todayKey := localDateString(today, loc)
	endOfWeekKey := localDateString(today.AddDate(0, 0, 6), loc)

	var tonight, later []Event
	for _, evt := range evts {
		switch {
		case evt.LocalDate == todayKey:
			tonight = append(tonight, evt)
		case evt.LocalDate > todayKey && evt.LocalDate <= endOfWeekKey:
			later = append(later, evt)
		}
	}

	b := Bucketed{
		Tonight:        tonight,
		LaterThisWeek:  later,
		TonightHasMore: len(tonight) > tonightLimit,
		LaterHasMore:   len(later) > laterLimit,
	}
	if len(b.Tonight) > tonightLimit {
		b.Tonight = b.Tonight[:tonightLimit]
	}
	if len(b.LaterThisWeek) > laterLimit {
		b.LaterThisWeek = b.LaterThisWeek[:laterLimit]
	}
	return b
}
