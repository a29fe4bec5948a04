package events

import (
	"fmt"
	"time"

	"github.com/keifergrainger/cities/internal/city"
)

// FallbackForCity produces the static seed list shown when no live events
// are available: one event tonight, one two days out, one on the upcoming
// Saturday, all anchored to the city's local today. It never fails and
// never touches the network. The caller decides when to substitute it.
func FallbackForCity(c city.City) []Event {
	loc := cityLocation(c)
	today := localDayStart(clock.Now(), loc)
	y, m, d := today.Date()

	tonight := time.Date(y, m, d, 19, 0, 0, 0, loc)

	twoOut := today.AddDate(0, 0, 2)
	y2, m2, d2 := twoOut.Date()
	twoDaysOut := time.Date(y2, m2, d2, 18, 30, 0, 0, loc)

	// Days until the upcoming Saturday; today counts when it is Saturday.
	offset := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
	satDay := today.AddDate(0, 0, offset)
	y3, m3, d3 := satDay.Date()
	saturday := time.Date(y3, m3, d3, 9, 0, 0, 0, loc)

	address := c.CityName + " · " + c.StateCode

	return []Event{
		{
			ID:        fmt.Sprintf("%s-fallback-1", c.Slug),
			Name:      c.DisplayShortName() + " Night Market",
			Category:  "Food & drink",
			Start:     tonight,
			LocalDate: localDateString(tonight, loc),
			VenueName: "Downtown plaza",
			Address:   address,
			Area:      "Downtown",
			URL:       "#",
		},
		{
			ID:        fmt.Sprintf("%s-fallback-2", c.Slug),
			Name:      "Community Sunset Hike",
			Category:  "Outdoors",
			Start:     twoDaysOut,
			LocalDate: localDateString(twoDaysOut, loc),
			VenueName: "Local trailhead",
			Address:   address,
			Area:      "Foothills",
			URL:       "#",
		},
		{
			ID:        fmt.Sprintf("%s-fallback-3", c.Slug),
			Name:      "Weekend Farmers Market",
			Category:  "Family",
			Start:     saturday,
			LocalDate: localDateString(saturday, loc),
			VenueName: "Central park",
			Address:   address,
			Area:      "Central",
			URL:       "#",
		},
	}
}
