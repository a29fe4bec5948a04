package handlers

import (
	"strings"
	"time"

	"github.com/keifergrainger/cities/internal/city"
	"github.com/keifergrainger/cities/internal/events"
	"github.com/keifergrainger/cities/internal/weather"
)

// EventView is one event row ready for the template.
type EventView struct {
	Name     string
	URL      string
	Meta     string
	TagLabel string
	Featured bool
}

// CityView is everything the city page template needs.
type CityView struct {
	City          city.City
	BrandInitials string
	TickerLabel   string

	WeatherTickerLine string
	HeroWeatherLine   string
	TodayLabel        string
	Year              int

	Tonight        []EventView
	LaterThisWeek  []EventView
	HasAnyEvents   bool
	TonightHasMore bool
	LaterHasMore   bool
}

func buildView(c city.City, b events.Bucketed, w *weather.Weather) CityView {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)

	featuredID := ""
	if len(b.Tonight) > 0 {
		featuredID = b.Tonight[0].ID
	} else if len(b.LaterThisWeek) > 0 {
		featuredID = b.LaterThisWeek[0].ID
	}

	tickerLabel := c.TickerLabel
	if tickerLabel == "" {
		tickerLabel = "Live city ticker — " + c.CityName + ", " + c.StateCode
	}

	return CityView{
		City:          c,
		BrandInitials: brandInitials(c),
		TickerLabel:   tickerLabel,

		WeatherTickerLine: weather.TickerLine(c, w),
		HeroWeatherLine:   weather.HeroLine(c, w),
		TodayLabel:        now.Format("Monday, Jan 2"),
		Year:              now.Year(),

		Tonight:        eventViews(b.Tonight, featuredID, loc),
		LaterThisWeek:  eventViews(b.LaterThisWeek, featuredID, loc),
		HasAnyEvents:   len(b.Tonight) > 0 || len(b.LaterThisWeek) > 0,
		TonightHasMore: b.TonightHasMore,
		LaterHasMore:   b.LaterHasMore,
	}
}

func eventViews(evts []events.Event, featuredID string, loc *time.Location) []EventView {
	views := make([]EventView, 0, len(evts))
	for _, evt := range evts {
		url := evt.URL
		if url == "" {
			url = "#"
		}
		views = append(views, EventView{
			Name:     evt.Name,
			URL:      url,
			Meta:     eventMeta(evt, loc),
			TagLabel: tagLabel(evt),
			Featured: evt.ID == featuredID,
		})
	}
	return views
}

// eventMeta builds the "Fri, Jan 2 · 7:00 PM · venue · address" line,
// with the event time shown in the city's timezone.
func eventMeta(evt events.Event, loc *time.Location) string {
	var pieces []string
	if !evt.Start.IsZero() {
		local := evt.Start.In(loc)
		pieces = append(pieces, local.Format("Mon, Jan 2"), local.Format("3:04 PM"))
	}
	if evt.VenueName != "" {
		pieces = append(pieces, evt.VenueName)
	}
	if evt.Address != "" {
		pieces = append(pieces, evt.Address)
	}
	if len(pieces) == 0 {
		return "Details coming soon"
	}
	return strings.Join(pieces, " · ")
}

func tagLabel(evt events.Event) string {
	var parts []string
	if evt.Category != "" {
		parts = append(parts, evt.Category)
	}
	if evt.Area != "" {
		parts = append(parts, evt.Area)
	}
	return strings.Join(parts, " · ")
}

// brandInitials returns the configured initials or derives them from the
// first letters of the city name, capped at two characters.
func brandInitials(c city.City) string {
	if c.BrandInitials != "" {
		return c.BrandInitials
	}
	var b strings.Builder
	for _, word := range strings.Fields(c.CityName) {
		b.WriteString(word[:1])
		if b.Len() >= 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}
