package events

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/keifergrainger/cities/internal/city"
	"github.com/keifergrainger/cities/internal/observability"
)

const searchPageSize = 100

// Service fetches and normalizes event listings for a city.
type Service struct {
	client  *Client
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewService creates an event service backed by the given Discovery client.
func NewService(client *Client, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		client:  client,
		logger:  logger,
		metrics: metrics,
	}
}

// FetchForCity returns this week's events for a city, deduplicated and
// sorted ascending by start instant. Every failure mode degrades to an
// empty slice; the caller decides whether to substitute fallback content.
func (s *Service) FetchForCity(ctx context.Context, c city.City) []Event {
	if s.client.apiKey == "" {
		s.logger.Warn("events: API key missing, skipping fetch", "city", c.Slug)
		s.metrics.UpstreamRequests.WithLabelValues("ticketmaster", "skipped").Inc()
		return nil
	}

	loc := cityLocation(c)

	// Anchor the window at the city's local today, not the server's.
	dayStart := localDayStart(clock.Now(), loc)
	y, m, d := dayStart.Date()
	windowStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.AddDate(0, 0, 6)

	start := time.Now()
	resp, err := s.client.Search(ctx, SearchQuery{
		City:        c.CityName,
		StateCode:   c.StateCode,
		CountryCode: "US",
		Start:       windowStart,
		End:         windowEnd,
		Size:        searchPageSize,
	})
	s.metrics.UpstreamDuration.WithLabelValues("ticketmaster").Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Error("events: discovery fetch failed", "city", c.Slug, "error", err)
		s.metrics.UpstreamRequests.WithLabelValues("ticketmaster", "error").Inc()
		return nil
	}
	s.metrics.UpstreamRequests.WithLabelValues("ticketmaster", "success").Inc()

	out := make([]Event, 0, len(resp.Embedded.Events))
	seen := make(map[string]struct{}, len(resp.Embedded.Events))
	for _, raw := range resp.Embedded.Events {
		evt, ok := normalizeEvent(raw, c, loc)
		if !ok {
			continue
		}
		if _, dup := seen[evt.ID]; dup {
			continue
		}
		seen[evt.ID] = struct{}{}
		out = append(out, evt)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})

	return out
}

// normalizeEvent shapes one raw Discovery event into an Event. Items missing
// an identifier, a name, or both forms of start time are dropped.
func normalizeEvent(raw DiscoveryEvent, c city.City, loc *time.Location) (Event, bool) {
	tmDateTime := raw.Dates.Start.DateTime
	tmLocalDate := raw.Dates.Start.LocalDate

	if raw.ID == "" || raw.Name == "" || (tmDateTime == "" && tmLocalDate == "") {
		return Event{}, false
	}

	var start time.Time
	if tmDateTime != "" {
		t, err := time.Parse(time.RFC3339, tmDateTime)
		if err != nil {
			return Event{}, false
		}
		start = t
	} else {
		// Date-only value: anchor at midday UTC so re-projecting into the
		// city's timezone cannot shift the calendar date.
		t, err := time.Parse(time.RFC3339, tmLocalDate+"T12:00:00Z")
		if err != nil {
			return Event{}, false
		}
		start = t
	}

	evt := Event{
		ID:        raw.ID,
		Name:      raw.Name,
		Start:     start,
		LocalDate: localDateString(start, loc),
		URL:       raw.URL,
	}

	evt.Category = "Event"
	if len(raw.Classifications) > 0 {
		cls := raw.Classifications[0]
		if cls.Genre.Name != "" {
			evt.Category = cls.Genre.Name
		} else if cls.Segment.Name != "" {
			evt.Category = cls.Segment.Name
		}
	}

	evt.Area = c.CityName
	if len(raw.Embedded.Venues) > 0 {
		venue := raw.Embedded.Venues[0]
		evt.VenueName = venue.Name
		evt.Address = joinAddress(venue.Address.Line1, venue.City.Name, venue.State.StateCode)
		if venue.Neighborhood != "" {
			evt.Area = venue.Neighborhood
		} else if venue.City.Name != "" {
			evt.Area = venue.City.Name
		}
	}

	return evt, true
}

// joinAddress joins present address components with a middle-dot separator.
func joinAddress(parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, " · ")
}
