package events

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keifergrainger/cities/internal/observability"
)

const testAPIKey = "test-api-key"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testService(baseURL, apiKey string) *Service {
	c := NewClient(apiKey, 5*time.Second, discardLogger())
	if baseURL != "" {
		c.baseURL = baseURL
	}
	return NewService(c, discardLogger(), observability.NewMetricsForTesting())
}

func discoveryBody(eventsJSON string) string {
	return `{"_embedded":{"events":[` + eventsJSON + `]}}`
}

func TestFetchForCity_MissingKeySkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected when the API key is missing")
	}))
	defer srv.Close()

	s := testService(srv.URL, "")
	evts := s.FetchForCity(context.Background(), testCity())
	assert.Empty(t, evts)
}

func TestFetchForCity_WindowAndQueryParams(t *testing.T) {
	// 18:00 UTC on 2025-03-10 is local 2025-03-10 in Denver; the window is
	// that date anchored at UTC midnight, inclusive through +6 days.
	freezeAt(t, "2025-03-10T18:00:00Z")

	var query map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"apikey":        r.URL.Query().Get("apikey"),
			"city":          r.URL.Query().Get("city"),
			"stateCode":     r.URL.Query().Get("stateCode"),
			"countryCode":   r.URL.Query().Get("countryCode"),
			"size":          r.URL.Query().Get("size"),
			"sort":          r.URL.Query().Get("sort"),
			"startDateTime": r.URL.Query().Get("startDateTime"),
			"endDateTime":   r.URL.Query().Get("endDateTime"),
		}
		io.WriteString(w, discoveryBody(""))
	}))
	defer srv.Close()

	s := testService(srv.URL, testAPIKey)
	s.FetchForCity(context.Background(), testCity())

	require.NotNil(t, query)
	assert.Equal(t, testAPIKey, query["apikey"])
	assert.Equal(t, "Salt Lake City", query["city"])
	assert.Equal(t, "UT", query["stateCode"])
	assert.Equal(t, "US", query["countryCode"])
	assert.Equal(t, "100", query["size"])
	assert.Equal(t, "date,asc", query["sort"])
	assert.Equal(t, "2025-03-10T00:00:00Z", query["startDateTime"])
	assert.Equal(t, "2025-03-16T00:00:00Z", query["endDateTime"])
}

func TestFetchForCity_NormalizesEvents(t *testing.T) {
	freezeAt(t, "2025-03-10T18:00:00Z")

	body := discoveryBody(`
		{
			"id": "full",
			"name": "Jazz Night",
			"url": "https://tickets.example/full",
			"dates": {"start": {"dateTime": "2025-03-11T02:00:00Z"}},
			"classifications": [{"segment": {"name": "Music"}, "genre": {"name": "Jazz"}}],
			"_embedded": {"venues": [{
				"name": "The Depot",
				"neighborhood": "Downtown",
				"address": {"line1": "400 W South Temple"},
				"city": {"name": "Salt Lake City"},
				"state": {"stateCode": "UT"}
			}]}
		},
		{
			"id": "date-only",
			"name": "Street Fair",
			"dates": {"start": {"localDate": "2025-03-12"}}
		}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, body)
	}))
	defer srv.Close()

	s := testService(srv.URL, testAPIKey)
	evts := s.FetchForCity(context.Background(), testCity())
	require.Len(t, evts, 2)

	full := evts[0]
	assert.Equal(t, "full", full.ID)
	assert.Equal(t, "Jazz Night", full.Name)
	assert.Equal(t, "Jazz", full.Category, "genre preferred over segment")
	// 02:00 UTC on the 11th is still the evening of the 10th in Denver.
	assert.Equal(t, "2025-03-10", full.LocalDate)
	assert.Equal(t, "The Depot", full.VenueName)
	assert.Equal(t, "400 W South Temple · Salt Lake City · UT", full.Address)
	assert.Equal(t, "Downtown", full.Area)
	assert.Equal(t, "https://tickets.example/full", full.URL)

	dateOnly := evts[1]
	assert.Equal(t, "date-only", dateOnly.ID)
	assert.Equal(t, "Event", dateOnly.Category, "default category")
	assert.Equal(t, "Salt Lake City", dateOnly.Area, "falls back to city name")
	// Date-only values anchor at midday UTC so the local date holds.
	assert.Equal(t, time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC), dateOnly.Start.UTC())
	assert.Equal(t, "2025-03-12", dateOnly.LocalDate)
}

func TestFetchForCity_DropsMalformedRecords(t *testing.T) {
	freezeAt(t, "2025-03-10T18:00:00Z")

	body := discoveryBody(`
		{"name": "No ID", "dates": {"start": {"localDate": "2025-03-11"}}},
		{"id": "no-name", "dates": {"start": {"localDate": "2025-03-11"}}},
		{"id": "no-dates", "name": "No Dates", "dates": {"start": {}}},
		{"id": "keeper", "name": "Keeper", "dates": {"start": {"localDate": "2025-03-11"}}}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, body)
	}))
	defer srv.Close()

	s := testService(srv.URL, testAPIKey)
	evts := s.FetchForCity(context.Background(), testCity())

	require.Len(t, evts, 1)
	assert.Equal(t, "keeper", evts[0].ID)
}

func TestFetchForCity_DeduplicatesKeepingFirst(t *testing.T) {
	freezeAt(t, "2025-03-10T18:00:00Z")

	body := discoveryBody(`
		{"id": "dup", "name": "First Listing", "dates": {"start": {"dateTime": "2025-03-11T20:00:00Z"}}},
		{"id": "dup", "name": "Second Listing", "dates": {"start": {"dateTime": "2025-03-12T20:00:00Z"}}}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, body)
	}))
	defer srv.Close()

	s := testService(srv.URL, testAPIKey)
	evts := s.FetchForCity(context.Background(), testCity())

	require.Len(t, evts, 1)
	assert.Equal(t, "First Listing", evts[0].Name)
}

func TestFetchForCity_SortsByStartInstant(t *testing.T) {
	freezeAt(t, "2025-03-10T18:00:00Z")

	body := discoveryBody(`
		{"id": "c", "name": "C", "dates": {"start": {"dateTime": "2025-03-13T20:00:00Z"}}},
		{"id": "a", "name": "A", "dates": {"start": {"dateTime": "2025-03-11T20:00:00Z"}}},
		{"id": "b", "name": "B", "dates": {"start": {"dateTime": "2025-03-12T20:00:00Z"}}}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, body)
	}))
	defer srv.Close()

	s := testService(srv.URL, testAPIKey)
	evts := s.FetchForCity(context.Background(), testCity())

	require.Len(t, evts, 3)
	for i := 1; i < len(evts); i++ {
		assert.False(t, evts[i].Start.Before(evts[i-1].Start), "output must be non-decreasing by start")
	}
	assert.Equal(t, "a", evts[0].ID)
	assert.Equal(t, "b", evts[1].ID)
	assert.Equal(t, "c", evts[2].ID)
}

func TestFetchForCity_UpstreamErrorsReturnEmpty(t *testing.T) {
	freezeAt(t, "2025-03-10T18:00:00Z")

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		s := testService(srv.URL, testAPIKey)
		assert.Empty(t, s.FetchForCity(context.Background(), testCity()))
	})

	t.Run("malformed payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			io.WriteString(w, "{not json")
		}))
		defer srv.Close()

		s := testService(srv.URL, testAPIKey)
		assert.Empty(t, s.FetchForCity(context.Background(), testCity()))
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		srv.Close() // connection refused

		s := testService(srv.URL, testAPIKey)
		assert.Empty(t, s.FetchForCity(context.Background(), testCity()))
	})
}
