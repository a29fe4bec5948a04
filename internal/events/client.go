package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Client handles Ticketmaster Discovery API interactions.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Discovery API client. An empty apiKey is allowed;
// callers are expected to skip the network entirely in that case.
func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://app.ticketmaster.com/discovery/v2/events.json",
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// SearchQuery scopes one Discovery API request to a city and date window.
type SearchQuery struct {
	City        string
	StateCode   string
	CountryCode string
	Start       time.Time
	End         time.Time
	Size        int
}

// DiscoveryResponse represents the Discovery /events.json response.
type DiscoveryResponse struct {
	Embedded struct {
		Events []DiscoveryEvent `json:"events"`
	} `json:"_embedded"`
}

// DiscoveryEvent is one raw event object with its nested date, venue, and
// classification sub-objects.
type DiscoveryEvent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Dates struct {
		Start struct {
			DateTime  string `json:"dateTime"`
			LocalDate string `json:"localDate"`
		} `json:"start"`
	} `json:"dates"`
	Classifications []struct {
		Segment struct {
			Name string `json:"name"`
		} `json:"segment"`
		Genre struct {
			Name string `json:"name"`
		} `json:"genre"`
	} `json:"classifications"`
	Embedded struct {
		Venues []DiscoveryVenue `json:"venues"`
	} `json:"_embedded"`
}

// DiscoveryVenue is the venue sub-object carrying name and address details.
type DiscoveryVenue struct {
	Name         string `json:"name"`
	Neighborhood string `json:"neighborhood"`
	Address      struct {
		Line1 string `json:"line1"`
	} `json:"address"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	State struct {
		StateCode string `json:"stateCode"`
	} `json:"state"`
}

// Search issues one events request scoped by the query, ordered ascending
// by date. The window bounds are sent as whole-second UTC timestamps.
func (c *Client) Search(ctx context.Context, q SearchQuery) (*DiscoveryResponse, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("city", q.City)
	params.Set("stateCode", q.StateCode)
	params.Set("countryCode", q.CountryCode)
	params.Set("size", fmt.Sprintf("%d", q.Size))
	params.Set("sort", "date,asc")
	params.Set("startDateTime", q.Start.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z"))
	params.Set("endDateTime", q.End.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discovery request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("discovery API error: status %d: %s", resp.StatusCode, body)
	}

	var dr DiscoveryResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &dr, nil
}
