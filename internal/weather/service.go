package weather

import (
	"context"
	"log/slog"
	"time"

	"github.com/keifergrainger/cities/internal/city"
	"github.com/keifergrainger/cities/internal/observability"
)

// Service fetches and normalizes current weather for a city.
type Service struct {
	client  *Client
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewService creates a weather service backed by the given client.
func NewService(client *Client, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		client:  client,
		logger:  logger,
		metrics: metrics,
	}
}

// FetchCurrent returns current conditions for the city's coordinates, or
// nil when the credential is missing or the upstream call fails. nil means
// "unavailable" and is rendered as such; it never aborts the page.
func (s *Service) FetchCurrent(ctx context.Context, c city.City) *Weather {
	if s.client.apiKey == "" {
		s.logger.Warn("weather: API key missing, skipping fetch", "city", c.Slug)
		s.metrics.UpstreamRequests.WithLabelValues("openweather", "skipped").Inc()
		return nil
	}

	start := time.Now()
	resp, err := s.client.Current(ctx, c.Lat, c.Lon)
	s.metrics.UpstreamDuration.WithLabelValues("openweather").Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Error("weather: fetch failed", "city", c.Slug, "error", err)
		s.metrics.UpstreamRequests.WithLabelValues("openweather", "error").Inc()
		return nil
	}
	s.metrics.UpstreamRequests.WithLabelValues("openweather", "success").Inc()

	w := &Weather{
		TempF:      resp.Main.Temp,
		FeelsLikeF: resp.Main.FeelsLike,
		WindMph:    resp.Wind.Speed,
		Condition:  "Unknown",
	}
	if len(resp.Weather) > 0 {
		if resp.Weather[0].Main != "" {
			w.Condition = resp.Weather[0].Main
		}
		w.Description = resp.Weather[0].Description
	}
	return w
}
