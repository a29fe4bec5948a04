package handlers

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/keifergrainger/cities/internal/city"
	"github.com/keifergrainger/cities/internal/config"
	"github.com/keifergrainger/cities/internal/events"
	"github.com/keifergrainger/cities/internal/observability"
	"github.com/keifergrainger/cities/internal/weather"
)

// EventSource fetches this week's events for a city.
type EventSource interface {
	FetchForCity(ctx context.Context, c city.City) []events.Event
}

// WeatherSource fetches current conditions for a city.
type WeatherSource interface {
	FetchCurrent(ctx context.Context, c city.City) *weather.Weather
}

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	directory *city.Directory
	events    EventSource
	weather   WeatherSource
	templates *template.Template
	logger    *slog.Logger
	metrics   *observability.Metrics

	defaultSlug       string
	revalidateSeconds int
}

// New creates a new Handlers instance.
func New(dir *city.Directory, ev EventSource, wx WeatherSource, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Handlers {
	tmpl, err := template.ParseGlob("templates/*.html")
	if err != nil {
		logger.Warn("failed to parse templates, serving fallback markup", "error", err)
	}

	return &Handlers{
		directory: dir,
		events:    ev,
		weather:   wx,
		templates: tmpl,
		logger:    logger,
		metrics:   metrics,

		defaultSlug:       cfg.DefaultCitySlug,
		revalidateSeconds: cfg.RevalidateSeconds,
	}
}

// Routes builds the request mux: the root host-based rewrite, the per-city
// slug route, static assets, health, and metrics.
func (h *Handlers) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	fs := http.FileServer(http.Dir("static"))
	mux.Handle("GET /static/", http.StripPrefix("/static/", fs))

	mux.HandleFunc("GET /{$}", h.HandleIndex)
	mux.HandleFunc("GET /{citySlug}", h.HandleCity)
	mux.HandleFunc("GET /healthz", h.HandleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// HandleIndex serves the root path: the request host picks the city, with
// the configured default slug as fallback. This is an internal rewrite, not
// a redirect — the visible path stays "/".
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	c, ok := h.directory.ByHost(r.Host)
	if !ok {
		c, ok = h.directory.BySlug(h.defaultSlug)
	}
	if !ok {
		h.metrics.PageNotFound.Inc()
		http.NotFound(w, r)
		return
	}
	h.renderCity(w, r, c)
}

// HandleCity serves /{citySlug}. Unknown slugs are a user-visible 404.
func (h *Handlers) HandleCity(w http.ResponseWriter, r *http.Request) {
	c, ok := h.directory.BySlug(r.PathValue("citySlug"))
	if !ok {
		h.metrics.PageNotFound.Inc()
		http.NotFound(w, r)
		return
	}
	h.renderCity(w, r, c)
}

// HandleHealth handles the health check endpoint.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// renderCity fetches events and weather concurrently, applies the fallback
// policy, and renders the page. Upstream failures never surface here; the
// page always renders with whatever data came back.
func (h *Handlers) renderCity(w http.ResponseWriter, r *http.Request, c city.City) {
	ctx := r.Context()

	var (
		evts []events.Event
		wx   *weather.Weather
		wg   sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		evts = h.events.FetchForCity(ctx, c)
	}()
	go func() {
		defer wg.Done()
		wx = h.weather.FetchCurrent(ctx, c)
	}()
	wg.Wait()

	if len(evts) == 0 {
		evts = events.FallbackForCity(c)
		h.metrics.FallbackServed.WithLabelValues(c.Slug).Inc()
	}

	bucketed := events.SplitByDate(evts, c)
	view := buildView(c, bucketed, wx)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control",
		fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=60", h.revalidateSeconds))

	h.metrics.PageRenders.WithLabelValues(c.Slug).Inc()

	if h.templates == nil {
		name := template.HTMLEscapeString(c.CityName)
		fmt.Fprintf(w, fallbackPage, name, name, template.HTMLEscapeString(view.HeroWeatherLine))
		return
	}

	if err := h.templates.ExecuteTemplate(w, "city.html", view); err != nil {
		h.logger.Error("template execution failed", "city", c.Slug, "error", err)
	}
}

// fallbackPage is served when the template directory could not be parsed at
// startup, so a misdeployment still answers with something.
const fallbackPage = `<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body>
	<h1>%s</h1>
	<p>%s</p>
</body>
</html>`
