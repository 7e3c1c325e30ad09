// Package httpserver serves the hero preview host: the demo page, both renditions per
// preset, parity reports, the settings schema and metrics.
package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Zerubabel-J/HeroCraft/internal/hero"
	"github.com/Zerubabel-J/HeroCraft/internal/observability"
	"github.com/Zerubabel-J/HeroCraft/internal/page"
	"github.com/Zerubabel-J/HeroCraft/internal/parity"
	"github.com/Zerubabel-J/HeroCraft/internal/presets"
	"github.com/Zerubabel-J/HeroCraft/public"
)

const (
	formSection   = "section"
	formComponent = "component"

	maxRenderBody = 64 << 10
)

// Config holds runtime options for the preview server.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	Presets *presets.Store
	Pages   *page.Renderer
	Logger  *zap.Logger
}

type handlers struct {
	presets *presets.Store
	pages   *page.Renderer
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	if cfg.Presets == nil {
		store, err := presets.Load("")
		if err != nil {
			return nil, err
		}
		cfg.Presets = store
	}
	if cfg.Pages == nil {
		renderer, err := page.NewRenderer("", false)
		if err != nil {
			return nil, err
		}
		cfg.Pages = renderer
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.InjectLoggerMiddleware(cfg.Logger))
	router.Use(observability.RequestLoggerMiddleware)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(30 * time.Second))

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("httpserver: embed static: %w", err)
	}
	router.Handle("/public/static/*", http.StripPrefix("/public/static/", assetsWithCache(staticContent)))

	h := handlers{presets: cfg.Presets, pages: cfg.Pages}
	router.Get("/", h.demo)
	router.Get("/healthz", healthz)
	router.Get("/schema", schema)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/sections/{preset}", h.section)
	router.Get("/components/{preset}", h.component)
	router.Get("/parity/{preset}", h.parity)
	router.Post("/render/{form}", renderPayload)

	return &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       durationOr(cfg.ReadTimeout, 15*time.Second),
		WriteTimeout:      durationOr(cfg.WriteTimeout, 15*time.Second),
		IdleTimeout:       durationOr(cfg.IdleTimeout, 60*time.Second),
	}, nil
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func schema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, hero.Schema())
}

func (h handlers) demo(w http.ResponseWriter, r *http.Request) {
	demo, err := page.BuildDemo(h.presets.List())
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.pages.Render(&buf, demo); err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h handlers) section(w http.ResponseWriter, r *http.Request) {
	settings, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeSection(w, r, settings)
}

func (h handlers) component(w http.ResponseWriter, r *http.Request) {
	settings, ok := h.lookup(w, r)
	if !ok {
		return
	}
	serveComponent(w, r, settings)
}

func (h handlers) parity(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "preset")
	settings, ok := h.lookup(w, r)
	if !ok {
		return
	}
	report, err := parity.Check(settings)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !report.Equal {
		MetricParityMismatches.WithLabelValues(strings.ToLower(name)).Inc()
		observability.FromContext(r.Context()).Warn("parity mismatch",
			zap.String("preset", name),
			zap.Strings("diffs", report.Diffs),
		)
	}
	writeJSON(w, r, http.StatusOK, struct {
		Preset string `json:"preset"`
		parity.Report
	}{Preset: strings.ToLower(name), Report: report})
}

// renderPayload renders a theme settings store payload posted as a JSON object.
func renderPayload(w http.ResponseWriter, r *http.Request) {
	form := chi.URLParam(r, "form")
	if form != formSection && form != formComponent {
		http.Error(w, fmt.Sprintf("unknown form %q", form), http.StatusNotFound)
		return
	}

	var values map[string]any
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRenderBody))
	if err := dec.Decode(&values); err != nil {
		http.Error(w, "invalid settings payload", http.StatusBadRequest)
		return
	}
	settings := hero.FromValues(values)
	if form == formSection {
		writeSection(w, r, settings)
		return
	}
	serveComponent(w, r, settings)
}

func writeSection(w http.ResponseWriter, r *http.Request, settings hero.Settings) {
	start := time.Now()
	var buf bytes.Buffer
	if err := hero.RenderSection(&buf, settings); err != nil {
		writeError(w, r, err)
		return
	}
	observeRender(formSection, settings, start)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func serveComponent(w http.ResponseWriter, r *http.Request, settings hero.Settings) {
	start := time.Now()
	templ.Handler(hero.Templ(settings)).ServeHTTP(w, r)
	observeRender(formComponent, settings, start)
}

func observeRender(form string, settings hero.Settings, start time.Time) {
	MetricRenderDuration.WithLabelValues(form).Observe(time.Since(start).Seconds())
	MetricRenders.WithLabelValues(form, string(hero.Resolve(settings.ColorStyle).Key), string(settings.Layout)).Inc()
}

// lookup resolves the {preset} parameter and applies query string overrides.
func (h handlers) lookup(w http.ResponseWriter, r *http.Request) (hero.Settings, bool) {
	p, err := h.presets.Get(chi.URLParam(r, "preset"))
	if err != nil {
		MetricPresetLookups.WithLabelValues("miss").Inc()
		writeError(w, r, err)
		return hero.Settings{}, false
	}
	MetricPresetLookups.WithLabelValues("hit").Inc()
	return withOverrides(p.Settings, r), true
}

// Query parameters named after a setting id replace the preset value. The description is
// trusted markup and can only come from preset files or a posted payload.
func withOverrides(settings hero.Settings, r *http.Request) hero.Settings {
	query := r.URL.Query()
	if len(query) == 0 {
		return settings
	}
	values := settings.Values()
	for _, setting := range hero.Schema().Settings {
		if setting.ID == hero.SettingDescription {
			continue
		}
		if v, ok := query[setting.ID]; ok && len(v) > 0 {
			values[setting.ID] = v[0]
		}
	}
	return hero.FromValues(values)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, presets.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	observability.FromContext(r.Context()).Error("request failed", zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
