package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"retail-dashboard/internal/engine"
	"retail-dashboard/internal/errors"
	"retail-dashboard/internal/observability"
	"retail-dashboard/internal/services"
)

// Dashboard responses depend on the caller's scope and filters, so they
// are never publicly cacheable.
const dashboardCacheControl = "private, max-age=60"

type APIHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewAPIHandlers(analytics *services.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

// SpecFromQuery binds the filter query parameters to a FilterSpec.
// Absent parameters and the literal "All" both mean unconstrained.
func SpecFromQuery(q url.Values) engine.FilterSpec {
	sel := func(key string) engine.Selection {
		if v := q.Get(key); v != "" {
			return engine.Equals(v)
		}
		return engine.All
	}

	return engine.FilterSpec{
		DateStart: q.Get("dateStart"),
		DateEnd:   q.Get("dateEnd"),

		RegionalArea:        sel("regionalArea"),
		SubRegion:           sel("subRegion"),
		DistributionChannel: sel("distributionChannel"),
		SiteName:            sel("siteName"),
		MaterialType:        sel("materialType"),
		ProductType:         sel("productType"),
		MGH1:                sel("mgh1"),
		MGH2:                sel("mgh2"),
		MGH3:                sel("mgh3"),
		MGH4:                sel("mgh4"),
		Gift:                sel("gift"),
		Bogo:                sel("bogo"),
		Employee:            sel("employee"),
	}
}

func (h *APIHandlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	scope := observability.GetScope(r.Context())
	spec := SpecFromQuery(r.URL.Query())

	data := h.analytics.Dashboard(scope, spec)

	headers := map[string]string{
		"Cache-Control": dashboardCacheControl,
	}

	errors.WriteSuccessWithHeaders(w, data, headers)
}

func (h *APIHandlers) HandleFilterOptions(w http.ResponseWriter, r *http.Request) {
	scope := observability.GetScope(r.Context())
	spec := SpecFromQuery(r.URL.Query())

	data := h.analytics.FilterOptions(scope, spec)

	headers := map[string]string{
		"Cache-Control": dashboardCacheControl,
	}

	errors.WriteSuccessWithHeaders(w, data, headers)
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {

	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {

	stats := h.analytics.Stats()

	errors.WriteSuccess(w, stats)
}
