package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"retail-dashboard/internal/models"
	"retail-dashboard/internal/observability"
	"retail-dashboard/internal/services"
)

const maxTableRows = 50

var agentTableTemplate = template.Must(template.New("agentTable").Parse(`
<div id="agent-content">
<table class="modern-table">
<thead><tr><th>Agent</th><th>Revenue</th><th>Target</th><th>Achievement</th></tr></thead>
<tbody>
{{range $i, $item := .Data}}{{if lt $i $.MaxRows}}<tr>
<td>{{.Name}}</td>
<td><strong>{{printf "%.0f" .Revenue}}</strong></td>
<td>{{printf "%.0f" .Target}}</td>
<td>{{printf "%.1f" .Achievement}}%</td>
</tr>{{end}}{{end}}
</tbody>
</table>
</div>`))

type SSEHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(analytics *services.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

type templateData struct {
	Data    []models.AgentPerformance
	MaxRows int
}

func (h *SSEHandlers) renderAgentTable(data []models.AgentPerformance) (string, error) {
	var buf strings.Builder

	if len(data) > maxTableRows {
		data = data[:maxTableRows]
	}

	err := agentTableTemplate.Execute(&buf, templateData{Data: data, MaxRows: maxTableRows})
	return buf.String(), err
}

// HandleKPIs pushes the scalar KPI block plus run-rate and
// previous-period comparison as datastar signals.
func (h *SSEHandlers) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	scope := observability.GetScope(r.Context())
	data := h.analytics.Dashboard(scope, SpecFromQuery(r.URL.Query()))

	jsonData, err := json.Marshal(map[string]any{
		"sales":           data.Sales,
		"target":          data.Target,
		"achievement":     data.Achievement,
		"avgItems":        data.AvgItemsPerOrder,
		"avgOrderValue":   data.AvgOrderValue,
		"revenuePerAgent": data.RevenuePerAgent,
		"previousPeriod":  data.PreviousPeriod,
		"targetProgress":  data.TargetProgress,
	})
	if err != nil {
		h.logger.Error("marshal kpi signals", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleTrends pushes the three trend series as chart signals.
func (h *SSEHandlers) HandleTrends(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	scope := observability.GetScope(r.Context())
	data := h.analytics.Dashboard(scope, SpecFromQuery(r.URL.Query()))

	jsonData, err := json.Marshal(map[string]any{
		"trendDaily":   data.SalesTrendDaily,
		"trendMonthly": data.SalesTrendMonthly,
		"trendYearly":  data.SalesTrendYearly,
	})
	if err != nil {
		h.logger.Error("marshal trend signals", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="trend-content">Trend data loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleRefreshAll recomputes the whole dashboard once and pushes the
// agent table patch together with every chart signal.
func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	scope := observability.GetScope(r.Context())
	data := h.analytics.Dashboard(scope, SpecFromQuery(r.URL.Query()))

	html, err := h.renderAgentTable(data.AgentPerformance)
	if err != nil {
		h.logger.Error("render agent table", "error", err)
		return
	}
	sse.PatchElements(html)

	allSignals, err := json.Marshal(map[string]any{
		"sales":           data.Sales,
		"target":          data.Target,
		"achievement":     data.Achievement,
		"trendDaily":      data.SalesTrendDaily,
		"trendMonthly":    data.SalesTrendMonthly,
		"trendYearly":     data.SalesTrendYearly,
		"productInsights": data.ProductInsights,
		"monthlyMatrix":   data.MonthlyAchievement,
		"filterOptions":   data.FilterOptions,
	})
	if err != nil {
		h.logger.Error("marshal dashboard signals", "error", err)
		return
	}
	sse.PatchSignals(allSignals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
