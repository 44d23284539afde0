package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatlens/pkg/domain/interfaces"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/secmon-lab/threatlens/pkg/domain/types"
	"github.com/secmon-lab/threatlens/pkg/utils/apperr"
)

// DashboardHandler serves filter options, chart specs and chart images
type DashboardHandler struct {
	dashboardUC interfaces.Dashboard
	renderer    interfaces.ChartRenderer
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUC interfaces.Dashboard, renderer interfaces.ChartRenderer) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		renderer:    renderer,
	}
}

// HandleOptions returns year bounds, country list and default selection
func (h *DashboardHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.dashboardUC.Options(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, opts)
}

// HandleDashboard runs a render pass for the selection in the query string
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.render(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, dashboard)
}

// HandleChartPNG runs a render pass and draws a single tab as PNG
func (h *DashboardHandler) HandleChartPNG(w http.ResponseWriter, r *http.Request) {
	tab, err := types.ParseTabID(chi.URLParam(r, "tab"))
	if err != nil {
		writeErrorStatus(w, r, err, http.StatusNotFound)
		return
	}

	dashboard, err := h.render(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	spec := dashboard.Chart(tab)
	if spec == nil {
		writeErrorStatus(w, r, goerr.New("chart not found", goerr.V("tab", tab)), http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderPNG(&buf, spec); err != nil {
		writeError(w, r, goerr.Wrap(err, "failed to render chart", goerr.V("tab", tab)))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write chart image", "error", err)
	}
}

func (h *DashboardHandler) render(r *http.Request) (*model.Dashboard, error) {
	q, err := parseFilterQuery(r)
	if err != nil {
		return nil, err
	}

	filter := q.filter
	if !q.complete() {
		opts, err := h.dashboardUC.Options(r.Context())
		if err != nil {
			return nil, err
		}
		filter = q.withDefaults(opts.DefaultFilter())
	}

	return h.dashboardUC.Render(r.Context(), filter)
}

// filterQuery is a selection parsed from query parameters where any part
// may be absent. A country key that is present but empty selects no
// countries.
type filterQuery struct {
	filter       model.Filter
	hasMinYear   bool
	hasMaxYear   bool
	hasCountries bool
}

func (q *filterQuery) complete() bool {
	return q.hasMinYear && q.hasMaxYear && q.hasCountries
}

func (q *filterQuery) withDefaults(def model.Filter) model.Filter {
	f := q.filter
	if !q.hasMinYear {
		f.MinYear = def.MinYear
	}
	if !q.hasMaxYear {
		f.MaxYear = def.MaxYear
	}
	if !q.hasCountries {
		f.Countries = def.Countries
	}
	return f
}

// parseFilterQuery reads year_min, year_max and repeated country parameters.
// A country value may also hold a comma separated list.
func parseFilterQuery(r *http.Request) (*filterQuery, error) {
	query := r.URL.Query()
	q := &filterQuery{}

	parseYear := func(key string, dst *int, present *bool) error {
		raw := strings.TrimSpace(query.Get(key))
		if raw == "" {
			return nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return goerr.Wrap(err, "year must be an integer",
				goerr.V("param", key),
				goerr.V("value", raw),
				goerr.T(model.ErrTagInvalidFilter))
		}
		*dst = v
		*present = true
		return nil
	}

	if err := parseYear("year_min", &q.filter.MinYear, &q.hasMinYear); err != nil {
		return nil, err
	}
	if err := parseYear("year_max", &q.filter.MaxYear, &q.hasMaxYear); err != nil {
		return nil, err
	}

	values, ok := query["country"]
	if ok {
		q.hasCountries = true
		q.filter.Countries = []string{}
	}
	for _, v := range values {
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				q.filter.Countries = append(q.filter.Countries, c)
			}
		}
	}

	return q, nil
}

// statusCode maps the error taxonomy to an HTTP status
func statusCode(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagInvalidFilter):
		return http.StatusBadRequest
	case goerr.HasTag(err, model.ErrTagFetch), goerr.HasTag(err, model.ErrTagParse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeErrorStatus(w, r, err, statusCode(err))
}

// writeErrorStatus writes an error response. Server side failures are
// reported through apperr.
func writeErrorStatus(w http.ResponseWriter, r *http.Request, err error, status int) {
	if status >= http.StatusInternalServerError {
		apperr.Handle(r.Context(), err)
	} else {
		ctxlog.From(r.Context()).Debug("Request rejected", "error", err, "status", status)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode error response", "error", err)
	}
}
