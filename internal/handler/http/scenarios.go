package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/climate-scenarios/internal/utils"
	"github.com/MKhiriev/climate-scenarios/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listScenarios(w http.ResponseWriter, r *http.Request) {
	filters, err := parseScenarioFilters(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	scenarios, err := h.services.ScenarioService.ListScenarios(r.Context(), filters)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, scenarios, http.StatusOK)
}

func (h *Handler) getScenario(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	detail, err := h.services.ScenarioService.GetScenarioDetail(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, detail, http.StatusOK)
}

func (h *Handler) getFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.services.ScenarioService.GetFilterOptions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, opts, http.StatusOK)
}

// parseScenarioFilters reads the listing filters from the query string.
// Absent or empty parameters leave the filter unset.
func parseScenarioFilters(q url.Values) (models.ScenarioFilters, error) {
	var (
		f   models.ScenarioFilters
		err error
	)

	if f.PublisherID, err = queryInt64(q, "publisher_id"); err != nil {
		return f, err
	}
	if f.RegionID, err = queryInt64(q, "region_id"); err != nil {
		return f, err
	}
	if f.StakeholderID, err = queryInt64(q, "stakeholder_id"); err != nil {
		return f, err
	}
	if f.SectorID, err = queryInt64(q, "sector_id"); err != nil {
		return f, err
	}
	if f.YearFrom, err = queryInt32(q, "year_from"); err != nil {
		return f, err
	}
	if f.YearTo, err = queryInt32(q, "year_to"); err != nil {
		return f, err
	}

	f.TypeName = queryString(q, "type_name")
	f.TemperatureTarget = queryString(q, "temperature_target")

	return f, nil
}

func queryString(q url.Values, key string) *string {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func queryInt64(q url.Values, key string) (*int64, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalidQueryParam, key)
	}
	return &n, nil
}

func queryInt32(q url.Values, key string) (*int32, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalidQueryParam, key)
	}
	n32 := int32(n)
	return &n32, nil
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPathID, raw)
	}
	return id, nil
}
