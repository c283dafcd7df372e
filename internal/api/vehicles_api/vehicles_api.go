package vehicles_api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/AutoVitrine/AutoVitrine/internal/api/httpresp"
	"github.com/AutoVitrine/AutoVitrine/internal/models"
	"github.com/AutoVitrine/AutoVitrine/internal/services/vehicles"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

type VehiclesAPI struct {
	svc *vehicles.Service
}

func New(svc *vehicles.Service) *VehiclesAPI {
	return &VehiclesAPI{svc: svc}
}

func (a *VehiclesAPI) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", a.list)
	r.Get("/filter-options", a.filterOptions)
	r.Get("/modelos-by-marcas", a.modelosByMarcas)
	r.Get("/{id}", a.get)
	return r
}

func (a *VehiclesAPI) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := intOrDefault(q.Get("page"), 1)
	pageSize := intOrDefault(q.Get("pageSize"), 12)
	sortBy := q.Get("sortBy")
	if sortBy == "" {
		sortBy = models.SortRelevancia
	}

	if page < 1 {
		httpresp.Error(w, http.StatusBadRequest, "pageNumberMustBeGreaterThanZero", httpresp.CategoryValidation, nil)
		return
	}
	if !containsInt(models.ValidPageSizes, pageSize) {
		httpresp.Error(w, http.StatusBadRequest, "pageSizeMustBeOneOf12_24_36_48", httpresp.CategoryValidation, models.ValidPageSizes)
		return
	}
	if !containsString(models.ValidSortOrders, sortBy) {
		httpresp.Error(w, http.StatusBadRequest, "invalidSortOrder", httpresp.CategoryValidation, models.ValidSortOrders)
		return
	}

	var filters models.VehicleFilters

	if raw := q.Get("marcas"); raw != "" {
		filters.Marcas = splitTrim(raw)
	}
	if raw := q.Get("modelos"); raw != "" {
		filters.Modelos = splitTrim(raw)
	}

	if raw := q.Get("anoMin"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1900 {
			httpresp.Error(w, http.StatusBadRequest, "invalidMinimumYear", httpresp.CategoryValidation, nil)
			return
		}
		filters.AnoMin = &v
	}
	if raw := q.Get("anoMax"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1900 {
			httpresp.Error(w, http.StatusBadRequest, "invalidMaximumYear", httpresp.CategoryValidation, nil)
			return
		}
		filters.AnoMax = &v
	}
	if filters.AnoMin != nil && filters.AnoMax != nil && *filters.AnoMin > *filters.AnoMax {
		httpresp.Error(w, http.StatusBadRequest, "minimumYearCannotBeGreaterThanMaximumYear", httpresp.CategoryValidation, nil)
		return
	}

	if raw := q.Get("precoMin"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			httpresp.Error(w, http.StatusBadRequest, "invalidMinimumPrice", httpresp.CategoryValidation, nil)
			return
		}
		filters.PrecoMin = &v
	}
	if raw := q.Get("precoMax"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			httpresp.Error(w, http.StatusBadRequest, "invalidMaximumPrice", httpresp.CategoryValidation, nil)
			return
		}
		filters.PrecoMax = &v
	}
	if filters.PrecoMin != nil && filters.PrecoMax != nil && *filters.PrecoMin > *filters.PrecoMax {
		httpresp.Error(w, http.StatusBadRequest, "minimumPriceCannotBeGreaterThanMaximumPrice", httpresp.CategoryValidation, nil)
		return
	}

	if raw := q.Get("cambios"); raw != "" {
		filters.Cambios = splitTrim(raw)
		var invalid []string
		for _, c := range filters.Cambios {
			if !containsString(models.ValidCambios, c) {
				invalid = append(invalid, c)
			}
		}
		if len(invalid) > 0 {
			httpresp.Error(w, http.StatusBadRequest, "invalidTransmissionType", httpresp.CategoryValidation, map[string]any{
				"valid":   models.ValidCambios,
				"invalid": invalid,
			})
			return
		}
	}

	params := models.ListParams{
		Page:     page,
		PageSize: pageSize,
		Filters:  filters,
		SortBy:   sortBy,
	}

	result, err := a.svc.List(r.Context(), params)
	if err != nil {
		internalError(w, err)
		return
	}

	// A stale page past the last one is re-run against the last page
	// instead of returning an empty slice.
	if result.TotalPages > 0 && page > result.TotalPages {
		params.Page = result.TotalPages
		result, err = a.svc.List(r.Context(), params)
		if err != nil {
			internalError(w, err)
			return
		}
	}

	httpresp.Success(w, http.StatusOK, result)
}

func (a *VehiclesAPI) filterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := a.svc.FilterOptions(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	httpresp.Success(w, http.StatusOK, options)
}

func (a *VehiclesAPI) modelosByMarcas(w http.ResponseWriter, r *http.Request) {
	var marcas []string
	if raw := r.URL.Query().Get("marcas"); raw != "" {
		marcas = splitTrim(raw)
	}
	modelos, err := a.svc.ModelosByMarcas(r.Context(), marcas)
	if err != nil {
		internalError(w, err)
		return
	}
	httpresp.Success(w, http.StatusOK, map[string]any{"modelos": modelos})
}

func (a *VehiclesAPI) get(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		httpresp.Error(w, http.StatusBadRequest, "vehicleIdRequired", httpresp.CategoryValidation, nil)
		return
	}

	detail, err := a.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, vehicles.ErrNotFound) {
			httpresp.Error(w, http.StatusNotFound, "vehicleNotFound", httpresp.CategoryNotFound, nil)
			return
		}
		internalError(w, err)
		return
	}
	httpresp.Success(w, http.StatusOK, detail)
}

func internalError(w http.ResponseWriter, _ error) {
	httpresp.Error(w, http.StatusInternalServerError, httpresp.CategoryInternal, "Internal Server Error", nil)
}

// intOrDefault mirrors lenient client behavior: a value that does not
// parse falls back to the default instead of failing the request.
func intOrDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func splitTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
