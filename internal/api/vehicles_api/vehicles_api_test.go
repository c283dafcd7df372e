package vehicles_api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AutoVitrine/AutoVitrine/internal/models"
	"github.com/AutoVitrine/AutoVitrine/internal/services/vehicles"
	"github.com/AutoVitrine/AutoVitrine/internal/storage/memvehicle"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := vehicles.New(memvehicle.New(), nil, 0)
	return New(svc).Routes()
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

type errEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) errEnvelope {
	t.Helper()
	var env errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.False(t, env.Success)
	return env
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) models.ListResult {
	t.Helper()
	var env struct {
		Success bool             `json:"success"`
		Data    models.ListResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.True(t, env.Success)
	return env.Data
}

func TestListDefaults(t *testing.T) {
	h := newTestRouter(t)

	rec := doGet(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeList(t, rec)
	require.Equal(t, 5, data.Total)
	require.Equal(t, 1, data.Page)
	require.Equal(t, 12, data.PageSize)
	require.Equal(t, 1, data.TotalPages)
	require.Len(t, data.Vehicles, 5)
}

func TestListParamValidation(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		code   string
	}{
		{"page below one", "/?page=0", "pageNumberMustBeGreaterThanZero"},
		{"unsupported page size", "/?pageSize=13", "pageSizeMustBeOneOf12_24_36_48"},
		{"unknown sort order", "/?sortBy=preco", "invalidSortOrder"},
		{"year before 1900", "/?anoMin=1889", "invalidMinimumYear"},
		{"non-numeric max year", "/?anoMax=abc", "invalidMaximumYear"},
		{"inverted year range", "/?anoMin=2024&anoMax=2020", "minimumYearCannotBeGreaterThanMaximumYear"},
		{"negative min price", "/?precoMin=-1", "invalidMinimumPrice"},
		{"non-numeric max price", "/?precoMax=carro", "invalidMaximumPrice"},
		{"inverted price range", "/?precoMin=90000&precoMax=50000", "minimumPriceCannotBeGreaterThanMaximumPrice"},
		{"unknown transmission", "/?cambios=Foo", "invalidTransmissionType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, h, tt.target)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeErr(t, rec)
			require.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestListNonNumericPageFallsBack(t *testing.T) {
	h := newTestRouter(t)

	rec := doGet(t, h, "/?page=abc&pageSize=xyz")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeList(t, rec)
	require.Equal(t, 1, data.Page)
	require.Equal(t, 12, data.PageSize)
}

func TestListTransmissionDetails(t *testing.T) {
	h := newTestRouter(t)

	rec := doGet(t, h, "/?cambios=Manual,Tiptronic")
	env := decodeErr(t, rec)
	require.Equal(t, "invalidTransmissionType", env.Error.Code)

	var details struct {
		Valid   []string `json:"valid"`
		Invalid []string `json:"invalid"`
	}
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	require.Equal(t, models.ValidCambios, details.Valid)
	require.Equal(t, []string{"Tiptronic"}, details.Invalid)
}

func TestListFiltersAndSorting(t *testing.T) {
	h := newTestRouter(t)

	rec := doGet(t, h, "/?marcas=Honda,Toyota&sortBy=preco_asc")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeList(t, rec)
	require.Equal(t, 2, data.Total)
	require.Equal(t, "Corolla", data.Vehicles[0].Modelo)
	require.Equal(t, "Civic", data.Vehicles[1].Modelo)
}

func TestListPagePastEndReturnsLastPage(t *testing.T) {
	h := newTestRouter(t)

	rec := doGet(t, h, "/?page=99")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeList(t, rec)
	require.Equal(t, 1, data.Page)
	require.Len(t, data.Vehicles, 5)
}

func TestFilterOptions(t *testing.T) {
	h := newTestRouter(t)

	rec := doGet(t, h, "/filter-options")
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data models.FilterOptions `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Contains(t, env.Data.Marcas, "Honda")
	require.Contains(t, env.Data.Cambios, "CVT")
	require.NotEmpty(t, env.Data.Anos)
}

func TestModelosByMarcas(t *testing.T) {
	h := newTestRouter(t)

	rec := doGet(t, h, "/modelos-by-marcas?marcas=Honda")
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data struct {
			Modelos []string `json:"modelos"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, []string{"Civic"}, env.Data.Modelos)
}

func TestGetByID(t *testing.T) {
	h := newTestRouter(t)

	rec := doGet(t, h, "/1")
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data models.VehicleDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "1", env.Data.ID)
	require.Equal(t, "Civic", env.Data.Especificacoes.Modelo)
}

func TestGetByIDNotFound(t *testing.T) {
	h := newTestRouter(t)

	rec := doGet(t, h, "/999")
	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeErr(t, rec)
	require.Equal(t, "vehicleNotFound", env.Error.Code)
}

func TestGetByIDBlank(t *testing.T) {
	h := newTestRouter(t)

	rec := doGet(t, h, "/%20")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeErr(t, rec)
	require.Equal(t, "vehicleIdRequired", env.Error.Code)
}
