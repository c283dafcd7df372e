package contacts_api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AutoVitrine/AutoVitrine/internal/services/contacts"
	"github.com/AutoVitrine/AutoVitrine/internal/storage/memcontact"
	"github.com/stretchr/testify/require"
)

func validBody() map[string]any {
	return map[string]any{
		"nomeCompleto":       "Maria Oliveira",
		"email":              "maria@example.com",
		"telefone":           "(11) 98888-7777",
		"preferenciaContato": "WhatsApp",
		"idVeiculo":          "1",
		"modeloVeiculo":      "Civic",
		"assunto":            "Informações gerais",
		"mensagem":           "Tenho interesse neste veículo.",
		"termosPrivacidade":  true,
	}
}

func postJSON(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(string(b)))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "198.51.100.4:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateContact(t *testing.T) {
	h := New(contacts.New(memcontact.New())).Routes()

	rec := postJSON(t, h, validBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			IDContato string `json:"idContato"`
			Protocolo string `json:"protocolo"`
			Mensagem  string `json:"mensagem"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.True(t, env.Success)
	require.True(t, strings.HasPrefix(env.Data.IDContato, "contact_"))
	require.Equal(t, time.Now().UTC().Format("20060102")+"00001", env.Data.Protocolo)
	require.Contains(t, env.Data.Mensagem, env.Data.Protocolo)
}

func TestCreateContactValidation(t *testing.T) {
	h := New(contacts.New(memcontact.New())).Routes()

	body := validBody()
	body["email"] = "not-an-email"

	rec := postJSON(t, h, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var env struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.False(t, env.Success)
	require.Equal(t, "emailInvalido", env.Error.Code)
	require.Equal(t, "VALIDATION_ERROR", env.Error.Message)
}

func TestCreateContactValidationDetails(t *testing.T) {
	h := New(contacts.New(memcontact.New())).Routes()

	body := validBody()
	body["preferenciaContato"] = "Fax"

	rec := postJSON(t, h, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var env struct {
		Error struct {
			Code    string   `json:"code"`
			Details []string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "preferenciaContatoInvalida", env.Error.Code)
	require.Equal(t, []string{"Telefone", "E-mail", "WhatsApp"}, env.Error.Details)
}

func TestCreateContactMalformedBody(t *testing.T) {
	h := New(contacts.New(memcontact.New())).Routes()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalidRequestBody")
}

type denyLimiter struct{}

func (denyLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error) {
	return false, limit + 1, nil
}

func TestCreateContactRateLimited(t *testing.T) {
	svc := contacts.New(memcontact.New()).WithRateLimiter(denyLimiter{}, 5)
	h := New(svc).Routes()

	rec := postJSON(t, h, validBody())
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Contains(t, rec.Body.String(), "tooManyRequests")
}

type failingRepo struct{ contacts.Repository }

func (failingRepo) NextProtocolSeq(ctx context.Context) (uint64, error) {
	return 0, context.DeadlineExceeded
}

func TestCreateContactStoreFailure(t *testing.T) {
	h := New(contacts.New(failingRepo{memcontact.New()})).Routes()

	rec := postJSON(t, h, validBody())
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
