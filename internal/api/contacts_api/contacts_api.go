package contacts_api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/AutoVitrine/AutoVitrine/internal/api/httpresp"
	"github.com/AutoVitrine/AutoVitrine/internal/models"
	"github.com/AutoVitrine/AutoVitrine/internal/services/contacts"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

type ContactsAPI struct {
	svc *contacts.Service
}

func New(svc *contacts.Service) *ContactsAPI {
	return &ContactsAPI{svc: svc}
}

func (a *ContactsAPI) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", a.create)
	return r
}

func (a *ContactsAPI) create(w http.ResponseWriter, r *http.Request) {
	var in models.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpresp.Error(w, http.StatusBadRequest, "invalidRequestBody", httpresp.CategoryValidation, nil)
		return
	}

	conf, err := a.svc.Create(r.Context(), in, httpresp.ClientIP(r))
	if err != nil {
		var verr *contacts.ValidationError
		switch {
		case errors.As(err, &verr):
			httpresp.Error(w, http.StatusBadRequest, verr.Code, httpresp.CategoryValidation, verr.Details)
		case errors.Is(err, contacts.ErrRateLimited):
			httpresp.Error(w, http.StatusTooManyRequests, "tooManyRequests", httpresp.CategoryRateLimit, nil)
		default:
			slog.Error("store contact submission", "err", err)
			httpresp.Error(w, http.StatusInternalServerError, httpresp.CategoryInternal, "Internal Server Error", nil)
		}
		return
	}

	httpresp.Success(w, http.StatusCreated, conf)
}
