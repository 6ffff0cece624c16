package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/2HgO/erino-go/errors"
	"github.com/2HgO/erino-go/services"
	"github.com/2HgO/erino-go/types/requests"
	"github.com/2HgO/erino-go/utils"
)

type LeadHandler interface {
	CreateLead(w http.ResponseWriter, r *http.Request)
	FetchLeads(w http.ResponseWriter, r *http.Request)
	FetchLead(w http.ResponseWriter, r *http.Request)
	UpdateLead(w http.ResponseWriter, r *http.Request)
	DeleteLead(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewLeadHandler(leadService services.LeadService, middlewares MiddleWareHandler, log *zap.Logger) LeadHandler {
	return &leadHandler{
		handler: handler{leadService: leadService, middlewares: middlewares, log: log},
	}
}

type leadHandler struct {
	handler
}

func (l *leadHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("POST /leads", l.middlewares.ValidateSession(l.CreateLead))
	mux.HandleFunc("GET /leads", l.middlewares.ValidateSession(l.FetchLeads))
	mux.HandleFunc("GET /leads/{id}", l.middlewares.ValidateSession(l.FetchLead))
	mux.HandleFunc("PUT /leads/{id}", l.middlewares.ValidateSession(l.UpdateLead))
	mux.HandleFunc("DELETE /leads/{id}", l.middlewares.ValidateSession(l.DeleteLead))
}

func (l *leadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFrom(r.Context())
	if !ok {
		errors.NewInvalidTokenError().Serialize(w)
		return
	}

	req := new(requests.CreateLeadRequest)
	if err := utils.Bind(r, req); err != nil {
		errors.HandleBindError(err).Serialize(w)
		return
	}

	lead, err := l.leadService.CreateLead(r.Context(), account.ID, req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 201, lead)
}

func (l *leadHandler) FetchLeads(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFrom(r.Context())
	if !ok {
		errors.NewInvalidTokenError().Serialize(w)
		return
	}

	req := new(requests.ListLeadsRequest)
	if err := utils.Bind(r, req); err != nil {
		errors.HandleBindError(err).Serialize(w)
		return
	}

	res, err := l.leadService.FetchLeads(r.Context(), account.ID, req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}

func (l *leadHandler) FetchLead(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFrom(r.Context())
	if !ok {
		errors.NewInvalidTokenError().Serialize(w)
		return
	}

	lead, err := l.leadService.FetchLead(r.Context(), account.ID, r.PathValue("id"))
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, lead)
}

func (l *leadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFrom(r.Context())
	if !ok {
		errors.NewInvalidTokenError().Serialize(w)
		return
	}

	req := &requests.UpdateLeadRequest{LeadID: r.PathValue("id")}
	if err := utils.Bind(r, req); err != nil {
		errors.HandleBindError(err).Serialize(w)
		return
	}

	lead, err := l.leadService.UpdateLead(r.Context(), account.ID, req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, lead)
}

func (l *leadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFrom(r.Context())
	if !ok {
		errors.NewInvalidTokenError().Serialize(w)
		return
	}

	if err := l.leadService.DeleteLead(r.Context(), account.ID, r.PathValue("id")); err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	w.WriteHeader(204)
	w.Write(nil)
}
