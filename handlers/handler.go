package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/2HgO/erino-go/services"
)

type handler struct {
	accountService services.AccountService
	leadService    services.LeadService
	tokenService   services.TokenService
	healthService  services.HealthService
	middlewares    MiddleWareHandler

	log *zap.Logger
}

type Handler interface {
	ServeHttp(*http.ServeMux)
}
