package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/2HgO/erino-go/errors"
	"github.com/2HgO/erino-go/models"
	"github.com/2HgO/erino-go/services"
	"github.com/2HgO/erino-go/types/requests"
	"github.com/2HgO/erino-go/types/responses"
	"github.com/2HgO/erino-go/utils"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewAuthHandler(accountService services.AccountService, tokenService services.TokenService, middlewares MiddleWareHandler, log *zap.Logger) AuthHandler {
	return &authHandler{
		handler: handler{accountService: accountService, tokenService: tokenService, middlewares: middlewares, log: log},
	}
}

type authHandler struct {
	handler
}

func (a *authHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/register", a.Register)
	mux.HandleFunc("POST /auth/login", a.Login)
	mux.HandleFunc("POST /auth/logout", a.Logout)

	mux.HandleFunc("GET /auth/me", a.middlewares.ValidateSession(a.Me))
}

func (a *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	req := new(requests.RegisterRequest)
	if err := utils.Bind(r, req); err != nil {
		errors.HandleBindError(err).Serialize(w)
		return
	}

	account, err := a.accountService.Register(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	if !a.setSessionCookie(w, account) {
		return
	}
	utils.JSON(w, 201, &responses.UserResponse{ID: account.ID, Email: account.Email, Name: account.Name})
}

func (a *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	req := new(requests.LoginRequest)
	if err := utils.Bind(r, req); err != nil {
		errors.HandleBindError(err).Serialize(w)
		return
	}

	account, err := a.accountService.Login(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	if !a.setSessionCookie(w, account) {
		return
	}
	utils.JSON(w, 200, &responses.UserResponse{ID: account.ID, Email: account.Email, Name: account.Name})
}

func (a *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// clearing is unconditional; no session required
	opts := a.tokenService.ClearCookieOptions()
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    "",
		Path:     opts.Path,
		MaxAge:   -1,
		HttpOnly: opts.HTTPOnly,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})

	utils.JSON(w, 200, &responses.MessageResponse{Message: "Logged out"})
}

func (a *authHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := AccountFrom(r.Context())
	if !ok {
		errors.NewInvalidTokenError().Serialize(w)
		return
	}

	// re-read so a concurrently deleted account reads as unauthorized
	account, err := a.accountService.FetchAccountByID(r.Context(), identity.ID)
	if err != nil {
		errors.NewInvalidTokenError().Serialize(w)
		return
	}

	utils.JSON(w, 200, &responses.UserResponse{ID: account.ID, Email: account.Email, Name: account.Name})
}

func (a *authHandler) setSessionCookie(w http.ResponseWriter, account *models.Account) bool {
	token, err := a.tokenService.Issue(account)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return false
	}

	opts := a.tokenService.CookieOptions()
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    token,
		Path:     opts.Path,
		MaxAge:   int(opts.MaxAge.Seconds()),
		HttpOnly: opts.HTTPOnly,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
	return true
}
