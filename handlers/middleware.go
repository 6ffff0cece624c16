package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/2HgO/erino-go/errors"
	"github.com/2HgO/erino-go/models"
	"github.com/2HgO/erino-go/services"
)

type MiddleWareHandler interface {
	ValidateSession(http.HandlerFunc) http.HandlerFunc
}

type middlewareHandler struct {
	accountService services.AccountService
	tokenService   services.TokenService

	log *zap.Logger
}

func NewMiddlewareHandler(account services.AccountService, token services.TokenService, log *zap.Logger) MiddleWareHandler {
	return &middlewareHandler{accountService: account, tokenService: token, log: log}
}

type accountContextKey struct{}

// AccountFrom returns the identity the session guard attached to the request
// context.
func AccountFrom(ctx context.Context) (*models.Account, bool) {
	account, ok := ctx.Value(accountContextKey{}).(*models.Account)
	return account, ok
}

// ValidateSession extracts the session cookie, verifies the token and
// resolves the account before the wrapped handler runs. Every failure mode
// reads the same to the client; expired, forged and orphaned tokens are not
// distinguished.
func (m *middlewareHandler) ValidateSession(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.tokenService.CookieOptions().Name)
		if err != nil || cookie.Value == "" {
			errors.NewInvalidTokenError().Serialize(w)
			return
		}

		claims, err := m.tokenService.Verify(cookie.Value)
		if err != nil {
			errors.NewInvalidTokenError().Serialize(w)
			return
		}

		account, err := m.accountService.FetchAccountByID(r.Context(), claims.Subject)
		if err != nil {
			errors.NewInvalidTokenError().Serialize(w)
			return
		}

		h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), accountContextKey{}, account)))
	}
}
