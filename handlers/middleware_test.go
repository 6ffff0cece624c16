package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/2HgO/erino-go/config"
	"github.com/2HgO/erino-go/errors"
	"github.com/2HgO/erino-go/models"
	"github.com/2HgO/erino-go/services"
	"github.com/2HgO/erino-go/types/requests"
)

type accountServiceMock struct {
	mock.Mock
}

func (m *accountServiceMock) Register(ctx context.Context, req *requests.RegisterRequest) (*models.Account, error) {
	args := m.Called(ctx, req)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *accountServiceMock) Login(ctx context.Context, req *requests.LoginRequest) (*models.Account, error) {
	args := m.Called(ctx, req)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *accountServiceMock) FetchAccountByID(ctx context.Context, id string) (*models.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func newSessionFixture(t *testing.T) (services.TokenService, *accountServiceMock, MiddleWareHandler) {
	t.Helper()
	tokens, err := services.NewTokenService(&config.Config{
		JWTSecret:    "test-secret",
		JWTExpiresIn: "1h",
		CookieName:   "token",
		FrontendURL:  "http://localhost:5173",
	}, zap.NewNop())
	assert.NoError(t, err)

	accounts := &accountServiceMock{}
	return tokens, accounts, NewMiddlewareHandler(accounts, tokens, zap.NewNop())
}

func assertUnauthorized(t *testing.T, res *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	var body struct {
		Type    errors.ErrorType `json:"type"`
		Message string           `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, errors.ErrInvalidToken, body.Type)
	assert.Equal(t, "Unauthorized", body.Message)
}

func TestValidateSession_NoCookie(t *testing.T) {
	_, _, guard := newSessionFixture(t)

	handler := guard.ValidateSession(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	})

	res := httptest.NewRecorder()
	handler(res, httptest.NewRequest(http.MethodGet, "/leads", nil))
	assertUnauthorized(t, res)
}

func TestValidateSession_BadToken(t *testing.T) {
	_, _, guard := newSessionFixture(t)

	handler := guard.ValidateSession(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a forged token")
	})

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "not.a.token"})

	res := httptest.NewRecorder()
	handler(res, req)
	assertUnauthorized(t, res)
}

func TestValidateSession_AccountGone(t *testing.T) {
	tokens, accounts, guard := newSessionFixture(t)

	token, err := tokens.Issue(&models.Account{ID: "acc-1", Email: "user@example.com"})
	assert.NoError(t, err)
	accounts.On("FetchAccountByID", mock.Anything, "acc-1").
		Return(nil, errors.NewNotFoundError("resource not found"))

	handler := guard.ValidateSession(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a deleted account")
	})

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	res := httptest.NewRecorder()
	handler(res, req)
	assertUnauthorized(t, res)
	accounts.AssertExpectations(t)
}

func TestValidateSession_AttachesAccount(t *testing.T) {
	tokens, accounts, guard := newSessionFixture(t)

	stored := &models.Account{ID: "acc-1", Email: "user@example.com", Name: "Test User"}
	token, err := tokens.Issue(stored)
	assert.NoError(t, err)
	accounts.On("FetchAccountByID", mock.Anything, "acc-1").Return(stored, nil)

	var seen *models.Account
	handler := guard.ValidateSession(func(w http.ResponseWriter, r *http.Request) {
		account, ok := AccountFrom(r.Context())
		assert.True(t, ok)
		seen = account
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	res := httptest.NewRecorder()
	handler(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, stored, seen)
	accounts.AssertExpectations(t)
}
