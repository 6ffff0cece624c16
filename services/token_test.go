package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/2HgO/erino-go/config"
	"github.com/2HgO/erino-go/errors"
	"github.com/2HgO/erino-go/models"
)

func newTestTokenService(t *testing.T, cfg *config.Config) TokenService {
	t.Helper()
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "test-secret"
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "token"
	}
	svc, err := NewTokenService(cfg, zap.NewNop())
	assert.NoError(t, err)
	return svc
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService(&config.Config{}, zap.NewNop())
	assert.Error(t, err)
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, &config.Config{JWTExpiresIn: "1h"})
	account := &models.Account{ID: "acc-1", Email: "user@example.com"}

	token, err := svc.Issue(account)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "acc-1", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestTokenService_VerifyRejectsForgedToken(t *testing.T) {
	issuer := newTestTokenService(t, &config.Config{JWTSecret: "first", JWTExpiresIn: "1h"})
	verifier := newTestTokenService(t, &config.Config{JWTSecret: "second", JWTExpiresIn: "1h"})

	token, err := issuer.Issue(&models.Account{ID: "acc-1"})
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
	assert.Equal(t, errors.ErrInvalidToken, errors.AsAppError(err).Type)
}

func TestTokenService_VerifyRejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, &config.Config{JWTExpiresIn: "1h"}).(*tokenService)
	svc.ttl = -time.Hour

	token, err := svc.Issue(&models.Account{ID: "acc-1"})
	assert.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_VerifyRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, &config.Config{JWTExpiresIn: "1h"})
	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}

func TestParseExpiry(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"45", 45 * time.Second},
		{"30s", 30 * time.Second},
		{"10m", 10 * time.Minute},
		{"2h", 2 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"6H", 6 * time.Hour},
		{"", DefaultTokenTTL},
		{"soon", DefaultTokenTTL},
		{"1y", DefaultTokenTTL},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseExpiry(c.in), "input %q", c.in)
	}
}

func TestCookieOptions_LocalDevelopment(t *testing.T) {
	svc := newTestTokenService(t, &config.Config{
		JWTExpiresIn: "6h",
		FrontendURL:  "http://localhost:5173",
		Env:          "development",
	})

	opts := svc.CookieOptions()
	assert.Equal(t, "token", opts.Name)
	assert.True(t, opts.HTTPOnly)
	assert.False(t, opts.Secure)
	assert.Equal(t, http.SameSiteLaxMode, opts.SameSite)
	assert.Equal(t, 6*time.Hour, opts.MaxAge)
	assert.Equal(t, "/", opts.Path)
}

func TestCookieOptions_LocalProduction(t *testing.T) {
	svc := newTestTokenService(t, &config.Config{
		JWTExpiresIn: "6h",
		FrontendURL:  "http://localhost:5173",
		Env:          "production",
	})

	opts := svc.CookieOptions()
	assert.True(t, opts.Secure)
	assert.Equal(t, http.SameSiteLaxMode, opts.SameSite)
}

func TestCookieOptions_CrossSiteForcesNoneAndSecure(t *testing.T) {
	// non-localhost frontend origin: SameSite=None with Secure, whatever the
	// environment says
	svc := newTestTokenService(t, &config.Config{
		JWTExpiresIn: "6h",
		FrontendURL:  "https://leads.example.com",
		Env:          "development",
	})

	opts := svc.CookieOptions()
	assert.True(t, opts.Secure)
	assert.Equal(t, http.SameSiteNoneMode, opts.SameSite)
}

func TestCookieOptions_ExplicitOverrideWins(t *testing.T) {
	svc := newTestTokenService(t, &config.Config{
		JWTExpiresIn:   "6h",
		FrontendURL:    "https://leads.example.com",
		CookieSameSite: "strict",
	})
	assert.Equal(t, http.SameSiteStrictMode, svc.CookieOptions().SameSite)

	svc = newTestTokenService(t, &config.Config{
		JWTExpiresIn:   "6h",
		FrontendURL:    "http://localhost:5173",
		CookieSameSite: "none",
	})
	opts := svc.CookieOptions()
	assert.Equal(t, http.SameSiteNoneMode, opts.SameSite)
	assert.True(t, opts.Secure)
}

func TestClearCookieOptions(t *testing.T) {
	svc := newTestTokenService(t, &config.Config{JWTExpiresIn: "6h"})
	assert.Negative(t, svc.ClearCookieOptions().MaxAge)
}

func TestClampPagination(t *testing.T) {
	assert.Equal(t, 1, clampPage(0))
	assert.Equal(t, 1, clampPage(-3))
	assert.Equal(t, 4, clampPage(4))

	assert.Equal(t, DefaultPageLimit, clampLimit(0))
	assert.Equal(t, 50, clampLimit(50))
	assert.Equal(t, MaxPageLimit, clampLimit(500))
}
