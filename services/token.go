package services

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/2HgO/erino-go/config"
	"github.com/2HgO/erino-go/errors"
	"github.com/2HgO/erino-go/models"
)

// DefaultTokenTTL applies when JWT_EXPIRES_IN is absent or unparseable.
const DefaultTokenTTL = 6 * time.Hour

type TokenClaims struct {
	Subject string
	Email   string
}

// CookieOptions are the attributes of the session cookie. MaxAge carries the
// token lifetime; a negative value clears the cookie.
type CookieOptions struct {
	Name     string
	HTTPOnly bool
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
	Path     string
}

type TokenService interface {
	Issue(account *models.Account) (string, error)
	Verify(token string) (*TokenClaims, error)
	CookieOptions() CookieOptions
	ClearCookieOptions() CookieOptions
}

// NewTokenService fails when no signing secret is configured; nothing that
// issues or verifies tokens may start without one.
func NewTokenService(cfg *config.Config, log *zap.Logger) (TokenService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.NewFatalError(errors.NewValidationError("JWT secret is not configured"))
	}
	return &tokenService{
		secret:     []byte(cfg.JWTSecret),
		ttl:        ParseExpiry(cfg.JWTExpiresIn),
		cookieName: cfg.CookieName,
		sameSite:   cfg.CookieSameSite,
		crossSite:  cfg.CrossSite(),
		production: cfg.Production(),
		log:        log,
	}, nil
}

type tokenService struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	sameSite   string
	crossSite  bool
	production bool
	log        *zap.Logger
}

func (t *tokenService) Issue(account *models.Account) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   account.ID,
		"email": account.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(t.ttl).Unix(),
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", errors.NewFatalError(err)
	}
	return signed, nil
}

func (t *tokenService) Verify(token string) (*TokenClaims, error) {
	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewInvalidTokenError()
		}
		return t.secret, nil
	})
	// expired, malformed and forged tokens are indistinguishable to callers
	if err != nil || !parsed.Valid {
		return nil, errors.NewInvalidTokenError()
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.NewInvalidTokenError()
	}
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" {
		return nil, errors.NewInvalidTokenError()
	}

	return &TokenClaims{Subject: sub, Email: email}, nil
}

func (t *tokenService) CookieOptions() CookieOptions {
	opts := CookieOptions{
		Name:     t.cookieName,
		HTTPOnly: true,
		Path:     "/",
		MaxAge:   t.ttl,
		SameSite: http.SameSiteLaxMode,
		Secure:   t.production,
	}

	// a cross-site frontend needs SameSite=None, and browsers reject that
	// without Secure
	if t.crossSite {
		opts.SameSite = http.SameSiteNoneMode
		opts.Secure = true
	}

	switch t.sameSite {
	case "lax":
		opts.SameSite = http.SameSiteLaxMode
	case "strict":
		opts.SameSite = http.SameSiteStrictMode
	case "none":
		opts.SameSite = http.SameSiteNoneMode
		opts.Secure = true
	}

	return opts
}

func (t *tokenService) ClearCookieOptions() CookieOptions {
	opts := t.CookieOptions()
	opts.MaxAge = -time.Second
	return opts
}

var expiryPattern = regexp.MustCompile(`(?i)^(\d+)([smhd])$`)

// ParseExpiry reads a duration string with s/m/h/d suffixes; a bare digit
// string is seconds. Unparseable input falls back to DefaultTokenTTL.
func ParseExpiry(v string) time.Duration {
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}

	match := expiryPattern.FindStringSubmatch(v)
	if match == nil {
		return DefaultTokenTTL
	}
	n, _ := strconv.Atoi(match[1])
	switch strings.ToLower(match[2]) {
	case "s":
		return time.Duration(n) * time.Second
	case "m":
		return time.Duration(n) * time.Minute
	case "h":
		return time.Duration(n) * time.Hour
	default:
		return time.Duration(n) * 24 * time.Hour
	}
}
