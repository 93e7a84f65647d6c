package echo

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	app "github.com/nucareers/career-portal/internal/application/graduate"
)

const callerContextKey = "caller"

var errMissingToken = errors.New("missing access token")

// AccessClaims is the payload of an access token: Subject is the user id.
type AccessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	secret     []byte
	cookieName string
}

func NewAuthenticator(secret, cookieName string) *Authenticator {
	return &Authenticator{secret: []byte(secret), cookieName: cookieName}
}

// SignAccessToken issues an HS256 access token for sub with the given role.
func SignAccessToken(secret, sub, role string, ttl time.Duration, now time.Time) (string, error) {
	claims := AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// Middleware resolves the caller from a bearer token or the access-token cookie.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := a.tokenFrom(c)
			if err != nil {
				return fail(c, http.StatusUnauthorized, "Unauthorized", nil)
			}

			claims, err := a.parse(raw)
			if err != nil || claims.Subject == "" || claims.Role == "" {
				return fail(c, http.StatusUnauthorized, "Unauthorized", nil)
			}

			c.Set(callerContextKey, app.Caller{ID: claims.Subject, Role: claims.Role})
			return next(c)
		}
	}
}

func (a *Authenticator) tokenFrom(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > len("Bearer ") && strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):]), nil
	}
	if a.cookieName != "" {
		if cookie, err := c.Cookie(a.cookieName); err == nil && cookie.Value != "" {
			return cookie.Value, nil
		}
	}
	return "", errMissingToken
}

func (a *Authenticator) parse(raw string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// RequireRole rejects callers whose role differs; it must run after Middleware.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if callerFrom(c).Role != role {
				return fail(c, http.StatusForbidden, "Forbidden", nil)
			}
			return next(c)
		}
	}
}

func callerFrom(c echo.Context) app.Caller {
	caller, _ := c.Get(callerContextKey).(app.Caller)
	return caller
}
