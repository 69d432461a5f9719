package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type authenticator interface {
	Authenticate(ctx context.Context, bearerToken, sessionID string) (*auth.Identity, error)
}

const unauthenticatedMessage = "You must be logged in to access this resource"

type AuthMiddlewareHandler struct {
	authenticator authenticator
	allowedPaths  map[string]bool
}

func NewAuthMiddlewareHandler(authenticator authenticator) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		authenticator: authenticator,
		allowedPaths: map[string]bool{
			"/health": true,
			"/api":    true,

			// login-logout:
			"/api/auth/google":          true,
			"/api/auth/google/callback": true,
			"/api/auth/logout":          true,
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	return h.allowedPaths[strings.TrimSuffix(path, "/")] || path == "/"
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions || h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			var sessionID string
			if cookie, err := r.Cookie(auth.SessionCookieName); err == nil {
				sessionID = cookie.Value
			}

			if token == "" && sessionID == "" {
				log.Tracef("[missing credentials] [auth middleware] unauthorized => %s", r.URL.Path)
				span.SetStatus(codes.Error, "missing-credentials")
				pkg.WriteErrorMessage(w, unauthenticatedMessage, http.StatusUnauthorized)
				return
			}

			identity, err := h.authenticator.Authenticate(ctx, token, sessionID)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "not-logged")
				if pkg.StatusCode(err) == http.StatusUnauthorized {
					log.Tracef("[invalid credentials] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				} else {
					log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
				}
				pkg.WriteErrorMessage(w, unauthenticatedMessage, http.StatusUnauthorized)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithIdentity(r.Context(), identity)))
		})
	}
}
