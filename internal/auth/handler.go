package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type authService interface {
	LoginURL(ctx context.Context) (string, error)
	CompleteLogin(ctx context.Context, code, state string) (*LoginResult, error)
	CurrentUser(ctx context.Context, identity Identity) (*Identity, error)
	Logout(ctx context.Context, sessionID string) error
}

type HandlerParams struct {
	FrontendURL   string
	SessionTTL    time.Duration
	SecureCookies bool
}

type Handler struct {
	service        authService
	metricsManager *metrics.Manager
	frontendURL    string
	sessionTTL     time.Duration
	secureCookies  bool
}

func NewHandler(service authService, metricsManager *metrics.Manager, params HandlerParams) *Handler {
	if params.SessionTTL <= 0 {
		params.SessionTTL = DefaultSessionTTL
	}
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
		frontendURL:    strings.TrimSuffix(params.FrontendURL, "/"),
		sessionTTL:     params.SessionTTL,
		secureCookies:  params.SecureCookies,
	}
}

func (h *Handler) failureRedirectURL() string {
	return h.frontendURL + "/login?error=auth_failed"
}

func (h *Handler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.google")
	defer span.End()

	loginURL, err := h.service.LoginURL(ctx)
	if err != nil {
		log.Errorf("google login, build login url: %s", err)
		http.Redirect(w, r, h.failureRedirectURL(), http.StatusFound)
		return
	}

	http.Redirect(w, r, loginURL, http.StatusFound)
}

func (h *Handler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.google.callback")
	defer span.End()

	query := r.URL.Query()
	if providerErr := query.Get("error"); providerErr != "" {
		log.Warnf("google callback, provider returned error: %s", providerErr)
		h.metricsManager.CounterLogins.WithLabelValues("denied").Inc()
		http.Redirect(w, r, h.failureRedirectURL(), http.StatusFound)
		return
	}

	result, err := h.service.CompleteLogin(ctx, query.Get("code"), query.Get("state"))
	if err != nil {
		log.Errorf("google callback, complete login: %s", err)
		h.metricsManager.CounterLogins.WithLabelValues("failed").Inc()
		http.Redirect(w, r, h.failureRedirectURL(), http.StatusFound)
		return
	}
	h.metricsManager.CounterLogins.WithLabelValues("success").Inc()
	log.Debugf("user %s logged in", result.User.ID)

	http.SetCookie(w, h.sessionCookie(result.SessionID, int(h.sessionTTL.Seconds())))

	redirectURL := h.frontendURL + "/auth/callback?token=" + url.QueryEscape(result.Token)
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.me")
	defer span.End()

	identity, ok := IdentityFromContext(ctx)
	if !ok {
		pkg.WriteError(w, ErrNotAuthorized)
		return
	}

	current, err := h.service.CurrentUser(ctx, *identity)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, map[string]any{"user": current}, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	var sessionID string
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		sessionID = cookie.Value
	}

	if err := h.service.Logout(ctx, sessionID); err != nil {
		log.Errorf("logout: %s", err)
		pkg.WriteErrorMessage(w, "failed to logout", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.sessionCookie("", -1))
	pkg.WriteMessage(w, "Logged out successfully")
}

func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if h.secureCookies {
		// frontend and api live on different origins in production
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: sameSite,
	}
}
