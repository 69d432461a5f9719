package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth_test

type usersRepo interface {
	UpsertGoogleUser(ctx context.Context, profile GoogleProfile) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
}

type identityProvider interface {
	AuthCodeURL(state string) string
	FetchProfile(ctx context.Context, code string) (*GoogleProfile, error)
}

type sessionStore interface {
	Create(ctx context.Context, identity Identity) (string, error)
	Get(ctx context.Context, sessionID string) (*Identity, error)
	Delete(ctx context.Context, sessionID string) error
}

type stateStore interface {
	New(ctx context.Context) (string, error)
	Consume(ctx context.Context, state string) (bool, error)
}

var (
	ErrInvalidState   = fmt.Errorf("%w: invalid oauth state", pkg.ErrValidation)
	ErrMissingCode    = fmt.Errorf("%w: missing authorization code", pkg.ErrValidation)
	ErrNotAuthorized  = fmt.Errorf("%w: missing credentials", pkg.ErrUnauthenticated)
	ErrProviderFailed = errors.New("identity provider failed")
)

type LoginResult struct {
	Token     string
	SessionID string
	User      *User
}

type Service struct {
	users    usersRepo
	provider identityProvider
	sessions sessionStore
	states   stateStore
	tokens   *TokenIssuer
}

func NewService(
	users usersRepo,
	provider identityProvider,
	sessions sessionStore,
	states stateStore,
	tokens *TokenIssuer,
) *Service {
	return &Service{
		users:    users,
		provider: provider,
		sessions: sessions,
		states:   states,
		tokens:   tokens,
	}
}

// LoginURL returns the google consent page URL carrying a fresh OAuth state.
func (s *Service) LoginURL(ctx context.Context) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.loginURL")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	state, err := s.states.New(ctx)
	if err != nil {
		return "", err
	}
	return s.provider.AuthCodeURL(state), nil
}

// CompleteLogin handles the OAuth callback: checks the state, resolves the google
// profile to a user and issues both the bearer token and a cookie session.
func (s *Service) CompleteLogin(ctx context.Context, code, state string) (_ *LoginResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.completeLogin")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	valid, err := s.states.Consume(ctx, state)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrInvalidState
	}
	if code == "" {
		return nil, ErrMissingCode
	}

	profile, err := s.provider.FetchProfile(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderFailed, err)
	}

	user, err := s.users.UpsertGoogleUser(ctx, *profile)
	if err != nil {
		return nil, fmt.Errorf("find or create user: %w", err)
	}
	span.SetAttributes(attribute.String("user.id", user.ID))

	identity := user.Identity()
	token, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, err
	}

	sessionID, err := s.sessions.Create(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &LoginResult{
		Token:     token,
		SessionID: sessionID,
		User:      user,
	}, nil
}

// Authenticate prefers the bearer token. The session is only consulted when no token is sent.
func (s *Service) Authenticate(ctx context.Context, bearerToken, sessionID string) (_ *Identity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.authenticate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	switch {
	case bearerToken != "":
		span.SetAttributes(attribute.String("auth.method", "bearer"))
		return s.tokens.Verify(bearerToken)
	case sessionID != "":
		span.SetAttributes(attribute.String("auth.method", "session"))
		return s.sessions.Get(ctx, sessionID)
	default:
		return nil, ErrNotAuthorized
	}
}

// CurrentUser re-reads the caller's user row. A token of a user that no longer exists
// is treated as missing credentials.
func (s *Service) CurrentUser(ctx context.Context, identity Identity) (_ *Identity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.currentUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.users.Get(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrNotAuthorized
		}
		return nil, fmt.Errorf("current user: %w", err)
	}

	current := user.Identity()
	return &current, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}
