package auth

import (
	"context"
	"net/http"

	"github.com/2beens/fittracker/pkg"
)

// Identity is the authenticated caller, as carried by the bearer token and the cookie session.
type Identity struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	Name              string  `json:"name"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
}

type identityCtxKey struct{}

func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(*Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}

// UserIDFromContext returns the id of the authenticated user, or an empty string.
func UserIDFromContext(ctx context.Context) string {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return ""
	}
	return identity.ID
}

// RequireUserID returns the authenticated user id. When there is none it writes
// a 401 response and returns false.
func RequireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := UserIDFromContext(r.Context())
	if userID == "" {
		pkg.WriteError(w, ErrNotAuthorized)
		return "", false
	}
	return userID, true
}
