package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittracker/pkg"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 30 * 24 * time.Hour

var ErrInvalidToken = fmt.Errorf("%w: invalid or expired token", pkg.ErrUnauthenticated)

type TokenClaims struct {
	UserID            string  `json:"id"`
	Email             string  `json:"email"`
	Name              string  `json:"name"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 bearer tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (i *TokenIssuer) Issue(identity Identity) (string, error) {
	now := i.now()
	claims := TokenClaims{
		UserID:            identity.ID,
		Email:             identity.Email,
		Name:              identity.Name,
		ProfilePictureURL: identity.ProfilePictureURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (i *TokenIssuer) Verify(tokenString string) (*Identity, error) {
	var claims TokenClaims
	_, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(token *jwt.Token) (any, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	return &Identity{
		ID:                claims.UserID,
		Email:             claims.Email,
		Name:              claims.Name,
		ProfilePictureURL: claims.ProfilePictureURL,
	}, nil
}
