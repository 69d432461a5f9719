package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUserNotFound = fmt.Errorf("user %w", pkg.ErrNotFound)

type UsersRepo struct {
	db *pgxpool.Pool
}

func NewUsersRepo(db *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

// UpsertGoogleUser creates the user on first login. Known users get their name
// and avatar refreshed, email stays as first seen.
func (r *UsersRepo) UpsertGoogleUser(ctx context.Context, profile GoogleProfile) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO users (id, google_id, email, name, profile_picture_url)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (google_id) DO UPDATE
				SET name = EXCLUDED.name,
					profile_picture_url = EXCLUDED.profile_picture_url,
					updated_at = now()
			RETURNING id, google_id, email, name, profile_picture_url, created_at, updated_at;`,
		uuid.NewString(), profile.GoogleID, profile.Email, profile.Name, profile.PictureURL,
	)

	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return user, nil
}

func (r *UsersRepo) Get(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`SELECT id, google_id, email, name, profile_picture_url, created_at, updated_at
			FROM users WHERE id = $1;`,
		id,
	)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID,
		&u.GoogleID,
		&u.Email,
		&u.Name,
		&u.ProfilePictureURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
