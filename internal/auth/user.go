package auth

import (
	"time"
)

type User struct {
	ID                string    `json:"id"`
	GoogleID          string    `json:"googleId"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	ProfilePictureURL *string   `json:"profilePictureUrl"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (u *User) Identity() Identity {
	return Identity{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}

// GoogleProfile is the subset of the google userinfo we keep.
type GoogleProfile struct {
	GoogleID   string
	Email      string
	Name       string
	PictureURL *string
}
