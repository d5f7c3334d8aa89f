package models

import (
	"time"

	"github.com/lib/pq"
)

// User is a registered member of the deals room.
type User struct {
	ID              int            `db:"id" json:"id"`
	Name            string         `db:"name" json:"name"`
	Email           string         `db:"email" json:"email"`
	PasswordHash    string         `db:"password_hash" json:"-"`
	Verified        bool           `db:"verified" json:"verified"`
	IsAdmin         bool           `db:"is_admin" json:"is_admin"`
	ProfileImageURL *string        `db:"profile_image_url" json:"profile_image_url,omitempty"`
	Resources       pq.StringArray `db:"resources" json:"resources"`
	PrimaryResource pq.StringArray `db:"primary_resource" json:"primary_resource"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}
