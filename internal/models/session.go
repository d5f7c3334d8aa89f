package models

import "time"

// Session identifies a logged-in user. One row per issued token; the token
// replaces the client-side cached session record.
type Session struct {
	Token     string    `db:"token" json:"token"`
	UserID    int       `db:"user_id" json:"user_id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	LoginTime time.Time `db:"login_time" json:"login_time"`
}
