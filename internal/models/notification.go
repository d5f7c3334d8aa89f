package models

import "time"

// Notification kinds delivered to the deals-room client.
const (
	NotificationDMRequest = "dm_request"
	NotificationDMMessage = "dm_message"
)

// Notification is an alert for a user. RelatedID holds the counterpart
// user id (the sender of the message or chat request).
type Notification struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Title     string    `db:"title" json:"title"`
	Message   string    `db:"message" json:"message"`
	Type      string    `db:"type" json:"type"`
	RelatedID int       `db:"related_id" json:"related_id"`
	IsRead    bool      `db:"is_read" json:"is_read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NotificationEvent is emitted over a user's notification websocket feed.
// UnreadCount carries the feed's running unread total.
type NotificationEvent struct {
	Type         string        `json:"type"`
	Notification *Notification `json:"notification,omitempty"`
	UnreadCount  int           `json:"unread_count"`
}
