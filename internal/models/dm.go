package models

import "time"

// DM is a direct message between two users. Rows are immutable except
// IsRead, which flips to true when the receiver opens the conversation.
type DM struct {
	ID         int       `db:"id" json:"id"`
	Message    string    `db:"message" json:"message"`
	SenderID   int       `db:"sender_id" json:"sender_id"`
	ReceiverID int       `db:"receiver_id" json:"receiver_id"`
	DealID     *int      `db:"deal_id" json:"deal_id,omitempty"`
	IsRead     bool      `db:"is_read" json:"is_read"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// DMEvent is emitted over a user's direct-message websocket feed.
type DMEvent struct {
	Type    string `json:"type"`
	Message *DM    `json:"message,omitempty"`
}
