package models

import "time"

// Deal is a message on the public deals feed.
type Deal struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	Status      string    `db:"status" json:"status"`
	SenderID    int       `db:"sender_id" json:"sender_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// DealEvent is emitted over the public websocket room.
type DealEvent struct {
	Type string `json:"type"`
	Deal *Deal  `json:"deal,omitempty"`
}
