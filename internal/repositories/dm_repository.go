package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"deals-room-service/internal/models"
)

var ErrMessageNotFound = errors.New("message not found")

const dmColumns = `id, message, sender_id, receiver_id, deal_id, is_read, created_at, updated_at`

// DMRepository defines interactions for direct messages.
type DMRepository interface {
	CreateDM(ctx context.Context, senderID, receiverID int, message string, dealID *int) (models.DM, error)
	ListForUser(ctx context.Context, userID int) ([]models.DM, error)
	ListConversation(ctx context.Context, userID, partnerID int) ([]models.DM, error)
	MarkRead(ctx context.Context, messageID int) (models.DM, error)
}

// DMRepo is a sqlx-backed repository.
type DMRepo struct {
	db *sqlx.DB
}

// NewDMRepo constructs a DMRepo.
func NewDMRepo(db *sqlx.DB) *DMRepo {
	return &DMRepo{db: db}
}

// CreateDM stores a direct message. The row is committed before any
// broadcast happens, so a failure here leaves nothing to roll back.
func (r *DMRepo) CreateDM(ctx context.Context, senderID, receiverID int, message string, dealID *int) (models.DM, error) {
	var dm models.DM
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO dms (message, sender_id, receiver_id, deal_id)
         VALUES ($1, $2, $3, $4) RETURNING `+dmColumns,
		message, senderID, receiverID, dealID).
		StructScan(&dm)
	return dm, err
}

// ListForUser returns every message the user sent or received, unordered
// beyond insertion; conversation grouping happens in memory.
func (r *DMRepo) ListForUser(ctx context.Context, userID int) ([]models.DM, error) {
	var msgs []models.DM
	err := r.db.SelectContext(ctx, &msgs,
		`SELECT `+dmColumns+` FROM dms WHERE sender_id=$1 OR receiver_id=$1 ORDER BY id`, userID)
	return msgs, err
}

// ListConversation returns the thread between two users, oldest first.
func (r *DMRepo) ListConversation(ctx context.Context, userID, partnerID int) ([]models.DM, error) {
	var msgs []models.DM
	err := r.db.SelectContext(ctx, &msgs,
		`SELECT `+dmColumns+` FROM dms
         WHERE (sender_id=$1 AND receiver_id=$2) OR (sender_id=$2 AND receiver_id=$1)
         ORDER BY created_at ASC, id ASC`, userID, partnerID)
	return msgs, err
}

// MarkRead flips a single message to read and returns the updated row.
func (r *DMRepo) MarkRead(ctx context.Context, messageID int) (models.DM, error) {
	var dm models.DM
	err := r.db.QueryRowxContext(ctx,
		`UPDATE dms SET is_read = TRUE, updated_at = NOW() WHERE id=$1 RETURNING `+dmColumns,
		messageID).
		StructScan(&dm)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DM{}, ErrMessageNotFound
	}
	return dm, err
}
