package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"deals-room-service/internal/models"
)

var ErrDealNotFound = errors.New("deal not found")

const dealColumns = `id, title, description, category, status, sender_id, created_at, updated_at`

// DealRepository abstracts the public deals feed.
type DealRepository interface {
	CreateDeal(ctx context.Context, senderID int, title, description, category string) (models.Deal, error)
	GetDeal(ctx context.Context, dealID int) (models.Deal, error)
	ListDeals(ctx context.Context, category, status string) ([]models.Deal, error)
}

// DealRepo is a sqlx implementation of DealRepository.
type DealRepo struct {
	db *sqlx.DB
}

// NewDealRepo constructs a DealRepo.
func NewDealRepo(db *sqlx.DB) *DealRepo {
	return &DealRepo{db: db}
}

// CreateDeal stores a public feed message.
func (r *DealRepo) CreateDeal(ctx context.Context, senderID int, title, description, category string) (models.Deal, error) {
	if category == "" {
		category = "general"
	}
	var deal models.Deal
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO deals (title, description, category, sender_id)
         VALUES ($1, $2, $3, $4) RETURNING `+dealColumns,
		title, description, category, senderID).
		StructScan(&deal)
	return deal, err
}

// GetDeal fetches a deal by id.
func (r *DealRepo) GetDeal(ctx context.Context, dealID int) (models.Deal, error) {
	var deal models.Deal
	err := r.db.GetContext(ctx, &deal, `SELECT `+dealColumns+` FROM deals WHERE id=$1`, dealID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Deal{}, ErrDealNotFound
	}
	return deal, err
}

// ListDeals returns deals newest first, optionally filtered by category
// and status. Empty filter values match everything.
func (r *DealRepo) ListDeals(ctx context.Context, category, status string) ([]models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals
        WHERE ($1 = '' OR category=$1) AND ($2 = '' OR status=$2)
        ORDER BY created_at DESC, id DESC`
	var deals []models.Deal
	err := r.db.SelectContext(ctx, &deals, query, category, status)
	return deals, err
}
