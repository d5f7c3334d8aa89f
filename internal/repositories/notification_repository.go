package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"deals-room-service/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

const notificationColumns = `id, user_id, title, message, type, related_id, is_read, created_at`

// NotificationRepository stores per-user notifications.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error)
	ListForUser(ctx context.Context, userID int) ([]models.Notification, error)
	ListUnread(ctx context.Context, userID int) ([]models.Notification, error)
	ListUnreadFromSender(ctx context.Context, userID, senderID int) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID int) (int, error)
	MarkNotificationRead(ctx context.Context, notificationID, userID int) (models.Notification, error)
	MarkAllRead(ctx context.Context, userID int) ([]models.Notification, error)
}

// NotificationRepo is a sqlx implementation of NotificationRepository.
type NotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo constructs a NotificationRepo.
func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// CreateNotification stores a notification for its recipient.
func (r *NotificationRepo) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	var created models.Notification
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO notifications (user_id, title, message, type, related_id)
         VALUES ($1, $2, $3, $4, $5) RETURNING `+notificationColumns,
		n.UserID, n.Title, n.Message, n.Type, n.RelatedID).
		StructScan(&created)
	return created, err
}

// ListForUser returns the user's notifications, unread first, newest
// first within each group.
func (r *NotificationRepo) ListForUser(ctx context.Context, userID int) ([]models.Notification, error) {
	var notifs []models.Notification
	err := r.db.SelectContext(ctx, &notifs,
		`SELECT `+notificationColumns+` FROM notifications
         WHERE user_id=$1 ORDER BY is_read ASC, created_at DESC, id DESC`, userID)
	return notifs, err
}

// ListUnread returns only the unread notifications, newest first.
func (r *NotificationRepo) ListUnread(ctx context.Context, userID int) ([]models.Notification, error) {
	var notifs []models.Notification
	err := r.db.SelectContext(ctx, &notifs,
		`SELECT `+notificationColumns+` FROM notifications
         WHERE user_id=$1 AND is_read = FALSE ORDER BY created_at DESC, id DESC`, userID)
	return notifs, err
}

// ListUnreadFromSender returns unread notifications whose counterpart is the
// given sender; opening that conversation consumes them.
func (r *NotificationRepo) ListUnreadFromSender(ctx context.Context, userID, senderID int) ([]models.Notification, error) {
	var notifs []models.Notification
	err := r.db.SelectContext(ctx, &notifs,
		`SELECT `+notificationColumns+` FROM notifications
         WHERE user_id=$1 AND related_id=$2 AND is_read = FALSE ORDER BY id`, userID, senderID)
	return notifs, err
}

// UnreadCount counts the user's unread notifications.
func (r *NotificationRepo) UnreadCount(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM notifications WHERE user_id=$1 AND is_read = FALSE`, userID)
	return count, err
}

// MarkNotificationRead flips one of the user's notifications to read and
// returns the row. A notification owned by someone else reads as missing.
func (r *NotificationRepo) MarkNotificationRead(ctx context.Context, notificationID, userID int) (models.Notification, error) {
	var n models.Notification
	err := r.db.QueryRowxContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id=$1 AND user_id=$2 RETURNING `+notificationColumns,
		notificationID, userID).
		StructScan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Notification{}, ErrNotificationNotFound
	}
	return n, err
}

// MarkAllRead flips every unread notification for the user and returns the
// updated rows so feeds can be told about each one.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID int) ([]models.Notification, error) {
	var notifs []models.Notification
	err := r.db.SelectContext(ctx, &notifs,
		`UPDATE notifications SET is_read = TRUE
         WHERE user_id=$1 AND is_read = FALSE RETURNING `+notificationColumns, userID)
	return notifs, err
}
