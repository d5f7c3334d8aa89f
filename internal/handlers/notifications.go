package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"deals-room-service/internal/repositories"
	"deals-room-service/internal/telemetry"
	"deals-room-service/internal/ws"
)

// NotificationHandler exposes the notification inbox.
type NotificationHandler struct {
	notifRepo repositories.NotificationRepository
	hub       *ws.Hub
	audit     *telemetry.AuditEmitter
}

// NewNotificationHandler builds a NotificationHandler.
func NewNotificationHandler(notifRepo repositories.NotificationRepository, hub *ws.Hub, audit *telemetry.AuditEmitter) *NotificationHandler {
	return &NotificationHandler{notifRepo: notifRepo, hub: hub, audit: audit}
}

// ListNotifications returns the caller's notifications, unread first
// and newest first within each group.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID := c.GetInt("userID")

	notifs, err := h.notifRepo.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifs})
}

// UnreadCount returns the number of unread notifications. When the
// caller has a live notification feed the hub's counter is
// authoritative; otherwise the count comes from the database.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID := c.GetInt("userID")

	if count := h.hub.UnreadCount(userID); count >= 0 {
		c.JSON(http.StatusOK, gin.H{"unread_count": count})
		return
	}

	count, err := h.notifRepo.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// MarkRead marks a single notification as read. Marking an already
// read notification is a no-op rather than an error.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.GetInt("userID")

	notifID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	updated, err := h.notifRepo.MarkNotificationRead(c.Request.Context(), notifID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		h.emitAudit(c, "ERROR", "failed to mark notification read")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notification"})
		return
	}

	h.hub.BroadcastNotificationRead(updated)
	c.JSON(http.StatusOK, updated)
}

// MarkAllRead marks every unread notification as read and pushes each
// update so connected clients converge without a refetch.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetInt("userID")

	updated, err := h.notifRepo.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		h.emitAudit(c, "ERROR", "failed to mark notifications read")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notifications"})
		return
	}

	for _, n := range updated {
		h.hub.BroadcastNotificationRead(n)
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(updated)})
}

func (h *NotificationHandler) emitAudit(c *gin.Context, level, text string) {
	if h.audit == nil {
		return
	}
	h.audit.Emit(c.Request.Context(), level, text, requestIDFromContext(c), userIDFromContext(c))
}
