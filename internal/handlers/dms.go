package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"deals-room-service/internal/conversations"
	"deals-room-service/internal/models"
	"deals-room-service/internal/observability"
	"deals-room-service/internal/repositories"
	"deals-room-service/internal/telemetry"
	"deals-room-service/internal/ws"
)

// DMHandler manages direct messages, conversation summaries and the
// notifications produced by DM traffic.
type DMHandler struct {
	dmRepo    repositories.DMRepository
	notifRepo repositories.NotificationRepository
	userRepo  repositories.UserRepository
	hub       *ws.Hub
	audit     *telemetry.AuditEmitter
}

// NewDMHandler builds a DMHandler.
func NewDMHandler(dmRepo repositories.DMRepository, notifRepo repositories.NotificationRepository, userRepo repositories.UserRepository, hub *ws.Hub, audit *telemetry.AuditEmitter) *DMHandler {
	return &DMHandler{dmRepo: dmRepo, notifRepo: notifRepo, userRepo: userRepo, hub: hub, audit: audit}
}

// ListConversations returns one summary per conversation partner,
// ordered by most recent message.
func (h *DMHandler) ListConversations(c *gin.Context) {
	userID := c.GetInt("userID")

	msgs, err := h.dmRepo.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}

	names, err := userDirectory(c, h.userRepo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user info"})
		return
	}

	summaries := conversations.BuildSummaries(msgs, userID, func(id int) (string, bool) {
		name, ok := names[id]
		return name, ok
	})
	c.JSON(http.StatusOK, gin.H{"conversations": summaries})
}

// GetConversation returns the full message history with one partner and
// marks the partner's unread messages as read. Each read update is
// committed individually so a failure part-way leaves earlier updates
// in place.
func (h *DMHandler) GetConversation(c *gin.Context) {
	userID := c.GetInt("userID")

	partnerID, err := strconv.Atoi(c.Param("partner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid partner id"})
		return
	}

	msgs, err := h.dmRepo.ListConversation(c.Request.Context(), userID, partnerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load conversation"})
		return
	}

	for _, id := range conversations.UnreadMessageIDs(msgs, partnerID, userID) {
		updated, err := h.dmRepo.MarkRead(c.Request.Context(), id)
		if err != nil {
			h.emitAudit(c, "ERROR", "failed to mark message read")
			continue
		}
		for i := range msgs {
			if msgs[i].ID == updated.ID {
				msgs[i] = updated
			}
		}
		h.hub.BroadcastDMRead(updated)
	}

	h.clearSenderNotifications(c, userID, partnerID)

	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// SendDM stores a direct message, notifies the receiver and pushes the
// message to both parties' feeds.
func (h *DMHandler) SendDM(c *gin.Context) {
	userID := c.GetInt("userID")

	var req struct {
		ReceiverID int    `json:"receiver_id" binding:"required"`
		Message    string `json:"message" binding:"required"`
		DealID     *int   `json:"deal_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ReceiverID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot message yourself"})
		return
	}
	if _, err := h.userRepo.GetUserByID(c.Request.Context(), req.ReceiverID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "receiver not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load receiver"})
		return
	}

	dm, err := h.dmRepo.CreateDM(c.Request.Context(), userID, req.ReceiverID, req.Message, req.DealID)
	if err != nil {
		h.emitAudit(c, "ERROR", "failed to store direct message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	notif, err := h.notifRepo.CreateNotification(c.Request.Context(), models.Notification{
		UserID:    req.ReceiverID,
		Title:     "New Message",
		Message:   c.GetString("userName") + ": " + truncate(req.Message, 50),
		Type:      models.NotificationDMMessage,
		RelatedID: userID,
	})
	if err != nil {
		h.emitAudit(c, "ERROR", "failed to store dm notification")
	} else {
		observability.IncNotificationCreated(models.NotificationDMMessage)
		h.hub.BroadcastNotification(notif)
	}

	observability.IncMessageSent("dm")
	h.hub.BroadcastDM(dm)
	h.emitAudit(c, "INFO", "direct message sent")
	c.JSON(http.StatusCreated, dm)
}

// RequestDM notifies another user that the sender wants to open a
// conversation, without storing a message.
func (h *DMHandler) RequestDM(c *gin.Context) {
	userID := c.GetInt("userID")

	var req struct {
		ReceiverID int `json:"receiver_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ReceiverID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot message yourself"})
		return
	}
	if _, err := h.userRepo.GetUserByID(c.Request.Context(), req.ReceiverID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "receiver not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load receiver"})
		return
	}

	notif, err := h.notifRepo.CreateNotification(c.Request.Context(), models.Notification{
		UserID:    req.ReceiverID,
		Title:     "New Message Request",
		Message:   c.GetString("userName") + " wants to start a conversation with you",
		Type:      models.NotificationDMRequest,
		RelatedID: userID,
	})
	if err != nil {
		h.emitAudit(c, "ERROR", "failed to store dm request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send request"})
		return
	}

	observability.IncNotificationCreated(models.NotificationDMRequest)
	h.hub.BroadcastNotification(notif)
	h.emitAudit(c, "INFO", "conversation requested")
	c.JSON(http.StatusCreated, notif)
}

// clearSenderNotifications marks DM notifications from the partner as
// read once the conversation has been opened.
func (h *DMHandler) clearSenderNotifications(c *gin.Context, userID, partnerID int) {
	pending, err := h.notifRepo.ListUnreadFromSender(c.Request.Context(), userID, partnerID)
	if err != nil {
		h.emitAudit(c, "ERROR", "failed to load pending notifications")
		return
	}
	for _, n := range pending {
		updated, err := h.notifRepo.MarkNotificationRead(c.Request.Context(), n.ID, userID)
		if err != nil {
			h.emitAudit(c, "ERROR", "failed to clear notification")
			continue
		}
		h.hub.BroadcastNotificationRead(updated)
	}
}

func (h *DMHandler) emitAudit(c *gin.Context, level, text string) {
	if h.audit == nil {
		return
	}
	h.audit.Emit(c.Request.Context(), level, text, requestIDFromContext(c), userIDFromContext(c))
}
