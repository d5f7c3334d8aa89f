package ws

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"

	"deals-room-service/internal/models"
	"deals-room-service/internal/observability"
	"deals-room-service/internal/repositories"
)

// FeedHandler upgrades websocket connections for the three realtime feeds.
type FeedHandler struct {
	hub         *Hub
	sessionRepo repositories.SessionRepository
	dmRepo      repositories.DMRepository
	notifRepo   repositories.NotificationRepository
}

// NewFeedHandler constructs a FeedHandler.
func NewFeedHandler(hub *Hub, sessionRepo repositories.SessionRepository, dmRepo repositories.DMRepository, notifRepo repositories.NotificationRepository) *FeedHandler {
	return &FeedHandler{hub: hub, sessionRepo: sessionRepo, dmRepo: dmRepo, notifRepo: notifRepo}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleDeals subscribes the caller to the public deals room.
func (h *FeedHandler) HandleDeals(c *gin.Context) {
	h.handle(c, FeedDeals)
}

// HandleDMs subscribes the caller to their direct-message feed.
func (h *FeedHandler) HandleDMs(c *gin.Context) {
	h.handle(c, FeedDMs)
}

// HandleNotifications subscribes the caller to their notification feed.
func (h *FeedHandler) HandleNotifications(c *gin.Context) {
	h.handle(c, FeedNotifications)
}

func (h *FeedHandler) handle(c *gin.Context, feed string) {
	ctx, span := otel.Tracer("deals-room-service/ws").Start(c.Request.Context(), "ws.handshake")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	session, err := h.authenticate(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	userID := session.UserID

	// The backlog and unread set must be loaded before the upgrade so a
	// broadcast racing the handshake cannot slip past the dedup window.
	var backlog []models.DM
	var unread []models.Notification
	switch feed {
	case FeedDMs:
		backlog, err = h.dmRepo.ListForUser(ctx, userID)
	case FeedNotifications:
		unread, err = h.notifRepo.ListUnread(ctx, userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load feed state"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	traceID := span.SpanContext().TraceID().String()
	requestID := observability.RequestIDFromRequest(c.Request)
	info := ConnInfo{
		ConnID:      newConnID(),
		UserID:      userID,
		DeviceID:    observability.DeviceIDFromRequest(c.Request),
		IP:          observability.IPFromRequest(c.Request),
		RequestID:   requestID,
		TraceID:     traceID,
		ConnectedAt: time.Now(),
	}

	switch feed {
	case FeedDeals:
		h.hub.AddDealsClient(conn, info)
	case FeedDMs:
		h.hub.AddDMClient(userID, conn, info, backlog)
	case FeedNotifications:
		h.hub.AddNotificationClient(userID, conn, info, unread)
	}

	observability.IncWSActive(feed)
	observability.IncWSEvent(feed, "ws_connect")
	publishLifecycle(ctx, feed, info, "ws_connect", "")

	go h.readPump(ctx, feed, conn, info)
}

// readPump keeps the connection alive and tears everything down on close.
// The subscription handle is owned here: whatever ends the loop, the
// connection is always removed from the hub so no dead listener leaks.
func (h *FeedHandler) readPump(ctx context.Context, feed string, conn *websocket.Conn, info ConnInfo) {
	var closeReason string
	defer func() {
		switch feed {
		case FeedDeals:
			h.hub.RemoveDealsClient(conn)
		case FeedDMs:
			h.hub.RemoveDMClient(info.UserID, conn)
		case FeedNotifications:
			h.hub.RemoveNotificationClient(info.UserID, conn)
		}
		observability.DecWSActive(feed)
		observability.IncWSEvent(feed, "ws_disconnect")
		publishLifecycle(ctx, feed, info, "ws_disconnect", closeReason)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			closeReason = err.Error()
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				observability.IncWSEvent(feed, "ws_error")
				publishLifecycle(ctx, feed, info, "ws_error", closeReason)
			}
			return
		}
	}
}

func (h *FeedHandler) authenticate(c *gin.Context) (models.Session, error) {
	token := c.GetHeader("Authorization")
	if token != "" {
		parts := strings.SplitN(token, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return models.Session{}, errors.New("invalid authorization header")
		}
		token = parts[1]
	} else {
		token = c.Query("token")
	}
	if token == "" {
		return models.Session{}, errors.New("missing token")
	}
	return h.sessionRepo.GetSession(c.Request.Context(), token)
}

func publishLifecycle(ctx context.Context, feed string, info ConnInfo, event, reason string) {
	durationMS := int64(0)
	if event != "ws_connect" {
		durationMS = time.Since(info.ConnectedAt).Milliseconds()
	}
	payload := observability.WSEvent{
		WS: observability.WSEventPayload{
			Feed:       feed,
			Event:      event,
			ConnID:     info.ConnID,
			DurationMS: durationMS,
			Reason:     reason,
		},
		Identity: observability.IdentityPayload{
			UserID:   info.UserID,
			DeviceID: info.DeviceID,
			IP:       info.IP,
		},
	}
	_ = observability.PublishEvent(ctx, wsRoutingKey(feed), observability.EventEnvelope{
		EventType: "ws_events",
		EventName: event,
		Payload:   payload,
	}, observability.BuildHeaders(info.RequestID, info.TraceID))
}
