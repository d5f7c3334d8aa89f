package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"deals-room-service/internal/conversations"
	"deals-room-service/internal/models"
	"deals-room-service/internal/observability"
)

// Feed names; each websocket connection belongs to exactly one feed.
const (
	FeedDeals         = "deals"
	FeedDMs           = "dms"
	FeedNotifications = "notifications"
)

// dmClient is one subscriber on a user's direct-message feed. Live inserts
// are checked against the backlog replayed at connect time so the echo of an
// already-delivered message is dropped rather than sent twice.
type dmClient struct {
	info ConnInfo

	mu   sync.Mutex
	seen []models.DM
}

func (c *dmClient) absorb(dm models.DM) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	merged, added := conversations.MergeIncoming(c.seen, dm)
	c.seen = merged
	return added
}

// Hub maintains the public deals room and the per-user feeds.
type Hub struct {
	mu          sync.RWMutex
	dealsRoom   map[*websocket.Conn]ConnInfo
	dmFeeds     map[int]map[*websocket.Conn]*dmClient
	notifFeeds  map[int]map[*websocket.Conn]ConnInfo
	notifUnread map[int]*conversations.UnreadSet
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		dealsRoom:   make(map[*websocket.Conn]ConnInfo),
		dmFeeds:     make(map[int]map[*websocket.Conn]*dmClient),
		notifFeeds:  make(map[int]map[*websocket.Conn]ConnInfo),
		notifUnread: make(map[int]*conversations.UnreadSet),
	}
}

// AddDealsClient registers a connection on the public deals room.
func (h *Hub) AddDealsClient(conn *websocket.Conn, info ConnInfo) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dealsRoom[conn] = info
}

// RemoveDealsClient drops a connection from the public room.
func (h *Hub) RemoveDealsClient(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.dealsRoom, conn)
}

// BroadcastDeal fans a new public deal out to every room member.
func (h *Hub) BroadcastDeal(deal models.Deal) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.dealsRoom))
	for conn := range h.dealsRoom {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	payload, _ := json.Marshal(models.DealEvent{Type: "deal", Deal: &deal})
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("websocket write error: %v", err)
			h.publishWSError(FeedDeals, conn, err)
			conn.Close()
			h.RemoveDealsClient(conn)
		}
	}
}

// AddDMClient registers a connection on the user's direct-message feed. The
// backlog seeds duplicate suppression for subsequently broadcast inserts.
func (h *Hub) AddDMClient(userID int, conn *websocket.Conn, info ConnInfo, backlog []models.DM) {
	client := &dmClient{info: info, seen: append([]models.DM(nil), backlog...)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.dmFeeds[userID]; !ok {
		h.dmFeeds[userID] = make(map[*websocket.Conn]*dmClient)
	}
	h.dmFeeds[userID][conn] = client
}

// RemoveDMClient drops a connection from the user's feed.
func (h *Hub) RemoveDMClient(userID int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.dmFeeds[userID]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(h.dmFeeds, userID)
		}
	}
}

// BroadcastDM delivers a freshly stored message to both participants'
// feeds. A client that already saw the id (backlog replay or an earlier
// delivery) is skipped.
func (h *Hub) BroadcastDM(dm models.DM) {
	h.deliverDM(dm.SenderID, dm, "message", true)
	if dm.ReceiverID != dm.SenderID {
		h.deliverDM(dm.ReceiverID, dm, "message", true)
	}
}

// BroadcastDMRead forwards a read-state update to both participants.
// Updates are always forwarded; only inserts are deduplicated.
func (h *Hub) BroadcastDMRead(dm models.DM) {
	h.deliverDM(dm.SenderID, dm, "read", false)
	if dm.ReceiverID != dm.SenderID {
		h.deliverDM(dm.ReceiverID, dm, "read", false)
	}
}

func (h *Hub) deliverDM(userID int, dm models.DM, eventType string, dedupe bool) {
	h.mu.RLock()
	clients := make(map[*websocket.Conn]*dmClient, len(h.dmFeeds[userID]))
	for conn, client := range h.dmFeeds[userID] {
		clients[conn] = client
	}
	h.mu.RUnlock()

	payload, _ := json.Marshal(models.DMEvent{Type: eventType, Message: &dm})
	for conn, client := range clients {
		if dedupe && !client.absorb(dm) {
			observability.IncWSEvent(FeedDMs, "duplicate_suppressed")
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("websocket write error: %v", err)
			h.publishWSError(FeedDMs, conn, err)
			conn.Close()
			h.RemoveDMClient(userID, conn)
		}
	}
}

// AddNotificationClient registers a connection on the user's notification
// feed. The initial unread rows seed the per-user unread set the first time
// a feed comes up for that user.
func (h *Hub) AddNotificationClient(userID int, conn *websocket.Conn, info ConnInfo, unread []models.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.notifFeeds[userID]; !ok {
		h.notifFeeds[userID] = make(map[*websocket.Conn]ConnInfo)
		set := conversations.NewUnreadSet()
		set.Load(unread)
		h.notifUnread[userID] = set
	}
	h.notifFeeds[userID][conn] = info
}

// RemoveNotificationClient drops a connection; the unread set is released
// with the last connection.
func (h *Hub) RemoveNotificationClient(userID int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.notifFeeds[userID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.notifFeeds, userID)
			delete(h.notifUnread, userID)
		}
	}
}

// UnreadCount reports the tracked unread total for a user's live feed, or
// -1 when no feed is up.
func (h *Hub) UnreadCount(userID int) int {
	h.mu.RLock()
	set, ok := h.notifUnread[userID]
	h.mu.RUnlock()
	if !ok {
		return -1
	}
	return set.Count()
}

// BroadcastNotification delivers a new notification to the recipient's
// feed. A duplicate id is absorbed without touching the counter.
func (h *Hub) BroadcastNotification(n models.Notification) {
	h.mu.RLock()
	set := h.notifUnread[n.UserID]
	h.mu.RUnlock()
	if set != nil && !set.ApplyInsert(n) {
		observability.IncWSEvent(FeedNotifications, "duplicate_suppressed")
		return
	}
	h.deliverNotification(n, "notification")
}

// BroadcastNotificationRead forwards a read-state update; the counter is
// floored at zero by the unread set.
func (h *Hub) BroadcastNotificationRead(n models.Notification) {
	h.mu.RLock()
	set := h.notifUnread[n.UserID]
	h.mu.RUnlock()
	if set != nil {
		set.ApplyReadUpdate(n.ID)
	}
	h.deliverNotification(n, "notification_read")
}

func (h *Hub) deliverNotification(n models.Notification, eventType string) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.notifFeeds[n.UserID]))
	for conn := range h.notifFeeds[n.UserID] {
		conns = append(conns, conn)
	}
	set := h.notifUnread[n.UserID]
	h.mu.RUnlock()

	count := 0
	if set != nil {
		count = set.Count()
	}
	payload, _ := json.Marshal(models.NotificationEvent{Type: eventType, Notification: &n, UnreadCount: count})
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("websocket write error: %v", err)
			h.publishWSError(FeedNotifications, conn, err)
			conn.Close()
			h.RemoveNotificationClient(n.UserID, conn)
		}
	}
}

func (h *Hub) publishWSError(feed string, conn *websocket.Conn, err error) {
	info, ok := h.findConnInfo(feed, conn)
	if !ok {
		return
	}

	event := observability.WSEvent{
		WS: observability.WSEventPayload{
			Feed:       feed,
			Event:      "ws_error",
			ConnID:     info.ConnID,
			DurationMS: time.Since(info.ConnectedAt).Milliseconds(),
			Reason:     err.Error(),
		},
		Identity: observability.IdentityPayload{
			UserID:   info.UserID,
			DeviceID: info.DeviceID,
			IP:       info.IP,
		},
	}

	headers := observability.BuildHeaders(info.RequestID, info.TraceID)
	_ = observability.PublishEvent(context.Background(), wsRoutingKey(feed), observability.EventEnvelope{
		EventType: "ws_events",
		EventName: "ws_error",
		Payload:   event,
	}, headers)
	observability.IncWSEvent(feed, "ws_error")
}

func (h *Hub) findConnInfo(feed string, conn *websocket.Conn) (ConnInfo, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	switch feed {
	case FeedDeals:
		info, ok := h.dealsRoom[conn]
		return info, ok
	case FeedDMs:
		for _, clients := range h.dmFeeds {
			if client, ok := clients[conn]; ok {
				return client.info, true
			}
		}
	case FeedNotifications:
		for _, conns := range h.notifFeeds {
			if info, ok := conns[conn]; ok {
				return info, true
			}
		}
	}
	return ConnInfo{}, false
}

func wsRoutingKey(feed string) string {
	return "ws_events." + feed
}
