package conversations

import (
	"sync"

	"deals-room-service/internal/models"
)

// UnreadSet tracks a user's unread notifications, fed by an initial bulk
// load and by one-at-a-time arrivals. The reported count always equals the
// number of tracked notifications. Safe for concurrent use.
type UnreadSet struct {
	mu    sync.Mutex
	byID  map[int]models.Notification
	order []int
}

// NewUnreadSet returns an empty set.
func NewUnreadSet() *UnreadSet {
	return &UnreadSet{byID: make(map[int]models.Notification)}
}

// Load replaces the set's contents with the given unread notifications.
// Already-read rows are skipped so a bulk reload cannot inflate the counter.
func (s *UnreadSet) Load(notifs []models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[int]models.Notification, len(notifs))
	s.order = s.order[:0]
	for _, n := range notifs {
		if n.IsRead {
			continue
		}
		if _, ok := s.byID[n.ID]; ok {
			continue
		}
		s.byID[n.ID] = n
		s.order = append(s.order, n.ID)
	}
}

// ApplyInsert adds an incoming unread notification. A notification whose id
// is already tracked is a no-op; the return reports whether it was added.
func (s *UnreadSet) ApplyInsert(n models.Notification) bool {
	if n.IsRead {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[n.ID]; ok {
		return false
	}
	s.byID[n.ID] = n
	s.order = append(s.order, n.ID)
	return true
}

// ApplyReadUpdate removes the notification with the given id. Ids not in
// the set leave the counter unchanged, so it never goes negative.
func (s *UnreadSet) ApplyReadUpdate(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Count returns the number of unread notifications.
func (s *UnreadSet) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// Items returns the tracked notifications in arrival order.
func (s *UnreadSet) Items() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.Notification, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.byID[id])
	}
	return items
}
