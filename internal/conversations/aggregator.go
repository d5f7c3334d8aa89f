package conversations

import (
	"sort"
	"time"

	"deals-room-service/internal/models"
)

// UnknownPartnerName is shown when a message's counterpart has no entry in
// the user directory.
const UnknownPartnerName = "Unknown User"

// Summary is the derived per-partner view of a user's direct messages. It is
// recomputed wholesale from the flat message list, never patched in place.
type Summary struct {
	PartnerID       int       `json:"partner_id"`
	PartnerName     string    `json:"partner_name"`
	LastMessage     string    `json:"last_message"`
	LastMessageID   int       `json:"last_message_id"`
	LastMessageTime time.Time `json:"last_message_time"`
	UnreadCount     int       `json:"unread_count"`
}

// DirectoryLookup resolves a user id to a display name. The second return
// reports whether the id is known.
type DirectoryLookup func(userID int) (string, bool)

// BuildSummaries groups msgs by conversation partner relative to
// currentUserID and returns one summary per partner, ordered newest first.
//
// The last message per partner is the one with the latest CreatedAt; when two
// messages share a timestamp the higher id wins (ids are monotonic serials).
// The same rule orders summaries whose last messages share a timestamp.
// UnreadCount counts messages addressed to currentUserID from that partner
// with IsRead still false. Messages not involving currentUserID are ignored.
func BuildSummaries(msgs []models.DM, currentUserID int, lookup DirectoryLookup) []Summary {
	byPartner := map[int]*Summary{}

	for _, m := range msgs {
		var partnerID int
		switch currentUserID {
		case m.SenderID:
			partnerID = m.ReceiverID
		case m.ReceiverID:
			partnerID = m.SenderID
		default:
			continue
		}

		s, ok := byPartner[partnerID]
		if !ok {
			name := UnknownPartnerName
			if lookup != nil {
				if n, found := lookup(partnerID); found {
					name = n
				}
			}
			s = &Summary{PartnerID: partnerID, PartnerName: name}
			byPartner[partnerID] = s
		}

		if later(m.CreatedAt, m.ID, s.LastMessageTime, s.LastMessageID) || s.LastMessageID == 0 {
			s.LastMessage = m.Message
			s.LastMessageID = m.ID
			s.LastMessageTime = m.CreatedAt
		}
		if !m.IsRead && m.ReceiverID == currentUserID {
			s.UnreadCount++
		}
	}

	summaries := make([]Summary, 0, len(byPartner))
	for _, s := range byPartner {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return later(summaries[i].LastMessageTime, summaries[i].LastMessageID,
			summaries[j].LastMessageTime, summaries[j].LastMessageID)
	})
	return summaries
}

// MergeIncoming appends incoming to existing unless a message with the same
// id is already present. Duplicate delivery (optimistic insert followed by
// the realtime echo) is a no-op; the second return reports whether the
// message was appended. Insertion order is preserved for open threads.
func MergeIncoming(existing []models.DM, incoming models.DM) ([]models.DM, bool) {
	for _, m := range existing {
		if m.ID == incoming.ID {
			return existing, false
		}
	}
	return append(existing, incoming), true
}

// UnreadMessageIDs selects the messages a conversation-open must mark as
// read: every message from partnerID addressed to currentUserID with IsRead
// still false. Each id is committed individually by the caller.
func UnreadMessageIDs(msgs []models.DM, partnerID, currentUserID int) []int {
	var ids []int
	for _, m := range msgs {
		if m.ReceiverID == currentUserID && m.SenderID == partnerID && !m.IsRead {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

func later(t1 time.Time, id1 int, t2 time.Time, id2 int) bool {
	if t1.Equal(t2) {
		return id1 > id2
	}
	return t1.After(t2)
}
