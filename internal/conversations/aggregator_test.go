package conversations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deals-room-service/internal/models"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(offset int) time.Time { return base.Add(time.Duration(offset) * time.Minute) }

func directory(names map[int]string) DirectoryLookup {
	return func(id int) (string, bool) {
		n, ok := names[id]
		return n, ok
	}
}

func TestBuildSummariesOnePerPartner(t *testing.T) {
	msgs := []models.DM{
		{ID: 1, SenderID: 1, ReceiverID: 2, Message: "hi", CreatedAt: at(0), IsRead: true},
		{ID: 2, SenderID: 2, ReceiverID: 1, Message: "hey", CreatedAt: at(1)},
		{ID: 3, SenderID: 1, ReceiverID: 3, Message: "yo", CreatedAt: at(2), IsRead: true},
		{ID: 4, SenderID: 4, ReceiverID: 1, Message: "tender?", CreatedAt: at(3)},
		{ID: 5, SenderID: 2, ReceiverID: 1, Message: "still there?", CreatedAt: at(4)},
	}

	summaries := BuildSummaries(msgs, 1, directory(map[int]string{2: "Asha", 3: "Ravi", 4: "Meera"}))
	require.Len(t, summaries, 3)

	byPartner := map[int]Summary{}
	for _, s := range summaries {
		byPartner[s.PartnerID] = s
	}
	assert.Equal(t, "still there?", byPartner[2].LastMessage)
	assert.Equal(t, at(4), byPartner[2].LastMessageTime)
	assert.Equal(t, 2, byPartner[2].UnreadCount)
	assert.Equal(t, 0, byPartner[3].UnreadCount)
	assert.Equal(t, 1, byPartner[4].UnreadCount)
	assert.Equal(t, "Asha", byPartner[2].PartnerName)
}

func TestBuildSummariesOrderedNewestFirst(t *testing.T) {
	msgs := []models.DM{
		{ID: 1, SenderID: 2, ReceiverID: 1, CreatedAt: at(1)},
		{ID: 2, SenderID: 3, ReceiverID: 1, CreatedAt: at(3)},
		{ID: 3, SenderID: 4, ReceiverID: 1, CreatedAt: at(2)},
	}

	summaries := BuildSummaries(msgs, 1, nil)
	require.Len(t, summaries, 3)
	assert.Equal(t, 3, summaries[0].PartnerID)
	assert.Equal(t, 4, summaries[1].PartnerID)
	assert.Equal(t, 2, summaries[2].PartnerID)
}

func TestBuildSummariesTimestampTieBreaksByID(t *testing.T) {
	msgs := []models.DM{
		{ID: 7, SenderID: 2, ReceiverID: 1, Message: "first", CreatedAt: at(1)},
		{ID: 9, SenderID: 1, ReceiverID: 2, Message: "second", CreatedAt: at(1), IsRead: true},
	}

	summaries := BuildSummaries(msgs, 1, nil)
	require.Len(t, summaries, 1)
	assert.Equal(t, "second", summaries[0].LastMessage)
	assert.Equal(t, 9, summaries[0].LastMessageID)
}

func TestBuildSummariesUnknownPartnerPlaceholder(t *testing.T) {
	msgs := []models.DM{
		{ID: 1, SenderID: 99, ReceiverID: 1, Message: "hello", CreatedAt: at(0)},
	}

	summaries := BuildSummaries(msgs, 1, directory(map[int]string{2: "Asha"}))
	require.Len(t, summaries, 1)
	assert.Equal(t, UnknownPartnerName, summaries[0].PartnerName)
}

func TestBuildSummariesIgnoresUnrelatedMessages(t *testing.T) {
	msgs := []models.DM{
		{ID: 1, SenderID: 5, ReceiverID: 6, CreatedAt: at(0)},
	}
	assert.Empty(t, BuildSummaries(msgs, 1, nil))
}

func TestBuildSummariesReadExampleScenario(t *testing.T) {
	msgs := []models.DM{
		{ID: 1, SenderID: 1, ReceiverID: 2, Message: "hi", CreatedAt: at(0), IsRead: true},
		{ID: 2, SenderID: 2, ReceiverID: 1, Message: "hey", CreatedAt: at(1)},
	}

	summaries := BuildSummaries(msgs, 1, directory(map[int]string{2: "Asha"}))
	require.Len(t, summaries, 1)
	assert.Equal(t, "hey", summaries[0].LastMessage)
	assert.Equal(t, at(1), summaries[0].LastMessageTime)
	assert.Equal(t, 1, summaries[0].UnreadCount)
}

func TestMergeIncomingIdempotent(t *testing.T) {
	existing := []models.DM{{ID: 1}, {ID: 2}}
	incoming := models.DM{ID: 3, Message: "new"}

	merged, added := MergeIncoming(existing, incoming)
	require.True(t, added)
	require.Len(t, merged, 3)

	again, added := MergeIncoming(merged, incoming)
	assert.False(t, added)
	assert.Equal(t, merged, again)
}

func TestMergeIncomingPreservesInsertionOrder(t *testing.T) {
	var msgs []models.DM
	for _, id := range []int{5, 3, 9} {
		msgs, _ = MergeIncoming(msgs, models.DM{ID: id})
	}
	require.Len(t, msgs, 3)
	assert.Equal(t, 5, msgs[0].ID)
	assert.Equal(t, 3, msgs[1].ID)
	assert.Equal(t, 9, msgs[2].ID)
}

func TestUnreadMessageIDsSelectsOnlyInboundUnread(t *testing.T) {
	msgs := []models.DM{
		{ID: 1, SenderID: 2, ReceiverID: 1},
		{ID: 2, SenderID: 2, ReceiverID: 1, IsRead: true},
		{ID: 3, SenderID: 1, ReceiverID: 2},
		{ID: 4, SenderID: 3, ReceiverID: 1},
		{ID: 5, SenderID: 2, ReceiverID: 1},
	}

	ids := UnreadMessageIDs(msgs, 2, 1)
	assert.Equal(t, []int{1, 5}, ids)
}

func TestMarkReadThenRebuildClearsOnlyThatPartner(t *testing.T) {
	msgs := []models.DM{
		{ID: 1, SenderID: 2, ReceiverID: 1, CreatedAt: at(0)},
		{ID: 2, SenderID: 3, ReceiverID: 1, CreatedAt: at(1)},
	}

	for _, id := range UnreadMessageIDs(msgs, 2, 1) {
		for i := range msgs {
			if msgs[i].ID == id {
				msgs[i].IsRead = true
			}
		}
	}

	summaries := BuildSummaries(msgs, 1, nil)
	byPartner := map[int]Summary{}
	for _, s := range summaries {
		byPartner[s.PartnerID] = s
	}
	assert.Equal(t, 0, byPartner[2].UnreadCount)
	assert.Equal(t, 1, byPartner[3].UnreadCount)
}
