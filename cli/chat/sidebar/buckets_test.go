package sidebar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finchat/finchat/internal/store"
)

func chatAt(id string, pinned bool, updatedAt time.Time) *store.Chat {
	return &store.Chat{ID: id, Title: id, Pinned: pinned, UpdatedAt: updatedAt}
}

func TestBuildSections(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	chats := []*store.Chat{
		chatAt("pinned-old", true, now.AddDate(0, -6, 0)),
		chatAt("today", false, now.Add(-2*time.Hour)),
		chatAt("yesterday", false, now.AddDate(0, 0, -1)),
		chatAt("this-week", false, now.AddDate(0, 0, -5)),
		chatAt("this-month", false, now.AddDate(0, 0, -20)),
		chatAt("ancient", false, now.AddDate(-1, 0, 0)),
	}

	sections := BuildSections(chats, now)
	require.Len(t, sections, 6)

	labels := make([]string, len(sections))
	for i, section := range sections {
		labels[i] = section.Label
	}
	assert.Equal(t, []string{
		BucketPinned, BucketToday, BucketYesterday,
		BucketLast7Days, BucketLast30Days, BucketOlder,
	}, labels)

	assert.Equal(t, "pinned-old", sections[0].Chats[0].ID)
	assert.Equal(t, "today", sections[1].Chats[0].ID)
}

func TestBuildSectionsOmitsEmptyBuckets(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	chats := []*store.Chat{chatAt("today", false, now.Add(-time.Hour))}

	sections := BuildSections(chats, now)
	require.Len(t, sections, 1)
	assert.Equal(t, BucketToday, sections[0].Label)
}

func TestBuildSectionsBoundariesAreDayAligned(t *testing.T) {
	// 00:30 local time: a chat from 1h ago is "Yesterday" by calendar day
	// even though it is less than 24h old.
	now := time.Date(2025, 6, 15, 0, 30, 0, 0, time.UTC)
	chats := []*store.Chat{chatAt("late-night", false, now.Add(-time.Hour))}

	sections := BuildSections(chats, now)
	require.Len(t, sections, 1)
	assert.Equal(t, BucketYesterday, sections[0].Label)
}

func TestBuildSectionsPreservesInputOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	chats := []*store.Chat{
		chatAt("first", false, now.Add(-time.Hour)),
		chatAt("second", false, now.Add(-2*time.Hour)),
		chatAt("third", false, now.Add(-3*time.Hour)),
	}

	sections := BuildSections(chats, now)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Chats, 3)
	assert.Equal(t, "first", sections[0].Chats[0].ID)
	assert.Equal(t, "second", sections[0].Chats[1].ID)
	assert.Equal(t, "third", sections[0].Chats[2].ID)
}

func TestFilterChats(t *testing.T) {
	chats := []*store.Chat{
		{ID: "a", Title: "Quarterly Revenue"},
		{ID: "b", Title: "HR onboarding"},
		{ID: "c", Title: "revenue forecast"},
	}

	assert.Len(t, FilterChats(chats, ""), 3)
	assert.Len(t, FilterChats(chats, "   "), 3)

	matched := FilterChats(chats, "REVENUE")
	require.Len(t, matched, 2)
	assert.Equal(t, "a", matched[0].ID)
	assert.Equal(t, "c", matched[1].ID)

	assert.Empty(t, FilterChats(chats, "nothing matches this"))
}
