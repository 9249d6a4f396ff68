package sidebar

import (
	"strings"
	"time"

	"github.com/finchat/finchat/internal/store"
)

// Bucket labels, in display order.
const (
	BucketPinned     = "Pinned"
	BucketToday      = "Today"
	BucketYesterday  = "Yesterday"
	BucketLast7Days  = "Last 7 Days"
	BucketLast30Days = "Last 30 Days"
	BucketOlder      = "Older"
)

var bucketOrder = []string{BucketToday, BucketYesterday, BucketLast7Days, BucketLast30Days, BucketOlder}

// Section is a labeled group of chats.
type Section struct {
	Label string
	Chats []*store.Chat
}

// BuildSections partitions chats into a pinned section followed by recency
// buckets computed against day-aligned boundaries from now. Input order is
// preserved within each section, so callers should pass chats already in
// the store's sort order.
func BuildSections(chats []*store.Chat, now time.Time) []Section {
	grouped := map[string][]*store.Chat{}
	for _, chat := range chats {
		label := BucketPinned
		if !chat.Pinned {
			label = bucketLabel(chat.UpdatedAt, now)
		}
		grouped[label] = append(grouped[label], chat)
	}

	var sections []Section
	if pinned := grouped[BucketPinned]; len(pinned) > 0 {
		sections = append(sections, Section{Label: BucketPinned, Chats: pinned})
	}
	for _, label := range bucketOrder {
		if bucket := grouped[label]; len(bucket) > 0 {
			sections = append(sections, Section{Label: label, Chats: bucket})
		}
	}
	return sections
}

// bucketLabel buckets a timestamp against day-aligned boundaries.
func bucketLabel(t, now time.Time) string {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case !t.Before(startOfToday):
		return BucketToday
	case !t.Before(startOfToday.AddDate(0, 0, -1)):
		return BucketYesterday
	case !t.Before(startOfToday.AddDate(0, 0, -7)):
		return BucketLast7Days
	case !t.Before(startOfToday.AddDate(0, 0, -30)):
		return BucketLast30Days
	default:
		return BucketOlder
	}
}

// FilterChats returns the chats whose title contains the query,
// case-insensitively. An empty query returns all chats.
func FilterChats(chats []*store.Chat, query string) []*store.Chat {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return chats
	}

	var matched []*store.Chat
	for _, chat := range chats {
		if strings.Contains(strings.ToLower(chat.Title), query) {
			matched = append(matched, chat)
		}
	}
	return matched
}
