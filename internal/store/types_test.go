package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "short prompt", TruncateTitle("short prompt"))
	assert.Equal(t, "trimmed", TruncateTitle("   trimmed   "))

	long := strings.Repeat("a", 80)
	title := TruncateTitle(long)
	assert.Equal(t, strings.Repeat("a", 50)+"...", title)
	assert.Len(t, []rune(title), 53)

	// Multi-byte runes count as single characters.
	unicode := strings.Repeat("é", 60)
	assert.Equal(t, strings.Repeat("é", 50)+"...", TruncateTitle(unicode))

	exactly := strings.Repeat("b", 50)
	assert.Equal(t, exactly, TruncateTitle(exactly))
}

func TestParseTimestamp(t *testing.T) {
	cases := map[string]time.Time{
		"2025-01-02T10:00:00Z":           time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
		"2025-01-02T10:00:00.123456":     time.Date(2025, 1, 2, 10, 0, 0, 123456000, time.UTC),
		"2025-01-02 10:00:00":            time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
		"2025-01-02T10:00:00.999999999Z": time.Date(2025, 1, 2, 10, 0, 0, 999999999, time.UTC),
	}
	for input, expected := range cases {
		assert.True(t, parseTimestamp(input).Equal(expected), "parsing %q", input)
	}
}

func TestParseTimestampFallsBackToNow(t *testing.T) {
	before := time.Now()
	parsed := parseTimestamp("not a timestamp")
	after := time.Now()

	assert.False(t, parsed.Before(before))
	assert.False(t, parsed.After(after))
}
