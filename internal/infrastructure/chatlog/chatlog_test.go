package chatlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brewbot/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendsPerUserLines(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	store.LogIncoming(domain.IncomingMessage{
		UserID:   "42",
		Username: "alex",
		FullName: "Alex B",
		Text:     "/start",
	})
	store.LogOutgoing("42", "Hi! I am a coffee bot ☕")
	store.LogIncoming(domain.IncomingMessage{UserID: "77", Text: "hello"})

	data, err := os.ReadFile(filepath.Join(dir, "user_42.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "User 42 (Alex B | @alex)")
	assert.Contains(t, lines[0], "/start")
	assert.Contains(t, lines[1], "| Bot |")
	assert.Contains(t, lines[1], "coffee bot")

	// Each line is timestamp | sender | content
	for _, line := range lines {
		assert.Equal(t, 3, len(strings.SplitN(line, " | ", 3)), "line %q", line)
	}

	// Separate user gets a separate file
	other, err := os.ReadFile(filepath.Join(dir, "user_77.log"))
	require.NoError(t, err)
	assert.Contains(t, string(other), "hello")
}

func TestStore_FlattensNewlines(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	store.LogOutgoing("1", "line one\nline two")

	data, err := os.ReadFile(filepath.Join(dir, "user_1.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1, "multi-line content must stay a single log line")
}

func TestFileName_SanitizesUserID(t *testing.T) {
	assert.Equal(t, "user_42.log", fileName("42"))
	assert.Equal(t, "user_a_b_c.log", fileName("a/b c"))
}
