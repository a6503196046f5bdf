package chatlog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brewbot/backend/internal/domain"
)

// Store writes the per-user conversation audit trail: one append-only text
// file per user, one `timestamp | sender-info | content` line per message.
// It is write-only — nothing in the application reads these files back. A
// failed write is logged and dropped; the audit trail never blocks a reply.
type Store struct {
	dir string
}

// NewStore creates the log directory if needed and returns the store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create chat log dir: %w", err)
	}

	return &Store{dir: dir}, nil
}

// LogIncoming records a message received from a user.
func (s *Store) LogIncoming(msg domain.IncomingMessage) {
	sender := fmt.Sprintf("User %s", msg.UserID)
	if msg.FullName != "" || msg.Username != "" {
		sender = fmt.Sprintf("User %s (%s | @%s)", msg.UserID, msg.FullName, msg.Username)
	}
	s.append(msg.UserID, sender, msg.Text)
}

// LogOutgoing records a message the bot sent to a user.
func (s *Store) LogOutgoing(userID, text string) {
	s.append(userID, "Bot", text)
}

func (s *Store) append(userID, sender, content string) {
	path := filepath.Join(s.dir, fileName(userID))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("[CHATLOG] failed to open %s: %v", path, err)
		return
	}
	defer f.Close()

	line := fmt.Sprintf("%s | %s | %s\n",
		time.Now().Format(time.RFC3339),
		sender,
		strings.ReplaceAll(content, "\n", " "),
	)
	if _, err := f.WriteString(line); err != nil {
		log.Printf("[CHATLOG] failed to write %s: %v", path, err)
	}
}

// fileName maps a user ID to a safe log file name.
func fileName(userID string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, userID)

	return "user_" + safe + ".log"
}
