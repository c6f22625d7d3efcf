package engine

import (
	"time"

	"terminus-veil/internal/domain"
	"terminus-veil/pkg/api"
	"terminus-veil/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MessageLog - скользящее окно игрового журнала. Хранит не больше limit
// последних записей.
type MessageLog struct {
	entries []api.LogEntry
	limit   int
}

func NewMessageLog(limit int) *MessageLog {
	if limit <= 0 {
		limit = domain.MessageLogSize
	}
	return &MessageLog{limit: limit}
}

// Append добавляет сообщения и обрезает журнал до limit последних.
func (l *MessageLog) Append(turn int, msgs ...domain.Message) {
	for _, m := range msgs {
		l.entries = append(l.entries, api.LogEntry{
			ID:        uuid.NewString(),
			Turn:      turn,
			Text:      m.Text,
			Type:      m.Kind.String(),
			Timestamp: time.Now().UnixMilli(),
		})
		logger.Log.WithFields(logrus.Fields{
			"component": "game_log",
			"turn":      turn,
			"log_type":  m.Kind.String(),
		}).Info(m.Text)
	}

	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}
}

// Entries - копия текущего окна.
func (l *MessageLog) Entries() []api.LogEntry {
	out := make([]api.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *MessageLog) Texts() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Text
	}
	return out
}

func (l *MessageLog) Len() int {
	return len(l.entries)
}

func (l *MessageLog) Clear() {
	l.entries = nil
}
