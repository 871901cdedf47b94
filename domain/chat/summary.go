package chat

import "github.com/google/uuid"

// Summary is what a conversation list shows for one viewer.
type Summary struct {
	LastMessage Message
	UnreadCount int
}

// summarize picks the message with the latest sentAt, the most recently
// appended one on ties, and counts messages viewer has not seen.
func summarize(messages []Message, viewer uuid.UUID) Summary {
	var s Summary
	for _, m := range messages {
		if s.LastMessage == nil || !m.SentAt().Before(s.LastMessage.SentAt()) {
			s.LastMessage = m
		}
		if !m.HasBeenSeenBy(viewer) {
			s.UnreadCount++
		}
	}
	return s
}
