package chat

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// RemovalOutcome is the decision taken for a message after one of its
// referenced content items has been deleted.
type RemovalOutcome int

const (
	// RemovalUnaffected: the message did not reference the item.
	RemovalUnaffected RemovalOutcome = iota
	// RemovalKept: the reference was dropped, the message survives.
	RemovalKept
	// RemovalDeleted: nothing meaningful is left, the message must go.
	RemovalDeleted
)

func (o RemovalOutcome) String() string {
	switch o {
	case RemovalKept:
		return "kept"
	case RemovalDeleted:
		return "deleted"
	default:
		return "unaffected"
	}
}

// RemoveContentItem drops every reference to item from m.
//
// A message left with other items stays a ContentMessage. A message left
// with no item but with text becomes a RemovedContentMessage sharing the
// same identity, dates, reply and seen-by set. A message left with neither
// is reported as RemovalDeleted and returned unchanged.
func RemoveContentItem(m *ContentMessage, item uuid.UUID, now time.Time) (Message, RemovalOutcome) {
	if !m.References(item) {
		return m, RemovalUnaffected
	}
	remaining := lo.Without(m.contentItems, item)
	if len(remaining) > 0 {
		m.contentItems = remaining
		m.touch(now)
		return m, RemovalKept
	}
	if isBlank(m.text) {
		return m, RemovalDeleted
	}
	removed := &RemovedContentMessage{header: m.header, text: m.text}
	removed.seenBy = m.SeenBy()
	removed.touch(now)
	return removed, RemovalKept
}
