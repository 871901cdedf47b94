package chat

import (
	"chat-core/errors"
	"fmt"

	"github.com/google/uuid"
)

// ConnectionStatus values are persisted as integers, keep them stable.
type ConnectionStatus int

const (
	StatusBlocked   ConnectionStatus = -2
	StatusMuted     ConnectionStatus = -1
	StatusPending   ConnectionStatus = 0
	StatusConnected ConnectionStatus = 1
	StatusFavourite ConnectionStatus = 2
)

var statusNames = map[ConnectionStatus]string{
	StatusBlocked:   "blocked",
	StatusMuted:     "muted",
	StatusPending:   "pending",
	StatusConnected: "connected",
	StatusFavourite: "favourite",
}

func (s ConnectionStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s ConnectionStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func ParseConnectionStatus(name string) (ConnectionStatus, error) {
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown connection status %q", errors.ErrValidation, name)
}

// Connection links two distinct accounts. The pair is unordered.
// Status transitions are not checked here.
type Connection struct {
	ID       uuid.UUID
	Account1 uuid.UUID
	Account2 uuid.UUID
	Status   ConnectionStatus
}

func NewConnection(id, account1, account2 uuid.UUID, status ConnectionStatus) (*Connection, error) {
	if account1 == uuid.Nil || account2 == uuid.Nil {
		return nil, fmt.Errorf("%w: connection accounts are required", errors.ErrValidation)
	}
	if account1 == account2 {
		return nil, fmt.Errorf("%w: an account cannot connect to itself", errors.ErrValidation)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", errors.ErrValidation, status)
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Connection{ID: id, Account1: account1, Account2: account2, Status: status}, nil
}

func (c *Connection) Involves(account uuid.UUID) bool {
	return c.Account1 == account || c.Account2 == account
}

// Other returns the account on the other side of the connection.
func (c *Connection) Other(account uuid.UUID) (uuid.UUID, bool) {
	switch account {
	case c.Account1:
		return c.Account2, true
	case c.Account2:
		return c.Account1, true
	default:
		return uuid.Nil, false
	}
}

func (c *Connection) SetStatus(status ConnectionStatus) {
	c.Status = status
}

func (c *Connection) Accounts() []uuid.UUID {
	return []uuid.UUID{c.Account1, c.Account2}
}
