package chat

import (
	"chat-core/errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Group is a named set of accounts. Members keep their join order.
type Group struct {
	ID          uuid.UUID
	Name        string
	Description string
	members     []uuid.UUID
}

func NewGroup(id uuid.UUID, name, description string, members ...uuid.UUID) (*Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: group name is required", errors.ErrValidation)
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	g := &Group{ID: id, Name: name, Description: description}
	for _, m := range members {
		g.AddUser(m)
	}
	return g, nil
}

func (g *Group) Members() []uuid.UUID {
	return append([]uuid.UUID(nil), g.members...)
}

func (g *Group) HasMember(account uuid.UUID) bool {
	return lo.Contains(g.members, account)
}

// AddUser reports whether account was not already a member.
func (g *Group) AddUser(account uuid.UUID) bool {
	if account == uuid.Nil || g.HasMember(account) {
		return false
	}
	g.members = append(g.members, account)
	return true
}

// RemoveUser reports whether account was a member.
func (g *Group) RemoveUser(account uuid.UUID) bool {
	if !g.HasMember(account) {
		return false
	}
	g.members = lo.Without(g.members, account)
	return true
}
