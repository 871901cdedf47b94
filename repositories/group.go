package repositories

import (
	"chat-core/domain/chat"
	"chat-core/errors"
	"context"
	stderrors "errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type GroupRepository struct {
	db *badger.DB
}

func NewGroupRepository(db *badger.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) CreateGroup(ctx context.Context, group *chat.Group) error {
	return update(ctx, r.db, func(txn *badger.Txn) error {
		found, err := exists(txn, groupKey(group.ID))
		if err != nil {
			return err
		}
		if found {
			return fmt.Errorf("%w: group %s", errors.ErrAlreadyExists, group.ID)
		}
		return putGroup(txn, group, nil)
	})
}

func (r *GroupRepository) GetGroup(_ context.Context, id uuid.UUID) (*chat.Group, error) {
	var g *chat.Group
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		g, err = getGroup(txn, id)
		return err
	})
	return g, err
}

func (r *GroupRepository) FindGroupsForUser(_ context.Context, user uuid.UUID) ([]*chat.Group, error) {
	var groups []*chat.Group
	err := r.db.View(func(txn *badger.Txn) error {
		ids, err := scanIDs(txn, groupUserPrefix+user.String()+":")
		if err != nil {
			return err
		}
		for _, id := range ids {
			g, err := getGroup(txn, id)
			if err != nil {
				return err
			}
			groups = append(groups, g)
		}
		return nil
	})
	return groups, err
}

// UpdateGroup rewrites the group and the member index, so accounts that
// left no longer find it.
func (r *GroupRepository) UpdateGroup(ctx context.Context, group *chat.Group) (bool, error) {
	updated := false
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		updated = false
		previous, err := getGroup(txn, group.ID)
		if stderrors.Is(err, errors.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		updated = true
		return putGroup(txn, group, previous.Members())
	})
	return updated, err
}

// ChangeGroup hands the stored group to change. Two members added at the
// same time both end up in the group: the later commit reruns change on the
// group the earlier one wrote.
func (r *GroupRepository) ChangeGroup(ctx context.Context, id uuid.UUID, change func(group *chat.Group) (bool, error)) (bool, error) {
	changed := false
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		current, err := getGroup(txn, id)
		if err != nil {
			return err
		}
		previousMembers := current.Members()
		if changed, err = change(current); err != nil || !changed {
			return err
		}
		return putGroup(txn, current, previousMembers)
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

func (r *GroupRepository) DeleteGroup(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		deleted = false
		g, err := getGroup(txn, id)
		if stderrors.Is(err, errors.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		for _, m := range g.Members() {
			if err = txn.Delete([]byte(userIndexKey(groupUserPrefix, m, id))); err != nil {
				return err
			}
		}
		deleted = true
		return txn.Delete([]byte(groupKey(id)))
	})
	return deleted, err
}

func putGroup(txn *badger.Txn, group *chat.Group, previousMembers []uuid.UUID) error {
	if err := writeDocument(txn, groupKey(group.ID), fromGroup(group)); err != nil {
		return err
	}
	left, _ := lo.Difference(previousMembers, group.Members())
	for _, m := range left {
		if err := txn.Delete([]byte(userIndexKey(groupUserPrefix, m, group.ID))); err != nil {
			return err
		}
	}
	for _, m := range group.Members() {
		if err := txn.Set([]byte(userIndexKey(groupUserPrefix, m, group.ID)), []byte{}); err != nil {
			return err
		}
	}
	return nil
}

func getGroup(txn *badger.Txn, id uuid.UUID) (*chat.Group, error) {
	var doc groupDocument
	if err := readDocument(txn, groupKey(id), &doc); err != nil {
		return nil, err
	}
	return toGroup(doc)
}
