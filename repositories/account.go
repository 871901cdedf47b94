package repositories

import (
	"chat-core/domain/account"
	"chat-core/errors"
	"context"
	stderrors "errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type AccountRepository struct {
	db *badger.DB
}

func NewAccountRepository(db *badger.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetAccount returns an empty relation slice for an account that never
// pinned nor blocked anything.
func (r *AccountRepository) GetAccount(_ context.Context, id uuid.UUID) (*account.UserAccount, error) {
	var a *account.UserAccount
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		a, err = getAccount(txn, id)
		return err
	})
	return a, err
}

func (r *AccountRepository) SaveAccount(ctx context.Context, userAccount *account.UserAccount) error {
	return update(ctx, r.db, func(txn *badger.Txn) error {
		return writeDocument(txn, accountKey(userAccount.ID), fromAccount(userAccount))
	})
}

// ChangeAccount applies change to the relation sets as stored and writes
// them back within the same transaction, only when they changed.
func (r *AccountRepository) ChangeAccount(ctx context.Context, id uuid.UUID, change func(userAccount *account.UserAccount) bool) (bool, error) {
	changed := false
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		current, err := getAccount(txn, id)
		if err != nil {
			return err
		}
		if changed = change(current); !changed {
			return nil
		}
		return writeDocument(txn, accountKey(id), fromAccount(current))
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

func getAccount(txn *badger.Txn, id uuid.UUID) (*account.UserAccount, error) {
	var doc accountDocument
	err := readDocument(txn, accountKey(id), &doc)
	if stderrors.Is(err, errors.ErrNotFound) {
		return account.NewUserAccount(id, nil, nil), nil
	}
	if err != nil {
		return nil, err
	}
	return toAccount(doc)
}
