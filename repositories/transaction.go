package repositories

import (
	"chat-core/errors"
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dgraph-io/badger/v4"
)

const (
	conflictInitialInterval = time.Millisecond
	conflictMaxInterval     = 50 * time.Millisecond
	conflictMaxElapsed      = 5 * time.Second
)

// update runs fn in a read-write transaction and starts over in a fresh one
// whenever badger reports that a concurrent writer committed first. fn may
// therefore run several times: it must rebuild everything it writes from
// what it reads in txn, and reset whatever it captures.
func update(ctx context.Context, db *badger.DB, fn func(txn *badger.Txn) error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = conflictInitialInterval
	policy.MaxInterval = conflictMaxInterval
	policy.MaxElapsedTime = conflictMaxElapsed

	err := backoff.Retry(func() error {
		err := db.Update(fn)
		if err != nil && !stderrors.Is(err, badger.ErrConflict) {
			// Domain and storage errors are final
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(policy, ctx))
	if stderrors.Is(err, badger.ErrConflict) {
		return fmt.Errorf("%w: %v", errors.ErrConcurrentUpdate, err)
	}
	return err
}
