package runtime

import (
	"chat-core/contract"
	"chat-core/domain/event"
	"context"
	stderrors "errors"
)

// Broadcasters sends each event through every broadcaster in order, the
// local Hub first and the cross-instance relay next. All of them are tried;
// their errors are joined, so a cancellation stays detectable with
// errors.Is.
type Broadcasters []contract.Broadcaster

func (b Broadcasters) BroadcastMessageSent(ctx context.Context, e event.MessageSent) error {
	return b.each(func(x contract.Broadcaster) error { return x.BroadcastMessageSent(ctx, e) })
}

func (b Broadcasters) BroadcastMessageUpdated(ctx context.Context, e event.MessageUpdated) error {
	return b.each(func(x contract.Broadcaster) error { return x.BroadcastMessageUpdated(ctx, e) })
}

func (b Broadcasters) BroadcastMessageDeleted(ctx context.Context, e event.MessageDeleted) error {
	return b.each(func(x contract.Broadcaster) error { return x.BroadcastMessageDeleted(ctx, e) })
}

func (b Broadcasters) BroadcastMessageMarkedAsRead(ctx context.Context, e event.MessageMarkedAsRead) error {
	return b.each(func(x contract.Broadcaster) error { return x.BroadcastMessageMarkedAsRead(ctx, e) })
}

func (b Broadcasters) each(fn func(contract.Broadcaster) error) error {
	var errs []error
	for _, x := range b {
		if err := fn(x); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}
