package errors

import "fmt"

var (
	ErrValidation          = fmt.Errorf("validation failed")
	ErrMembershipViolation = fmt.Errorf("sender is not a conversation participant")
	ErrNotFound            = fmt.Errorf("not found")
	ErrAlreadyExists       = fmt.Errorf("already exists")
	ErrConcurrentUpdate    = fmt.Errorf("too many concurrent updates")
	ErrNotSender           = fmt.Errorf("only the sender may change a message")
	ErrUnknownMessageKind  = fmt.Errorf("unknown message kind")
	ErrMixedAttachments    = fmt.Errorf("%w: a message carries either images or content items", ErrValidation)
	ErrEmptyText           = fmt.Errorf("%w: text content must not be empty", ErrValidation)
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrInvalidPayload      = fmt.Errorf("invalid payload")
	ErrUnauthorized        = fmt.Errorf("unauthorized")
	ErrClientGone          = fmt.Errorf("client disconnected")
)
