package commands

import (
	"context"
	"fmt"

	"smarthost/internal/domain/shared/domainerr"
)

// Command is a write request. Key selects the handler and prefixes
// idempotency records, so it must be stable across releases.
type Command interface {
	Key() string
}

type Handler[C Command, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

type Bus interface {
	Dispatch(ctx context.Context, cmd Command) (any, error)
}

// Bus failures are wiring faults. They carry the internal kind so the HTTP
// layer answers 500 and the idempotency middleware never records them.
var (
	ErrHandlerNotFound = domainerr.Internal("commands: handler not found")
	ErrInvalidCommand  = domainerr.Internal("commands: invalid command for handler")
	ErrResultType      = domainerr.Internal("commands: result type mismatch")
	ErrNilBus          = domainerr.Internal("commands: nil bus")
)

// Dispatch sends cmd and asserts the result type. A nil result yields the zero R.
func Dispatch[C Command, R any](ctx context.Context, bus Bus, cmd C) (R, error) {
	var zero R
	if bus == nil {
		return zero, ErrNilBus
	}
	res, err := bus.Dispatch(ctx, cmd)
	if err != nil || res == nil {
		return zero, err
	}
	value, ok := res.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T, want %T", ErrResultType, cmd.Key(), res, zero)
	}
	return value, nil
}
