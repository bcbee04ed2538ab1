package queries

import (
	"context"
	"fmt"

	"smarthost/internal/domain/shared/domainerr"
)

// Query is a read request. Queries never record events.
type Query interface {
	Key() string
}

type Handler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

type Bus interface {
	Ask(ctx context.Context, query Query) (any, error)
}

var (
	ErrHandlerNotFound = domainerr.Internal("queries: handler not found")
	ErrInvalidQuery    = domainerr.Internal("queries: invalid query for handler")
	ErrResultType      = domainerr.Internal("queries: result type mismatch")
	ErrNilBus          = domainerr.Internal("queries: nil bus")
)

// Ask runs query and asserts the result type.
func Ask[Q Query, R any](ctx context.Context, bus Bus, query Q) (R, error) {
	var zero R
	if bus == nil {
		return zero, ErrNilBus
	}
	res, err := bus.Ask(ctx, query)
	if err != nil || res == nil {
		return zero, err
	}
	value, ok := res.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T, want %T", ErrResultType, query.Key(), res, zero)
	}
	return value, nil
}
