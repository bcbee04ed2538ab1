package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthost/internal/domain/shared/domainerr"
)

type countQuery struct{ N int }

func (countQuery) Key() string { return "test.count" }

type countHandler struct{}

func (countHandler) Handle(ctx context.Context, q countQuery) ([]int, error) {
	out := make([]int, q.N)
	for i := range out {
		out[i] = i
	}
	return out, nil
}

func TestAskTyped(t *testing.T) {
	bus := NewInMemoryBus()
	RegisterHandler[countQuery, []int](bus, countQuery{}.Key(), countHandler{})

	got, err := Ask[countQuery, []int](context.Background(), bus, countQuery{N: 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)

	_, err = Ask[countQuery, string](context.Background(), bus, countQuery{N: 1})
	assert.ErrorIs(t, err, ErrResultType)
}

func TestAskUnknownQuery(t *testing.T) {
	_, err := NewInMemoryBus().Ask(context.Background(), countQuery{})
	assert.ErrorIs(t, err, ErrHandlerNotFound)
	assert.True(t, domainerr.IsInternal(err))

	_, err = Ask[countQuery, []int](context.Background(), nil, countQuery{})
	assert.ErrorIs(t, err, ErrNilBus)
}
