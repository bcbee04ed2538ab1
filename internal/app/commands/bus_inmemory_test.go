package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthost/internal/domain/shared/domainerr"
)

type echoCommand struct{ Value string }

func (echoCommand) Key() string { return "test.echo" }

type otherCommand struct{}

func (otherCommand) Key() string { return "test.other" }

type echoHandler struct {
	err error
}

func (h echoHandler) Handle(ctx context.Context, cmd echoCommand) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "echo:" + cmd.Value, nil
}

func TestDispatchTyped(t *testing.T) {
	bus := NewInMemoryBus()
	RegisterHandler[echoCommand, string](bus, echoCommand{}.Key(), echoHandler{})

	got, err := Dispatch[echoCommand, string](context.Background(), bus, echoCommand{Value: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "echo:hi", got)

	_, err = Dispatch[echoCommand, int](context.Background(), bus, echoCommand{})
	assert.ErrorIs(t, err, ErrResultType)
	assert.Contains(t, err.Error(), "test.echo")
}

func TestDispatchUnknownCommand(t *testing.T) {
	_, err := NewInMemoryBus().Dispatch(context.Background(), otherCommand{})
	assert.ErrorIs(t, err, ErrHandlerNotFound)
	assert.Contains(t, err.Error(), "test.other")
	assert.Equal(t, "internal", domainerr.Kind(err))

	_, err = Dispatch[otherCommand, any](context.Background(), nil, otherCommand{})
	assert.ErrorIs(t, err, ErrNilBus)
}

func TestDispatchPropagatesHandlerError(t *testing.T) {
	boom := errors.New("boom")
	bus := NewInMemoryBus()
	RegisterHandler[echoCommand, string](bus, echoCommand{}.Key(), echoHandler{err: boom})
	_, err := Dispatch[echoCommand, string](context.Background(), bus, echoCommand{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "storage", domainerr.Kind(err))
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	bus := NewInMemoryBus()
	RegisterHandler[echoCommand, string](bus, "test.echo", echoHandler{})
	assert.Panics(t, func() { RegisterHandler[echoCommand, string](bus, "test.echo", echoHandler{}) })
}
