package hosts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthost/internal/domain/shared/domainerr"
)

func TestNewHost(t *testing.T) {
	h, err := NewHost("  Alice ", 4.8)
	require.NoError(t, err)
	assert.Equal(t, Host{Name: "Alice", Rating: 4.8}, h)

	_, err = NewHost("", 0)
	assert.True(t, domainerr.IsValidation(err))
}

func TestHostAddedEvent(t *testing.T) {
	ev := Added(Host{Name: "Alice"}, time.Now())
	assert.Equal(t, "host.added", ev.EventName())
	assert.Equal(t, "Alice", ev.AggregateID())
	assert.True(t, domainerr.IsConflict(ErrDuplicate("Alice")))
}
