package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthost/internal/app/middleware"
	appoutbox "smarthost/internal/app/outbox"
)

type recordingProducer struct {
	fail   bool
	topics []string
	keys   []string
}

func (p *recordingProducer) Publish(ctx context.Context, topic, key string, payload []byte, headers map[string]string) error {
	if p.fail {
		return errors.New("broker down")
	}
	p.topics = append(p.topics, topic)
	p.keys = append(p.keys, key)
	return nil
}

func TestOutboxFlushPublishes(t *testing.T) {
	ctx := context.Background()
	producer := &recordingProducer{}
	box := NewOutbox(producer, "dev.", nil)

	require.NoError(t, box.Add(ctx, appoutbox.EventRecord{ID: "e1", Name: "booking.created", Aggregate: "1", Payload: []byte(`{}`), OccurredAt: time.Now()}))
	require.NoError(t, box.Add(ctx, appoutbox.EventRecord{ID: "e2", Name: "host.added", Aggregate: "Alice", Payload: []byte(`{}`), OccurredAt: time.Now()}))
	require.NoError(t, box.Flush(ctx))

	assert.Equal(t, []string{"dev.booking.events.v1", "dev.host.events.v1"}, producer.topics)
	assert.Equal(t, []string{"1", "Alice"}, producer.keys)
	assert.Zero(t, box.Pending())
}

func TestOutboxKeepsFailedRecords(t *testing.T) {
	ctx := context.Background()
	producer := &recordingProducer{fail: true}
	box := NewOutbox(producer, "", nil)

	require.NoError(t, box.Add(ctx, appoutbox.EventRecord{ID: "e1", Name: "room.added", Aggregate: "3", Payload: []byte(`{}`)}))
	require.NoError(t, box.Flush(ctx))
	assert.Equal(t, 1, box.Pending())

	producer.fail = false
	require.NoError(t, box.Flush(ctx))
	assert.Zero(t, box.Pending())
	assert.Equal(t, []string{"room.events.v1"}, producer.topics)
}

func TestOutboxRunRetriesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	producer := &recordingProducer{fail: true}
	box := NewOutbox(producer, "", nil)
	require.NoError(t, box.Add(ctx, appoutbox.EventRecord{ID: "e1", Name: "host.added", Aggregate: "Alice"}))
	require.NoError(t, box.Flush(ctx))
	producer.fail = false

	done := make(chan error, 1)
	go func() { done <- box.Run(ctx, 10*time.Millisecond) }()
	assert.Eventually(t, func() bool { return box.Pending() == 0 }, time.Second, 10*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestIdempotencyStoreExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewIdempotencyStore(time.Hour)
	store.Now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, middleware.IdempotencyRecord{Key: "k", Payload: []byte(`1`), OccurredAt: now}))
	rec, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`1`), rec.Payload)

	now = now.Add(2 * time.Hour)
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
