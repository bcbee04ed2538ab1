package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigIsValidForIdempotence(t *testing.T) {
	cfg := NewConfig("smarthost-test")
	require.NoError(t, cfg.Validate())
	assert.Equal(t, sarama.WaitForAll, cfg.Producer.RequiredAcks)
	assert.True(t, cfg.Producer.Idempotent)
}

func TestPublishSendsPayload(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"id":"1"}` {
			return errors.New("unexpected payload " + string(val))
		}
		return nil
	})
	p := NewProducerFrom(mock)

	err := p.Publish(context.Background(), "booking.events.v1", "1", []byte(`{"id":"1"}`), map[string]string{"content-type": "application/cloudevents+json"})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestPublishReportsBrokerError(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	p := NewProducerFrom(mock)

	err := p.Publish(context.Background(), "host.events.v1", "Alice", []byte(`{}`), nil)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestPublishHonoursCancelledContext(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	p := NewProducerFrom(mock)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Publish(ctx, "t", "k", nil, nil), context.Canceled)
	require.NoError(t, p.Close())
}

func TestLogProducerNeverFails(t *testing.T) {
	assert.NoError(t, LogProducer{}.Publish(context.Background(), "t", "k", []byte(`{}`), nil))
}
