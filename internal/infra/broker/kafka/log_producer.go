package kafka

import (
	"context"
	"log/slog"

	appoutbox "smarthost/internal/app/outbox"
)

// LogProducer stands in for a broker when none is configured.
type LogProducer struct {
	Logger *slog.Logger
}

func (p LogProducer) Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error {
	if p.Logger == nil {
		return nil
	}
	p.Logger.InfoContext(ctx, "event published", "topic", topic, "key", key, "payload", string(payload))
	return nil
}

func (LogProducer) Close() error { return nil }

var _ appoutbox.Producer = LogProducer{}
