package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	appoutbox "smarthost/internal/app/outbox"
)

// Outbox keeps event records until Flush hands them to the producer.
// Records whose publication fails stay queued for the next flush.
type Outbox struct {
	Producer    appoutbox.Producer
	Envelope    appoutbox.Envelope
	TopicPrefix string
	Logger      *slog.Logger

	mu      sync.Mutex
	records []appoutbox.EventRecord
}

func NewOutbox(producer appoutbox.Producer, topicPrefix string, logger *slog.Logger) *Outbox {
	return &Outbox{Producer: producer, TopicPrefix: topicPrefix, Logger: logger}
}

func (o *Outbox) Add(ctx context.Context, record appoutbox.EventRecord) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records = append(o.records, record)
	return nil
}

// Flush never fails the calling command: publication errors are logged and
// the affected records are retried on the next call.
func (o *Outbox) Flush(ctx context.Context) error {
	o.mu.Lock()
	pending := o.records
	o.records = nil
	o.mu.Unlock()
	if o.Producer == nil || len(pending) == 0 {
		return nil
	}

	var failed []appoutbox.EventRecord
	for _, rec := range pending {
		payload, headers, err := o.Envelope.Format(rec)
		if err != nil {
			o.log(ctx, "outbox record dropped", rec, err)
			continue
		}
		topic := appoutbox.TopicFor(o.TopicPrefix, rec.Name)
		if err := o.Producer.Publish(ctx, topic, rec.Aggregate, payload, headers); err != nil {
			o.log(ctx, "outbox publish failed", rec, err)
			failed = append(failed, rec)
		}
	}
	if len(failed) > 0 {
		o.mu.Lock()
		o.records = append(failed, o.records...)
		o.mu.Unlock()
	}
	return nil
}

// Run retries queued records every interval until ctx is cancelled.
func (o *Outbox) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if o.Pending() > 0 {
				_ = o.Flush(ctx)
			}
		}
	}
}

// Pending reports how many records are waiting for publication.
func (o *Outbox) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.records)
}

func (o *Outbox) log(ctx context.Context, msg string, rec appoutbox.EventRecord, err error) {
	if o.Logger == nil {
		return
	}
	o.Logger.WarnContext(ctx, msg, "event_id", rec.ID, "event", rec.Name, "error", err)
}

var _ appoutbox.Outbox = (*Outbox)(nil)
