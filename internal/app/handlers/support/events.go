package support

import (
	"context"
	"time"

	"smarthost/internal/app/outbox"
	"smarthost/internal/domain/shared/events"
)

// Recorder hands domain events produced by a handler to the outbox.
// A zero Recorder drops events.
type Recorder struct {
	Outbox  outbox.Outbox
	Encoder outbox.EventEncoder
	Now     func() time.Time
}

func (r Recorder) Record(ctx context.Context, evs ...events.DomainEvent) error {
	if r.Outbox == nil {
		return nil
	}
	encoder := r.Encoder
	if encoder == nil {
		encoder = outbox.JSONEventEncoder{}
	}
	return outbox.RecordDomainEvents(ctx, r.Outbox, encoder, evs...)
}

func (r Recorder) Clock() time.Time {
	if r.Now != nil {
		return r.Now().UTC()
	}
	return time.Now().UTC()
}
