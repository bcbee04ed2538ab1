package events

import (
	"strconv"
	"time"
)

type DomainEvent interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

type BaseEvent struct {
	Name      string    `json:"-"`
	Aggregate string    `json:"-"`
	Time      time.Time `json:"occurred_at"`
}

func (e BaseEvent) EventName() string {
	return e.Name
}

func (e BaseEvent) AggregateID() string {
	return e.Aggregate
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Time
}

// IntID renders a storage-assigned integer identifier as an aggregate key.
func IntID(id int64) string {
	return strconv.FormatInt(id, 10)
}
