package hosts

import (
	"context"
	"strings"
	"time"

	"smarthost/internal/domain/shared/domainerr"
	"smarthost/internal/domain/shared/events"
)

// Host is a person operating one or more properties. Name is unique per backend.
type Host struct {
	Name   string
	Rating float64
}

type Repository interface {
	Add(ctx context.Context, host Host) (Host, error)
	List(ctx context.Context) ([]Host, error)
}

func NewHost(name string, rating float64) (Host, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Host{}, domainerr.Invalid("name", "is required")
	}
	return Host{Name: name, Rating: rating}, nil
}

// ErrDuplicate builds the conflict raised when a host name is already taken.
func ErrDuplicate(name string) error {
	return domainerr.Conflict("host", name)
}

// HostAdded is emitted once a host has been stored.
type HostAdded struct {
	events.BaseEvent
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

func Added(h Host, at time.Time) HostAdded {
	return HostAdded{
		BaseEvent: events.BaseEvent{Name: "host.added", Aggregate: h.Name, Time: at.UTC()},
		Name:      h.Name,
		Rating:    h.Rating,
	}
}
