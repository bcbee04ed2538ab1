package properties

import (
	"context"
	"time"

	"smarthost/internal/domain/shared/domainerr"
	"smarthost/internal/domain/shared/events"
)

type PropertyID int64

type RoomID int64

// Property is a rentable location. It owns zero or more rooms.
type Property struct {
	ID       PropertyID
	Name     string
	Location string
}

// PropertyDraft carries the caller supplied fields before storage assigns an
// id. Both fields are stored as given; only the name must be unique.
type PropertyDraft struct {
	Name     string
	Location string
}

// NewProperty returns the stored record once its identifier is known.
func NewProperty(id PropertyID, draft PropertyDraft) (Property, error) {
	if id <= 0 {
		return Property{}, domainerr.Invalid("id", "must be assigned by storage")
	}
	return Property{ID: id, Name: draft.Name, Location: draft.Location}, nil
}

// Repository persists properties together with their rooms.
type Repository interface {
	AddProperty(ctx context.Context, draft PropertyDraft) (Property, error)
	ListProperties(ctx context.Context) ([]Property, error)
	AddRoom(ctx context.Context, draft RoomDraft) (Room, error)
	ListRooms(ctx context.Context, filter RoomFilter) ([]Room, error)
}

func ErrPropertyNotFound(id PropertyID) error {
	return domainerr.NotFound("property", int64(id))
}

func ErrDuplicate(name string) error {
	return domainerr.Conflict("property", name)
}

type PropertyAdded struct {
	events.BaseEvent
	PropertyID PropertyID `json:"property_id"`
	Name       string     `json:"name"`
	Location   string     `json:"location"`
}

type RoomAdded struct {
	events.BaseEvent
	RoomID     RoomID     `json:"room_id"`
	PropertyID PropertyID `json:"property_id"`
	Beds       int        `json:"beds"`
	Price      float64    `json:"price"`
}

func Added(p Property, at time.Time) PropertyAdded {
	return PropertyAdded{
		BaseEvent:  events.BaseEvent{Name: "property.added", Aggregate: events.IntID(int64(p.ID)), Time: at.UTC()},
		PropertyID: p.ID,
		Name:       p.Name,
		Location:   p.Location,
	}
}

func RoomCreated(r Room, at time.Time) RoomAdded {
	return RoomAdded{
		BaseEvent:  events.BaseEvent{Name: "room.added", Aggregate: events.IntID(int64(r.PropertyID)), Time: at.UTC()},
		RoomID:     r.ID,
		PropertyID: r.PropertyID,
		Beds:       r.Beds,
		Price:      r.Price,
	}
}
