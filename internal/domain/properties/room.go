package properties

import (
	"strings"

	"smarthost/internal/domain/shared/domainerr"
)

const DefaultBeds = 1

// Room is a bookable unit within a property.
type Room struct {
	ID         RoomID
	PropertyID PropertyID
	Beds       int
	Features   *string
	Price      float64
}

// RoomDraft carries a room before storage. A nil Beds was not supplied.
type RoomDraft struct {
	PropertyID PropertyID
	Beds       *int
	Features   *string
	Price      float64
}

// BedsOf returns a bed count suitable for RoomDraft.Beds.
func BedsOf(n int) *int {
	return &n
}

// BedCount is the supplied bed count or DefaultBeds.
func (d RoomDraft) BedCount() int {
	if d.Beds == nil {
		return DefaultBeds
	}
	return *d.Beds
}

// Normalize applies defaults and checks the room invariants.
func (d RoomDraft) Normalize() (RoomDraft, error) {
	if d.PropertyID <= 0 {
		return RoomDraft{}, domainerr.Invalid("property_id", "must be positive")
	}
	beds := d.BedCount()
	if beds < 1 {
		return RoomDraft{}, domainerr.Invalid("beds", "must be at least 1")
	}
	d.Beds = &beds
	if d.Price < 0 {
		return RoomDraft{}, domainerr.Invalid("price", "must not be negative")
	}
	if d.Features != nil {
		trimmed := strings.TrimSpace(*d.Features)
		if trimmed == "" {
			d.Features = nil
		} else {
			d.Features = &trimmed
		}
	}
	return d, nil
}

func NewRoom(id RoomID, draft RoomDraft) (Room, error) {
	if id <= 0 {
		return Room{}, domainerr.Invalid("id", "must be assigned by storage")
	}
	return Room{
		ID:         id,
		PropertyID: draft.PropertyID,
		Beds:       draft.BedCount(),
		Features:   copyString(draft.Features),
		Price:      draft.Price,
	}, nil
}

// Clone returns a room that shares no memory with r.
func (r Room) Clone() Room {
	r.Features = copyString(r.Features)
	return r
}

// RoomFilter narrows ListRooms. A nil PropertyID lists every room.
type RoomFilter struct {
	PropertyID *PropertyID
}

func ForProperty(id PropertyID) RoomFilter {
	return RoomFilter{PropertyID: &id}
}

func (f RoomFilter) Match(r Room) bool {
	return f.PropertyID == nil || r.PropertyID == *f.PropertyID
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
