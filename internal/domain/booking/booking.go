package booking

import (
	"context"
	"time"

	"smarthost/internal/domain/properties"
	"smarthost/internal/domain/shared/daterange"
	"smarthost/internal/domain/shared/domainerr"
	"smarthost/internal/domain/shared/events"
)

type BookingID int64

// Booking is a reservation of a room by a guest. The room reference is not
// checked against stored rooms.
type Booking struct {
	ID        BookingID
	RoomID    properties.RoomID
	GuestName string
	Language  string
	Range     daterange.DateRange
}

type Draft struct {
	RoomID    properties.RoomID
	GuestName string
	Language  string
	Range     daterange.DateRange
}

type Repository interface {
	Add(ctx context.Context, draft Draft) (Booking, error)
	List(ctx context.Context) ([]Booking, error)
}

type CreateParams struct {
	RoomID    properties.RoomID
	GuestName string
	Language  string
	CheckIn   time.Time
	CheckOut  time.Time
}

// NewDraft checks the date order, the only rule a booking request must
// satisfy. Guest, language and room reference are taken as given.
func NewDraft(params CreateParams) (Draft, error) {
	dr, err := daterange.New(params.CheckIn, params.CheckOut)
	if err != nil {
		return Draft{}, err
	}
	return Draft{RoomID: params.RoomID, GuestName: params.GuestName, Language: params.Language, Range: dr}, nil
}

func NewBooking(id BookingID, draft Draft) (Booking, error) {
	if id <= 0 {
		return Booking{}, domainerr.Invalid("id", "must be assigned by storage")
	}
	return Booking{
		ID:        id,
		RoomID:    draft.RoomID,
		GuestName: draft.GuestName,
		Language:  draft.Language,
		Range:     draft.Range,
	}, nil
}

type BookingCreated struct {
	events.BaseEvent
	BookingID BookingID         `json:"booking_id"`
	RoomID    properties.RoomID `json:"room_id"`
	GuestName string            `json:"guest_name"`
	CheckIn   string            `json:"check_in"`
	CheckOut  string            `json:"check_out"`
}

func Created(b Booking, at time.Time) BookingCreated {
	return BookingCreated{
		BaseEvent: events.BaseEvent{Name: "booking.created", Aggregate: events.IntID(int64(b.ID)), Time: at.UTC()},
		BookingID: b.ID,
		RoomID:    b.RoomID,
		GuestName: b.GuestName,
		CheckIn:   daterange.FormatDate(b.Range.CheckIn),
		CheckOut:  daterange.FormatDate(b.Range.CheckOut),
	}
}
