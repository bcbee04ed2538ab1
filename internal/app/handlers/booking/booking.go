package booking

import (
	"context"
	"errors"
	"time"

	"smarthost/internal/app/commands"
	"smarthost/internal/app/dto"
	"smarthost/internal/app/handlers/support"
	"smarthost/internal/app/middleware"
	"smarthost/internal/app/queries"
	bookingsvc "smarthost/internal/app/services/booking"
	domainbooking "smarthost/internal/domain/booking"
	"smarthost/internal/domain/properties"
)

const (
	createBookingKey = "booking.create"
	listBookingsKey  = "booking.list"
)

var ErrServiceMissing = errors.New("booking: service required")

type CreateBookingCommand struct {
	RoomID          int64
	GuestName       string
	Language        string
	CheckIn         time.Time
	CheckOut        time.Time
	IdempotencyKeyV string
}

func (c CreateBookingCommand) Key() string { return createBookingKey }

func (c CreateBookingCommand) IdempotencyKey() string { return c.IdempotencyKeyV }

func (c CreateBookingCommand) ResultPrototype() any { return &dto.Booking{} }

// Validate checks the date order only; the service repeats it.
func (c CreateBookingCommand) Validate() error {
	_, err := domainbooking.NewDraft(domainbooking.CreateParams{
		RoomID:    properties.RoomID(c.RoomID),
		GuestName: c.GuestName,
		Language:  c.Language,
		CheckIn:   c.CheckIn,
		CheckOut:  c.CheckOut,
	})
	return err
}

type CreateBookingHandler struct {
	Service *bookingsvc.Service
	Events  support.Recorder
}

func (h *CreateBookingHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*dto.Booking, error) {
	if h.Service == nil {
		return nil, ErrServiceMissing
	}
	created, err := h.Service.CreateBooking(ctx, properties.RoomID(cmd.RoomID), cmd.GuestName, cmd.Language, cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		return nil, err
	}
	if err := h.Events.Record(ctx, domainbooking.Created(created, h.Events.Clock())); err != nil {
		return nil, err
	}
	out := dto.MapBooking(created)
	return &out, nil
}

type ListBookingsQuery struct{}

func (q ListBookingsQuery) Key() string { return listBookingsKey }

type ListBookingsHandler struct {
	Service *bookingsvc.Service
}

func (h *ListBookingsHandler) Handle(ctx context.Context, q ListBookingsQuery) ([]dto.Booking, error) {
	if h.Service == nil {
		return nil, ErrServiceMissing
	}
	items, err := h.Service.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapBookings(items), nil
}

var _ commands.Handler[CreateBookingCommand, *dto.Booking] = (*CreateBookingHandler)(nil)
var _ queries.Handler[ListBookingsQuery, []dto.Booking] = (*ListBookingsHandler)(nil)
var _ middleware.IdempotentCommand = CreateBookingCommand{}
var _ middleware.SelfValidating = CreateBookingCommand{}
