package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthost/internal/app/dto"
	bookingsvc "smarthost/internal/app/services/booking"
	"smarthost/internal/domain/shared/domainerr"
	"smarthost/internal/infra/storage/memory"
)

func TestCreateAndListBookings(t *testing.T) {
	ctx := context.Background()
	svc := bookingsvc.NewService(memory.NewBookingRepository(), nil)
	create := &CreateBookingHandler{Service: svc}
	list := &ListBookingsHandler{Service: svc}

	got, err := create.Handle(ctx, CreateBookingCommand{
		RoomID:    1,
		GuestName: "Bob",
		Language:  "en",
		CheckIn:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	want := dto.Booking{ID: 1, RoomID: 1, GuestName: "Bob", Language: "en", CheckIn: "2024-01-01", CheckOut: "2024-01-05"}
	assert.Equal(t, &want, got)

	_, err = create.Handle(ctx, CreateBookingCommand{
		RoomID:    1,
		GuestName: "Bob",
		Language:  "en",
		CheckIn:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.True(t, domainerr.IsValidation(err))

	all, err := list.Handle(ctx, ListBookingsQuery{})
	require.NoError(t, err)
	assert.Equal(t, []dto.Booking{want}, all)
}

func TestCreateBookingCommandIsIdempotent(t *testing.T) {
	cmd := CreateBookingCommand{IdempotencyKeyV: "abc"}
	assert.Equal(t, "abc", cmd.IdempotencyKey())
	assert.IsType(t, &dto.Booking{}, cmd.ResultPrototype())
}

func TestHandlersRequireService(t *testing.T) {
	_, err := (&CreateBookingHandler{}).Handle(context.Background(), CreateBookingCommand{})
	assert.ErrorIs(t, err, ErrServiceMissing)
}

func TestCreateBookingCommandValidate(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan3 := jan1.AddDate(0, 0, 2)

	assert.NoError(t, CreateBookingCommand{CheckIn: jan1, CheckOut: jan3}.Validate(), "blank guest and room are accepted")
	assert.True(t, domainerr.IsValidation(CreateBookingCommand{RoomID: 1, GuestName: "Bob", CheckIn: jan3, CheckOut: jan1}.Validate()))
}
