package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthost/internal/domain/shared/daterange"
	"smarthost/internal/domain/shared/domainerr"
)

func params() CreateParams {
	return CreateParams{
		RoomID:    1,
		GuestName: "Bob",
		Language:  "en",
		CheckIn:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewDraft(t *testing.T) {
	draft, err := NewDraft(params())
	require.NoError(t, err)
	assert.Equal(t, "Bob", draft.GuestName)
	assert.Equal(t, 4, draft.Range.Nights())
}

func TestNewDraftRejectsDateOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *CreateParams)
	}{
		{"reversed dates", func(p *CreateParams) { p.CheckIn, p.CheckOut = p.CheckOut, p.CheckIn }},
		{"same day", func(p *CreateParams) { p.CheckOut = p.CheckIn }},
		{"reversed dates with blank guest", func(p *CreateParams) { p.CheckIn, p.CheckOut = p.CheckOut, p.CheckIn; p.GuestName = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params()
			tt.mutate(&p)
			_, err := NewDraft(p)
			require.Error(t, err)
			var verr *domainerr.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "check_out", verr.Field)
		})
	}
}

func TestNewDraftAcceptsOtherFieldsAsGiven(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *CreateParams)
	}{
		{"blank guest", func(p *CreateParams) { p.GuestName = "" }},
		{"blank language", func(p *CreateParams) { p.Language = "" }},
		{"zero room", func(p *CreateParams) { p.RoomID = 0 }},
		{"unknown room", func(p *CreateParams) { p.RoomID = 404 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params()
			tt.mutate(&p)
			draft, err := NewDraft(p)
			require.NoError(t, err)
			assert.Equal(t, p.RoomID, draft.RoomID)
			assert.Equal(t, p.GuestName, draft.GuestName)
			assert.Equal(t, p.Language, draft.Language)
		})
	}
}

func TestCreatedEvent(t *testing.T) {
	draft, err := NewDraft(params())
	require.NoError(t, err)
	b, err := NewBooking(9, draft)
	require.NoError(t, err)

	ev := Created(b, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "booking.created", ev.EventName())
	assert.Equal(t, "9", ev.AggregateID())
	assert.Equal(t, daterange.FormatDate(b.Range.CheckIn), ev.CheckIn)
}

func TestNewBookingNeedsID(t *testing.T) {
	draft, err := NewDraft(params())
	require.NoError(t, err)
	_, err = NewBooking(0, draft)
	assert.True(t, domainerr.IsValidation(err))
}
