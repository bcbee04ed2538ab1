package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"smarthost/internal/app/commands"
	"smarthost/internal/app/dto"
	bookingapp "smarthost/internal/app/handlers/booking"
	"smarthost/internal/app/queries"
	"smarthost/internal/domain/shared/daterange"
	"smarthost/internal/domain/shared/domainerr"
)

const idempotencyHeader = "Idempotency-Key"

type BookingHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
	Logger   *slog.Logger
}

// Dates arrive as YYYY-MM-DD strings and are parsed after binding so a bad
// value is reported against its field.
type createBookingRequest struct {
	RoomID    int64  `form:"room_id" json:"room_id"`
	GuestName string `form:"guest_name" json:"guest_name"`
	Language  string `form:"language" json:"language"`
	CheckIn   string `form:"check_in" json:"check_in"`
	CheckOut  string `form:"check_out" json:"check_out"`
}

func (h BookingHandler) List(c *gin.Context) {
	items, err := queries.Ask[bookingapp.ListBookingsQuery, []dto.Booking](c.Request.Context(), h.Queries, bookingapp.ListBookingsQuery{})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}
	checkIn, err := daterange.ParseDate(req.CheckIn)
	if err != nil {
		badRequest(c, domainerr.Invalid("check_in", "must be formatted as YYYY-MM-DD"))
		return
	}
	checkOut, err := daterange.ParseDate(req.CheckOut)
	if err != nil {
		badRequest(c, domainerr.Invalid("check_out", "must be formatted as YYYY-MM-DD"))
		return
	}
	cmd := bookingapp.CreateBookingCommand{
		RoomID:          req.RoomID,
		GuestName:       req.GuestName,
		Language:        req.Language,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		IdempotencyKeyV: c.GetHeader(idempotencyHeader),
	}
	booking, err := commands.Dispatch[bookingapp.CreateBookingCommand, *dto.Booking](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

var _ BookingHTTP = BookingHandler{}
