package mongostore

import (
	domainbooking "smarthost/internal/domain/booking"
	domainproperties "smarthost/internal/domain/properties"
	"smarthost/internal/domain/shared/daterange"
)

type hostDocument struct {
	ID     int64   `bson:"_id"`
	Name   string  `bson:"name"`
	Rating float64 `bson:"rating"`
}

type propertyDocument struct {
	ID       int64  `bson:"_id"`
	Name     string `bson:"name"`
	Location string `bson:"location"`
}

type roomDocument struct {
	ID         int64   `bson:"_id"`
	PropertyID int64   `bson:"property_id"`
	Beds       int     `bson:"beds"`
	Features   *string `bson:"features"`
	Price      float64 `bson:"price"`
}

func (d roomDocument) toRoom() domainproperties.Room {
	return domainproperties.Room{
		ID:         domainproperties.RoomID(d.ID),
		PropertyID: domainproperties.PropertyID(d.PropertyID),
		Beds:       d.Beds,
		Features:   d.Features,
		Price:      d.Price,
	}
}

type bookingDocument struct {
	ID        int64  `bson:"_id"`
	RoomID    int64  `bson:"room_id"`
	GuestName string `bson:"guest_name"`
	Language  string `bson:"language"`
	CheckIn   string `bson:"check_in"`
	CheckOut  string `bson:"check_out"`
}

func (d bookingDocument) toBooking() (domainbooking.Booking, error) {
	in, err := daterange.ParseDate(d.CheckIn)
	if err != nil {
		return domainbooking.Booking{}, err
	}
	out, err := daterange.ParseDate(d.CheckOut)
	if err != nil {
		return domainbooking.Booking{}, err
	}
	return domainbooking.Booking{
		ID:        domainbooking.BookingID(d.ID),
		RoomID:    domainproperties.RoomID(d.RoomID),
		GuestName: d.GuestName,
		Language:  d.Language,
		Range:     daterange.DateRange{CheckIn: in, CheckOut: out},
	}, nil
}
