package dto

import (
	"fmt"

	domainbooking "smarthost/internal/domain/booking"
	"smarthost/internal/domain/hosts"
	"smarthost/internal/domain/properties"
	"smarthost/internal/domain/shared/daterange"
)

type Host struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

type Property struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type Room struct {
	ID         int64   `json:"id"`
	PropertyID int64   `json:"property_id"`
	Beds       int     `json:"beds"`
	Features   *string `json:"features"`
	Price      float64 `json:"price"`
}

type Booking struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"room_id"`
	GuestName string `json:"guest_name"`
	Language  string `json:"language"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
}

func MapHost(h hosts.Host) Host {
	return Host{Name: h.Name, Rating: h.Rating}
}

func MapProperty(p properties.Property) Property {
	return Property{ID: int64(p.ID), Name: p.Name, Location: p.Location}
}

func MapRoom(r properties.Room) Room {
	return Room{
		ID:         int64(r.ID),
		PropertyID: int64(r.PropertyID),
		Beds:       r.Beds,
		Features:   r.Features,
		Price:      r.Price,
	}
}

func MapBooking(b domainbooking.Booking) Booking {
	return Booking{
		ID:        int64(b.ID),
		RoomID:    int64(b.RoomID),
		GuestName: b.GuestName,
		Language:  b.Language,
		CheckIn:   daterange.FormatDate(b.Range.CheckIn),
		CheckOut:  daterange.FormatDate(b.Range.CheckOut),
	}
}

func MapHosts(items []hosts.Host) []Host {
	out := make([]Host, 0, len(items))
	for _, h := range items {
		out = append(out, MapHost(h))
	}
	return out
}

func MapProperties(items []properties.Property) []Property {
	out := make([]Property, 0, len(items))
	for _, p := range items {
		out = append(out, MapProperty(p))
	}
	return out
}

func MapRooms(items []properties.Room) []Room {
	out := make([]Room, 0, len(items))
	for _, r := range items {
		out = append(out, MapRoom(r))
	}
	return out
}

func MapBookings(items []domainbooking.Booking) []Booking {
	out := make([]Booking, 0, len(items))
	for _, b := range items {
		out = append(out, MapBooking(b))
	}
	return out
}

// ToMap converts any of the four entities into a plain string-keyed mapping.
// Dates are rendered as YYYY-MM-DD and a missing room feature list is nil.
func ToMap(entity any) (map[string]any, error) {
	switch v := entity.(type) {
	case hosts.Host:
		return map[string]any{"name": v.Name, "rating": v.Rating}, nil
	case properties.Property:
		return map[string]any{"id": int64(v.ID), "name": v.Name, "location": v.Location}, nil
	case properties.Room:
		var features any
		if v.Features != nil {
			features = *v.Features
		}
		return map[string]any{
			"id":          int64(v.ID),
			"property_id": int64(v.PropertyID),
			"beds":        v.Beds,
			"features":    features,
			"price":       v.Price,
		}, nil
	case domainbooking.Booking:
		return map[string]any{
			"id":         int64(v.ID),
			"room_id":    int64(v.RoomID),
			"guest_name": v.GuestName,
			"language":   v.Language,
			"check_in":   daterange.FormatDate(v.Range.CheckIn),
			"check_out":  daterange.FormatDate(v.Range.CheckOut),
		}, nil
	case *hosts.Host:
		return pointerToMap(v)
	case *properties.Property:
		return pointerToMap(v)
	case *properties.Room:
		return pointerToMap(v)
	case *domainbooking.Booking:
		return pointerToMap(v)
	default:
		return nil, fmt.Errorf("dto: cannot map %T", entity)
	}
}

func pointerToMap[T any](v *T) (map[string]any, error) {
	if v == nil {
		return nil, fmt.Errorf("dto: cannot map nil %T", v)
	}
	return ToMap(*v)
}
