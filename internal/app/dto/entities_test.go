package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbooking "smarthost/internal/domain/booking"
	"smarthost/internal/domain/hosts"
	"smarthost/internal/domain/properties"
	"smarthost/internal/domain/shared/daterange"
)

func TestToMap_Host(t *testing.T) {
	got, err := ToMap(hosts.Host{Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Alice", "rating": 0.0}, got)
}

func TestToMap_Room(t *testing.T) {
	features := "Sea view"
	tests := []struct {
		name string
		room properties.Room
		want any
	}{
		{"with features", properties.Room{ID: 1, PropertyID: 1, Beds: 2, Features: &features, Price: 100}, "Sea view"},
		{"without features", properties.Room{ID: 2, PropertyID: 1, Beds: 1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMap(tt.room)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got["features"])
			assert.Equal(t, int64(tt.room.ID), got["id"])
			assert.Equal(t, int64(1), got["property_id"])
		})
	}
}

func TestToMap_BookingAndPointer(t *testing.T) {
	dr, err := daterange.New(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	b := domainbooking.Booking{ID: 1, RoomID: 1, GuestName: "Bob", Language: "nl", Range: dr}

	got, err := ToMap(&b)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"id":         int64(1),
		"room_id":    int64(1),
		"guest_name": "Bob",
		"language":   "nl",
		"check_in":   "2024-01-01",
		"check_out":  "2024-01-05",
	}, got)
}

func TestToMap_Unsupported(t *testing.T) {
	_, err := ToMap("nope")
	assert.Error(t, err)

	var nilRoom *properties.Room
	_, err = ToMap(nilRoom)
	assert.Error(t, err)
}

func TestMapRoom_JSONShape(t *testing.T) {
	raw, err := json.Marshal(MapRoom(properties.Room{ID: 4, PropertyID: 2, Beds: 1}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"property_id":2,"beds":1,"features":null,"price":0}`, string(raw))
}

func TestMapProperties_EmptyIsNotNil(t *testing.T) {
	out := MapProperties(nil)
	require.NotNil(t, out)
	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
