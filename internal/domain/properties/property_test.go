package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthost/internal/domain/shared/domainerr"
)

func TestNewPropertyNeedsID(t *testing.T) {
	_, err := NewProperty(0, PropertyDraft{Name: "A", Location: "B"})
	assert.True(t, domainerr.IsValidation(err))

	p, err := NewProperty(3, PropertyDraft{Name: "A", Location: "B"})
	require.NoError(t, err)
	assert.Equal(t, Property{ID: 3, Name: "A", Location: "B"}, p)
}

func TestNewPropertyKeepsFieldsAsGiven(t *testing.T) {
	p, err := NewProperty(1, PropertyDraft{Name: " Nowhere "})
	require.NoError(t, err)
	assert.Equal(t, " Nowhere ", p.Name)
	assert.Empty(t, p.Location)
}

func TestRoomDraftNormalize(t *testing.T) {
	blank := "   "
	tests := []struct {
		name    string
		draft   RoomDraft
		want    RoomDraft
		invalid bool
	}{
		{"defaults", RoomDraft{PropertyID: 1}, RoomDraft{PropertyID: 1, Beds: BedsOf(DefaultBeds)}, false},
		{"blank features dropped", RoomDraft{PropertyID: 1, Beds: BedsOf(2), Features: &blank}, RoomDraft{PropertyID: 1, Beds: BedsOf(2)}, false},
		{"explicit beds kept", RoomDraft{PropertyID: 1, Beds: BedsOf(3)}, RoomDraft{PropertyID: 1, Beds: BedsOf(3)}, false},
		{"zero beds", RoomDraft{PropertyID: 1, Beds: BedsOf(0)}, RoomDraft{}, true},
		{"negative beds", RoomDraft{PropertyID: 1, Beds: BedsOf(-1)}, RoomDraft{}, true},
		{"negative price", RoomDraft{PropertyID: 1, Price: -0.5}, RoomDraft{}, true},
		{"missing property", RoomDraft{}, RoomDraft{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.draft.Normalize()
			if tt.invalid {
				assert.True(t, domainerr.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoomClone(t *testing.T) {
	features := "Sea view"
	room := Room{ID: 1, PropertyID: 1, Beds: 2, Features: &features}
	clone := room.Clone()
	*clone.Features = "changed"
	assert.Equal(t, "Sea view", *room.Features)
	assert.Nil(t, Room{ID: 2}.Clone().Features)
}

func TestRoomFilter(t *testing.T) {
	room := Room{ID: 1, PropertyID: 2}
	assert.True(t, RoomFilter{}.Match(room))
	assert.True(t, ForProperty(2).Match(room))
	assert.False(t, ForProperty(3).Match(room))
}

func TestErrPropertyNotFoundCarriesID(t *testing.T) {
	err := ErrPropertyNotFound(17)
	assert.True(t, domainerr.IsNotFound(err))
	assert.Contains(t, err.Error(), "17")
}
