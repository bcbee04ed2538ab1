package properties

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthost/internal/app/handlers/support"
	"smarthost/internal/app/outbox"
	"smarthost/internal/domain/shared/domainerr"
	"smarthost/internal/infra/storage/memory"
)

type bufferOutbox struct {
	records []outbox.EventRecord
}

func (b *bufferOutbox) Add(ctx context.Context, rec outbox.EventRecord) error {
	b.records = append(b.records, rec)
	return nil
}

func (b *bufferOutbox) Flush(ctx context.Context) error { return nil }

func TestAddPropertyAndRooms(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPropertyRepository()
	box := &bufferOutbox{}
	events := support.Recorder{Outbox: box, Now: func() time.Time { return time.Unix(0, 0) }}

	addProp := &AddPropertyHandler{Repo: repo, Events: events}
	addRoom := &AddRoomHandler{Repo: repo, Events: events}
	listRooms := &ListRoomsHandler{Repo: repo}

	prop, err := addProp.Handle(ctx, AddPropertyCommand{Name: "Aruba House", Location: "Paradera"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), prop.ID)

	features, beds := "Sea view", 2
	room, err := addRoom.Handle(ctx, AddRoomCommand{PropertyID: prop.ID, Beds: &beds, Features: &features, Price: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(1), room.ID)

	rooms, err := listRooms.Handle(ctx, ListRoomsQuery{PropertyID: &prop.ID})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, *room, rooms[0])

	require.Len(t, box.records, 2)
	assert.Equal(t, "property.added", box.records[0].Name)
	assert.Equal(t, "room.added", box.records[1].Name)
	assert.JSONEq(t, `{"occurred_at":"1970-01-01T00:00:00Z","room_id":1,"property_id":1,"beds":2,"price":100}`, string(box.records[1].Payload))
}

func TestAddRoomMissingPropertyRecordsNothing(t *testing.T) {
	ctx := context.Background()
	box := &bufferOutbox{}
	h := &AddRoomHandler{Repo: memory.NewPropertyRepository(), Events: support.Recorder{Outbox: box}}

	_, err := h.Handle(ctx, AddRoomCommand{PropertyID: 5})
	assert.True(t, domainerr.IsNotFound(err))
	assert.Empty(t, box.records)
}

func TestHandlersRequireRepository(t *testing.T) {
	_, err := (&ListPropertiesHandler{}).Handle(context.Background(), ListPropertiesQuery{})
	assert.ErrorIs(t, err, ErrRepositoryMissing)
}

func TestAddRoomCommandValidate(t *testing.T) {
	zero, two := 0, 2
	assert.NoError(t, AddRoomCommand{PropertyID: 1}.Validate())
	assert.NoError(t, AddRoomCommand{PropertyID: 1, Beds: &two}.Validate())
	assert.True(t, domainerr.IsValidation(AddRoomCommand{PropertyID: 1, Beds: &zero}.Validate()))
	assert.True(t, domainerr.IsValidation(AddRoomCommand{PropertyID: 1, Price: -1}.Validate()))
}
