package properties

import (
	"context"
	"errors"

	"smarthost/internal/app/commands"
	"smarthost/internal/app/dto"
	"smarthost/internal/app/handlers/support"
	"smarthost/internal/app/queries"
	domainproperties "smarthost/internal/domain/properties"
)

const (
	addPropertyKey    = "properties.add"
	listPropertiesKey = "properties.list"
	addRoomKey        = "properties.rooms.add"
	listRoomsKey      = "properties.rooms.list"
)

var ErrRepositoryMissing = errors.New("properties: repository required")

type AddPropertyCommand struct {
	Name     string
	Location string
}

func (c AddPropertyCommand) Key() string { return addPropertyKey }

type AddPropertyHandler struct {
	Repo   domainproperties.Repository
	Events support.Recorder
}

func (h *AddPropertyHandler) Handle(ctx context.Context, cmd AddPropertyCommand) (*dto.Property, error) {
	if h.Repo == nil {
		return nil, ErrRepositoryMissing
	}
	prop, err := h.Repo.AddProperty(ctx, domainproperties.PropertyDraft{Name: cmd.Name, Location: cmd.Location})
	if err != nil {
		return nil, err
	}
	if err := h.Events.Record(ctx, domainproperties.Added(prop, h.Events.Clock())); err != nil {
		return nil, err
	}
	out := dto.MapProperty(prop)
	return &out, nil
}

type ListPropertiesQuery struct{}

func (q ListPropertiesQuery) Key() string { return listPropertiesKey }

type ListPropertiesHandler struct {
	Repo domainproperties.Repository
}

func (h *ListPropertiesHandler) Handle(ctx context.Context, q ListPropertiesQuery) ([]dto.Property, error) {
	if h.Repo == nil {
		return nil, ErrRepositoryMissing
	}
	items, err := h.Repo.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapProperties(items), nil
}

// AddRoomCommand creates a room under an existing property. Nil Beds selects the default.
type AddRoomCommand struct {
	PropertyID int64
	Beds       *int
	Features   *string
	Price      float64
}

func (c AddRoomCommand) Key() string { return addRoomKey }

func (c AddRoomCommand) Validate() error {
	_, err := c.draft().Normalize()
	return err
}

func (c AddRoomCommand) draft() domainproperties.RoomDraft {
	return domainproperties.RoomDraft{
		PropertyID: domainproperties.PropertyID(c.PropertyID),
		Beds:       c.Beds,
		Features:   c.Features,
		Price:      c.Price,
	}
}

type AddRoomHandler struct {
	Repo   domainproperties.Repository
	Events support.Recorder
}

func (h *AddRoomHandler) Handle(ctx context.Context, cmd AddRoomCommand) (*dto.Room, error) {
	if h.Repo == nil {
		return nil, ErrRepositoryMissing
	}
	room, err := h.Repo.AddRoom(ctx, cmd.draft())
	if err != nil {
		return nil, err
	}
	if err := h.Events.Record(ctx, domainproperties.RoomCreated(room, h.Events.Clock())); err != nil {
		return nil, err
	}
	out := dto.MapRoom(room)
	return &out, nil
}

// ListRoomsQuery lists rooms, optionally restricted to one property.
type ListRoomsQuery struct {
	PropertyID *int64
}

func (q ListRoomsQuery) Key() string { return listRoomsKey }

type ListRoomsHandler struct {
	Repo domainproperties.Repository
}

func (h *ListRoomsHandler) Handle(ctx context.Context, q ListRoomsQuery) ([]dto.Room, error) {
	if h.Repo == nil {
		return nil, ErrRepositoryMissing
	}
	filter := domainproperties.RoomFilter{}
	if q.PropertyID != nil {
		filter = domainproperties.ForProperty(domainproperties.PropertyID(*q.PropertyID))
	}
	items, err := h.Repo.ListRooms(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.MapRooms(items), nil
}

var _ commands.Handler[AddPropertyCommand, *dto.Property] = (*AddPropertyHandler)(nil)
var _ commands.Handler[AddRoomCommand, *dto.Room] = (*AddRoomHandler)(nil)
var _ queries.Handler[ListPropertiesQuery, []dto.Property] = (*ListPropertiesHandler)(nil)
var _ queries.Handler[ListRoomsQuery, []dto.Room] = (*ListRoomsHandler)(nil)
