package memory

import (
	"context"
	"sync"

	domainbooking "smarthost/internal/domain/booking"
	domainhosts "smarthost/internal/domain/hosts"
	domainproperties "smarthost/internal/domain/properties"
)

// HostRepository keeps hosts in insertion order.
type HostRepository struct {
	mu     sync.RWMutex
	items  []domainhosts.Host
	byName map[string]struct{}
}

func NewHostRepository() *HostRepository {
	return &HostRepository{byName: make(map[string]struct{})}
}

func (r *HostRepository) Add(ctx context.Context, host domainhosts.Host) (domainhosts.Host, error) {
	host, err := domainhosts.NewHost(host.Name, host.Rating)
	if err != nil {
		return domainhosts.Host{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byName[host.Name]; taken {
		return domainhosts.Host{}, domainhosts.ErrDuplicate(host.Name)
	}
	r.byName[host.Name] = struct{}{}
	r.items = append(r.items, host)
	return host, nil
}

func (r *HostRepository) List(ctx context.Context) ([]domainhosts.Host, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domainhosts.Host, len(r.items))
	copy(out, r.items)
	return out, nil
}

// PropertyRepository stores properties and rooms under independent counters
// starting at 1. Identifiers are never reused.
type PropertyRepository struct {
	mu         sync.RWMutex
	nextProp   domainproperties.PropertyID
	nextRoom   domainproperties.RoomID
	properties map[domainproperties.PropertyID]domainproperties.Property
	propOrder  []domainproperties.PropertyID
	names      map[string]struct{}
	rooms      []domainproperties.Room
}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{
		nextProp:   1,
		nextRoom:   1,
		properties: make(map[domainproperties.PropertyID]domainproperties.Property),
		names:      make(map[string]struct{}),
	}
}

func (r *PropertyRepository) AddProperty(ctx context.Context, draft domainproperties.PropertyDraft) (domainproperties.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.names[draft.Name]; taken {
		return domainproperties.Property{}, domainproperties.ErrDuplicate(draft.Name)
	}
	prop, err := domainproperties.NewProperty(r.nextProp, draft)
	if err != nil {
		return domainproperties.Property{}, err
	}
	r.nextProp++
	r.properties[prop.ID] = prop
	r.propOrder = append(r.propOrder, prop.ID)
	r.names[prop.Name] = struct{}{}
	return prop, nil
}

func (r *PropertyRepository) ListProperties(ctx context.Context) ([]domainproperties.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domainproperties.Property, 0, len(r.propOrder))
	for _, id := range r.propOrder {
		out = append(out, r.properties[id])
	}
	return out, nil
}

func (r *PropertyRepository) AddRoom(ctx context.Context, draft domainproperties.RoomDraft) (domainproperties.Room, error) {
	draft, err := draft.Normalize()
	if err != nil {
		return domainproperties.Room{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.properties[draft.PropertyID]; !ok {
		return domainproperties.Room{}, domainproperties.ErrPropertyNotFound(draft.PropertyID)
	}
	room, err := domainproperties.NewRoom(r.nextRoom, draft)
	if err != nil {
		return domainproperties.Room{}, err
	}
	r.nextRoom++
	r.rooms = append(r.rooms, room.Clone())
	return room, nil
}

func (r *PropertyRepository) ListRooms(ctx context.Context, filter domainproperties.RoomFilter) ([]domainproperties.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domainproperties.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if filter.Match(room) {
			out = append(out, room.Clone())
		}
	}
	return out, nil
}

// BookingRepository stores bookings in memory.
type BookingRepository struct {
	mu    sync.RWMutex
	next  domainbooking.BookingID
	items []domainbooking.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{next: 1}
}

func (r *BookingRepository) Add(ctx context.Context, draft domainbooking.Draft) (domainbooking.Booking, error) {
	if err := draft.Range.Validate(); err != nil {
		return domainbooking.Booking{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	b, err := domainbooking.NewBooking(r.next, draft)
	if err != nil {
		return domainbooking.Booking{}, err
	}
	r.next++
	r.items = append(r.items, b)
	return b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domainbooking.Booking, len(r.items))
	copy(out, r.items)
	return out, nil
}

var (
	_ domainhosts.Repository      = (*HostRepository)(nil)
	_ domainproperties.Repository = (*PropertyRepository)(nil)
	_ domainbooking.Repository    = (*BookingRepository)(nil)
)
