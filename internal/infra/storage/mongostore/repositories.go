package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainbooking "smarthost/internal/domain/booking"
	domainhosts "smarthost/internal/domain/hosts"
	domainproperties "smarthost/internal/domain/properties"
	"smarthost/internal/domain/shared/daterange"
)

var byID = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

type HostRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewHostRepository(db *mongo.Database) *HostRepository {
	return &HostRepository{db: db, col: db.Collection(hostsCollection)}
}

// Add stores the host under a sequence id that only orders listings.
func (r *HostRepository) Add(ctx context.Context, host domainhosts.Host) (domainhosts.Host, error) {
	host, err := domainhosts.NewHost(host.Name, host.Rating)
	if err != nil {
		return domainhosts.Host{}, err
	}
	id, err := nextID(ctx, r.db, hostsCollection)
	if err != nil {
		return domainhosts.Host{}, err
	}
	if _, err := r.col.InsertOne(ctx, hostDocument{ID: id, Name: host.Name, Rating: host.Rating}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainhosts.Host{}, domainhosts.ErrDuplicate(host.Name)
		}
		return domainhosts.Host{}, fmt.Errorf("mongostore: insert host: %w", err)
	}
	return host, nil
}

func (r *HostRepository) List(ctx context.Context) ([]domainhosts.Host, error) {
	var docs []hostDocument
	if err := findAll(ctx, r.col, bson.M{}, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: list hosts: %w", err)
	}
	out := make([]domainhosts.Host, 0, len(docs))
	for _, d := range docs {
		out = append(out, domainhosts.Host{Name: d.Name, Rating: d.Rating})
	}
	return out, nil
}

type PropertyRepository struct {
	db         *mongo.Database
	properties *mongo.Collection
	rooms      *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{
		db:         db,
		properties: db.Collection(propertiesCollection),
		rooms:      db.Collection(roomsCollection),
	}
}

func (r *PropertyRepository) AddProperty(ctx context.Context, draft domainproperties.PropertyDraft) (domainproperties.Property, error) {
	id, err := nextID(ctx, r.db, propertiesCollection)
	if err != nil {
		return domainproperties.Property{}, err
	}
	doc := propertyDocument{ID: id, Name: draft.Name, Location: draft.Location}
	if _, err := r.properties.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainproperties.Property{}, domainproperties.ErrDuplicate(draft.Name)
		}
		return domainproperties.Property{}, fmt.Errorf("mongostore: insert property: %w", err)
	}
	return domainproperties.NewProperty(domainproperties.PropertyID(id), draft)
}

func (r *PropertyRepository) ListProperties(ctx context.Context) ([]domainproperties.Property, error) {
	var docs []propertyDocument
	if err := findAll(ctx, r.properties, bson.M{}, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: list properties: %w", err)
	}
	out := make([]domainproperties.Property, 0, len(docs))
	for _, d := range docs {
		out = append(out, domainproperties.Property{ID: domainproperties.PropertyID(d.ID), Name: d.Name, Location: d.Location})
	}
	return out, nil
}

// AddRoom looks the property up before allocating a room id.
func (r *PropertyRepository) AddRoom(ctx context.Context, draft domainproperties.RoomDraft) (domainproperties.Room, error) {
	draft, err := draft.Normalize()
	if err != nil {
		return domainproperties.Room{}, err
	}
	err = r.properties.FindOne(ctx, bson.M{"_id": int64(draft.PropertyID)}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domainproperties.Room{}, domainproperties.ErrPropertyNotFound(draft.PropertyID)
	}
	if err != nil {
		return domainproperties.Room{}, fmt.Errorf("mongostore: lookup property: %w", err)
	}
	id, err := nextID(ctx, r.db, roomsCollection)
	if err != nil {
		return domainproperties.Room{}, err
	}
	doc := roomDocument{
		ID:         id,
		PropertyID: int64(draft.PropertyID),
		Beds:       draft.BedCount(),
		Features:   draft.Features,
		Price:      draft.Price,
	}
	if _, err := r.rooms.InsertOne(ctx, doc); err != nil {
		return domainproperties.Room{}, fmt.Errorf("mongostore: insert room: %w", err)
	}
	return domainproperties.NewRoom(domainproperties.RoomID(id), draft)
}

func (r *PropertyRepository) ListRooms(ctx context.Context, filter domainproperties.RoomFilter) ([]domainproperties.Room, error) {
	query := bson.M{}
	if filter.PropertyID != nil {
		query["property_id"] = int64(*filter.PropertyID)
	}
	var docs []roomDocument
	if err := findAll(ctx, r.rooms, query, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: list rooms: %w", err)
	}
	out := make([]domainproperties.Room, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toRoom())
	}
	return out, nil
}

type BookingRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{db: db, col: db.Collection(bookingsCollection)}
}

func (r *BookingRepository) Add(ctx context.Context, draft domainbooking.Draft) (domainbooking.Booking, error) {
	if err := draft.Range.Validate(); err != nil {
		return domainbooking.Booking{}, err
	}
	id, err := nextID(ctx, r.db, bookingsCollection)
	if err != nil {
		return domainbooking.Booking{}, err
	}
	doc := bookingDocument{
		ID:        id,
		RoomID:    int64(draft.RoomID),
		GuestName: draft.GuestName,
		Language:  draft.Language,
		CheckIn:   daterange.FormatDate(draft.Range.CheckIn),
		CheckOut:  daterange.FormatDate(draft.Range.CheckOut),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return domainbooking.Booking{}, fmt.Errorf("mongostore: insert booking: %w", err)
	}
	return domainbooking.NewBooking(domainbooking.BookingID(id), draft)
}

func (r *BookingRepository) List(ctx context.Context) ([]domainbooking.Booking, error) {
	var docs []bookingDocument
	if err := findAll(ctx, r.col, bson.M{}, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: list bookings: %w", err)
	}
	out := make([]domainbooking.Booking, 0, len(docs))
	for _, d := range docs {
		b, err := d.toBooking()
		if err != nil {
			return nil, fmt.Errorf("mongostore: booking %d: %w", d.ID, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func findAll(ctx context.Context, col *mongo.Collection, filter bson.M, out any) error {
	cur, err := col.Find(ctx, filter, byID)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

var (
	_ domainhosts.Repository      = (*HostRepository)(nil)
	_ domainproperties.Repository = (*PropertyRepository)(nil)
	_ domainbooking.Repository    = (*BookingRepository)(nil)
)
