package ormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainbooking "smarthost/internal/domain/booking"
	domainhosts "smarthost/internal/domain/hosts"
	domainproperties "smarthost/internal/domain/properties"
	"smarthost/internal/domain/shared/daterange"
)

type HostRepository struct {
	db *gorm.DB
}

func NewHostRepository(db *gorm.DB) *HostRepository {
	return &HostRepository{db: db}
}

func (r *HostRepository) Add(ctx context.Context, host domainhosts.Host) (domainhosts.Host, error) {
	host, err := domainhosts.NewHost(host.Name, host.Rating)
	if err != nil {
		return domainhosts.Host{}, err
	}
	row := HostTable{Name: host.Name, Rating: host.Rating}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		if isDuplicate(err) {
			return domainhosts.Host{}, domainhosts.ErrDuplicate(host.Name)
		}
		return domainhosts.Host{}, fmt.Errorf("ormstore: insert host: %w", err)
	}
	return domainhosts.Host{Name: row.Name, Rating: row.Rating}, nil
}

func (r *HostRepository) List(ctx context.Context) ([]domainhosts.Host, error) {
	var rows []HostTable
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("ormstore: list hosts: %w", err)
	}
	out := make([]domainhosts.Host, 0, len(rows))
	for _, row := range rows {
		out = append(out, domainhosts.Host{Name: row.Name, Rating: row.Rating})
	}
	return out, nil
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) AddProperty(ctx context.Context, draft domainproperties.PropertyDraft) (domainproperties.Property, error) {
	row := PropertyTable{Name: draft.Name, Location: draft.Location}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&row).Error
	})
	if err != nil {
		if isDuplicate(err) {
			return domainproperties.Property{}, domainproperties.ErrDuplicate(draft.Name)
		}
		return domainproperties.Property{}, fmt.Errorf("ormstore: insert property: %w", err)
	}
	return domainproperties.NewProperty(domainproperties.PropertyID(row.ID), draft)
}

func (r *PropertyRepository) ListProperties(ctx context.Context) ([]domainproperties.Property, error) {
	var rows []PropertyTable
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("ormstore: list properties: %w", err)
	}
	out := make([]domainproperties.Property, 0, len(rows))
	for _, row := range rows {
		out = append(out, toProperty(row))
	}
	return out, nil
}

func (r *PropertyRepository) AddRoom(ctx context.Context, draft domainproperties.RoomDraft) (domainproperties.Room, error) {
	draft, err := draft.Normalize()
	if err != nil {
		return domainproperties.Room{}, err
	}
	row := RoomTable{
		PropertyID: uint(draft.PropertyID),
		Beds:       draft.BedCount(),
		Features:   draft.Features,
		Price:      draft.Price,
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent PropertyTable
		if err := tx.Select("id").Take(&parent, "id = ?", row.PropertyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainproperties.ErrPropertyNotFound(draft.PropertyID)
			}
			return fmt.Errorf("ormstore: lookup property: %w", err)
		}
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return fmt.Errorf("ormstore: insert room: %w", err)
		}
		return nil
	})
	if err != nil {
		return domainproperties.Room{}, err
	}
	return domainproperties.NewRoom(domainproperties.RoomID(row.ID), draft)
}

func (r *PropertyRepository) ListRooms(ctx context.Context, filter domainproperties.RoomFilter) ([]domainproperties.Room, error) {
	var rows []RoomTable
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Order("id")
		if filter.PropertyID != nil {
			q = q.Where("property_id = ?", uint(*filter.PropertyID))
		}
		return q.Find(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("ormstore: list rooms: %w", err)
	}
	out := make([]domainproperties.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRoom(row))
	}
	return out, nil
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Add(ctx context.Context, draft domainbooking.Draft) (domainbooking.Booking, error) {
	if err := draft.Range.Validate(); err != nil {
		return domainbooking.Booking{}, err
	}
	row := BookingTable{
		RoomID:    uint(draft.RoomID),
		GuestName: draft.GuestName,
		Language:  draft.Language,
		CheckIn:   daterange.FormatDate(draft.Range.CheckIn),
		CheckOut:  daterange.FormatDate(draft.Range.CheckOut),
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return domainbooking.Booking{}, fmt.Errorf("ormstore: insert booking: %w", err)
	}
	return domainbooking.NewBooking(domainbooking.BookingID(row.ID), draft)
}

func (r *BookingRepository) List(ctx context.Context) ([]domainbooking.Booking, error) {
	var rows []BookingTable
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("ormstore: list bookings: %w", err)
	}
	out := make([]domainbooking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := toBooking(row)
		if err != nil {
			return nil, fmt.Errorf("ormstore: booking %d: %w", row.ID, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func toProperty(row PropertyTable) domainproperties.Property {
	return domainproperties.Property{ID: domainproperties.PropertyID(row.ID), Name: row.Name, Location: row.Location}
}

func toRoom(row RoomTable) domainproperties.Room {
	return domainproperties.Room{
		ID:         domainproperties.RoomID(row.ID),
		PropertyID: domainproperties.PropertyID(row.PropertyID),
		Beds:       row.Beds,
		Features:   row.Features,
		Price:      row.Price,
	}
}

func toBooking(row BookingTable) (domainbooking.Booking, error) {
	in, err := daterange.ParseDate(row.CheckIn)
	if err != nil {
		return domainbooking.Booking{}, err
	}
	out, err := daterange.ParseDate(row.CheckOut)
	if err != nil {
		return domainbooking.Booking{}, err
	}
	return domainbooking.Booking{
		ID:        domainbooking.BookingID(row.ID),
		RoomID:    domainproperties.RoomID(row.RoomID),
		GuestName: row.GuestName,
		Language:  row.Language,
		Range:     daterange.DateRange{CheckIn: in, CheckOut: out},
	}, nil
}

var (
	_ domainhosts.Repository      = (*HostRepository)(nil)
	_ domainproperties.Repository = (*PropertyRepository)(nil)
	_ domainbooking.Repository    = (*BookingRepository)(nil)
)
