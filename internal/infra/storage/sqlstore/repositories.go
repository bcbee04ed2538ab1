package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domainbooking "smarthost/internal/domain/booking"
	domainhosts "smarthost/internal/domain/hosts"
	domainproperties "smarthost/internal/domain/properties"
	"smarthost/internal/domain/shared/daterange"
)

type HostRepository struct {
	db *sql.DB
}

func NewHostRepository(db *sql.DB) *HostRepository {
	return &HostRepository{db: db}
}

func (r *HostRepository) Add(ctx context.Context, host domainhosts.Host) (domainhosts.Host, error) {
	host, err := domainhosts.NewHost(host.Name, host.Rating)
	if err != nil {
		return domainhosts.Host{}, err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO hosts (name, rating) VALUES (?, ?)`, host.Name, host.Rating)
	if err != nil {
		if isUniqueViolation(err) {
			return domainhosts.Host{}, domainhosts.ErrDuplicate(host.Name)
		}
		return domainhosts.Host{}, fmt.Errorf("sqlstore: insert host: %w", err)
	}
	return host, nil
}

func (r *HostRepository) List(ctx context.Context) ([]domainhosts.Host, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, rating FROM hosts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: list hosts: %w", err)
	}
	defer rows.Close()
	out := []domainhosts.Host{}
	for rows.Next() {
		var h domainhosts.Host
		if err := rows.Scan(&h.Name, &h.Rating); err != nil {
			return nil, fmt.Errorf("sqlstore: scan host: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

type PropertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) AddProperty(ctx context.Context, draft domainproperties.PropertyDraft) (domainproperties.Property, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO properties (name, location) VALUES (?, ?)`, draft.Name, draft.Location)
	if err != nil {
		if isUniqueViolation(err) {
			return domainproperties.Property{}, domainproperties.ErrDuplicate(draft.Name)
		}
		return domainproperties.Property{}, fmt.Errorf("sqlstore: insert property: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domainproperties.Property{}, fmt.Errorf("sqlstore: property id: %w", err)
	}
	return domainproperties.NewProperty(domainproperties.PropertyID(id), draft)
}

func (r *PropertyRepository) ListProperties(ctx context.Context) ([]domainproperties.Property, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, location FROM properties ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: list properties: %w", err)
	}
	defer rows.Close()
	out := []domainproperties.Property{}
	for rows.Next() {
		var p domainproperties.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.Location); err != nil {
			return nil, fmt.Errorf("sqlstore: scan property: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// AddRoom checks the parent property inside the same transaction as the
// insert, so a missing property leaves no row behind.
func (r *PropertyRepository) AddRoom(ctx context.Context, draft domainproperties.RoomDraft) (domainproperties.Room, error) {
	draft, err := draft.Normalize()
	if err != nil {
		return domainproperties.Room{}, err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domainproperties.Room{}, fmt.Errorf("sqlstore: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM properties WHERE id = ?`, draft.PropertyID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return domainproperties.Room{}, domainproperties.ErrPropertyNotFound(draft.PropertyID)
	}
	if err != nil {
		return domainproperties.Room{}, fmt.Errorf("sqlstore: lookup property: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO rooms (property_id, beds, features, price) VALUES (?, ?, ?, ?)`,
		draft.PropertyID, draft.BedCount(), nullString(draft.Features), draft.Price)
	if err != nil {
		return domainproperties.Room{}, fmt.Errorf("sqlstore: insert room: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domainproperties.Room{}, fmt.Errorf("sqlstore: room id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return domainproperties.Room{}, fmt.Errorf("sqlstore: commit room: %w", err)
	}
	return domainproperties.NewRoom(domainproperties.RoomID(id), draft)
}

func (r *PropertyRepository) ListRooms(ctx context.Context, filter domainproperties.RoomFilter) ([]domainproperties.Room, error) {
	query := `SELECT id, property_id, beds, features, price FROM rooms`
	var args []any
	if filter.PropertyID != nil {
		query += ` WHERE property_id = ?`
		args = append(args, *filter.PropertyID)
	}
	query += ` ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: list rooms: %w", err)
	}
	defer rows.Close()
	out := []domainproperties.Room{}
	for rows.Next() {
		var (
			room     domainproperties.Room
			features sql.NullString
		)
		if err := rows.Scan(&room.ID, &room.PropertyID, &room.Beds, &features, &room.Price); err != nil {
			return nil, fmt.Errorf("sqlstore: scan room: %w", err)
		}
		if features.Valid {
			v := features.String
			room.Features = &v
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Add(ctx context.Context, draft domainbooking.Draft) (domainbooking.Booking, error) {
	if err := draft.Range.Validate(); err != nil {
		return domainbooking.Booking{}, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO bookings (room_id, guest_name, language, check_in, check_out) VALUES (?, ?, ?, ?, ?)`,
		draft.RoomID, draft.GuestName, draft.Language,
		daterange.FormatDate(draft.Range.CheckIn), daterange.FormatDate(draft.Range.CheckOut))
	if err != nil {
		return domainbooking.Booking{}, fmt.Errorf("sqlstore: insert booking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domainbooking.Booking{}, fmt.Errorf("sqlstore: booking id: %w", err)
	}
	return domainbooking.NewBooking(domainbooking.BookingID(id), draft)
}

func (r *BookingRepository) List(ctx context.Context) ([]domainbooking.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, room_id, guest_name, language, check_in, check_out FROM bookings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: list bookings: %w", err)
	}
	defer rows.Close()
	out := []domainbooking.Booking{}
	for rows.Next() {
		var (
			b                 domainbooking.Booking
			checkIn, checkOut string
		)
		if err := rows.Scan(&b.ID, &b.RoomID, &b.GuestName, &b.Language, &checkIn, &checkOut); err != nil {
			return nil, fmt.Errorf("sqlstore: scan booking: %w", err)
		}
		if b.Range, err = parseRange(checkIn, checkOut); err != nil {
			return nil, fmt.Errorf("sqlstore: booking %d: %w", b.ID, err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func parseRange(checkIn, checkOut string) (daterange.DateRange, error) {
	in, err := daterange.ParseDate(checkIn)
	if err != nil {
		return daterange.DateRange{}, err
	}
	out, err := daterange.ParseDate(checkOut)
	if err != nil {
		return daterange.DateRange{}, err
	}
	return daterange.DateRange{CheckIn: in, CheckOut: out}, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

var (
	_ domainhosts.Repository      = (*HostRepository)(nil)
	_ domainproperties.Repository = (*PropertyRepository)(nil)
	_ domainbooking.Repository    = (*BookingRepository)(nil)
)
