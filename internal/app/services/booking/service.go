package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"smarthost/internal/app/dto"
	domainbooking "smarthost/internal/domain/booking"
	"smarthost/internal/domain/properties"
)

var ErrRepositoryMissing = errors.New("booking service: repository required")

// Service enforces the booking rules in front of a repository. It holds no
// state beyond its collaborators.
type Service struct {
	Repo   domainbooking.Repository
	Logger *slog.Logger
}

func NewService(repo domainbooking.Repository, logger *slog.Logger) *Service {
	return &Service{Repo: repo, Logger: logger}
}

// CreateBooking rejects a check-out that is not strictly after check-in
// before anything is persisted.
func (s *Service) CreateBooking(ctx context.Context, roomID properties.RoomID, guestName, language string, checkIn, checkOut time.Time) (domainbooking.Booking, error) {
	if s.Repo == nil {
		return domainbooking.Booking{}, ErrRepositoryMissing
	}
	draft, err := domainbooking.NewDraft(domainbooking.CreateParams{
		RoomID:    roomID,
		GuestName: guestName,
		Language:  language,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	})
	if err != nil {
		return domainbooking.Booking{}, err
	}
	created, err := s.Repo.Add(ctx, draft)
	if err != nil {
		return domainbooking.Booking{}, err
	}
	if s.Logger != nil {
		s.Logger.InfoContext(ctx, "booking created",
			"booking_id", created.ID,
			"room_id", created.RoomID,
			"nights", created.Range.Nights(),
		)
	}
	return created, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]domainbooking.Booking, error) {
	if s.Repo == nil {
		return nil, ErrRepositoryMissing
	}
	return s.Repo.List(ctx)
}

// ToMap converts a host, property, room or booking into a transport mapping.
func (s *Service) ToMap(entity any) (map[string]any, error) {
	return dto.ToMap(entity)
}
