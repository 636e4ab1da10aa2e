package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"arendaBack/internal/booking"
	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
	"arendaBack/utils"
)

var (
	// ErrWindowUnavailable means the window is legal for the listing's policy
	// but collides with a stored booking.
	ErrWindowUnavailable = errors.New("rental window overlaps an existing booking")
)

// BookingService turns a proposed rental window into a validated, itemized
// quote, and persists confirmed quotes as pending bookings.
type BookingService struct {
	ListingRepo *repositories.ListingRepository
	BookingRepo *repositories.BookingRepository
	Now         func() time.Time
}

func (s *BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Quote validates the window against the listing policy and stored bookings,
// then prices it. Validation failures surface as the booking package's
// rejection sentinels or ErrWindowUnavailable.
func (s *BookingService) Quote(ctx context.Context, listingID int, window models.RentalWindow, deliveryRequested bool) (models.PricingBreakdown, error) {
	listing, err := s.ListingRepo.GetListingByID(ctx, listingID)
	if err != nil {
		return models.PricingBreakdown{}, err
	}

	totalHours, err := booking.ValidateWindow(listing.Policy(), window, s.now())
	if err != nil {
		return models.PricingBreakdown{}, err
	}

	blocked, err := s.BookingRepo.BlockedWindows(ctx, listingID, window.StartsAt, window.EndsAt)
	if err != nil {
		return models.PricingBreakdown{}, err
	}
	for _, b := range blocked {
		if booking.Overlaps(window, b) {
			return models.PricingBreakdown{}, ErrWindowUnavailable
		}
	}

	return booking.Price(listing.Rates(), totalHours, deliveryRequested), nil
}

// Book persists a freshly validated quote as a pending booking.
func (s *BookingService) Book(ctx context.Context, renterID, listingID int, window models.RentalWindow, deliveryRequested bool) (models.Booking, error) {
	breakdown, err := s.Quote(ctx, listingID, window, deliveryRequested)
	if err != nil {
		return models.Booking{}, err
	}

	reference, err := utils.NewBookingReference()
	if err != nil {
		return models.Booking{}, err
	}

	return s.BookingRepo.CreateBooking(ctx, models.Booking{
		ID:                uuid.NewString(),
		Reference:         reference,
		ListingID:         listingID,
		RenterID:          renterID,
		Window:            window,
		DeliveryRequested: deliveryRequested,
		Breakdown:         breakdown,
		Status:            models.BookingStatusPending,
		CreatedAt:         s.now(),
	})
}

func (s *BookingService) GetBookingByID(ctx context.Context, id string, renterID int) (models.Booking, error) {
	b, err := s.BookingRepo.GetBookingByID(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}
	if b.RenterID != renterID {
		return models.Booking{}, repositories.ErrBookingNotFound
	}
	return b, nil
}
