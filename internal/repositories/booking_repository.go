package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"arendaBack/internal/models"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
)

type BookingRepository struct {
	DB *sql.DB
}

// BlockedWindows returns the committed rental windows of a listing that
// intersect [from, to). Cancelled bookings do not block availability.
func (r *BookingRepository) BlockedWindows(ctx context.Context, listingID int, from, to time.Time) ([]models.RentalWindow, error) {
	query := `
    SELECT starts_at, ends_at
    FROM bookings
    WHERE listing_id = $1
      AND status IN ($2, $3)
      AND starts_at < $4
      AND ends_at > $5
    ORDER BY starts_at
    `

	rows, err := r.DB.QueryContext(ctx, query, listingID,
		models.BookingStatusPending, models.BookingStatusConfirmed, to, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var windows []models.RentalWindow
	for rows.Next() {
		var w models.RentalWindow
		if err := rows.Scan(&w.StartsAt, &w.EndsAt); err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	query := `
    INSERT INTO bookings (id, reference, listing_id, renter_id, starts_at, ends_at,
                          delivery_requested, total_hours, subtotal, service_fee,
                          delivery_fee, security_deposit, total_amount, status, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `

	_, err := r.DB.ExecContext(ctx, query,
		booking.ID,
		booking.Reference,
		booking.ListingID,
		booking.RenterID,
		booking.Window.StartsAt,
		booking.Window.EndsAt,
		booking.DeliveryRequested,
		booking.Breakdown.TotalHours,
		booking.Breakdown.Subtotal,
		booking.Breakdown.ServiceFee,
		booking.Breakdown.DeliveryFee,
		booking.Breakdown.SecurityDeposit,
		booking.Breakdown.TotalAmount,
		booking.Status,
		booking.CreatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func (r *BookingRepository) GetBookingByID(ctx context.Context, id string) (models.Booking, error) {
	query := `
    SELECT id, reference, listing_id, renter_id, starts_at, ends_at,
           delivery_requested, total_hours, subtotal, service_fee,
           delivery_fee, security_deposit, total_amount, status, created_at
    FROM bookings
    WHERE id = $1
    `

	var booking models.Booking
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.Reference,
		&booking.ListingID,
		&booking.RenterID,
		&booking.Window.StartsAt,
		&booking.Window.EndsAt,
		&booking.DeliveryRequested,
		&booking.Breakdown.TotalHours,
		&booking.Breakdown.Subtotal,
		&booking.Breakdown.ServiceFee,
		&booking.Breakdown.DeliveryFee,
		&booking.Breakdown.SecurityDeposit,
		&booking.Breakdown.TotalAmount,
		&booking.Status,
		&booking.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}
