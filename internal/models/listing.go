package models

import (
	"time"

	"arendaBack/internal/geo"
)

// Listing statuses as stored in the listings table.
const (
	ListingStatusActive   = "active"
	ListingStatusPending  = "pending"
	ListingStatusArchived = "archive"
)

const OwnerVerified = "verified"

// InstantBookMinOwnerRating is the owner-rating proxy used for the
// instant-book filter: owners rated at or above it are assumed to accept
// bookings without manual confirmation.
const InstantBookMinOwnerRating = 4.5

type Listing struct {
	ID                int          `json:"id"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	CategoryID        int          `json:"category_id"`
	CategoryName      string       `json:"category_name"`
	Condition         string       `json:"condition"`
	Status            string       `json:"status"`
	DailyRate         float64      `json:"daily_rate"`
	HourlyRate        float64      `json:"hourly_rate"` // 0 means hourly rentals are not offered
	SecurityDeposit   float64      `json:"security_deposit"`
	DeliveryAvailable bool         `json:"delivery_available"`
	DeliveryFee       float64      `json:"delivery_fee"`
	Rating            float64      `json:"rating"`
	ReviewsCount      int          `json:"reviews_count"`
	ViewsCount        int          `json:"views_count"`
	FavoritesCount    int          `json:"favorites_count"`
	MinRentalHours    int          `json:"min_rental_hours"`
	MaxRentalHours    *int         `json:"max_rental_hours,omitempty"` // nil means unbounded
	Latitude          *float64     `json:"latitude,omitempty"`
	Longitude         *float64     `json:"longitude,omitempty"`
	Owner             ListingOwner `json:"owner"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         *time.Time   `json:"updated_at,omitempty"`
}

type ListingOwner struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Rating             float64 `json:"rating"`
	VerificationStatus string  `json:"verification_status"`
	AvatarPath         *string `json:"avatar_path,omitempty"`
}

// Coordinates returns the listing position when both coordinates are stored.
func (l Listing) Coordinates() (geo.Point, bool) {
	if l.Latitude == nil || l.Longitude == nil {
		return geo.Point{}, false
	}
	return geo.Point{Latitude: *l.Latitude, Longitude: *l.Longitude}, true
}

// Policy returns the rental-duration bounds enforced at booking time.
func (l Listing) Policy() RentalPolicy {
	return RentalPolicy{MinRentalHours: l.MinRentalHours, MaxRentalHours: l.MaxRentalHours}
}

// Rates returns the rate schedule used by the pricing calculator.
func (l Listing) Rates() RateSchedule {
	return RateSchedule{
		DailyRate:       l.DailyRate,
		HourlyRate:      l.HourlyRate,
		SecurityDeposit: l.SecurityDeposit,
		DeliveryFee:     l.DeliveryFee,
	}
}
