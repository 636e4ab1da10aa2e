package models

import "time"

// Booking statuses as stored in the bookings table.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// RentalWindow is a proposed start/end instant pair. The availability
// validator checks end > start, so nothing here assumes it.
type RentalWindow struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// RentalPolicy is the listing's allowed-duration interval in hours.
// A nil MaxRentalHours means unbounded above.
type RentalPolicy struct {
	MinRentalHours int
	MaxRentalHours *int
}

// RateSchedule is the pricing input extracted from a listing.
// HourlyRate 0 means hourly rentals are not offered.
type RateSchedule struct {
	DailyRate       float64 `json:"daily_rate"`
	HourlyRate      float64 `json:"hourly_rate"`
	SecurityDeposit float64 `json:"security_deposit"`
	DeliveryFee     float64 `json:"delivery_fee"`
}

// PricingBreakdown is the itemized cost of a validated rental window.
// ServiceFee is rounded to two decimals; TotalAmount is the plain sum.
type PricingBreakdown struct {
	TotalHours      int     `json:"total_hours"`
	Subtotal        float64 `json:"subtotal"`
	ServiceFee      float64 `json:"service_fee"`
	DeliveryFee     float64 `json:"delivery_fee"`
	SecurityDeposit float64 `json:"security_deposit"`
	TotalAmount     float64 `json:"total_amount"`
}

type Booking struct {
	ID                string           `json:"id"`
	Reference         string           `json:"reference"`
	ListingID         int              `json:"listing_id"`
	RenterID          int              `json:"renter_id"`
	Window            RentalWindow     `json:"window"`
	DeliveryRequested bool             `json:"delivery_requested"`
	Breakdown         PricingBreakdown `json:"breakdown"`
	Status            string           `json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
}
