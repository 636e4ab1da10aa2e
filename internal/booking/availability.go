package booking

import (
	"errors"
	"math"
	"time"

	"arendaBack/internal/models"
)

// Rejection reasons for a proposed rental window. Each maps to a specific
// validation message in the booking handler.
var (
	ErrEndBeforeStart       = errors.New("booking: window ends before it starts")
	ErrStartsInPast         = errors.New("booking: window starts in the past")
	ErrBelowMinimumDuration = errors.New("booking: window is shorter than the listing minimum")
	ErrAboveMaximumDuration = errors.New("booking: window is longer than the listing maximum")
)

// WindowHours returns the window duration as a ceiling of elapsed whole
// hours. Callers must validate the window first; a non-positive duration
// yields 0.
func WindowHours(w models.RentalWindow) int {
	elapsed := w.EndsAt.Sub(w.StartsAt).Hours()
	if elapsed <= 0 {
		return 0
	}
	return int(math.Ceil(elapsed))
}

// ValidateWindow checks the proposed window against the listing's rental
// policy and the current time, returning the validated total hours. Bounds
// are inclusive: a window exactly at the minimum or maximum is valid.
func ValidateWindow(policy models.RentalPolicy, w models.RentalWindow, now time.Time) (int, error) {
	if !w.EndsAt.After(w.StartsAt) {
		return 0, ErrEndBeforeStart
	}
	if w.StartsAt.Before(now) {
		return 0, ErrStartsInPast
	}
	totalHours := WindowHours(w)
	if totalHours < policy.MinRentalHours {
		return 0, ErrBelowMinimumDuration
	}
	if policy.MaxRentalHours != nil && totalHours > *policy.MaxRentalHours {
		return 0, ErrAboveMaximumDuration
	}
	return totalHours, nil
}

// Overlaps reports whether two windows share any time span. Touching
// endpoints do not overlap, so back-to-back bookings are allowed.
func Overlaps(a, b models.RentalWindow) bool {
	return a.StartsAt.Before(b.EndsAt) && b.StartsAt.Before(a.EndsAt)
}
