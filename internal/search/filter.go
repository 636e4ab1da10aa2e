package search

import (
	"strings"

	"arendaBack/internal/geo"
	"arendaBack/internal/models"
)

const hoursPerWeek = 168

// Filter applies every hard-exclusion criterion from the filters to the
// listing collection and returns the surviving subset in input order. All
// active predicates are conjunctive. userCoords enables the radius filter;
// when nil the radius filter is skipped entirely.
func Filter(listings []models.Listing, f models.SearchFilters, userCoords *geo.Point) []models.Listing {
	matched := make([]models.Listing, 0, len(listings))
	query := strings.ToLower(f.Query)
	for _, listing := range listings {
		if matches(listing, f, query, userCoords) {
			matched = append(matched, listing)
		}
	}
	return matched
}

func matches(l models.Listing, f models.SearchFilters, query string, userCoords *geo.Point) bool {
	if query != "" && !matchesQuery(l, query) {
		return false
	}
	switch f.Availability {
	case models.AvailabilityAvailable:
		if l.Status != models.ListingStatusActive {
			return false
		}
	case models.AvailabilityUnavailable:
		if l.Status == models.ListingStatusActive {
			return false
		}
	}
	if f.CategoryID != nil && l.CategoryID != *f.CategoryID {
		return false
	}
	if l.Rating < f.MinRating {
		return false
	}
	if f.PriceFrom > 0 && l.DailyRate < f.PriceFrom {
		return false
	}
	if f.PriceTo > 0 && l.DailyRate > f.PriceTo {
		return false
	}
	if f.Condition != "" && !strings.EqualFold(l.Condition, f.Condition) {
		return false
	}
	if f.DeliveryRequired && !l.DeliveryAvailable {
		return false
	}
	if !matchesDurationMode(l, f.DurationMode) {
		return false
	}
	if !durationIntervalsOverlap(l, f) {
		return false
	}
	if f.VerifiedOnly && l.Owner.VerificationStatus != models.OwnerVerified {
		return false
	}
	if f.InstantBook && l.Owner.Rating < models.InstantBookMinOwnerRating {
		return false
	}
	if f.RadiusMiles != nil && userCoords != nil {
		point, ok := l.Coordinates()
		if !ok || geo.DistanceMiles(*userCoords, point) > *f.RadiusMiles {
			return false
		}
	}
	return true
}

// matchesQuery is a case-insensitive substring test against title,
// description and category name. Not tokenized on purpose.
func matchesQuery(l models.Listing, query string) bool {
	return strings.Contains(strings.ToLower(l.Title), query) ||
		strings.Contains(strings.ToLower(l.Description), query) ||
		strings.Contains(strings.ToLower(l.CategoryName), query)
}

func matchesDurationMode(l models.Listing, mode string) bool {
	switch mode {
	case models.DurationModeHourly:
		return l.HourlyRate > 0
	case models.DurationModeDaily:
		// Every listing carries a daily rate, so this only rejects bad rows.
		return l.DailyRate > 0
	case models.DurationModeWeekly:
		return l.MaxRentalHours == nil || *l.MaxRentalHours >= hoursPerWeek
	default:
		return true
	}
}

// durationIntervalsOverlap requires the listing's allowed-duration interval
// to intersect the requested-duration interval. Both bounds are inclusive.
func durationIntervalsOverlap(l models.Listing, f models.SearchFilters) bool {
	if f.MaxDurationHours > 0 && l.MinRentalHours > f.MaxDurationHours {
		return false
	}
	if l.MaxRentalHours != nil && *l.MaxRentalHours < f.MinDurationHours {
		return false
	}
	return true
}
