package models

import "strings"

// Availability filter values.
const (
	AvailabilityAll         = "all"
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
)

// Rental-duration mode filter values.
const (
	DurationModeAll    = "all"
	DurationModeHourly = "hourly"
	DurationModeDaily  = "daily"
	DurationModeWeekly = "weekly"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 60
)

// SearchFilters carries every search criterion a client may send. All fields
// are optional; SortBy defaults to relevance.
type SearchFilters struct {
	Query            string   `json:"query"`
	CategoryID       *int     `json:"category_id,omitempty"`
	Location         string   `json:"location"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	RadiusMiles      *float64 `json:"radius_miles,omitempty"`
	PriceFrom        float64  `json:"price_from"`
	PriceTo          float64  `json:"price_to"`
	MinRating        float64  `json:"min_rating"`
	Availability     string   `json:"availability"`
	DeliveryRequired bool     `json:"delivery_required"`
	Condition        string   `json:"condition"`
	DurationMode     string   `json:"duration_mode"`
	MinDurationHours int      `json:"min_duration_hours"`
	MaxDurationHours int      `json:"max_duration_hours"`
	InstantBook      bool     `json:"instant_book"`
	VerifiedOnly     bool     `json:"verified_only"`
	SortBy           string   `json:"sort"`
	Page             int      `json:"page"`
	Limit            int      `json:"limit"`
}

// Normalized returns a sanitized copy of the filters: trimmed text, clamped
// paging, a lowered availability/duration mode, and a consistent price band.
func (f SearchFilters) Normalized() SearchFilters {
	normalized := f
	normalized.Query = strings.TrimSpace(normalized.Query)
	normalized.Location = strings.TrimSpace(normalized.Location)
	normalized.Condition = strings.TrimSpace(strings.ToLower(normalized.Condition))
	normalized.Availability = strings.TrimSpace(strings.ToLower(normalized.Availability))
	normalized.DurationMode = strings.TrimSpace(strings.ToLower(normalized.DurationMode))

	switch normalized.Availability {
	case AvailabilityAvailable, AvailabilityUnavailable:
	default:
		normalized.Availability = AvailabilityAll
	}
	switch normalized.DurationMode {
	case DurationModeHourly, DurationModeDaily, DurationModeWeekly:
	default:
		normalized.DurationMode = DurationModeAll
	}

	if normalized.PriceFrom < 0 {
		normalized.PriceFrom = 0
	}
	if normalized.PriceTo > 0 && normalized.PriceTo < normalized.PriceFrom {
		normalized.PriceTo = 0
	}
	if normalized.MinRating < 0 {
		normalized.MinRating = 0
	}
	if normalized.MinRating > 5 {
		normalized.MinRating = 5
	}
	if normalized.MinDurationHours < 1 {
		normalized.MinDurationHours = 1
	}
	if normalized.MaxDurationHours < 0 {
		normalized.MaxDurationHours = 0
	}
	if normalized.RadiusMiles != nil && *normalized.RadiusMiles <= 0 {
		normalized.RadiusMiles = nil
	}

	if normalized.Page < 1 {
		normalized.Page = 1
	}
	if normalized.Limit < 1 {
		normalized.Limit = defaultSearchLimit
	}
	if normalized.Limit > maxSearchLimit {
		normalized.Limit = maxSearchLimit
	}
	return normalized
}

// RankedResult is a listing with its computed score and 1-based rank.
type RankedResult struct {
	Listing Listing `json:"listing"`
	Score   float64 `json:"score"`
	Rank    int     `json:"rank"`
}

// SearchResponse is one page of ranked results plus price aggregates over the
// whole filtered set. LocationResolved is false when a location string could
// not be geocoded, meaning radius filtering and distance sort were skipped.
type SearchResponse struct {
	Results          []RankedResult `json:"results"`
	Total            int            `json:"total"`
	Page             int            `json:"page"`
	Limit            int            `json:"limit"`
	MinPrice         float64        `json:"min_price"`
	MaxPrice         float64        `json:"max_price"`
	LocationResolved bool           `json:"location_resolved"`
}
