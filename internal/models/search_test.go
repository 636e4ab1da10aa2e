package models

import "testing"

func TestSearchFiltersNormalized(t *testing.T) {
	radius := -5.0
	f := SearchFilters{
		Query:            "  drill  ",
		Availability:     "Available",
		DurationMode:     "HOURLY",
		PriceFrom:        50,
		PriceTo:          20,
		MinRating:        7,
		MinDurationHours: 0,
		RadiusMiles:      &radius,
		Page:             0,
		Limit:            500,
	}

	got := f.Normalized()

	if got.Query != "drill" {
		t.Fatalf("expected trimmed query, got %q", got.Query)
	}
	if got.Availability != AvailabilityAvailable {
		t.Fatalf("expected availability %q, got %q", AvailabilityAvailable, got.Availability)
	}
	if got.DurationMode != DurationModeHourly {
		t.Fatalf("expected duration mode %q, got %q", DurationModeHourly, got.DurationMode)
	}
	if got.PriceTo != 0 {
		t.Fatalf("inverted price band must clear the upper bound, got %f", got.PriceTo)
	}
	if got.MinRating != 5 {
		t.Fatalf("expected rating clamped to 5, got %f", got.MinRating)
	}
	if got.MinDurationHours != 1 {
		t.Fatalf("expected minimum duration 1, got %d", got.MinDurationHours)
	}
	if got.RadiusMiles != nil {
		t.Fatal("non-positive radius must be dropped")
	}
	if got.Page != 1 || got.Limit != maxSearchLimit {
		t.Fatalf("expected clamped paging, got page=%d limit=%d", got.Page, got.Limit)
	}
}

func TestSearchFiltersDefaults(t *testing.T) {
	got := SearchFilters{}.Normalized()
	if got.Availability != AvailabilityAll {
		t.Fatalf("expected availability %q, got %q", AvailabilityAll, got.Availability)
	}
	if got.DurationMode != DurationModeAll {
		t.Fatalf("expected duration mode %q, got %q", DurationModeAll, got.DurationMode)
	}
	if got.Limit != defaultSearchLimit {
		t.Fatalf("expected default limit %d, got %d", defaultSearchLimit, got.Limit)
	}
}
