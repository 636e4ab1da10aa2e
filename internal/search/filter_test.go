package search

import (
	"testing"
	"time"

	"arendaBack/internal/geo"
	"arendaBack/internal/models"
)

func testListing(id int) models.Listing {
	return models.Listing{
		ID:             id,
		Title:          "Cordless drill",
		Description:    "18V cordless drill with two batteries",
		CategoryID:     3,
		CategoryName:   "Tools",
		Condition:      "good",
		Status:         models.ListingStatusActive,
		DailyRate:      25,
		Rating:         4.2,
		MinRentalHours: 1,
		Owner:          models.ListingOwner{Rating: 4.0, VerificationStatus: "none"},
		CreatedAt:      time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestFilterConjunction(t *testing.T) {
	high := testListing(1)
	high.Rating = 4.5
	high.DeliveryAvailable = true

	lowRating := testListing(2)
	lowRating.Rating = 3.0
	lowRating.DeliveryAvailable = true

	noDelivery := testListing(3)
	noDelivery.Rating = 4.8

	filters := models.SearchFilters{MinRating: 4, DeliveryRequired: true}.Normalized()
	got := Filter([]models.Listing{high, lowRating, noDelivery}, filters, nil)

	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only listing 1, got %+v", got)
	}
}

func TestFilterQuerySubstring(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  bool
	}{
		{"title substring", "DRILL", true},
		{"description substring", "batteries", true},
		{"category substring", "tool", true},
		{"no match", "kayak", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filters := models.SearchFilters{Query: tc.query}.Normalized()
			got := Filter([]models.Listing{testListing(1)}, filters, nil)
			if (len(got) == 1) != tc.want {
				t.Fatalf("query %q: expected included=%v, got %d results", tc.query, tc.want, len(got))
			}
		})
	}
}

func TestFilterAvailability(t *testing.T) {
	active := testListing(1)
	archived := testListing(2)
	archived.Status = models.ListingStatusArchived

	cases := []struct {
		availability string
		wantIDs      []int
	}{
		{models.AvailabilityAll, []int{1, 2}},
		{models.AvailabilityAvailable, []int{1}},
		{models.AvailabilityUnavailable, []int{2}},
	}

	for _, tc := range cases {
		t.Run(tc.availability, func(t *testing.T) {
			filters := models.SearchFilters{Availability: tc.availability}.Normalized()
			got := Filter([]models.Listing{active, archived}, filters, nil)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("expected %d listings, got %d", len(tc.wantIDs), len(got))
			}
			for i, id := range tc.wantIDs {
				if got[i].ID != id {
					t.Fatalf("position %d: expected listing %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestFilterDurationIntervalOverlap(t *testing.T) {
	listing := testListing(1)
	listing.MinRentalHours = 48
	listing.MaxRentalHours = nil

	included := models.SearchFilters{MinDurationHours: 1, MaxDurationHours: 72}.Normalized()
	if got := Filter([]models.Listing{listing}, included, nil); len(got) != 1 {
		t.Fatalf("expected listing included for max duration 72, got %d results", len(got))
	}

	excluded := models.SearchFilters{MinDurationHours: 1, MaxDurationHours: 24}.Normalized()
	if got := Filter([]models.Listing{listing}, excluded, nil); len(got) != 0 {
		t.Fatalf("expected listing excluded for max duration 24, got %d results", len(got))
	}

	capped := testListing(2)
	capped.MaxRentalHours = intPtr(12)
	longWanted := models.SearchFilters{MinDurationHours: 24}.Normalized()
	if got := Filter([]models.Listing{capped}, longWanted, nil); len(got) != 0 {
		t.Fatalf("expected capped listing excluded for min duration 24, got %d results", len(got))
	}
}

func TestFilterDurationMode(t *testing.T) {
	hourly := testListing(1)
	hourly.HourlyRate = 5

	dailyOnly := testListing(2)

	shortTerm := testListing(3)
	shortTerm.MaxRentalHours = intPtr(48)

	listings := []models.Listing{hourly, dailyOnly, shortTerm}

	cases := []struct {
		mode    string
		wantIDs []int
	}{
		{models.DurationModeAll, []int{1, 2, 3}},
		{models.DurationModeHourly, []int{1}},
		{models.DurationModeDaily, []int{1, 2, 3}},
		{models.DurationModeWeekly, []int{1, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.mode, func(t *testing.T) {
			filters := models.SearchFilters{DurationMode: tc.mode}.Normalized()
			got := Filter(listings, filters, nil)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("mode %s: expected %v, got %d results", tc.mode, tc.wantIDs, len(got))
			}
			for i, id := range tc.wantIDs {
				if got[i].ID != id {
					t.Fatalf("mode %s position %d: expected %d, got %d", tc.mode, i, id, got[i].ID)
				}
			}
		})
	}
}

func TestFilterOwnerGates(t *testing.T) {
	verified := testListing(1)
	verified.Owner = models.ListingOwner{Rating: 4.6, VerificationStatus: models.OwnerVerified}

	unverified := testListing(2)
	unverified.Owner = models.ListingOwner{Rating: 4.9, VerificationStatus: "pending"}

	lowOwner := testListing(3)
	lowOwner.Owner = models.ListingOwner{Rating: 4.4, VerificationStatus: models.OwnerVerified}

	listings := []models.Listing{verified, unverified, lowOwner}

	onlyVerified := models.SearchFilters{VerifiedOnly: true}.Normalized()
	if got := Filter(listings, onlyVerified, nil); len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("verified_only: expected listings 1 and 3, got %+v", got)
	}

	instant := models.SearchFilters{InstantBook: true}.Normalized()
	if got := Filter(listings, instant, nil); len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("instant_book: expected listings 1 and 2, got %+v", got)
	}
}

func TestFilterRadius(t *testing.T) {
	near := testListing(1)
	near.Latitude = floatPtr(37.7849)
	near.Longitude = floatPtr(-122.4094)

	far := testListing(2)
	far.Latitude = floatPtr(34.0522)
	far.Longitude = floatPtr(-118.2437)

	noCoords := testListing(3)

	listings := []models.Listing{near, far, noCoords}
	sf := geo.Point{Latitude: 37.7749, Longitude: -122.4194}
	filters := models.SearchFilters{RadiusMiles: floatPtr(50)}.Normalized()

	got := Filter(listings, filters, &sf)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only the nearby listing, got %+v", got)
	}

	// Without user coordinates the radius filter is a no-op.
	got = Filter(listings, filters, nil)
	if len(got) != 3 {
		t.Fatalf("expected radius skipped without user coordinates, got %d results", len(got))
	}
}

func TestFilterPriceBandAndCategory(t *testing.T) {
	cheap := testListing(1)
	cheap.DailyRate = 10

	mid := testListing(2)
	mid.DailyRate = 40

	other := testListing(3)
	other.DailyRate = 40
	other.CategoryID = 7

	filters := models.SearchFilters{PriceFrom: 20, PriceTo: 50, CategoryID: intPtr(3)}.Normalized()
	got := Filter([]models.Listing{cheap, mid, other}, filters, nil)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only listing 2, got %+v", got)
	}
}
