package services

import (
	"context"
	"log"
	"time"

	"arendaBack/internal/geo"
	"arendaBack/internal/geocode"
	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
	"arendaBack/internal/search"
)

// SearchService fetches the listing collection, resolves the searcher's
// location, and runs the pure filter/rank pipeline over it.
type SearchService struct {
	ListingRepo *repositories.ListingRepository
	Geocoder    *geocode.Client
	Now         func() time.Time
}

func (s *SearchService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *SearchService) Search(ctx context.Context, filters models.SearchFilters) (models.SearchResponse, error) {
	filters = filters.Normalized()

	listings, err := s.ListingRepo.FetchAll(ctx)
	if err != nil {
		return models.SearchResponse{}, err
	}

	userCoords, resolved := s.resolveCoordinates(ctx, filters)

	results := search.Run(listings, filters, userCoords, s.now())

	minPrice, maxPrice := priceBounds(results)

	total := len(results)
	start := (filters.Page - 1) * filters.Limit
	if start > total {
		start = total
	}
	end := start + filters.Limit
	if end > total {
		end = total
	}

	return models.SearchResponse{
		Results:          results[start:end],
		Total:            total,
		Page:             filters.Page,
		Limit:            filters.Limit,
		MinPrice:         minPrice,
		MaxPrice:         maxPrice,
		LocationResolved: resolved,
	}, nil
}

// resolveCoordinates prefers explicit coordinates from the client, then a
// geocoded location string. A geocoding failure is not fatal: the search
// proceeds with radius filtering skipped and distance sort degraded to
// stable input order.
func (s *SearchService) resolveCoordinates(ctx context.Context, filters models.SearchFilters) (*geo.Point, bool) {
	if filters.Latitude != nil && filters.Longitude != nil {
		return &geo.Point{Latitude: *filters.Latitude, Longitude: *filters.Longitude}, true
	}
	if filters.Location == "" {
		return nil, true
	}
	if s.Geocoder == nil {
		return nil, false
	}
	point, err := s.Geocoder.Geocode(ctx, filters.Location)
	if err != nil {
		log.Printf("geocode %q failed: %v", filters.Location, err)
		return nil, false
	}
	return &point, true
}

// priceBounds aggregates the daily-rate band over the whole filtered set,
// not just the returned page.
func priceBounds(results []models.RankedResult) (float64, float64) {
	if len(results) == 0 {
		return 0, 0
	}
	minPrice := results[0].Listing.DailyRate
	maxPrice := minPrice
	for _, r := range results[1:] {
		rate := r.Listing.DailyRate
		if rate < minPrice {
			minPrice = rate
		}
		if rate > maxPrice {
			maxPrice = rate
		}
	}
	return minPrice, maxPrice
}
