package search

import (
	"time"

	"arendaBack/internal/geo"
	"arendaBack/internal/models"
)

// Run filters and ranks a listing collection in one pass. userCoords may be
// nil, in which case radius filtering is skipped and a distance sort degrades
// to stable input order.
func Run(listings []models.Listing, filters models.SearchFilters, userCoords *geo.Point, now time.Time) []models.RankedResult {
	filtered := Filter(listings, filters, userCoords)
	return Rank(filtered, ParseStrategy(filters.SortBy), Context{
		Query:      filters.Query,
		UserCoords: userCoords,
		Now:        now,
	})
}
