package search

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"arendaBack/internal/geo"
	"arendaBack/internal/models"
)

// Strategy selects how filtered listings are ordered.
type Strategy string

const (
	SortRelevance Strategy = "relevance"
	SortPriceLow  Strategy = "price_low"
	SortPriceHigh Strategy = "price_high"
	SortRating    Strategy = "rating"
	SortNewest    Strategy = "newest"
	SortPopular   Strategy = "popular"
	SortTrending  Strategy = "trending"
	SortDistance  Strategy = "distance"
)

// ParseStrategy maps a raw sort value to a Strategy, defaulting to relevance.
func ParseStrategy(raw string) Strategy {
	switch s := Strategy(strings.TrimSpace(strings.ToLower(raw))); s {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest, SortPopular, SortTrending, SortDistance:
		return s
	default:
		return SortRelevance
	}
}

// Context carries the caller-supplied inputs scoring depends on: the original
// query string for relevance, user coordinates for distance, and the clock.
type Context struct {
	Query      string
	UserCoords *geo.Point
	Now        time.Time
}

type entry struct {
	listing  models.Listing
	score    float64
	scorable bool // distance strategy: listing has coordinates
}

// scoring runs concurrently for large collections; shards of at least this
// many listings are scored per goroutine.
const scoreShardSize = 512

// Rank scores every listing under the strategy and returns the stably-sorted
// result sequence with 1-based ranks. Equal scores preserve input order.
func Rank(listings []models.Listing, strategy Strategy, rctx Context) []models.RankedResult {
	entries := score(listings, strategy, rctx)

	less := comparator(strategy)
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	results := make([]models.RankedResult, len(entries))
	for i, e := range entries {
		results[i] = models.RankedResult{Listing: e.listing, Score: e.score, Rank: i + 1}
	}
	return results
}

// score computes per-listing scores into a slice indexed by input position,
// so concurrent shards never contend and the stable tie-break stays keyed to
// the original global order.
func score(listings []models.Listing, strategy Strategy, rctx Context) []entry {
	entries := make([]entry, len(listings))
	if len(listings) <= scoreShardSize {
		scoreRange(entries, listings, 0, len(listings), strategy, rctx)
		return entries
	}

	var wg sync.WaitGroup
	for start := 0; start < len(listings); start += scoreShardSize {
		end := start + scoreShardSize
		if end > len(listings) {
			end = len(listings)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			scoreRange(entries, listings, start, end, strategy, rctx)
		}(start, end)
	}
	wg.Wait()
	return entries
}

func scoreRange(entries []entry, listings []models.Listing, start, end int, strategy Strategy, rctx Context) {
	query := strings.ToLower(strings.TrimSpace(rctx.Query))
	for i := start; i < end; i++ {
		l := listings[i]
		e := entry{listing: l, scorable: true}
		switch strategy {
		case SortPriceLow, SortPriceHigh:
			e.score = l.DailyRate
		case SortRating:
			e.score = l.Rating
		case SortNewest:
			e.score = float64(l.CreatedAt.Unix())
		case SortPopular:
			e.score = float64(l.ViewsCount)*0.1 + float64(l.FavoritesCount)*0.5 + float64(l.ReviewsCount)*0.4
		case SortTrending:
			e.score = trendingScore(l, rctx.Now)
		case SortDistance:
			point, ok := l.Coordinates()
			if ok && rctx.UserCoords != nil {
				e.score = geo.DistanceMiles(*rctx.UserCoords, point)
			} else {
				e.scorable = false
			}
		default:
			e.score = relevanceScore(l, query, rctx.Now)
		}
		entries[i] = e
	}
}

// comparator returns the pure ordering for a strategy. Every comparator is
// strict (returns false for equal keys) so sort.SliceStable keeps input order
// on ties.
func comparator(strategy Strategy) func(a, b entry) bool {
	switch strategy {
	case SortPriceLow:
		return func(a, b entry) bool { return a.score < b.score }
	case SortRating:
		return func(a, b entry) bool {
			if a.listing.Rating != b.listing.Rating {
				return a.listing.Rating > b.listing.Rating
			}
			return a.listing.ReviewsCount > b.listing.ReviewsCount
		}
	case SortDistance:
		return func(a, b entry) bool {
			// Listings without coordinates sort last, stably.
			if a.scorable != b.scorable {
				return a.scorable
			}
			if !a.scorable {
				return false
			}
			return a.score < b.score
		}
	default:
		// price_high, newest, popular, trending, relevance: descending score.
		return func(a, b entry) bool { return a.score > b.score }
	}
}

func trendingScore(l models.Listing, now time.Time) float64 {
	recencyDays := now.Sub(l.CreatedAt).Hours() / 24
	if recencyDays < 1 {
		recencyDays = 1
	}
	return (float64(l.ViewsCount) + float64(l.FavoritesCount)*2) / recencyDays
}

// relevanceScore blends text match strength against the query with quality
// and recency signals. With an empty query it degenerates to the quality
// signals alone.
func relevanceScore(l models.Listing, query string, now time.Time) float64 {
	var score float64
	if query != "" {
		title := strings.ToLower(l.Title)
		if strings.Contains(title, query) {
			score += 10
			if title == query {
				score += 5
			} else if strings.HasPrefix(title, query) {
				score += 3
			}
		}
		if strings.Contains(strings.ToLower(l.CategoryName), query) {
			score += 5
		}
		if strings.Contains(strings.ToLower(l.Description), query) {
			score += 2
		}
	}
	score += l.Rating * 1.5
	score += math.Min(float64(l.ReviewsCount)*0.1, 2)
	score += math.Min(float64(l.ViewsCount)*0.001, 1)
	if now.Sub(l.CreatedAt) <= 30*24*time.Hour {
		score++
	}
	return score
}
