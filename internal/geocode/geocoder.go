package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"arendaBack/internal/geo"
)

var ErrNoResults = errors.New("geocode: no results for query")

// Client resolves free-text locations to coordinates through an external
// geocoding API. Resolved queries are cached in redis so repeated searches
// for the same location string skip the network round trip.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	rdb        *redis.Client
	cacheTTL   time.Duration
}

// NewClient constructs a geocoder. rdb may be nil to disable caching.
func NewClient(httpClient *http.Client, baseURL, apiKey string, rdb *redis.Client, cacheTTL time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	if cacheTTL <= 0 {
		cacheTTL = 24 * time.Hour
	}
	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, rdb: rdb, cacheTTL: cacheTTL}
}

func cacheKey(query string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(query))
}

// tryParseLatLon returns lat,lon if the query already looks like
// "lat,lon" (WGS84), otherwise (0,0,false).
func tryParseLatLon(query string) (float64, float64, bool) {
	q := strings.TrimSpace(query)
	sep := ","
	if strings.Contains(q, ";") {
		sep = ";"
	}
	parts := strings.Split(q, sep)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}

// Geocode resolves a free-text location to coordinates. Failures are
// recoverable for callers: search simply proceeds without coordinates.
func (c *Client) Geocode(ctx context.Context, query string) (geo.Point, error) {
	if strings.TrimSpace(query) == "" {
		return geo.Point{}, errors.New("geocode: empty query")
	}

	// "lat,lon" short-circuits without hitting the API.
	if lat, lon, ok := tryParseLatLon(query); ok {
		return geo.Point{Latitude: lat, Longitude: lon}, nil
	}

	if point, ok := c.cached(ctx, query); ok {
		return point, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 7*time.Second)
	defer cancel()

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return geo.Point{}, fmt.Errorf("geocode: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return geo.Point{}, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geo.Point{}, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return geo.Point{}, fmt.Errorf("geocode: decode response: %w", err)
	}
	if len(results) == 0 {
		return geo.Point{}, ErrNoResults
	}

	lat, err1 := strconv.ParseFloat(results[0].Lat, 64)
	lon, err2 := strconv.ParseFloat(results[0].Lon, 64)
	if err1 != nil || err2 != nil {
		return geo.Point{}, fmt.Errorf("geocode: malformed coordinates %q,%q", results[0].Lat, results[0].Lon)
	}

	point := geo.Point{Latitude: lat, Longitude: lon}
	c.store(ctx, query, point)
	return point, nil
}

func (c *Client) cached(ctx context.Context, query string) (geo.Point, bool) {
	if c.rdb == nil {
		return geo.Point{}, false
	}
	raw, err := c.rdb.Get(ctx, cacheKey(query)).Result()
	if err != nil {
		return geo.Point{}, false
	}
	lat, lon, ok := tryParseLatLon(raw)
	if !ok {
		return geo.Point{}, false
	}
	return geo.Point{Latitude: lat, Longitude: lon}, true
}

// store is best-effort: a cache write failure never fails the lookup.
func (c *Client) store(ctx context.Context, query string, point geo.Point) {
	if c.rdb == nil {
		return
	}
	value := fmt.Sprintf("%f,%f", point.Latitude, point.Longitude)
	c.rdb.SetEx(ctx, cacheKey(query), value, c.cacheTTL)
}
