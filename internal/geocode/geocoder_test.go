package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTryParseLatLon(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		wantLat float64
		wantLon float64
		ok      bool
	}{
		{"comma separated", "37.7749,-122.4194", 37.7749, -122.4194, true},
		{"semicolon separated", "43.2389; 76.8897", 43.2389, 76.8897, true},
		{"free text", "Almaty, Kazakhstan", 0, 0, false},
		{"out of range", "91,0", 0, 0, false},
		{"single value", "37.7749", 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lat, lon, ok := tryParseLatLon(tc.query)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && (math.Abs(lat-tc.wantLat) > 1e-9 || math.Abs(lon-tc.wantLon) > 1e-9) {
				t.Fatalf("expected %f,%f got %f,%f", tc.wantLat, tc.wantLon, lat, lon)
			}
		})
	}
}

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got == "nowhere" {
			json.NewEncoder(w).Encode([]any{})
			return
		}
		json.NewEncoder(w).Encode([]map[string]string{
			{"lat": "51.1694", "lon": "71.4491"},
		})
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "", nil, 0)

	point, err := client.Geocode(context.Background(), "Astana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(point.Latitude-51.1694) > 1e-9 || math.Abs(point.Longitude-71.4491) > 1e-9 {
		t.Fatalf("unexpected point: %+v", point)
	}

	if _, err := client.Geocode(context.Background(), "nowhere"); !errors.Is(err, ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}

func TestGeocodeShortCircuitsCoordinates(t *testing.T) {
	// No server configured: a coordinate query must never hit the network.
	client := NewClient(nil, "http://127.0.0.1:0", "", nil, 0)
	point, err := client.Geocode(context.Background(), "37.7749,-122.4194")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(point.Latitude-37.7749) > 1e-9 {
		t.Fatalf("unexpected point: %+v", point)
	}
}
