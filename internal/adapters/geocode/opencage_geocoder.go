package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/httpx"
	"trip-planner-service/internal/platform/obs"
)

// Cache is an optional read-through store for resolved locations.
// Keys are normalized location text.
type Cache interface {
	Get(ctx context.Context, location string) (domain.Coordinates, bool, error)
	Put(ctx context.Context, location string, coords domain.Coordinates) error
}

// OpenCageGeocoder implements ports.Geocoder using the OpenCage
// forward-geocoding API.
//
// It coordinates:
//   - Location text normalization
//   - Persistent geocode caching
//   - External API calls with retry/backoff
//
// The geocoder is safe for concurrent use.
type OpenCageGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
	cache   Cache
}

func NewOpenCageGeocoder(apiKey string, cache Cache) (*OpenCageGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("OpenCage api key is empty")
	}

	return &OpenCageGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.opencagedata.com/geocode/v1/json",
		cache:   cache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *OpenCageGeocoder) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-text location to coordinates, consulting the
// cache before issuing an external call.
func (g *OpenCageGeocoder) Geocode(ctx context.Context, location string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "opencage.Geocode")(&err)

	norm := g.normalize(location)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: location must be non-empty")
	}

	if g.cache != nil {
		coords, ok, cerr := g.cache.Get(ctx, norm)
		if cerr != nil {
			return domain.Coordinates{}, fmt.Errorf("geocode cache read: %w", cerr)
		}
		if ok {
			return coords, nil
		}
	}

	resp, err := httpx.DoWithRetry(ctx, g.session, func() (*http.Request, error) {
		req, rerr := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL, nil)
		if rerr != nil {
			return nil, rerr
		}
		q := req.URL.Query()
		q.Set("q", norm)
		q.Set("key", g.apiKey)
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocode results for %q", norm)
	}

	coords := domain.Coordinates{
		Lon: decoded.Results[0].Geometry.Lng,
		Lat: decoded.Results[0].Geometry.Lat,
	}

	if g.cache != nil {
		if err := g.cache.Put(ctx, norm, coords); err != nil {
			log.Warn().Err(err).Str("location", norm).Msg("geocode cache write failed")
		}
	}

	return coords, nil
}
