package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/httpx"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

const (
	defaultBaseURL = "https://router.project-osrm.org"
	metersPerMile  = 1609.344
)

// Cache is an optional read-through store for computed routes, keyed
// by the origin and destination coordinates.
type Cache interface {
	Get(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteResult, bool, error)
	Put(ctx context.Context, origin, destination domain.Coordinates, route ports.RouteResult) error
}

// OSRMRouter implements ports.RouteProvider against an OSRM routing
// server (/route/v1/driving). OSRM reports meters and seconds; results
// are converted to miles and hours. Safe for concurrent use.
type OSRMRouter struct {
	session *http.Client
	baseURL string
	cache   Cache
}

func NewOSRMRouter(baseURL string, cache Cache) *OSRMRouter {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OSRMRouter{
		session: &http.Client{Timeout: 15 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   cache,
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64         `json:"distance"`
		Duration float64         `json:"duration"`
		Geometry json.RawMessage `json:"geometry"`
	} `json:"routes"`
}

// GetRoute returns the driving route between two coordinates,
// consulting the cache before issuing an external call.
func (o *OSRMRouter) GetRoute(ctx context.Context, origin, destination domain.Coordinates) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "osrm.GetRoute")(&err)

	if o.cache != nil {
		route, ok, cerr := o.cache.Get(ctx, origin, destination)
		if cerr != nil {
			return ports.RouteResult{}, fmt.Errorf("route cache read: %w", cerr)
		}
		if ok {
			return route, nil
		}
	}

	endpoint := fmt.Sprintf("%s/route/v1/driving/%s;%s", o.baseURL, origin.Key(), destination.Key())

	resp, err := httpx.DoWithRetry(ctx, o.session, func() (*http.Request, error) {
		req, rerr := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if rerr != nil {
			return nil, rerr
		}
		q := req.URL.Query()
		q.Set("overview", "full")
		q.Set("geometries", "geojson")
		req.URL.RawQuery = q.Encode()
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("route %s -> %s: %w", origin.Key(), destination.Key(), err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, fmt.Errorf("decode route response: %w", err)
	}

	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return ports.RouteResult{}, fmt.Errorf("no route between %s and %s (code=%q)", origin.Key(), destination.Key(), decoded.Code)
	}

	route := ports.RouteResult{
		DistanceMiles: decoded.Routes[0].Distance / metersPerMile,
		DurationHours: decoded.Routes[0].Duration / 3600,
		Geometry:      string(decoded.Routes[0].Geometry),
	}

	if o.cache != nil {
		if err := o.cache.Put(ctx, origin, destination, route); err != nil {
			log.Warn().Err(err).Msg("route cache write failed")
		}
	}

	return route, nil
}
