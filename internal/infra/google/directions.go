package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"bakehouse/config"
	"bakehouse/internal/domain/geo"
	"bakehouse/internal/domain/service"
	"bakehouse/internal/errors"

	"github.com/twpayne/go-polyline"
)

// directionsClient implements service.DirectionsProvider using the Google
// Directions API.
type directionsClient struct {
	cfg    config.GoogleMapsConfig
	client *http.Client
}

// NewDirectionsProvider is the constructor for the Google directions client.
func NewDirectionsProvider(cfg *config.Config) service.DirectionsProvider {
	resolved := mapsConfig(cfg)

	return &directionsClient{
		cfg:    resolved,
		client: newHTTPClient(resolved.Timeout),
	}
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route fetches a road route between two points. ZERO_RESULTS maps to
// service.ErrNoRoute; callers treat that as a normal outcome.
func (d *directionsClient) Route(ctx context.Context, origin, dest geo.Point) (*service.Route, error) {
	if err := origin.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid origin")
	}
	if err := dest.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid destination")
	}

	query := url.Values{}
	query.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	query.Set("destination", fmt.Sprintf("%f,%f", dest.Lat, dest.Lng))
	query.Set("mode", "driving")
	query.Set("key", d.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.cfg.DirectionsURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build directions request")
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "directions request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("directions provider returned status %d", resp.StatusCode)
	}

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode directions response")
	}

	switch decoded.Status {
	case statusOK:
		// fall through to route extraction
	case statusZeroResults:
		return nil, service.ErrNoRoute
	default:
		return nil, errors.Errorf("directions failed with status %s: %s", decoded.Status, decoded.ErrorMessage)
	}

	if len(decoded.Routes) == 0 {
		return nil, service.ErrNoRoute
	}

	route := decoded.Routes[0]
	path, err := decodeOverviewPolyline(route.OverviewPolyline.Points)
	if err != nil {
		return nil, err
	}

	travelTime := ""
	if len(route.Legs) > 0 {
		travelTime = route.Legs[0].Duration.Text
	}

	return &service.Route{
		Polyline:       path,
		TravelTimeText: travelTime,
	}, nil
}

// decodeOverviewPolyline decodes Google's encoded polyline (signed-varint
// deltas at 1e-5 precision) into (lon, lat) pairs for map rendering.
func decodeOverviewPolyline(encoded string) ([][2]float64, error) {
	coords, remainder, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode overview polyline")
	}
	if len(remainder) != 0 {
		return nil, errors.Errorf("trailing bytes in overview polyline: %q", remainder)
	}

	// The wire order is (lat, lng); rendering wants (lon, lat).
	path := make([][2]float64, 0, len(coords))
	for _, coord := range coords {
		path = append(path, [2]float64{coord[1], coord[0]})
	}

	return path, nil
}
