package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"bakehouse/config"
	"bakehouse/internal/domain/geo"
	"bakehouse/internal/domain/service"
	"bakehouse/internal/errors"
)

// geocodingClient implements service.Geocoder using the Google Geocoding API.
type geocodingClient struct {
	cfg    config.GoogleMapsConfig
	client *http.Client
}

// NewGeocoder is the constructor for the Google geocoding client.
func NewGeocoder(cfg *config.Config) service.Geocoder {
	resolved := mapsConfig(cfg)

	return &geocodingClient{
		cfg:    resolved,
		client: newHTTPClient(resolved.Timeout),
	}
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-text address to coordinates. A provider answer of
// ZERO_RESULTS maps to service.ErrAddressNotFound so callers can distinguish
// "no such place" from transport failures.
func (g *geocodingClient) Geocode(ctx context.Context, address string) (geo.Point, error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("key", g.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.GeocodingURL+"?"+query.Encode(), nil)
	if err != nil {
		return geo.Point{}, errors.Wrap(err, "failed to build geocoding request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return geo.Point{}, errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geo.Point{}, errors.Errorf("geocoding provider returned status %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return geo.Point{}, errors.Wrap(err, "failed to decode geocoding response")
	}

	switch decoded.Status {
	case statusOK:
		// fall through to result extraction
	case statusZeroResults:
		return geo.Point{}, errors.Wrapf(service.ErrAddressNotFound, "address %q", address)
	default:
		return geo.Point{}, errors.Errorf("geocoding failed with status %s: %s", decoded.Status, decoded.ErrorMessage)
	}

	if len(decoded.Results) == 0 {
		return geo.Point{}, errors.Wrapf(service.ErrAddressNotFound, "address %q", address)
	}

	location := decoded.Results[0].Geometry.Location
	point := geo.Point{Lat: location.Lat, Lng: location.Lng}
	if err := point.Validate(); err != nil {
		return geo.Point{}, errors.Wrap(err, "geocoding provider returned invalid coordinates")
	}

	return point, nil
}
