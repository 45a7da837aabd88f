// Package google implements the geocoding and directions collaborators on
// top of the Google Maps web service APIs.
package google

import (
	"net/http"
	"time"

	"bakehouse/config"
)

const (
	defaultGeocodingURL  = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultDirectionsURL = "https://maps.googleapis.com/maps/api/directions/json"
	defaultTimeout       = 5 * time.Second

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// mapsConfig resolves the effective client settings, filling defaults for
// anything the config leaves unset.
func mapsConfig(cfg *config.Config) config.GoogleMapsConfig {
	resolved := config.GoogleMapsConfig{
		GeocodingURL:  defaultGeocodingURL,
		DirectionsURL: defaultDirectionsURL,
		Timeout:       defaultTimeout,
	}
	if cfg == nil || cfg.GoogleMaps == nil {
		return resolved
	}

	resolved.APIKey = cfg.GoogleMaps.APIKey
	if cfg.GoogleMaps.GeocodingURL != "" {
		resolved.GeocodingURL = cfg.GoogleMaps.GeocodingURL
	}
	if cfg.GoogleMaps.DirectionsURL != "" {
		resolved.DirectionsURL = cfg.GoogleMaps.DirectionsURL
	}
	if cfg.GoogleMaps.Timeout > 0 {
		resolved.Timeout = cfg.GoogleMaps.Timeout
	}

	return resolved
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
