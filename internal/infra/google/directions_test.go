package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bakehouse/internal/domain/geo"
	"bakehouse/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("origin"))
		assert.NotEmpty(t, r.URL.Query().Get("destination"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"routes": [{
				"overview_polyline": {"points": "_p~iF~ps|U_ulLnnqC_mqNvxq` + "`" + `@"},
				"legs": [{"duration": {"text": "14 mins"}}]
			}]
		}`))
	}))
	defer server.Close()

	provider := NewDirectionsProvider(newTestConfig(server.URL))

	route, err := provider.Route(context.Background(),
		geo.Point{Lat: 25.1972, Lng: 55.2744},
		geo.Point{Lat: 25.2048, Lng: 55.2708})
	require.NoError(t, err)
	require.NotNil(t, route)
	assert.Equal(t, "14 mins", route.TravelTimeText)

	// Reference decoding of the polyline from Google's own documentation,
	// reordered to (lon, lat).
	require.Len(t, route.Polyline, 3)
	assert.InDelta(t, -120.2, route.Polyline[0][0], 1e-5)
	assert.InDelta(t, 38.5, route.Polyline[0][1], 1e-5)
	assert.InDelta(t, -126.453, route.Polyline[2][0], 1e-5)
	assert.InDelta(t, 43.252, route.Polyline[2][1], 1e-5)
}

func TestRoute_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "routes": []}`))
	}))
	defer server.Close()

	provider := NewDirectionsProvider(newTestConfig(server.URL))

	_, err := provider.Route(context.Background(),
		geo.Point{Lat: 25.1972, Lng: 55.2744},
		geo.Point{Lat: 25.2048, Lng: 55.2708})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNoRoute)
}

func TestRoute_InvalidOrigin(t *testing.T) {
	provider := NewDirectionsProvider(newTestConfig("http://unused.invalid"))

	_, err := provider.Route(context.Background(),
		geo.Point{Lat: 91, Lng: 0},
		geo.Point{Lat: 25.2048, Lng: 55.2708})
	require.Error(t, err)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

func TestDecodeOverviewPolyline(t *testing.T) {
	path, err := decodeOverviewPolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.InDelta(t, -120.95, path[1][0], 1e-5)
	assert.InDelta(t, 40.7, path[1][1], 1e-5)
}

func TestDecodeOverviewPolyline_Garbage(t *testing.T) {
	_, err := decodeOverviewPolyline("\x01")
	assert.Error(t, err)
}
