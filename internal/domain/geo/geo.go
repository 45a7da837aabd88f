// Package geo provides great-circle distance computation and nearest-entity
// ranking over in-memory candidate sets. All functions are pure and safe for
// concurrent use.
package geo

import (
	"math"
	"sort"

	"bakehouse/internal/errors"
)

// earthRadiusKm is the mean Earth radius used by the Haversine formula.
const earthRadiusKm = 6371.0

// ErrInvalidCoordinate is returned when a latitude or longitude is NaN or
// outside its valid range. Callers must not rank with malformed coordinates;
// a silent nonsense ranking is worse than a failure.
var ErrInvalidCoordinate = errors.New("invalid coordinate: latitude must be in [-90,90] and longitude in [-180,180]")

// Point is a WGS-84 coordinate pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate reports whether the point is a usable coordinate.
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return errors.Wrap(ErrInvalidCoordinate, "coordinate is NaN")
	}
	if p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
		return errors.Wrapf(ErrInvalidCoordinate, "lat=%f lng=%f", p.Lat, p.Lng)
	}

	return nil
}

// Distance computes the great-circle distance between two points in
// kilometers using the Haversine formula. The formula assumes a perfect
// sphere, which is accurate enough for intra-city ranking but not for
// geodesic-precision work.
func Distance(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lng1 := a.Lng * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lng2 := b.Lng * math.Pi / 180

	deltaLat := lat2 - lat1
	deltaLng := lng2 - lng1

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Candidate is anything with a coordinate that can be ranked by distance.
type Candidate interface {
	Location() Point
}

// Ranked pairs a candidate with its computed distance from the origin.
type Ranked[T Candidate] struct {
	Candidate  T
	DistanceKm float64
}

// Nearest ranks candidates by ascending great-circle distance from origin
// and returns at most k entries. Exact distance ties keep input order, so
// the result is deterministic. An empty candidate set yields an empty,
// non-nil result; it is a normal outcome, not an error.
//
// Nearest validates the origin and every candidate coordinate up front and
// fails fast on the first malformed one.
func Nearest[T Candidate](origin Point, candidates []T, k int) ([]Ranked[T], error) {
	if k < 1 {
		return nil, errors.New("k must be at least 1")
	}
	if err := origin.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid origin")
	}

	ranked := make([]Ranked[T], 0, len(candidates))
	for _, candidate := range candidates {
		loc := candidate.Location()
		if err := loc.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid candidate coordinate")
		}

		ranked = append(ranked, Ranked[T]{
			Candidate:  candidate,
			DistanceKm: Distance(origin, loc),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}

	return ranked, nil
}
