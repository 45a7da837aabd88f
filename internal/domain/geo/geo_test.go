package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedPoint struct {
	name string
	at   Point
}

func (p namedPoint) Location() Point { return p.at }

func TestDistance_Symmetric(t *testing.T) {
	a := Point{Lat: 25.2048, Lng: 55.2708}
	b := Point{Lat: 25.0772, Lng: 55.1395}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-12)
}

func TestDistance_ZeroToSelf(t *testing.T) {
	p := Point{Lat: 25.1972, Lng: 55.2744}

	assert.Zero(t, Distance(p, p))
}

func TestDistance_DubaiScenario(t *testing.T) {
	user := Point{Lat: 25.1972, Lng: 55.2744}
	storeA := Point{Lat: 25.2048, Lng: 55.2708}
	storeB := Point{Lat: 25.0772, Lng: 55.1395}

	assert.InDelta(t, 0.86, Distance(user, storeA), 0.05)
	assert.InDelta(t, 13.4, Distance(user, storeB), 0.2)
}

func TestNearest_RanksAndTruncates(t *testing.T) {
	user := Point{Lat: 25.1972, Lng: 55.2744}
	candidates := []namedPoint{
		{name: "Store B", at: Point{Lat: 25.0772, Lng: 55.1395}},
		{name: "Store A", at: Point{Lat: 25.2048, Lng: 55.2708}},
		{name: "Store C", at: Point{Lat: 25.3000, Lng: 55.4000}},
		{name: "Store D", at: Point{Lat: 24.5000, Lng: 54.4000}},
	}

	ranked, err := Nearest(user, candidates, 3)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Store A", ranked[0].Candidate.name)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].DistanceKm, ranked[i].DistanceKm)
	}
}

func TestNearest_TopOne(t *testing.T) {
	user := Point{Lat: 25.1972, Lng: 55.2744}
	candidates := []namedPoint{
		{name: "Store A", at: Point{Lat: 25.2048, Lng: 55.2708}},
		{name: "Store B", at: Point{Lat: 25.0772, Lng: 55.1395}},
	}

	ranked, err := Nearest(user, candidates, 1)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "Store A", ranked[0].Candidate.name)
	assert.InDelta(t, 0.86, ranked[0].DistanceKm, 0.05)
}

func TestNearest_StableOnExactTies(t *testing.T) {
	user := Point{Lat: 0, Lng: 0}
	same := Point{Lat: 1, Lng: 1}
	candidates := []namedPoint{
		{name: "first", at: same},
		{name: "second", at: same},
		{name: "third", at: same},
	}

	ranked, err := Nearest(user, candidates, 3)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].Candidate.name)
	assert.Equal(t, "second", ranked[1].Candidate.name)
	assert.Equal(t, "third", ranked[2].Candidate.name)
}

func TestNearest_EmptyCandidates(t *testing.T) {
	ranked, err := Nearest(Point{Lat: 25, Lng: 55}, []namedPoint{}, 3)
	require.NoError(t, err)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestNearest_FewerThanK(t *testing.T) {
	candidates := []namedPoint{
		{name: "only", at: Point{Lat: 25.2048, Lng: 55.2708}},
	}

	ranked, err := Nearest(Point{Lat: 25, Lng: 55}, candidates, 3)
	require.NoError(t, err)
	assert.Len(t, ranked, 1)
}

func TestNearest_InvalidOrigin(t *testing.T) {
	candidates := []namedPoint{
		{name: "a", at: Point{Lat: 25, Lng: 55}},
	}

	_, err := Nearest(Point{Lat: 91, Lng: 0}, candidates, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = Nearest(Point{Lat: math.NaN(), Lng: 0}, candidates, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestNearest_InvalidCandidate(t *testing.T) {
	candidates := []namedPoint{
		{name: "good", at: Point{Lat: 25, Lng: 55}},
		{name: "bad", at: Point{Lat: 0, Lng: 181}},
	}

	_, err := Nearest(Point{Lat: 25, Lng: 55}, candidates, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestNearest_InvalidK(t *testing.T) {
	_, err := Nearest(Point{Lat: 25, Lng: 55}, []namedPoint{}, 0)
	assert.Error(t, err)
}

func TestPointValidate(t *testing.T) {
	assert.NoError(t, Point{Lat: -90, Lng: 180}.Validate())
	assert.NoError(t, Point{Lat: 90, Lng: -180}.Validate())
	assert.Error(t, Point{Lat: -90.01, Lng: 0}.Validate())
	assert.Error(t, Point{Lat: 0, Lng: -180.01}.Validate())
	assert.Error(t, Point{Lat: 0, Lng: math.NaN()}.Validate())
}
