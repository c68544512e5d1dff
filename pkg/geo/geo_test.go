package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Point{Lat: 0, Lng: 0}))
	assert.NoError(t, Validate(Point{Lat: -90, Lng: 180}))
	assert.NoError(t, Validate(Point{Lat: 90, Lng: -180}))

	assert.ErrorIs(t, Validate(Point{Lat: 90.1, Lng: 0}), ErrInvalidCoordinate)
	assert.ErrorIs(t, Validate(Point{Lat: 0, Lng: -180.1}), ErrInvalidCoordinate)
	assert.ErrorIs(t, Validate(Point{Lat: math.NaN(), Lng: 0}), ErrInvalidCoordinate)
	assert.ErrorIs(t, Validate(Point{Lat: 0, Lng: math.NaN()}), ErrInvalidCoordinate)
}

func TestDistance(t *testing.T) {
	d, err := Distance(Point{Lat: 10, Lng: 20}, Point{Lat: 10, Lng: 20})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	// one degree of longitude on the equator
	d, err = Distance(Point{Lat: 0, Lng: 0}, Point{Lat: 0, Lng: 1})
	require.NoError(t, err)
	assert.InDelta(t, 111195, d, 10)

	_, err = Distance(Point{Lat: 95, Lng: 0}, Point{Lat: 0, Lng: 0})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestDistanceToSegment(t *testing.T) {
	a := Point{Lat: 0, Lng: 0}
	b := Point{Lat: 0, Lng: 1}

	// on a vertex
	d, err := DistanceToSegment(a, a, b)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	// 0.002 degrees of latitude off the midpoint
	d, err = DistanceToSegment(Point{Lat: 0.002, Lng: 0.5}, a, b)
	require.NoError(t, err)
	assert.InDelta(t, 222, d, 2)

	// beyond the endpoint the projection clamps to b
	d, err = DistanceToSegment(Point{Lat: 0, Lng: 2}, a, b)
	require.NoError(t, err)
	want, _ := Distance(Point{Lat: 0, Lng: 2}, b)
	assert.InDelta(t, want, d, 0.001)

	// degenerate segment
	d, err = DistanceToSegment(Point{Lat: 0, Lng: 1}, a, a)
	require.NoError(t, err)
	want, _ = Distance(Point{Lat: 0, Lng: 1}, a)
	assert.InDelta(t, want, d, 0.001)
}

func TestDistanceToPolyline(t *testing.T) {
	route := []Point{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 1, Lng: 1}}

	// empty route imposes no corridor
	d, err := DistanceToPolyline(Point{Lat: 5, Lng: 5}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	// single point route
	d, err = DistanceToPolyline(Point{Lat: 0, Lng: 1}, []Point{{Lat: 0, Lng: 0}})
	require.NoError(t, err)
	assert.InDelta(t, 111195, d, 10)

	// on a route vertex
	d, err = DistanceToPolyline(Point{Lat: 0, Lng: 1}, route)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	// within the corridor
	d, err = DistanceToPolyline(Point{Lat: 0.0005, Lng: 0.5}, route)
	require.NoError(t, err)
	assert.InDelta(t, 55.6, d, 1)
}

func TestDistanceToPolyline_ReversalSymmetry(t *testing.T) {
	route := []Point{{Lat: 0, Lng: 0}, {Lat: 0.3, Lng: 0.7}, {Lat: 0.9, Lng: 1.2}, {Lat: 1.5, Lng: 1.3}}
	reversed := make([]Point, len(route))
	for i, p := range route {
		reversed[len(route)-1-i] = p
	}

	p := Point{Lat: 0.4, Lng: 0.6}
	forward, err := DistanceToPolyline(p, route)
	require.NoError(t, err)
	backward, err := DistanceToPolyline(p, reversed)
	require.NoError(t, err)

	assert.InDelta(t, forward, backward, 0.001)
}
