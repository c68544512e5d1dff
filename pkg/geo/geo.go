package geo

import (
	"errors"
	"math"
)

const earthRadiusMeters = 6371000.0

var ErrInvalidCoordinate = errors.New("invalid coordinate")

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func Validate(p Point) error {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) ||
		p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}

// Distance returns the great-circle distance in meters between a and b,
// computed with the haversine formula.
func Distance(a, b Point) (float64, error) {
	if err := Validate(a); err != nil {
		return 0, err
	}
	if err := Validate(b); err != nil {
		return 0, err
	}
	return haversine(a.Lat, a.Lng, b.Lat, b.Lng), nil
}

func haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceToSegment returns the minimum distance in meters from p to the
// segment a-b. p is projected onto the segment in lat/lng space with the
// projection parameter clamped to [0,1], then measured with haversine.
// When a == b the segment degrades to the single point a.
func DistanceToSegment(p, a, b Point) (float64, error) {
	if err := Validate(p); err != nil {
		return 0, err
	}
	if err := Validate(a); err != nil {
		return 0, err
	}
	if err := Validate(b); err != nil {
		return 0, err
	}

	dLat := b.Lat - a.Lat
	dLng := b.Lng - a.Lng
	lenSq := dLat*dLat + dLng*dLng
	if lenSq == 0 {
		return Distance(p, a)
	}

	t := ((p.Lat-a.Lat)*dLat + (p.Lng-a.Lng)*dLng) / lenSq
	t = math.Max(0, math.Min(1, t))

	projected := Point{Lat: a.Lat + t*dLat, Lng: a.Lng + t*dLng}
	return Distance(p, projected)
}

// DistanceToPolyline returns the minimum distance from p to any segment of
// route. An empty route imposes no corridor, so the distance is 0.
func DistanceToPolyline(p Point, route []Point) (float64, error) {
	if err := Validate(p); err != nil {
		return 0, err
	}
	if len(route) == 0 {
		return 0, nil
	}
	if len(route) == 1 {
		return Distance(p, route[0])
	}

	minDist := math.MaxFloat64
	for i := 0; i < len(route)-1; i++ {
		d, err := DistanceToSegment(p, route[i], route[i+1])
		if err != nil {
			return 0, err
		}
		if d < minDist {
			minDist = d
		}
	}
	return minDist, nil
}
