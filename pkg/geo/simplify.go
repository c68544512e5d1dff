package geo

const (
	DefaultSimplifyEpsilonMeters = 10.0
	DefaultSimplifyMaxPoints     = 800

	maxSimplifyEpsilonMeters = 100000.0
	epsilonGrowthFactor      = 1.5
)

// Simplify reduces points with the Douglas-Peucker algorithm. The sequence is
// split at the point of maximum perpendicular distance (in meters) from the
// chord between its endpoints; intermediate points closer than epsilonMeters
// are dropped. The first and last point are always preserved.
func Simplify(points []Point, epsilonMeters float64) []Point {
	if len(points) < 3 {
		return append([]Point(nil), points...)
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true

	type span struct{ first, last int }
	stack := []span{{0, len(points) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		maxDist := 0.0
		maxIdx := -1
		for i := s.first + 1; i < s.last; i++ {
			d, err := DistanceToSegment(points[i], points[s.first], points[s.last])
			if err != nil {
				continue
			}
			if d > maxDist {
				maxDist = d
				maxIdx = i
			}
		}

		if maxIdx >= 0 && maxDist > epsilonMeters {
			keep[maxIdx] = true
			stack = append(stack, span{s.first, maxIdx}, span{maxIdx, s.last})
		}
	}

	out := make([]Point, 0, len(points))
	for i, p := range points {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// SimplifyToLimit runs Simplify with epsilon growing by 1.5x until the result
// fits under maxPoints or epsilon reaches its upper bound, which bounds the
// memory footprint of a stored route regardless of input density. The stride
// fallback keeps the ceiling hard even for degenerate inputs.
func SimplifyToLimit(points []Point, epsilonMeters float64, maxPoints int) []Point {
	if epsilonMeters <= 0 {
		epsilonMeters = DefaultSimplifyEpsilonMeters
	}
	if maxPoints < 2 {
		maxPoints = DefaultSimplifyMaxPoints
	}

	out := Simplify(points, epsilonMeters)
	eps := epsilonMeters
	for len(out) > maxPoints && eps < maxSimplifyEpsilonMeters {
		eps *= epsilonGrowthFactor
		out = Simplify(out, eps)
	}

	if len(out) > maxPoints {
		out = decimate(out, maxPoints)
	}
	return out
}

func decimate(points []Point, maxPoints int) []Point {
	out := make([]Point, 0, maxPoints)
	step := float64(len(points)-1) / float64(maxPoints-1)
	for i := 0; i < maxPoints-1; i++ {
		out = append(out, points[int(float64(i)*step)])
	}
	return append(out, points[len(points)-1])
}
