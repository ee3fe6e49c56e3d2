package traverse

// Adjust balances a computed traverse according to its kind.
//
// Open:
//   - len(points) ≥ 2 → a value-equal copy (StatusCopied);
//   - otherwise the input slice itself (StatusPassThrough).
//
// Closed:
//   - len(points) < 3 → the input slice itself (StatusPassThrough);
//   - perimeter ≤ tolerance → the input slice itself (StatusDegenerate);
//   - otherwise a new slice (StatusAdjusted), see adjustClosed.
//
// Any other Kind value returns the input slice itself (StatusPassThrough).
// Adjust never fails; Adjustment.Err reports the degenerate case.
func Adjust(points []Point, kind Kind, opts ...Option) Adjustment {
	switch kind {
	case Open:
		return adjustOpen(points)
	case Closed:
		return adjustClosed(points, gatherOptions(opts...))
	default:
		return Adjustment{Points: points, Status: StatusPassThrough}
	}
}

func adjustOpen(points []Point) Adjustment {
	if len(points) < 2 {
		return Adjustment{Points: points, Status: StatusPassThrough}
	}
	out := make([]Point, len(points))
	copy(out, points)
	return Adjustment{Points: out, Status: StatusCopied}
}

// adjustClosed distributes the loop misfit along the chain.
//
// Algorithm:
//  1. Misfit Δ = Σ (pᵢ − pᵢ₋₁) over the chain + (p₀ − pₙ₋₁) for the implicit
//     closing leg.
//  2. Perimeter P = chain length + closing segment length.
//  3. Station 0 stays put; station i gets −Δ·(Lᵢ/P), where Lᵢ is the
//     along-chain distance from station 0 to i (closing leg excluded).
//
// Complexity: O(n) time, O(n) memory.
func adjustClosed(points []Point, o Options) Adjustment {
	n := len(points)
	if n < 3 {
		return Adjustment{Points: points, Status: StatusPassThrough}
	}

	first, last := points[0], points[n-1]
	misfit := Misfit(points)
	perimeter := chainLength(points) + last.DistanceTo(first)

	if perimeter <= o.degenerateTol {
		return Adjustment{Points: points, Status: StatusDegenerate, Misfit: misfit, Perimeter: perimeter}
	}

	out := distribute(points, misfit, perimeter)

	return Adjustment{Points: out, Status: StatusAdjusted, Misfit: misfit, Perimeter: perimeter}
}

// distribute applies the proportional correction −misfit·(Lᵢ/perimeter) to
// every station after the first. perimeter must be > 0.
func distribute(points []Point, misfit Point, perimeter float64) []Point {
	out := make([]Point, len(points))
	out[0] = points[0]
	var cum float64
	for i := 1; i < len(points); i++ {
		cum += points[i-1].DistanceTo(points[i])
		f := cum / perimeter
		out[i] = Point{
			E: points[i].E - misfit.E*f,
			N: points[i].N - misfit.N*f,
		}
	}
	return out
}

// Misfit returns the loop misfit of points treated as a closed ring, the
// quantity adjustClosed distributes. Fewer than two points have no misfit.
func Misfit(points []Point) Point {
	var m Point
	if len(points) < 2 {
		return m
	}
	for i := 1; i < len(points); i++ {
		d := points[i].Sub(points[i-1])
		m.E += d.E
		m.N += d.N
	}
	c := points[0].Sub(points[len(points)-1])
	m.E += c.E
	m.N += c.N
	return m
}

// chainLength sums the segment lengths p₀→p₁→…→pₙ₋₁.
func chainLength(points []Point) float64 {
	var l float64
	for i := 1; i < len(points); i++ {
		l += points[i-1].DistanceTo(points[i])
	}
	return l
}
