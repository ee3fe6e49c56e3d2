// Package traverse computes and balances survey traverses on a local planar
// grid.
//
// 🚀 What is a traverse?
//
//	A traverse is a chain of survey stations joined by measured legs. Each leg
//	carries a bearing and a horizontal distance; starting from a known
//	coordinate the stations follow by polar-to-Cartesian accumulation:
//
//	    ΔE = d·sin(az)    ΔN = d·cos(az)
//
//	with the azimuth az measured clockwise from grid north.
//
// ✨ Key features:
//   - Parse turns raw per-leg text (LegInput) into a typed Plan once, with
//     per-leg error positions.
//   - Compute / Run produce station coordinates, start included at index 0.
//   - Adjust balances a Closed traverse by distributing the loop misfit in
//     proportion to distance travelled; Open traverses are passed through.
//   - Closure reports the linear misclosure and relative precision of a chain.
//
// ⚙️ Usage:
//
//	pts, err := traverse.Compute([]traverse.LegInput{
//	  {Easting: "1000", Northing: "5000"},
//	  {Bearing: "N60E", Distance: "25.40"},
//	  {Bearing: "S30E", Distance: "18.00"},
//	})
//	if err != nil {
//	  // errors.Is(err, traverse.ErrInvalidDistance), bearing.ErrInvalidFormat, ...
//	}
//	adj := traverse.Adjust(pts, traverse.Closed)
//	if err := adj.Err(); err != nil {
//	  // zero-perimeter loop, nothing was distributed
//	}
//
// Coordinates are metres on a plane: no geodetic, scale-factor or elevation
// corrections are applied.
package traverse
