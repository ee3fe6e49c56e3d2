// Package area computes the plane area enclosed by a ring of traverse
// stations using the shoelace (surveyor's) formula.
//
// The ring is implicit: the last station connects back to the first, so a
// closed traverse may be passed with or without a repeated start station.
//
//	A = |Σ (Eᵢ·Nᵢ₊₁ − Eᵢ₊₁·Nᵢ)| / 2,   i+1 taken mod n
//
// Fewer than three stations enclose nothing and yield 0. Whether an area is
// meaningful (closed traverses only) is the caller's policy.
package area
