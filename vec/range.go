package vec

import "golang.org/x/exp/constraints"

// Range is an inclusive per-lane bound pair with Lower[i] <= Upper[i].
type Range[S constraints.Float] struct {
	Lower Vec[S]
	Upper Vec[S]
}

// NewRange builds a Range from two opposite corners in either order:
// swapped lanes are normalized so the invariant Lower[i] <= Upper[i]
// always holds.
func NewRange[S constraints.Float](a, b Vec[S]) Range[S] {
	a.check(b)
	r := Range[S]{Lower: a.Clone(), Upper: b.Clone()}
	for i := range r.Lower {
		if r.Lower[i] > r.Upper[i] {
			r.Lower[i], r.Upper[i] = r.Upper[i], r.Lower[i]
		}
	}
	return r
}

// Apply clamps v into the range in place.
func (r Range[S]) Apply(v Vec[S]) {
	v.Clamp(r.Lower, r.Upper)
}

// Contains reports whether every lane of v lies inside the range.
func (r Range[S]) Contains(v Vec[S]) bool {
	v.check(r.Lower)
	for i := range v {
		if v[i] < r.Lower[i] || v[i] > r.Upper[i] {
			return false
		}
	}
	return true
}
