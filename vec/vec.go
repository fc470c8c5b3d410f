// Package vec provides the fixed-width float vectors the animation core
// operates on. Every lane is independent: the only operations here are
// element-wise, so the same code serves 2-D positions, 4-lane colors, or
// any other width a caller animates.
package vec

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Vec is a fixed-width vector of float lanes. The width is set at creation
// and every operation expects operands of the same width.
type Vec[S constraints.Float] []S

// New returns a zeroed vector of the given width.
func New[S constraints.Float](width int) Vec[S] {
	if width <= 0 {
		panic(fmt.Sprintf("vec: invalid width %d", width))
	}
	return make(Vec[S], width)
}

// Of builds a vector from its lanes.
func Of[S constraints.Float](lanes ...S) Vec[S] {
	if len(lanes) == 0 {
		panic("vec: empty vector")
	}
	v := make(Vec[S], len(lanes))
	copy(v, lanes)
	return v
}

func (v Vec[S]) Clone() Vec[S] {
	w := make(Vec[S], len(v))
	copy(w, v)
	return w
}

// CopyFrom overwrites v with src. Widths must match.
func (v Vec[S]) CopyFrom(src Vec[S]) {
	v.check(src)
	copy(v, src)
}

func (v Vec[S]) Fill(s S) {
	for i := range v {
		v[i] = s
	}
}

func (v Vec[S]) Zero() {
	v.Fill(0)
}

// Add accumulates w into v in place.
func (v Vec[S]) Add(w Vec[S]) {
	v.check(w)
	for i := range v {
		v[i] += w[i]
	}
}

// Sub subtracts w from v in place.
func (v Vec[S]) Sub(w Vec[S]) {
	v.check(w)
	for i := range v {
		v[i] -= w[i]
	}
}

// Scale multiplies every lane by s.
func (v Vec[S]) Scale(s S) {
	for i := range v {
		v[i] *= s
	}
}

// Negate flips the sign of every lane.
func (v Vec[S]) Negate() {
	for i := range v {
		v[i] = -v[i]
	}
}

// Clamp restricts every lane of v into [lo[i], hi[i]] in place.
func (v Vec[S]) Clamp(lo, hi Vec[S]) {
	v.check(lo)
	v.check(hi)
	for i := range v {
		if v[i] < lo[i] {
			v[i] = lo[i]
		} else if v[i] > hi[i] {
			v[i] = hi[i]
		}
	}
}

// ApproxZero reports whether every lane is within eps of zero.
func (v Vec[S]) ApproxZero(eps S) bool {
	for i := range v {
		if v[i] > eps || v[i] < -eps {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every lane of v is within eps of w.
func (v Vec[S]) ApproxEqual(w Vec[S], eps S) bool {
	v.check(w)
	for i := range v {
		d := v[i] - w[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}

// IsFinite reports whether no lane is NaN or infinite.
func (v Vec[S]) IsFinite() bool {
	for i := range v {
		f := float64(v[i])
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func (v Vec[S]) check(w Vec[S]) {
	if len(v) != len(w) {
		panic(fmt.Sprintf("vec: width mismatch %d != %d", len(v), len(w)))
	}
}
