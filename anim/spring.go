// Package anim animates fixed-width vector values toward targets, one
// independent damped oscillator per lane. The spring solver evaluates the
// closed-form solution of the oscillator ODE, so a step is exact for any
// elapsed time: a multi-frame stall produces the same state as the small
// steps it skipped.
package anim

import (
	"fmt"
	"math"

	"github.com/automoto/motion/vec"
	"golang.org/x/exp/constraints"
)

const (
	// resolutionEpsilon bounds both the "velocity is zero" and the
	// "value reached target" checks. A thousandth of a unit is below
	// anything visible at pixel scales and still lets the slowest
	// sensible spring settle in a few seconds.
	resolutionEpsilon = 1e-3

	// criticalDampingEpsilon routes near-critical damping ratios to the
	// critical-damping branch. Below this distance from 1, the damped
	// frequency is small enough that the sinusoid form divides by
	// near-zero.
	criticalDampingEpsilon = 1e-5
)

// Spring solves one damped harmonic oscillator per vector lane. All lanes
// share the same parameters; they never couple.
//
// Two equivalent parameterizations are accepted. Configure takes the
// perceptual pair: response, the period of one undamped oscillation in
// seconds, and dampingRatio, where 0 never settles, 1 is the fastest
// non-overshooting approach, and above 1 is sluggish. The classic
// stiffness/damping constants are derived as stiffness = ω₀² and
// damping = 2·ζ·ω₀ with ω₀ = 2π/response.
type Spring[S constraints.Float] struct {
	response     S
	dampingRatio S

	// derived, cached at configure time
	omega0 float64 // natural angular frequency ω₀
	omegaD float64 // damped frequency ωd, underdamped branch only
}

// NewSpring returns a configured spring. See Configure for the parameter
// contract.
func NewSpring[S constraints.Float](response, dampingRatio S) *Spring[S] {
	s := &Spring[S]{}
	s.Configure(response, dampingRatio)
	return s
}

// Configure sets the perceptual parameters. response must be positive and
// dampingRatio non-negative; violations are programming errors and panic.
// Safe to call mid-animation: the next Solve treats the current state as a
// fresh initial condition.
func (s *Spring[S]) Configure(response, dampingRatio S) {
	if response <= 0 {
		panic(fmt.Sprintf("anim: response must be positive, got %v", response))
	}
	if dampingRatio < 0 {
		panic(fmt.Sprintf("anim: damping ratio must be non-negative, got %v", dampingRatio))
	}
	s.response = response
	s.dampingRatio = dampingRatio
	s.omega0 = 2 * math.Pi / float64(response)
	zeta := float64(dampingRatio)
	if zeta < 1 {
		s.omegaD = s.omega0 * math.Sqrt(1-zeta*zeta)
	} else {
		s.omegaD = 0
	}
}

// ConfigureStiffnessDamping sets the classic spring constants. stiffness
// must be positive and damping non-negative.
func (s *Spring[S]) ConfigureStiffnessDamping(stiffness, damping S) {
	if stiffness <= 0 {
		panic(fmt.Sprintf("anim: stiffness must be positive, got %v", stiffness))
	}
	if damping < 0 {
		panic(fmt.Sprintf("anim: damping must be non-negative, got %v", damping))
	}
	w0 := math.Sqrt(float64(stiffness))
	response := 2 * math.Pi / w0
	ratio := float64(damping) / (2 * w0)
	s.Configure(S(response), S(ratio))
}

func (s *Spring[S]) Response() S     { return s.response }
func (s *Spring[S]) DampingRatio() S { return s.dampingRatio }

func (s *Spring[S]) Stiffness() S {
	return S(s.omega0 * s.omega0)
}

func (s *Spring[S]) Damping() S {
	return S(2 * float64(s.dampingRatio) * s.omega0)
}

// Solve advances the oscillator by dt seconds. x0 holds the current
// displacement from the target and velocity the current rate of change of
// that displacement; both are overwritten in place with the state after
// dt, and x0 is returned. The three damping regimes use their own closed
// forms; the sinusoid form is never evaluated near critical damping.
func (s *Spring[S]) Solve(dt S, x0, velocity vec.Vec[S]) vec.Vec[S] {
	if len(x0) != len(velocity) {
		panic(fmt.Sprintf("anim: displacement width %d != velocity width %d", len(x0), len(velocity)))
	}
	t := float64(dt)
	w0 := s.omega0
	zeta := float64(s.dampingRatio)

	switch {
	case zeta < 1-criticalDampingEpsilon:
		// Underdamped: x(t) = e^{-ζω₀t}·(A·cos ωd t + B·sin ωd t)
		// with A = x₀ and B = (v₀ + ζω₀x₀)/ωd.
		wd := s.omegaD
		env := math.Exp(-zeta * w0 * t)
		sin, cos := math.Sincos(wd * t)
		for i := range x0 {
			x := float64(x0[i])
			v := float64(velocity[i])
			b := (v + zeta*w0*x) / wd
			x0[i] = S(env * (x*cos + b*sin))
			velocity[i] = S(env * ((b*wd-zeta*w0*x)*cos - (x*wd+zeta*w0*b)*sin))
		}

	case zeta > 1+criticalDampingEpsilon:
		// Overdamped: two real exponentials with rates
		// r = -ω₀·(ζ ∓ √(ζ²−1)).
		sq := math.Sqrt(zeta*zeta - 1)
		r1 := -w0 * (zeta - sq)
		r2 := -w0 * (zeta + sq)
		e1 := math.Exp(r1 * t)
		e2 := math.Exp(r2 * t)
		for i := range x0 {
			x := float64(x0[i])
			v := float64(velocity[i])
			c2 := (v - r1*x) / (r2 - r1)
			c1 := x - c2
			x0[i] = S(c1*e1 + c2*e2)
			velocity[i] = S(c1*r1*e1 + c2*r2*e2)
		}

	default:
		// Critically damped: x(t) = e^{-ω₀t}·(x₀ + B·t) with
		// B = v₀ + ω₀x₀. Selected explicitly; the underdamped form
		// degenerates here as ωd → 0.
		env := math.Exp(-w0 * t)
		for i := range x0 {
			x := float64(x0[i])
			v := float64(velocity[i])
			b := v + w0*x
			x0[i] = S(env * (x + b*t))
			velocity[i] = S(env * (b - w0*(x+b*t)))
		}
	}
	return x0
}
