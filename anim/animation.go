package anim

import (
	"fmt"

	"github.com/automoto/motion/vec"
	"golang.org/x/exp/constraints"
)

// Animation is the per-frame contract every animation in this package
// satisfies. An external clock calls Tick serially with the wall seconds
// elapsed since the previous tick; a stopped animation ignores ticks.
type Animation[S constraints.Float] interface {
	Tick(dt S)
	Running() bool
}

// Default perceptual parameters for a freshly created spring animation:
// critically damped, settling on a UI-friendly timescale.
const (
	DefaultResponse     = 0.5
	DefaultDampingRatio = 1.0
)

// SpringAnimation drives a vector value toward a target with an owned
// Spring. The zero value is not usable; create with NewSpringAnimation.
//
// OnValueChanged fires at least once per tick while running. OnCompletion
// fires exactly once per natural resolution and never from Stop alone.
type SpringAnimation[S constraints.Float] struct {
	spring *Spring[S]

	value   vec.Vec[S]
	toValue vec.Vec[S]
	// velocity is stored in displacement space: the negation of the
	// velocity callers observe. The solver's state variable is the
	// displacement toValue−value, whose rate of change is the negated
	// value velocity. The sign flips only in Velocity/SetVelocity.
	velocity vec.Vec[S]
	scratch  vec.Vec[S]

	clamp    *vec.Range[S]
	running  bool

	OnValueChanged func(vec.Vec[S])
	OnCompletion   func()
}

// NewSpringAnimation creates a stopped animation at the given initial
// value, targeting that same value, with default spring parameters.
func NewSpringAnimation[S constraints.Float](initial vec.Vec[S]) *SpringAnimation[S] {
	return &SpringAnimation[S]{
		spring:   NewSpring[S](DefaultResponse, DefaultDampingRatio),
		value:    initial.Clone(),
		toValue:  initial.Clone(),
		velocity: vec.New[S](len(initial)),
		scratch:  vec.New[S](len(initial)),
	}
}

// Spring exposes the owned solver for direct parameter reads.
func (a *SpringAnimation[S]) Spring() *Spring[S] { return a.spring }

// Configure retunes the owned spring with perceptual parameters. Valid at
// any time, including mid-flight: the next tick resumes the physics from
// the current state under the new parameters.
func (a *SpringAnimation[S]) Configure(response, dampingRatio S) {
	a.spring.Configure(response, dampingRatio)
}

// ConfigureStiffnessDamping retunes the owned spring with the classic
// constants.
func (a *SpringAnimation[S]) ConfigureStiffnessDamping(stiffness, damping S) {
	a.spring.ConfigureStiffnessDamping(stiffness, damping)
}

// Value returns the current position. The returned slice is the live
// backing store; callers must treat it as read-only.
func (a *SpringAnimation[S]) Value() vec.Vec[S] { return a.value }

func (a *SpringAnimation[S]) SetValue(v vec.Vec[S]) {
	a.value.CopyFrom(v)
}

// ToValue returns the current target.
func (a *SpringAnimation[S]) ToValue() vec.Vec[S] { return a.toValue }

// SetToValue retargets the animation. Together with Stop and SetVelocity
// this is the redirection contract: no other state is reset, so an
// animation is redirected mid-flight or after completion at no cost.
func (a *SpringAnimation[S]) SetToValue(v vec.Vec[S]) {
	a.toValue.CopyFrom(v)
}

// Velocity returns the velocity in the caller's sign convention, where
// positive moves the value toward a larger target.
func (a *SpringAnimation[S]) Velocity() vec.Vec[S] {
	v := a.velocity.Clone()
	v.Negate()
	return v
}

// SetVelocity sets the velocity in the caller's sign convention, e.g. a
// gesture velocity handed off from a touch tracker.
func (a *SpringAnimation[S]) SetVelocity(v vec.Vec[S]) {
	a.velocity.CopyFrom(v)
	a.velocity.Negate()
}

// ClampingRange returns the active clamping range, or nil when unset.
func (a *SpringAnimation[S]) ClampingRange() *vec.Range[S] { return a.clamp }

// SetClampingRange bounds the value per lane after every step, visibly
// truncating overshoot. The corners may be passed in either order; call
// ClearClampingRange to remove the bounds.
func (a *SpringAnimation[S]) SetClampingRange(lo, hi vec.Vec[S]) {
	if len(lo) != len(a.value) || len(hi) != len(a.value) {
		panic(fmt.Sprintf("anim: clamping range width != value width %d", len(a.value)))
	}
	r := vec.NewRange(lo, hi)
	a.clamp = &r
}

func (a *SpringAnimation[S]) ClearClampingRange() {
	a.clamp = nil
}

// Start begins ticking. Starting an animation whose state already
// satisfies the resolution condition stops on the first tick.
func (a *SpringAnimation[S]) Start() {
	a.running = true
}

func (a *SpringAnimation[S]) Running() bool { return a.running }

// HasResolved reports whether velocity and displacement are both within
// tolerance of zero on every lane.
func (a *SpringAnimation[S]) HasResolved() bool {
	return a.velocity.ApproxZero(resolutionEpsilon) &&
		a.value.ApproxEqual(a.toValue, resolutionEpsilon)
}

// Tick advances the animation by dt seconds. No-op while stopped.
func (a *SpringAnimation[S]) Tick(dt S) {
	if !a.running {
		return
	}

	for i := range a.scratch {
		a.scratch[i] = a.toValue[i] - a.value[i]
	}
	displacement := a.spring.Solve(dt, a.scratch, a.velocity)
	for i := range a.value {
		a.value[i] = a.toValue[i] - displacement[i]
	}
	if a.clamp != nil {
		a.clamp.Apply(a.value)
	}

	if a.OnValueChanged != nil {
		a.OnValueChanged(a.value)
	}

	if a.HasResolved() {
		a.Stop(false, false)
		// Snap away the residual float error, then report the exact
		// final value before completing.
		a.value.CopyFrom(a.toValue)
		if a.OnValueChanged != nil {
			a.OnValueChanged(a.value)
		}
		if a.OnCompletion != nil {
			a.OnCompletion()
		}
	}
}

// Stop halts ticking and zeroes the velocity. With resolveImmediately the
// value snaps to the target first; with postValueChanged the value-changed
// callback fires as part of the stop. Stop never fires OnCompletion.
func (a *SpringAnimation[S]) Stop(resolveImmediately, postValueChanged bool) {
	if resolveImmediately {
		a.value.CopyFrom(a.toValue)
	}
	a.running = false
	a.velocity.Zero()
	if postValueChanged && a.OnValueChanged != nil {
		a.OnValueChanged(a.value)
	}
}
