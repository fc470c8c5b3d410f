package anim

import (
	"fmt"
	"math"

	"github.com/automoto/motion/vec"
	"golang.org/x/exp/constraints"
)

const (
	// DefaultDecayConstant is the conventional scroll-deceleration base:
	// the per-millisecond velocity retention factor.
	DefaultDecayConstant = 0.998

	// decayResolutionEpsilon is the velocity magnitude, in value units
	// per second, below which a fling is considered at rest. Decay has
	// no target to converge on, so the threshold is coarser than the
	// spring's positional tolerance.
	decayResolutionEpsilon = 0.5
)

// DecayAnimation coasts a value on its own momentum: the velocity decays
// exponentially and the value integrates it. Like the spring it uses the
// closed form, so any dt is exact. It resolves when velocity reaches
// approximately zero; there is no target.
type DecayAnimation[S constraints.Float] struct {
	value    vec.Vec[S]
	velocity vec.Vec[S]
	rate     float64 // 1000·ln(decayConstant), always negative
	constant S
	running  bool

	OnValueChanged func(vec.Vec[S])
	OnCompletion   func()
}

// NewDecayAnimation creates a stopped decay at the given initial value
// with the default decay constant.
func NewDecayAnimation[S constraints.Float](initial vec.Vec[S]) *DecayAnimation[S] {
	d := &DecayAnimation[S]{
		value:    initial.Clone(),
		velocity: vec.New[S](len(initial)),
	}
	d.SetDecayConstant(DefaultDecayConstant)
	return d
}

// SetDecayConstant sets the per-millisecond velocity retention factor,
// which must lie strictly between 0 and 1.
func (d *DecayAnimation[S]) SetDecayConstant(c S) {
	if c <= 0 || c >= 1 {
		panic(fmt.Sprintf("anim: decay constant must be in (0, 1), got %v", c))
	}
	d.constant = c
	d.rate = 1000 * math.Log(float64(c))
}

func (d *DecayAnimation[S]) DecayConstant() S { return d.constant }

// Value returns the live backing store; callers must treat it as
// read-only.
func (d *DecayAnimation[S]) Value() vec.Vec[S] { return d.value }

func (d *DecayAnimation[S]) SetValue(v vec.Vec[S]) { d.value.CopyFrom(v) }

func (d *DecayAnimation[S]) Velocity() vec.Vec[S] { return d.velocity.Clone() }

// SetVelocity sets the fling velocity in value units per second.
func (d *DecayAnimation[S]) SetVelocity(v vec.Vec[S]) { d.velocity.CopyFrom(v) }

// Destination returns where the value comes to rest if left to coast:
// x + v/|rate| per lane. Useful for handing off to a spring aimed at a
// snap point near the natural stop.
func (d *DecayAnimation[S]) Destination() vec.Vec[S] {
	dest := d.value.Clone()
	for i := range dest {
		dest[i] -= S(float64(d.velocity[i]) / d.rate)
	}
	return dest
}

func (d *DecayAnimation[S]) Start()        { d.running = true }
func (d *DecayAnimation[S]) Running() bool { return d.running }

func (d *DecayAnimation[S]) HasResolved() bool {
	return d.velocity.ApproxZero(decayResolutionEpsilon)
}

// Tick advances the decay by dt seconds. No-op while stopped.
func (d *DecayAnimation[S]) Tick(dt S) {
	if !d.running {
		return
	}

	// v(t) = v₀·e^{kt}, x(t) = x₀ + v₀·(e^{kt}−1)/k with k = rate.
	ekt := math.Exp(d.rate * float64(dt))
	for i := range d.value {
		v := float64(d.velocity[i])
		d.value[i] += S(v * (ekt - 1) / d.rate)
		d.velocity[i] = S(v * ekt)
	}

	if d.OnValueChanged != nil {
		d.OnValueChanged(d.value)
	}

	if d.HasResolved() {
		d.Stop(false)
		if d.OnCompletion != nil {
			d.OnCompletion()
		}
	}
}

// Stop halts ticking and zeroes the velocity. Never fires OnCompletion.
func (d *DecayAnimation[S]) Stop(postValueChanged bool) {
	d.running = false
	d.velocity.Zero()
	if postValueChanged && d.OnValueChanged != nil {
		d.OnValueChanged(d.value)
	}
}
