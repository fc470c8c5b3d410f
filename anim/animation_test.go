package anim

import (
	"math"
	"testing"

	"github.com/automoto/motion/vec"
)

const frame = 1.0 / 60

// runUntilResolved ticks at 60fps and fails the test if the animation
// never settles within the simulated budget.
func runUntilResolved(t *testing.T, a *SpringAnimation[float64], maxSeconds float64) int {
	t.Helper()
	steps := int(maxSeconds / frame)
	for i := 0; i < steps; i++ {
		a.Tick(frame)
		if !a.Running() {
			return i + 1
		}
	}
	t.Fatalf("animation did not resolve within %v simulated seconds", maxSeconds)
	return 0
}

func TestConvergenceAcrossParameterGrid(t *testing.T) {
	responses := []float64{0.2, 0.5, 1.0}
	ratios := []float64{0.3, 1.0, 2.0}

	for _, response := range responses {
		for _, ratio := range ratios {
			a := NewSpringAnimation(vec.Of(0.0, -20.0))
			a.Configure(response, ratio)
			a.SetToValue(vec.Of(100.0, 60.0))
			a.SetVelocity(vec.Of(300.0, -50.0))
			a.Start()

			runUntilResolved(t, a, 30)

			if !a.Value().ApproxEqual(a.ToValue(), 0) {
				t.Fatalf("response=%v ratio=%v: value = %v after resolution, want exact %v",
					response, ratio, a.Value(), a.ToValue())
			}
		}
	}
}

func TestVelocitySignConventionRoundTrip(t *testing.T) {
	a := NewSpringAnimation(vec.Of(0.0, 0.0))
	a.SetVelocity(vec.Of(3.0, -4.0))

	got := a.Velocity()
	if got[0] != 3 || got[1] != -4 {
		t.Fatalf("Velocity() = %v, want [3 -4]", got)
	}
	// Stored form is the negation: the solver works in displacement space.
	if a.velocity[0] != -3 || a.velocity[1] != 4 {
		t.Fatalf("stored velocity = %v, want [-3 4]", a.velocity)
	}
}

func TestCriticallyDampedNeverOvershoots(t *testing.T) {
	a := NewSpringAnimation(vec.Of(0.0))
	a.Configure(0.5, 1)
	a.SetToValue(vec.Of(100.0))
	a.Start()

	prev := 0.0
	for i := 0; a.Running() && i < 60*30; i++ {
		a.Tick(frame)
		v := a.Value()[0]
		if v > 100 {
			t.Fatalf("critically damped value %v exceeded target 100", v)
		}
		if v < prev-resolutionEpsilon {
			t.Fatalf("critically damped value moved backward: %v after %v", v, prev)
		}
		prev = v
	}
	if a.Running() {
		t.Fatalf("critically damped animation did not resolve")
	}
}

func TestUnderdampedOvershoots(t *testing.T) {
	a := NewSpringAnimation(vec.Of(0.0))
	a.Configure(0.5, 0.3)
	a.SetToValue(vec.Of(100.0))
	a.Start()

	overshot := false
	for i := 0; a.Running() && i < 60*30; i++ {
		a.Tick(frame)
		if a.Value()[0] > 100 {
			overshot = true
		}
	}
	if a.Running() {
		t.Fatalf("underdamped animation did not resolve")
	}
	if !overshot {
		t.Fatalf("damping ratio 0.3 never exceeded the target")
	}
}

func TestClampingAppliedAfterStep(t *testing.T) {
	a := NewSpringAnimation(vec.Of(0.0))
	a.Configure(0.5, 0.2) // bouncy, would overshoot well past 100
	a.SetToValue(vec.Of(100.0))
	a.SetClampingRange(vec.Of(0.0), vec.Of(100.0))
	a.Start()

	for i := 0; a.Running() && i < 60*30; i++ {
		a.Tick(frame)
		v := a.Value()[0]
		if v < 0 || v > 100 {
			t.Fatalf("clamped value %v escaped [0, 100]", v)
		}
	}
}

func TestRedirectionMatchesFreshAnimation(t *testing.T) {
	a := NewSpringAnimation(vec.Of(0.0))
	a.Configure(0.5, 1)
	a.SetToValue(vec.Of(100.0))
	a.Start()
	for i := 0; i < 10; i++ {
		a.Tick(frame)
	}

	a.Stop(false, false)
	position := a.Value().Clone()
	a.SetToValue(vec.Of(50.0))
	a.SetVelocity(vec.Of(-120.0))
	a.Start()

	fresh := NewSpringAnimation(position)
	fresh.Configure(0.5, 1)
	fresh.SetToValue(vec.Of(50.0))
	fresh.SetVelocity(vec.Of(-120.0))
	fresh.Start()

	for i := 0; i < 120; i++ {
		a.Tick(frame)
		fresh.Tick(frame)
		if d := math.Abs(a.Value()[0] - fresh.Value()[0]); d > 1e-12 {
			t.Fatalf("tick %d: redirected = %v, fresh = %v", i, a.Value()[0], fresh.Value()[0])
		}
	}
}

func TestCallbacksOnNaturalResolution(t *testing.T) {
	a := NewSpringAnimation(vec.Of(0.0))
	a.SetToValue(vec.Of(10.0))

	var changed, completed int
	var lastReported float64
	a.OnValueChanged = func(v vec.Vec[float64]) {
		changed++
		lastReported = v[0]
	}
	a.OnCompletion = func() { completed++ }

	a.Start()
	ticks := runUntilResolved(t, a, 30)

	if completed != 1 {
		t.Fatalf("OnCompletion fired %d times, want 1", completed)
	}
	// Every tick reports once, plus the exact-value report on resolution.
	if changed != ticks+1 {
		t.Fatalf("OnValueChanged fired %d times over %d ticks, want %d", changed, ticks, ticks+1)
	}
	if lastReported != 10 {
		t.Fatalf("final reported value = %v, want exact 10", lastReported)
	}
}

func TestStopDoesNotFireCompletion(t *testing.T) {
	a := NewSpringAnimation(vec.Of(0.0))
	a.SetToValue(vec.Of(100.0))

	completed := 0
	a.OnCompletion = func() { completed++ }

	a.Start()
	a.Tick(frame)
	a.Stop(false, false)

	if completed != 0 {
		t.Fatalf("Stop() fired OnCompletion %d times, want 0", completed)
	}
	if a.Running() {
		t.Fatalf("Running() = true after Stop()")
	}
	if got := a.Velocity(); !got.ApproxZero(0) {
		t.Fatalf("Velocity() = %v after Stop(), want zero", got)
	}
}

func TestStopResolveImmediatelySnapsToTarget(t *testing.T) {
	a := NewSpringAnimation(vec.Of(0.0))
	a.SetToValue(vec.Of(100.0))
	a.Start()
	a.Tick(frame)

	fired := 0
	a.OnValueChanged = func(vec.Vec[float64]) { fired++ }
	a.Stop(true, true)

	if got := a.Value()[0]; got != 100 {
		t.Fatalf("Value() = %v after skip-to-end stop, want 100", got)
	}
	if fired != 1 {
		t.Fatalf("OnValueChanged fired %d times during stop, want 1", fired)
	}
}

func TestTickWhileStoppedIsNoOp(t *testing.T) {
	a := NewSpringAnimation(vec.Of(5.0))
	a.SetToValue(vec.Of(100.0))

	a.Tick(frame)
	if got := a.Value()[0]; got != 5 {
		t.Fatalf("Value() = %v after tick while stopped, want 5", got)
	}
}

func TestReconfigureMidFlightKeepsState(t *testing.T) {
	a := NewSpringAnimation(vec.Of(0.0))
	a.Configure(0.5, 0.3)
	a.SetToValue(vec.Of(100.0))
	a.Start()
	for i := 0; i < 20; i++ {
		a.Tick(frame)
	}

	value := a.Value()[0]
	velocity := a.Velocity()[0]
	a.Configure(1.0, 1.0)

	if a.Value()[0] != value || a.Velocity()[0] != velocity {
		t.Fatalf("Configure() disturbed state: value %v velocity %v", a.Value()[0], a.Velocity()[0])
	}

	runUntilResolved(t, a, 30)
}

func TestSetClampingRangeNormalizesCorners(t *testing.T) {
	a := NewSpringAnimation(vec.Of(0.0, 0.0))
	a.SetClampingRange(vec.Of(100.0, -10.0), vec.Of(0.0, 10.0))

	r := a.ClampingRange()
	if r == nil {
		t.Fatalf("ClampingRange() = nil after set")
	}
	if r.Lower[0] != 0 || r.Upper[0] != 100 {
		t.Fatalf("range lane 0 = [%v, %v], want [0, 100]", r.Lower[0], r.Upper[0])
	}

	a.ClearClampingRange()
	if a.ClampingRange() != nil {
		t.Fatalf("ClampingRange() != nil after clear")
	}
}
