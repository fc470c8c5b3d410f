package anim

import (
	"math"
	"testing"

	"github.com/automoto/motion/vec"
)

func TestConfigureConversionRoundTrip(t *testing.T) {
	s := NewSpring[float64](1, 1) // placeholder, reconfigured below

	stiffness, damping := 200.0, 20.0
	s.ConfigureStiffnessDamping(stiffness, damping)

	if got := float64(s.Stiffness()); math.Abs(got-stiffness) > 1e-9 {
		t.Fatalf("Stiffness() = %v, want %v", got, stiffness)
	}
	if got := float64(s.Damping()); math.Abs(got-damping) > 1e-9 {
		t.Fatalf("Damping() = %v, want %v", got, damping)
	}

	// ω₀ = √stiffness, response = 2π/ω₀, ζ = damping/(2ω₀)
	w0 := math.Sqrt(stiffness)
	if got := float64(s.Response()); math.Abs(got-2*math.Pi/w0) > 1e-9 {
		t.Fatalf("Response() = %v, want %v", got, 2*math.Pi/w0)
	}
	if got := float64(s.DampingRatio()); math.Abs(got-damping/(2*w0)) > 1e-9 {
		t.Fatalf("DampingRatio() = %v, want %v", got, damping/(2*w0))
	}
}

func TestConfigureRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"zero response", func() { NewSpring[float64](0, 1) }},
		{"negative response", func() { NewSpring[float64](-0.5, 1) }},
		{"negative damping ratio", func() { NewSpring[float64](0.5, -0.1) }},
		{"zero stiffness", func() { NewSpring[float64](0.5, 1).ConfigureStiffnessDamping(0, 1) }},
		{"negative damping", func() { NewSpring[float64](0.5, 1).ConfigureStiffnessDamping(100, -1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("configure did not panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestSolveRegimeContinuityAcrossCriticalDamping(t *testing.T) {
	const dt = 1.0 / 60

	solveOnce := func(ratio float64) float64 {
		s := NewSpring[float64](0.5, ratio)
		x0 := vec.Of(100.0)
		v := vec.Of(0.0)
		return s.Solve(dt, x0, v)[0]
	}

	below := solveOnce(1 - 1e-3)
	at := solveOnce(1)
	above := solveOnce(1 + 1e-3)

	if d := math.Abs(below - at); d > 0.05 {
		t.Fatalf("|x(ζ=0.999) - x(ζ=1)| = %v, want < 0.05", d)
	}
	if d := math.Abs(above - at); d > 0.05 {
		t.Fatalf("|x(ζ=1.001) - x(ζ=1)| = %v, want < 0.05", d)
	}

	// Right at the routing boundary the branch switch must not jump.
	inner := solveOnce(1 - 2e-5)
	outer := solveOnce(1 - 0.5e-5)
	if d := math.Abs(inner - outer); d > 1e-3 {
		t.Fatalf("branch boundary jump = %v, want < 1e-3", d)
	}
}

func TestSolveLargeDtMatchesAccumulatedSmallSteps(t *testing.T) {
	// The flow of a linear ODE composes: many exact small steps must land
	// on the same state as one exact large step, up to float rounding.
	tests := []struct {
		name         string
		response     float64
		dampingRatio float64
	}{
		{"critical", 0.5, 1},
		{"underdamped", 0.5, 0.3},
		{"overdamped", 0.5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpring[float64](tt.response, tt.dampingRatio)

			const total = 10.0
			const steps = 1000

			bigX := vec.Of(100.0, -40.0)
			bigV := vec.Of(0.0, 25.0)
			s.Solve(total, bigX, bigV)

			smallX := vec.Of(100.0, -40.0)
			smallV := vec.Of(0.0, 25.0)
			for i := 0; i < steps; i++ {
				s.Solve(total/steps, smallX, smallV)
			}

			if !bigX.IsFinite() || !bigV.IsFinite() {
				t.Fatalf("Solve(dt=10) produced non-finite state: x=%v v=%v", bigX, bigV)
			}
			if !bigX.ApproxEqual(smallX, 1e-9) {
				t.Fatalf("one step = %v, accumulated = %v", bigX, smallX)
			}
			if !bigV.ApproxEqual(smallV, 1e-9) {
				t.Fatalf("one-step velocity = %v, accumulated = %v", bigV, smallV)
			}
		})
	}
}

func TestSolveZeroDtIsIdentity(t *testing.T) {
	s := NewSpring[float64](0.5, 0.3)
	x0 := vec.Of(42.0)
	v := vec.Of(-7.0)
	s.Solve(0, x0, v)

	if x0[0] != 42 || v[0] != -7 {
		t.Fatalf("Solve(0) = x %v v %v, want unchanged", x0[0], v[0])
	}
}

func TestSolveLanesAreIndependent(t *testing.T) {
	s := NewSpring[float64](0.4, 0.6)

	wide := vec.Of(10.0, -3.0, 0.5)
	wideV := vec.Of(1.0, 0.0, -2.0)
	s.Solve(0.1, wide, wideV)

	for i, start := range []float64{10, -3, 0.5} {
		x := vec.Of(start)
		v := vec.Of([]float64{1, 0, -2}[i])
		s.Solve(0.1, x, v)
		if x[0] != wide[i] || v[0] != wideV[i] {
			t.Fatalf("lane %d diverged from scalar solve: got (%v, %v), want (%v, %v)",
				i, wide[i], wideV[i], x[0], v[0])
		}
	}
}
