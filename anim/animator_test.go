package anim

import (
	"testing"

	"github.com/automoto/motion/vec"
)

func TestAnimatorDropsResolvedAnimations(t *testing.T) {
	var an Animator[float64]

	quick := NewSpringAnimation(vec.Of(0.0))
	quick.Configure(0.1, 1) // settles fast
	quick.SetToValue(vec.Of(1.0))
	quick.Start()

	slow := NewSpringAnimation(vec.Of(0.0))
	slow.Configure(2, 1)
	slow.SetToValue(vec.Of(100.0))
	slow.Start()

	an.Add(quick)
	an.Add(slow)
	if an.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", an.Len())
	}

	for i := 0; i < 60*2 && an.Len() > 1; i++ {
		an.Tick(frame)
	}
	if an.Len() != 1 {
		t.Fatalf("Len() = %d after quick spring settled, want 1", an.Len())
	}
	if quick.Running() {
		t.Fatalf("quick spring still running")
	}
	if !slow.Running() {
		t.Fatalf("slow spring stopped early")
	}
}

func TestAnimatorKeepsAnimationAddedDuringTick(t *testing.T) {
	var an Animator[float64]

	// Decay hands off to a spring aimed at its projected rest point the
	// moment it resolves, from inside its own completion callback.
	decay := NewDecayAnimation(vec.Of(0.0))
	decay.SetVelocity(vec.Of(100.0))
	decay.Start()

	var spring *SpringAnimation[float64]
	decay.OnCompletion = func() {
		spring = NewSpringAnimation(decay.Value())
		spring.SetToValue(decay.Destination())
		spring.Start()
		an.Add(spring)
	}
	an.Add(decay)

	for i := 0; i < 60*30 && decay.Running(); i++ {
		an.Tick(frame)
	}
	if decay.Running() {
		t.Fatalf("decay did not resolve")
	}
	if spring == nil {
		t.Fatalf("completion callback never fired")
	}
	if an.Len() != 1 {
		t.Fatalf("Len() = %d after mid-tick hand-off, want 1", an.Len())
	}

	for i := 0; i < 60*30 && spring.Running(); i++ {
		an.Tick(frame)
	}
	if spring.Running() {
		t.Fatalf("handed-off spring never resolved")
	}
	if an.Len() != 0 {
		t.Fatalf("Len() = %d after hand-off resolved, want 0", an.Len())
	}
}

func TestAnimatorTicksMixedAnimationKinds(t *testing.T) {
	var an Animator[float64]

	spring := NewSpringAnimation(vec.Of(0.0))
	spring.SetToValue(vec.Of(10.0))
	spring.Start()

	decay := NewDecayAnimation(vec.Of(0.0))
	decay.SetVelocity(vec.Of(100.0))
	decay.Start()

	an.Add(spring)
	an.Add(decay)

	for i := 0; i < 60*30 && an.Len() > 0; i++ {
		an.Tick(frame)
	}
	if an.Len() != 0 {
		t.Fatalf("Len() = %d after both resolved, want 0", an.Len())
	}
}
