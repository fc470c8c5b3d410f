package anim

import (
	"fmt"

	"github.com/automoto/motion/vec"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/exp/constraints"
)

// TweenAnimation interpolates a value over a fixed duration with an easing
// curve, one gween tween per lane. It is the non-physical sibling of the
// spring: motion ends exactly at the duration regardless of where the
// value currently is, which suits choreographed transitions better than
// interactive ones.
type TweenAnimation[S constraints.Float] struct {
	lanes   []*gween.Tween
	value   vec.Vec[S]
	running bool

	OnValueChanged func(vec.Vec[S])
	OnCompletion   func()
}

// NewTweenAnimation builds a stopped tween from one vector to another over
// duration seconds with the given easing function.
func NewTweenAnimation[S constraints.Float](from, to vec.Vec[S], duration float32, easing ease.TweenFunc) *TweenAnimation[S] {
	if len(from) != len(to) {
		panic(fmt.Sprintf("anim: tween width mismatch %d != %d", len(from), len(to)))
	}
	lanes := make([]*gween.Tween, len(from))
	value := from.Clone()
	for i := range lanes {
		lanes[i] = gween.New(float32(from[i]), float32(to[i]), duration, easing)
	}
	return &TweenAnimation[S]{lanes: lanes, value: value}
}

// Value returns the live backing store; callers must treat it as
// read-only.
func (t *TweenAnimation[S]) Value() vec.Vec[S] { return t.value }

func (t *TweenAnimation[S]) Start()        { t.running = true }
func (t *TweenAnimation[S]) Running() bool { return t.running }

// Tick advances every lane by dt seconds. No-op while stopped.
func (t *TweenAnimation[S]) Tick(dt S) {
	if !t.running {
		return
	}

	done := true
	for i, tw := range t.lanes {
		v, finished := tw.Update(float32(dt))
		t.value[i] = S(v)
		done = done && finished
	}

	if t.OnValueChanged != nil {
		t.OnValueChanged(t.value)
	}

	if done {
		t.running = false
		if t.OnCompletion != nil {
			t.OnCompletion()
		}
	}
}

// Stop halts ticking where the value currently is. Never fires
// OnCompletion.
func (t *TweenAnimation[S]) Stop() {
	t.running = false
}
