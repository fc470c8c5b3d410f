package anim

import "golang.org/x/exp/constraints"

// Animator fans one clock tick out to a set of animations and drops the
// ones that have stopped. It does no scheduling of its own: whoever owns
// the frame loop calls Tick once per frame with the elapsed seconds.
type Animator[S constraints.Float] struct {
	animations []Animation[S]
}

// Add registers an animation. Start it first: stopped animations are
// compacted out on the next tick. The same animation may be re-added after
// it resolves; duplicates tick twice per frame, so callers avoid them.
func (an *Animator[S]) Add(a Animation[S]) {
	an.animations = append(an.animations, a)
}

// Tick advances every running animation and compacts out stopped ones.
// Completion callbacks may Add new animations mid-tick (chained
// hand-offs); those are not ticked this frame but survive into the next.
func (an *Animator[S]) Tick(dt S) {
	n := len(an.animations)
	for i := 0; i < n; i++ {
		an.animations[i].Tick(dt)
	}
	// Compact only after the whole pass: a callback's Add may have
	// appended to the list, possibly reallocating it.
	kept := an.animations[:0]
	for _, a := range an.animations {
		if a.Running() {
			kept = append(kept, a)
		}
	}
	// Release dropped tails so completed animations can be collected.
	for i := len(kept); i < len(an.animations); i++ {
		an.animations[i] = nil
	}
	an.animations = kept
}

// Len reports how many animations are still registered.
func (an *Animator[S]) Len() int {
	return len(an.animations)
}
