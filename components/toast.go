package components

import (
	"github.com/automoto/motion/anim"
	"github.com/yohamta/donburi"
)

// ToastData is a transient banner that slides in from the top edge with a
// tween and despawns after its hold time.
type ToastData struct {
	Slide      *anim.TweenAnimation[float64] // one lane: the banner's Y
	Text       string
	HoldFrames int // despawn countdown, starts once the slide completes
}

var Toast = donburi.NewComponentType[ToastData]()
