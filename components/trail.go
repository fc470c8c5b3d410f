package components

import "github.com/yohamta/donburi"

type TrailPoint struct {
	X, Y float64
}

// TrailData keeps the last positions of a follower for the fading motion
// trail. Points is a bounded FIFO; index 0 is the oldest sample.
type TrailData struct {
	Points []TrailPoint
	Max    int
}

func (t *TrailData) Push(x, y float64) {
	if len(t.Points) >= t.Max {
		copy(t.Points, t.Points[1:])
		t.Points = t.Points[:len(t.Points)-1]
	}
	t.Points = append(t.Points, TrailPoint{X: x, Y: y})
}

var Trail = donburi.NewComponentType[TrailData]()
