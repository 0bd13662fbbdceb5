package indicator

import (
	"time"
)

// RollingMin maintains the minimum of the most recent window values. Same
// monotonic deque scheme as RollingMax with the comparison flipped.
type RollingMin struct {
	window int

	seq    []int
	deque  []float64
	sample int

	EndTime time.Time
}

func NewRollingMin(window int) *RollingMin {
	return &RollingMin{
		window: window,
	}
}

// Update pushes a new value and returns the minimum of the last window values.
func (inc *RollingMin) Update(t time.Time, v float64) float64 {
	i := inc.sample
	inc.sample++
	inc.EndTime = t

	for len(inc.seq) > 0 && inc.seq[0] <= i-inc.window {
		inc.seq = inc.seq[1:]
		inc.deque = inc.deque[1:]
	}

	for len(inc.deque) > 0 && inc.deque[len(inc.deque)-1] >= v {
		inc.seq = inc.seq[:len(inc.seq)-1]
		inc.deque = inc.deque[:len(inc.deque)-1]
	}

	inc.seq = append(inc.seq, i)
	inc.deque = append(inc.deque, v)

	return inc.deque[0]
}

func (inc *RollingMin) Last() float64 {
	if len(inc.deque) == 0 {
		return 0.0
	}
	return inc.deque[0]
}

func (inc *RollingMin) IsReady() bool {
	return inc.sample >= inc.window
}

func (inc *RollingMin) Samples() int {
	return inc.sample
}

func (inc *RollingMin) Reset() {
	inc.seq = nil
	inc.deque = nil
	inc.sample = 0
	inc.EndTime = time.Time{}
}
