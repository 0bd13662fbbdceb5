package indicator

import (
	"time"
)

// RollingMax maintains the maximum of the most recent window values. A
// monotonic deque of (sequence, value) pairs gives amortized O(1) updates:
// the front always holds the maximum of the current window.
type RollingMax struct {
	window int

	seq    []int
	deque  []float64
	sample int

	EndTime time.Time
}

func NewRollingMax(window int) *RollingMax {
	return &RollingMax{
		window: window,
	}
}

// Update pushes a new value and returns the maximum of the last window values.
func (inc *RollingMax) Update(t time.Time, v float64) float64 {
	i := inc.sample
	inc.sample++
	inc.EndTime = t

	// drop entries that fell out of the window
	for len(inc.seq) > 0 && inc.seq[0] <= i-inc.window {
		inc.seq = inc.seq[1:]
		inc.deque = inc.deque[1:]
	}

	// drop entries dominated by the new value
	for len(inc.deque) > 0 && inc.deque[len(inc.deque)-1] <= v {
		inc.seq = inc.seq[:len(inc.seq)-1]
		inc.deque = inc.deque[:len(inc.deque)-1]
	}

	inc.seq = append(inc.seq, i)
	inc.deque = append(inc.deque, v)

	return inc.deque[0]
}

func (inc *RollingMax) Last() float64 {
	if len(inc.deque) == 0 {
		return 0.0
	}
	return inc.deque[0]
}

func (inc *RollingMax) IsReady() bool {
	return inc.sample >= inc.window
}

func (inc *RollingMax) Samples() int {
	return inc.sample
}

func (inc *RollingMax) Reset() {
	inc.seq = nil
	inc.deque = nil
	inc.sample = 0
	inc.EndTime = time.Time{}
}
