package indicator

import (
	"time"
)

// RollingSum maintains the sum of the most recent window values pushed into
// it. A fixed-size ring buffer keeps the update cost constant regardless of
// how many samples have been seen.
type RollingSum struct {
	window int

	values  []float64
	head    int
	samples int
	sum     float64

	EndTime time.Time
}

func NewRollingSum(window int) *RollingSum {
	return &RollingSum{
		window: window,
		values: make([]float64, window),
	}
}

// Update pushes a new value and returns the sum of the last window values.
// Once the buffer is full, the slot being overwritten leaves the sum first.
func (inc *RollingSum) Update(t time.Time, v float64) float64 {
	if inc.samples >= inc.window {
		inc.sum -= inc.values[inc.head]
	}

	inc.values[inc.head] = v
	inc.head = (inc.head + 1) % inc.window
	inc.samples++
	inc.sum += v
	inc.EndTime = t

	return inc.sum
}

func (inc *RollingSum) Last() float64 {
	return inc.sum
}

func (inc *RollingSum) IsReady() bool {
	return inc.samples >= inc.window
}

// Samples counts every update since the last reset, it is not capped at the
// window size.
func (inc *RollingSum) Samples() int {
	return inc.samples
}

func (inc *RollingSum) Reset() {
	for i := range inc.values {
		inc.values[i] = 0
	}
	inc.head = 0
	inc.samples = 0
	inc.sum = 0
	inc.EndTime = time.Time{}
}
