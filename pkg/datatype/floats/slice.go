package floats

import (
	"math"
)

type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Slice) Max() float64 {
	m := -math.MaxFloat64
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

func (s Slice) Min() float64 {
	m := math.MaxFloat64
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

func (s Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Slice) Mean() (mean float64) {
	length := len(s)
	if length == 0 {
		return 0
	}
	return s.Sum() / float64(length)
}

// Tail returns the last size elements as a copy.
func (s Slice) Tail(size int) Slice {
	length := len(s)
	if length <= size {
		win := make(Slice, length)
		copy(win, s)
		return win
	}

	win := make(Slice, size)
	copy(win, s[length-size:])
	return win
}

// Truncate drops the front of the slice, keeping at most size elements.
func (s Slice) Truncate(size int) Slice {
	if size < 0 || len(s) <= size {
		return s
	}

	return s[len(s)-size:]
}

func (s Slice) Last(i int) float64 {
	length := len(s)
	if i < 0 || length-1-i < 0 {
		return 0.0
	}
	return s[length-1-i]
}

func (s Slice) Index(i int) float64 {
	return s.Last(i)
}

func (s Slice) Length() int {
	return len(s)
}

func (s Slice) Add(b Slice) (c Slice) {
	for i, v := range s {
		c = append(c, v+b[i])
	}
	return c
}

func (s Slice) Sub(b Slice) (c Slice) {
	for i, v := range s {
		c = append(c, v-b[i])
	}
	return c
}
