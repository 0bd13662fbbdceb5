package indicator

import (
	"errors"
	"time"

	"github.com/stochflow/stochflow/pkg/types"
)

// ErrInvalidWindow is returned when an indicator is constructed with a
// non-positive period.
var ErrInvalidWindow = errors.New("indicator: window periods must be at least 1")

var zeroTime time.Time

/*
stoch implements the slow stochastic oscillator

Stochastic Oscillator
- https://www.investopedia.com/terms/s/stochasticoscillator.asp

The fast %K locates the close inside the rolling high-low range, the slow %K
averages the fast %K over kPeriod bars, and %D averages the slow %K over
dPeriod bars. All three lines are driven incrementally, one bar at a time, on
top of the rolling max/min/sum aggregates.
*/
//go:generate callbackgen -type Stochastic
type Stochastic struct {
	Period  int
	KPeriod int
	DPeriod int

	max *RollingMax
	min *RollingMin

	kSum *RollingSum
	dSum *RollingSum

	FastK *FastStoch
	K     *StochK
	D     *StochD

	EndTime time.Time

	updateCallbacks []func(fastK, k, d float64)
}

// NewStochastic builds the oscillator from the lookback period of the
// high-low range and the two smoothing periods. All three must be at least 1.
func NewStochastic(period, kPeriod, dPeriod int) (*Stochastic, error) {
	if period < 1 || kPeriod < 1 || dPeriod < 1 {
		return nil, ErrInvalidWindow
	}

	max := NewRollingMax(period)
	min := NewRollingMin(period)
	kSum := NewRollingSum(kPeriod)
	dSum := NewRollingSum(dPeriod)

	return &Stochastic{
		Period:  period,
		KPeriod: kPeriod,
		DPeriod: dPeriod,
		max:     max,
		min:     min,
		kSum:    kSum,
		dSum:    dSum,
		FastK:   &FastStoch{period: period, max: max, min: min, kSum: kSum},
		K:       &StochK{period: period, kPeriod: kPeriod, max: max, min: min, kSum: kSum, dSum: dSum},
		D:       &StochD{period: period, kPeriod: kPeriod, dPeriod: dPeriod, max: max, min: min, dSum: dSum},
	}, nil
}

// Update advances the oscillator by one bar and returns the fast %K value.
// The rolling high/low are advanced first, then the three lines in dependency
// order, since each line's output is the next line's input.
func (inc *Stochastic) Update(bar types.Bar) float64 {
	t := bar.EndTime.Time()
	inc.max.Update(t, bar.High)
	inc.min.Update(t, bar.Low)

	fastK := inc.FastK.Update(bar)
	k := inc.K.Update(bar)
	d := inc.D.Update(bar)

	inc.EndTime = t
	inc.EmitUpdate(fastK, k, d)

	return fastK
}

// PushB feeds a closed bar, ignoring bars that do not move time forward.
func (inc *Stochastic) PushB(b types.Bar) {
	if inc.EndTime != zeroTime && !b.EndTime.After(inc.EndTime) {
		return
	}

	inc.Update(b)
}

// IsReady reports whether all three lines have warmed up.
func (inc *Stochastic) IsReady() bool {
	return inc.FastK.IsReady() && inc.K.IsReady() && inc.D.IsReady()
}

// Reset restores the oscillator to its initial state. Replaying the same bar
// sequence afterwards reproduces the exact same outputs.
func (inc *Stochastic) Reset() {
	inc.FastK.Reset()
	inc.K.Reset()
	inc.D.Reset()
	inc.kSum.Reset()
	inc.dSum.Reset()
	inc.EndTime = zeroTime
}

// FastStoch is the raw %K line: the position of the close inside the rolling
// high-low range, scaled to 0..100.
type FastStoch struct {
	period int

	max *RollingMax
	min *RollingMin

	kSum *RollingSum

	value float64
}

func (inc *FastStoch) Update(bar types.Bar) float64 {
	lowest := inc.min.Last()
	highest := inc.max.Last()
	rng := highest - lowest

	var k float64
	if rng <= 0 {
		// a flat (or inverted) window pins the line to zero, even while the
		// range is still warming up
		k = 0
	} else if inc.max.Samples() >= inc.period {
		k = (bar.Close - lowest) / rng
	}

	// the unscaled ratio always enters the smoothing sum, so the zeros seen
	// during warm-up shift the bar at which the slow %K becomes ready
	inc.kSum.Update(bar.EndTime.Time(), k)

	inc.value = k * 100.0
	return inc.value
}

func (inc *FastStoch) Last() float64 {
	return inc.value
}

func (inc *FastStoch) IsReady() bool {
	return inc.max.IsReady()
}

func (inc *FastStoch) Reset() {
	inc.max.Reset()
	inc.min.Reset()
	inc.value = 0
}

// StochK is the slow %K line: the fast %K averaged over kPeriod bars.
type StochK struct {
	period  int
	kPeriod int

	max *RollingMax
	min *RollingMin

	kSum *RollingSum
	dSum *RollingSum

	value float64
}

func (inc *StochK) Update(bar types.Bar) float64 {
	var k float64
	if inc.max.Samples() >= inc.period+inc.kPeriod-1 {
		k = inc.kSum.Last() / float64(inc.kPeriod)
	}

	inc.dSum.Update(bar.EndTime.Time(), k)

	inc.value = k * 100.0
	return inc.value
}

func (inc *StochK) Last() float64 {
	return inc.value
}

func (inc *StochK) IsReady() bool {
	return inc.max.Samples() >= inc.period+inc.kPeriod-1
}

func (inc *StochK) Reset() {
	inc.max.Reset()
	inc.min.Reset()
	inc.value = 0
}

// StochD is the %D line: the slow %K averaged over dPeriod bars. It reads no
// bar fields, it is driven purely by the accumulated state.
type StochD struct {
	period  int
	kPeriod int
	dPeriod int

	max *RollingMax
	min *RollingMin

	dSum *RollingSum

	value float64
}

func (inc *StochD) Update(_ types.Bar) float64 {
	var d float64
	if inc.max.Samples() >= inc.period+inc.kPeriod+inc.dPeriod-2 {
		d = inc.dSum.Last() / float64(inc.dPeriod)
	}

	inc.value = d * 100.0
	return inc.value
}

func (inc *StochD) Last() float64 {
	return inc.value
}

func (inc *StochD) IsReady() bool {
	return inc.max.Samples() >= inc.period+inc.kPeriod+inc.dPeriod-2
}

func (inc *StochD) Reset() {
	inc.max.Reset()
	inc.min.Reset()
	inc.value = 0
}
