package indicator

import (
	"time"

	"github.com/stochflow/stochflow/pkg/datatype/floats"
	"github.com/stochflow/stochflow/pkg/types"
)

const MaxNumOfSMA = 5_000

// SMA is a simple moving average over the close price, built on the same
// rolling sum the oscillator smoothing uses.
type SMA struct {
	Window int
	Values floats.Slice

	sum *RollingSum

	EndTime time.Time
}

func NewSMA(window int) (*SMA, error) {
	if window < 1 {
		return nil, ErrInvalidWindow
	}

	return &SMA{
		Window: window,
		sum:    NewRollingSum(window),
	}, nil
}

func (inc *SMA) Update(t time.Time, v float64) float64 {
	sum := inc.sum.Update(t, v)

	n := inc.sum.Samples()
	if n > inc.Window {
		n = inc.Window
	}

	sma := sum / float64(n)
	inc.Values.Push(sma)
	inc.Values = inc.Values.Truncate(MaxNumOfSMA)
	inc.EndTime = t

	return sma
}

func (inc *SMA) PushB(b types.Bar) {
	if inc.EndTime != zeroTime && !b.EndTime.After(inc.EndTime) {
		return
	}

	inc.Update(b.EndTime.Time(), b.Close)
}

func (inc *SMA) Last() float64 {
	return inc.Values.Last(0)
}

func (inc *SMA) IsReady() bool {
	return inc.sum.IsReady()
}

func (inc *SMA) Samples() int {
	return inc.sum.Samples()
}

func (inc *SMA) Reset() {
	inc.sum.Reset()
	inc.Values = nil
	inc.EndTime = zeroTime
}
