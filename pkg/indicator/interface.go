package indicator

import (
	"time"

	"github.com/stochflow/stochflow/pkg/types"
)

// BarPusher provides an interface for the API user to push a closed bar to
// the indicator. The indicator implements its own way to calculate the value
// from the given bar object.
type BarPusher interface {
	PushB(b types.Bar)
}

// Stage is a single derived calculation driven once per bar. A stage caches
// its latest scalar value and knows when enough samples have accumulated for
// that value to be meaningful.
type Stage interface {
	Update(b types.Bar) float64
	Last() float64
	IsReady() bool
	Reset()
}

// RollingWindow is the contract shared by the rolling aggregates
// (RollingMax, RollingMin, RollingSum).
type RollingWindow interface {
	Update(t time.Time, v float64) float64
	Last() float64
	IsReady() bool
	Samples() int
	Reset()
}

var (
	_ RollingWindow = (*RollingMax)(nil)
	_ RollingWindow = (*RollingMin)(nil)
	_ RollingWindow = (*RollingSum)(nil)

	_ Stage = (*FastStoch)(nil)
	_ Stage = (*StochK)(nil)
	_ Stage = (*StochD)(nil)

	_ BarPusher = (*Stochastic)(nil)
	_ BarPusher = (*SMA)(nil)
)
