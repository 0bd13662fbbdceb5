package types

import (
	"fmt"
	"time"
)

// Bar is a single OHLCV sample produced by an external feed. Bars are treated
// as immutable by every consumer in this repository.
type Bar struct {
	Symbol string `json:"symbol"`

	StartTime Time `json:"startTime"`
	EndTime   Time `json:"endTime"`

	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

func (b Bar) Mid() float64 {
	return (b.High + b.Low) / 2
}

// Range is the high-low spread of the bar itself.
func (b Bar) Range() float64 {
	return b.High - b.Low
}

func (b Bar) String() string {
	return fmt.Sprintf("%s %s O: %.6f H: %.6f L: %.6f C: %.6f V: %.4f",
		b.Symbol,
		b.StartTime.Time().Format(time.RFC3339),
		b.Open, b.High, b.Low, b.Close, b.Volume)
}
