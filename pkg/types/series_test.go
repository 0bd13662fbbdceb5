package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stochflow/stochflow/pkg/datatype/floats"
)

func TestSeriesHelpers(t *testing.T) {
	var s Series = floats.New(1, 5, 2, 8, 3)

	assert.Equal(t, 8.0, Highest(s, 3))
	assert.Equal(t, 2.0, Lowest(s, 3))
	assert.InDelta(t, 13.0/3.0, Mean(s, 3), 1e-9)

	// lookback longer than the series falls back to the full series
	assert.Equal(t, 8.0, Highest(s, 100))
	assert.Equal(t, 1.0, Lowest(s, 100))
}

func TestMeanEmptySeries(t *testing.T) {
	var s Series = floats.New()
	assert.Equal(t, 0.0, Mean(s, 5))
}
