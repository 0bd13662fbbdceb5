package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

/*
python:

import pandas as pd
import pandas_ta as ta

data = pd.Series([1, 2, 3, 4, 5, 6, 7, 8, 9, 10])
print(ta.sma(data, 5))
*/
func Test_SMA(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	sma, err := NewSMA(5)
	assert.NoError(t, err)

	var last float64
	for i, v := range values {
		last = sma.Update(time.Unix(int64(i), 0), v)
	}

	assert.InDelta(t, 8.0, last, 1e-9)
	assert.InDelta(t, 8.0, sma.Last(), 1e-9)
	assert.True(t, sma.IsReady())
	assert.Equal(t, len(values), sma.Values.Length())
}

func Test_SMA_PartialWindow(t *testing.T) {
	sma, err := NewSMA(4)
	assert.NoError(t, err)

	assert.InDelta(t, 2.0, sma.Update(time.Unix(0, 0), 2), 1e-9)
	assert.InDelta(t, 3.0, sma.Update(time.Unix(1, 0), 4), 1e-9)
	assert.False(t, sma.IsReady())
}

func Test_SMA_InvalidWindow(t *testing.T) {
	_, err := NewSMA(0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
