package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_RollingSum(t *testing.T) {
	tests := []struct {
		name   string
		window int
		values []float64
		want   []float64
	}{
		{
			name:   "partial window",
			window: 3,
			values: []float64{1, 2},
			want:   []float64{1, 3},
		},
		{
			name:   "full window slides",
			window: 3,
			values: []float64{1, 2, 3, 4, 5},
			want:   []float64{1, 3, 6, 9, 12},
		},
		{
			name:   "window of one",
			window: 1,
			values: []float64{5, -2, 7},
			want:   []float64{5, -2, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := NewRollingSum(tt.window)
			for i, v := range tt.values {
				got := sum.Update(time.Unix(int64(i), 0), v)
				assert.InDelta(t, tt.want[i], got, 1e-9, "sum after value %d", i)
				assert.Equal(t, got, sum.Last())
			}
			assert.Equal(t, len(tt.values), sum.Samples())
			assert.Equal(t, len(tt.values) >= tt.window, sum.IsReady())
		})
	}
}

func Test_RollingMaxMin(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	wantMax := []float64{3, 3, 4, 4, 5, 9, 9, 9}
	wantMin := []float64{3, 1, 1, 1, 1, 1, 2, 2}

	max := NewRollingMax(3)
	min := NewRollingMin(3)
	for i, v := range values {
		ts := time.Unix(int64(i), 0)
		gotMax := max.Update(ts, v)
		gotMin := min.Update(ts, v)
		assert.Equal(t, wantMax[i], gotMax, "max after value %d", i)
		assert.Equal(t, wantMin[i], gotMin, "min after value %d", i)
	}

	assert.True(t, max.IsReady())
	assert.True(t, min.IsReady())
	assert.Equal(t, len(values), max.Samples())
	assert.Equal(t, len(values), min.Samples())
}

func Test_RollingMax_DuplicateValues(t *testing.T) {
	max := NewRollingMax(2)
	ts := time.Unix(0, 0)
	assert.Equal(t, 7.0, max.Update(ts, 7))
	assert.Equal(t, 7.0, max.Update(ts, 7))
	assert.Equal(t, 7.0, max.Update(ts, 3))
	// both sevens are out of the window now
	assert.Equal(t, 3.0, max.Update(ts, 1))
}

func Test_Rolling_Reset(t *testing.T) {
	sum := NewRollingSum(2)
	max := NewRollingMax(2)

	ts := time.Unix(0, 0)
	sum.Update(ts, 10)
	sum.Update(ts, 20)
	max.Update(ts, 10)
	max.Update(ts, 20)

	sum.Reset()
	max.Reset()

	assert.Equal(t, 0, sum.Samples())
	assert.Equal(t, 0, max.Samples())
	assert.False(t, sum.IsReady())
	assert.False(t, max.IsReady())
	assert.Equal(t, 0.0, sum.Last())
	assert.Equal(t, 0.0, max.Last())

	// a reset window behaves exactly like a fresh one
	assert.Equal(t, 5.0, sum.Update(ts, 5))
	assert.Equal(t, 5.0, max.Update(ts, 5))
}
