package types

// Series is the read-only view over a computed float64 series.
// Last(0) is the most recent value, Last(1) the one before it, and so on.
type Series interface {
	Last(i int) float64
	Index(i int) float64
	Length() int
}

func Highest(a Series, lookback int) float64 {
	if lookback > a.Length() {
		lookback = a.Length()
	}
	highest := a.Last(0)
	for i := 1; i < lookback; i++ {
		current := a.Last(i)
		if highest < current {
			highest = current
		}
	}
	return highest
}

func Lowest(a Series, lookback int) float64 {
	if lookback > a.Length() {
		lookback = a.Length()
	}
	lowest := a.Last(0)
	for i := 1; i < lookback; i++ {
		current := a.Last(i)
		if lowest > current {
			lowest = current
		}
	}
	return lowest
}

func Mean(a Series, lookback int) float64 {
	if lookback > a.Length() {
		lookback = a.Length()
	}
	if lookback == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < lookback; i++ {
		sum += a.Last(i)
	}
	return sum / float64(lookback)
}
