package types

import (
	"time"
)

// Time wraps time.Time so that bar timestamps marshal the same way across
// JSON feeds and CSV imports.
type Time time.Time

func (t *Time) UnmarshalJSON(data []byte) error {
	// fallback to RFC3339
	return (*time.Time)(t).UnmarshalJSON(data)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return time.Time(t).MarshalJSON()
}

func (t Time) String() string {
	return time.Time(t).String()
}

func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Time) After(t2 time.Time) bool {
	return time.Time(t).After(t2)
}

func (t Time) Before(t2 time.Time) bool {
	return time.Time(t).Before(t2)
}

func NewTimeFromUnix(sec int64, nsec int64) Time {
	return Time(time.Unix(sec, nsec))
}
