package timeutils

import "time"

// Clock returns the current instant. Tests substitute a fixed clock.
type Clock func() time.Time

// OperatorClock returns time.Now converted to OperatorZone.
func OperatorClock() Clock {
	return func() time.Time {
		return time.Now().In(OperatorZone)
	}
}

// FixedClock always returns t converted to OperatorZone.
func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t.In(OperatorZone)
	}
}

// InOperatorZone converts t to OperatorZone.
func InOperatorZone(t time.Time) time.Time {
	return t.In(OperatorZone)
}
