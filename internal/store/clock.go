package store

import "time"

// Clock supplies the current time so the past-date guard and the summary
// watermark are testable without the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }
