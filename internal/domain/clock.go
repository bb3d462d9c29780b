package domain

import "time"

// Clock abstracts wall-clock time so age calculations are deterministic
// under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func SystemClock() Clock { return systemClock{} }
