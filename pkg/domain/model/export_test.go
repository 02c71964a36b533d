package model

import "time"

// SetNow replaces the clock used for attachment timestamps
func SetNow(f func() time.Time) func() {
	prev := now
	now = f
	return func() { now = prev }
}
