package output

import "time"

// Timer measures how long an operation took.
type Timer struct {
	label string
	start time.Time
	now   func() time.Time
}

// StartTimer starts a timer for label.
func StartTimer(label string) *Timer {
	return &Timer{label: label, start: time.Now(), now: time.Now}
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Stop logs the elapsed time at debug level and returns it.
func (t *Timer) Stop() time.Duration {
	d := t.Elapsed()
	Debug("done", "op", t.label, "elapsed", d.Round(time.Millisecond))
	return d
}
