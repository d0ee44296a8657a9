package ingest

import "sync/atomic"

// Interrupt reports whether a cooperative stop has been requested.
// The writer polls it between batches only; an in-flight batch is never
// abandoned mid-upsert.
type Interrupt interface {
	Interrupted() bool
}

// Flag is a set-once Interrupt safe to trip from a signal handler.
type Flag struct {
	set atomic.Bool
}

var _ Interrupt = (*Flag)(nil)

// Set requests a stop. Idempotent.
func (f *Flag) Set() {
	f.set.Store(true)
}

// Interrupted reports whether Set has been called.
func (f *Flag) Interrupted() bool {
	return f.set.Load()
}
