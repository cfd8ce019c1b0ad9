package usecases

import "sync/atomic"

// InFlight counts requests currently being admitted. Load is read by a
// request that has already entered, so it reports the other in-flight
// requests as a fraction of capacity: with capacity N, N concurrent requests
// see a load below 1. It satisfies booking.LoadSignal.
type InFlight struct {
	capacity int
	n        atomic.Int64
}

func NewInFlight(capacity int) *InFlight {
	if capacity < 1 {
		capacity = 1
	}
	return &InFlight{capacity: capacity}
}

// Enter marks one request as in flight. Call the returned func when done.
func (f *InFlight) Enter() func() {
	f.n.Add(1)
	return func() { f.n.Add(-1) }
}

func (f *InFlight) Current() int64 { return f.n.Load() }

func (f *InFlight) Load() float64 {
	c := f.capacity
	if c < 1 {
		c = 1
	}
	others := f.n.Load() - 1
	if others < 0 {
		others = 0
	}
	l := float64(others) / float64(c)
	if l > 1 {
		return 1
	}
	return l
}
