package booking

import "strings"

// LoadSignal reports process-wide load in [0,1].
type LoadSignal interface {
	Load() float64
}

// Admission turns pickup requests into bookings according to a Policy.
// It holds no mutable state of its own.
type Admission struct {
	policy Policy
	ids    IDGenerator
	clock  Clock
	load   LoadSignal
}

type Option func(*Admission)

func WithIDGenerator(g IDGenerator) Option { return func(a *Admission) { a.ids = g } }

func WithClock(c Clock) Option { return func(a *Admission) { a.clock = c } }

func WithLoadSignal(s LoadSignal) Option { return func(a *Admission) { a.load = s } }

// NewAdmission builds an Admission. A nil policy admits everything.
func NewAdmission(policy Policy, opts ...Option) *Admission {
	a := &Admission{
		policy: policy,
		ids:    &UUIDGenerator{},
		clock:  SystemClock{},
	}
	for _, o := range opts {
		o(a)
	}
	if a.policy == nil {
		a.policy = PolicyFunc(func(Request, float64) Decision { return Accept() })
	}
	return a
}

// RequestBooking validates the pickup location, applies the admission policy
// and on acceptance issues a new Booking. Failures are *Error values.
func (a *Admission) RequestBooking(pickupLocation string) (Booking, error) {
	if strings.TrimSpace(pickupLocation) == "" {
		return Booking{}, invalidRequest("pickup location is required")
	}
	req := Request{PickupLocation: pickupLocation}

	var load float64
	if a.load != nil {
		load = a.load.Load()
	}
	if d := a.policy.Decide(req, load); !d.Accept {
		return Booking{}, unavailable(d.Reason)
	}

	return Booking{
		ID:             a.ids.NewID(),
		PickupLocation: pickupLocation,
		CreatedAt:      a.clock.Now(),
	}, nil
}
