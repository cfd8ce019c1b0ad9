package booking

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultRejectProbability = 0.3
	DefaultRejectReason      = "Cab unavailable"
)

// Policy decides whether a request is admitted. load is the current
// process-wide load in [0,1], or 0 when no signal is configured.
// Implementations must be safe for concurrent use.
type Policy interface {
	Decide(req Request, load float64) Decision
}

type PolicyFunc func(req Request, load float64) Decision

func (f PolicyFunc) Decide(req Request, load float64) Decision { return f(req, load) }

// ProbabilityPolicy rejects a fixed fraction of requests at random.
type ProbabilityPolicy struct {
	p   float64
	src RandomSource
}

func NewProbabilityPolicy(p float64, src RandomSource) (*ProbabilityPolicy, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("reject probability must be in [0,1] (got %v)", p)
	}
	if src == nil {
		src = GlobalSource{}
	}
	return &ProbabilityPolicy{p: p, src: src}, nil
}

func (p *ProbabilityPolicy) Probability() float64 { return p.p }

func (p *ProbabilityPolicy) Decide(Request, float64) Decision {
	// Float64 is in [0,1): p=0 never rejects, p=1 always does.
	if p.src.Float64() < p.p {
		return Reject(DefaultRejectReason)
	}
	return Accept()
}

// FleetPolicy models a fleet of cabs that frees up at a steady rate. Each
// admitted request takes one cab; when none are left the request is rejected.
type FleetPolicy struct {
	limiter *rate.Limiter
	clock   Clock
}

func NewFleetPolicy(cabsPerMinute float64, burst int, clock Clock) (*FleetPolicy, error) {
	if cabsPerMinute <= 0 || math.IsInf(cabsPerMinute, 0) || math.IsNaN(cabsPerMinute) {
		return nil, fmt.Errorf("fleet cabs per minute must be > 0 (got %v)", cabsPerMinute)
	}
	if burst < 1 {
		return nil, fmt.Errorf("fleet burst must be >= 1 (got %d)", burst)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	every := time.Duration(float64(time.Minute) / cabsPerMinute)
	return &FleetPolicy{limiter: rate.NewLimiter(rate.Every(every), burst), clock: clock}, nil
}

func (f *FleetPolicy) Decide(Request, float64) Decision {
	if f.limiter.AllowN(f.clock.Now(), 1) {
		return Accept()
	}
	return Reject("no cabs available")
}

// LoadPolicy sheds requests once the load signal reaches Max.
type LoadPolicy struct {
	Max float64
}

func NewLoadPolicy(threshold float64) (LoadPolicy, error) {
	if math.IsNaN(threshold) || threshold <= 0 || threshold > 1 {
		return LoadPolicy{}, fmt.Errorf("max load must be in (0,1] (got %v)", threshold)
	}
	return LoadPolicy{Max: threshold}, nil
}

func (l LoadPolicy) Decide(_ Request, load float64) Decision {
	if load >= l.Max {
		return Reject("service overloaded")
	}
	return Accept()
}

// All admits a request only if every policy does. Policies run in order and
// the first rejection is returned.
func All(policies ...Policy) Policy {
	return PolicyFunc(func(req Request, load float64) Decision {
		for _, p := range policies {
			if d := p.Decide(req, load); !d.Accept {
				return d
			}
		}
		return Accept()
	})
}
