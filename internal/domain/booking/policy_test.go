package booking

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestNewProbabilityPolicy_Range(t *testing.T) {
	for _, p := range []float64{-0.1, 1.01, math.NaN(), math.Inf(1)} {
		_, err := NewProbabilityPolicy(p, nil)
		assert.Error(t, err, "p=%v", p)
	}
	for _, p := range []float64{0, 0.3, 1} {
		pol, err := NewProbabilityPolicy(p, nil)
		require.NoError(t, err)
		assert.Equal(t, p, pol.Probability())
	}
}

func TestProbabilityPolicy_Threshold(t *testing.T) {
	tests := []struct {
		name   string
		p      float64
		draw   float64
		accept bool
	}{
		{"draw below p rejects", 0.3, 0.29, false},
		{"draw at p accepts", 0.3, 0.3, true},
		{"draw above p accepts", 0.3, 0.9, true},
		{"zero never rejects", 0, 0, true},
		{"one always rejects", 1, 0.999999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pol, err := NewProbabilityPolicy(tt.p, constSource(tt.draw))
			require.NoError(t, err)
			d := pol.Decide(Request{PickupLocation: "Main St"}, 0)
			assert.Equal(t, tt.accept, d.Accept)
			if !d.Accept {
				assert.Equal(t, DefaultRejectReason, d.Reason)
			}
		})
	}
}

func TestProbabilityPolicy_RejectRateRoughlyP(t *testing.T) {
	pol, err := NewProbabilityPolicy(DefaultRejectProbability, NewSeededSource(7))
	require.NoError(t, err)

	const n = 20000
	rejected := 0
	for i := 0; i < n; i++ {
		if !pol.Decide(Request{PickupLocation: "Main St"}, 0).Accept {
			rejected++
		}
	}
	assert.InDelta(t, DefaultRejectProbability, float64(rejected)/n, 0.02)
}

func TestFleetPolicy(t *testing.T) {
	clock := &stepClock{t: time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)}
	pol, err := NewFleetPolicy(60, 2, clock)
	require.NoError(t, err)
	req := Request{PickupLocation: "Main St"}

	assert.True(t, pol.Decide(req, 0).Accept)
	assert.True(t, pol.Decide(req, 0).Accept)

	d := pol.Decide(req, 0)
	assert.False(t, d.Accept)
	assert.Equal(t, "no cabs available", d.Reason)

	clock.Advance(time.Second)
	assert.True(t, pol.Decide(req, 0).Accept)
	assert.False(t, pol.Decide(req, 0).Accept)
}

func TestNewFleetPolicy_Validation(t *testing.T) {
	_, err := NewFleetPolicy(0, 1, nil)
	assert.Error(t, err)
	_, err = NewFleetPolicy(10, 0, nil)
	assert.Error(t, err)
}

func TestLoadPolicy(t *testing.T) {
	_, err := NewLoadPolicy(0)
	assert.Error(t, err)
	_, err = NewLoadPolicy(1.5)
	assert.Error(t, err)

	pol, err := NewLoadPolicy(0.8)
	require.NoError(t, err)
	req := Request{PickupLocation: "Main St"}
	assert.True(t, pol.Decide(req, 0.79).Accept)

	d := pol.Decide(req, 0.8)
	assert.False(t, d.Accept)
	assert.Equal(t, "service overloaded", d.Reason)
}

func TestAll_FirstRejectionWins(t *testing.T) {
	calls := 0
	count := PolicyFunc(func(Request, float64) Decision {
		calls++
		return Accept()
	})
	deny := func(reason string) Policy {
		return PolicyFunc(func(Request, float64) Decision { return Reject(reason) })
	}
	req := Request{PickupLocation: "Main St"}

	assert.True(t, All(count, count).Decide(req, 0).Accept)
	assert.Equal(t, 2, calls)

	d := All(count, deny("first"), deny("second"), count).Decide(req, 0)
	assert.False(t, d.Accept)
	assert.Equal(t, "first", d.Reason)
	assert.Equal(t, 3, calls)

	assert.True(t, All().Decide(req, 0).Accept)
}

func TestAdmission_FleetRejectsAsUnavailable(t *testing.T) {
	clock := &stepClock{t: time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)}
	fleet, err := NewFleetPolicy(1, 1, clock)
	require.NoError(t, err)
	a := NewAdmission(fleet, WithClock(clock))

	_, err = a.RequestBooking("Main St")
	require.NoError(t, err)
	_, err = a.RequestBooking("Main St")
	assert.ErrorIs(t, err, ErrBookingUnavailable)
}
