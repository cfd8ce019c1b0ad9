package cmd

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/example/cab-booking/internal/application/usecases"
	"github.com/example/cab-booking/internal/domain/booking"
	"github.com/example/cab-booking/internal/infrastructure/metrics"
)

func (a *app) admissionPolicy() (booking.Policy, error) {
	var src booking.RandomSource = booking.GlobalSource{}
	if a.cfg.Seed != 0 {
		src = booking.NewSeededSource(a.cfg.Seed)
	}

	var policies []booking.Policy
	if a.cfg.MaxLoad > 0 {
		lp, err := booking.NewLoadPolicy(a.cfg.MaxLoad)
		if err != nil {
			return nil, err
		}
		policies = append(policies, lp)
	}
	pp, err := booking.NewProbabilityPolicy(a.cfg.RejectProbability, src)
	if err != nil {
		return nil, err
	}
	policies = append(policies, pp)

	// last, so that requests refused above do not take a cab
	if a.cfg.FleetCabsPerMinute > 0 {
		fp, err := booking.NewFleetPolicy(a.cfg.FleetCabsPerMinute, a.cfg.FleetBurst, booking.SystemClock{})
		if err != nil {
			return nil, err
		}
		policies = append(policies, fp)
	}

	return booking.All(policies...), nil
}

// newBooker wires the request-booking use case. reg may be nil to skip metrics.
func (a *app) newBooker(reg prometheus.Registerer) (usecases.RequestBooking, error) {
	policy, err := a.admissionPolicy()
	if err != nil {
		return usecases.RequestBooking{}, err
	}
	inflight := usecases.NewInFlight(a.cfg.Capacity)

	uc := usecases.RequestBooking{
		Admission: booking.NewAdmission(policy, booking.WithLoadSignal(inflight)),
		InFlight:  inflight,
		Logger:    a.logger,
	}
	if reg != nil {
		rec, err := metrics.New(reg)
		if err != nil {
			return usecases.RequestBooking{}, err
		}
		uc.Metrics = rec
	}
	return uc, nil
}
