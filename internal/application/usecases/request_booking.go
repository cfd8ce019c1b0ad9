package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/cab-booking/internal/domain/booking"
	"github.com/example/cab-booking/internal/infrastructure/metrics"
)

type Recorder interface {
	Observe(outcome string, d time.Duration)
}

// RequestBooking runs one admission and records what happened.
type RequestBooking struct {
	Admission *booking.Admission
	InFlight  *InFlight // optional
	Metrics   Recorder  // optional
	Logger    zerolog.Logger
}

func (u RequestBooking) Execute(ctx context.Context, pickupLocation string) (booking.Booking, error) {
	if u.Admission == nil {
		return booking.Booking{}, fmt.Errorf("admission is nil")
	}
	if err := ctx.Err(); err != nil {
		return booking.Booking{}, err
	}
	if u.InFlight != nil {
		defer u.InFlight.Enter()()
	}

	start := time.Now()
	b, err := u.Admission.RequestBooking(pickupLocation)
	elapsed := time.Since(start)

	outcome := outcomeOf(err)
	if u.Metrics != nil {
		u.Metrics.Observe(outcome, elapsed)
	}

	if err != nil {
		u.Logger.Debug().
			Str("pickup_location", pickupLocation).
			Str("outcome", outcome).
			Err(err).
			Msg("booking rejected")
		return booking.Booking{}, err
	}
	u.Logger.Debug().
		Str("booking_id", b.ID).
		Str("pickup_location", b.PickupLocation).
		Dur("elapsed", elapsed).
		Msg("booking created")
	return b, nil
}

func outcomeOf(err error) string {
	switch booking.KindOf(err) {
	case "":
		return metrics.OutcomeAccepted
	case booking.KindInvalidRequest:
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeUnavailable
	}
}
