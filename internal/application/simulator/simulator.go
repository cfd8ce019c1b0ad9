package simulator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/example/cab-booking/internal/domain/booking"
)

type Booker interface {
	Execute(ctx context.Context, pickupLocation string) (booking.Booking, error)
}

type Plan struct {
	Requests    int
	Concurrency int
	// Locations are used round-robin.
	Locations []string
}

func (p Plan) Validate() error {
	if p.Requests < 1 {
		return fmt.Errorf("requests must be >= 1")
	}
	if p.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1")
	}
	if len(p.Locations) == 0 {
		return fmt.Errorf("at least one location required")
	}
	return nil
}

type Report struct {
	Requests     int           `json:"requests"`
	Accepted     int           `json:"accepted"`
	Unavailable  int           `json:"unavailable"`
	Invalid      int           `json:"invalid"`
	DuplicateIDs int           `json:"duplicateIds"`
	Elapsed      time.Duration `json:"elapsed"`
}

func (r Report) RejectRate() float64 {
	if r.Requests == 0 {
		return 0
	}
	return float64(r.Unavailable) / float64(r.Requests)
}

// Simulator fires a burst of booking requests at a Booker from several
// concurrent callers and tallies the outcomes.
type Simulator struct {
	Booker Booker
	Logger zerolog.Logger
}

func (s *Simulator) Run(ctx context.Context, plan Plan) (Report, error) {
	if s.Booker == nil {
		return Report{}, fmt.Errorf("booker is nil")
	}
	if err := plan.Validate(); err != nil {
		return Report{}, err
	}

	var (
		mu   sync.Mutex
		rep  Report
		seen = make(map[string]struct{}, plan.Requests)
	)
	record := func(b booking.Booking, err error) {
		mu.Lock()
		defer mu.Unlock()
		rep.Requests++
		switch {
		case err == nil:
			rep.Accepted++
			if _, dup := seen[b.ID]; dup {
				rep.DuplicateIDs++
			}
			seen[b.ID] = struct{}{}
		case errors.Is(err, booking.ErrInvalidRequest):
			rep.Invalid++
		default:
			rep.Unavailable++
		}
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(plan.Concurrency)

	for i := 0; i < plan.Requests; i++ {
		if gctx.Err() != nil {
			break
		}
		loc := plan.Locations[i%len(plan.Locations)]
		g.Go(func() error {
			b, err := s.Booker.Execute(gctx, loc)
			if err != nil && booking.KindOf(err) == "" {
				return err
			}
			record(b, err)
			return nil
		})
	}
	err := g.Wait()
	if err == nil && rep.Requests < plan.Requests {
		err = ctx.Err()
	}

	mu.Lock()
	defer mu.Unlock()
	rep.Elapsed = time.Since(start)
	if err != nil {
		return rep, fmt.Errorf("simulation stopped after %d requests: %w", rep.Requests, err)
	}
	s.Logger.Info().
		Int("requests", rep.Requests).
		Int("accepted", rep.Accepted).
		Int("unavailable", rep.Unavailable).
		Int("invalid", rep.Invalid).
		Dur("elapsed", rep.Elapsed).
		Msg("simulation finished")
	return rep, nil
}
