// Package netsim injects artificial latency and failures into request
// handling so that callers can exercise their loading and retry paths.
package netsim

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// ErrNetwork is returned by Write when a failure is injected.
var ErrNetwork = errors.New("simulated network error")

// Defaults used for write operations.
const (
	DefaultMinDelay    = 200 * time.Millisecond
	DefaultMaxDelay    = 1200 * time.Millisecond
	DefaultFailureRate = 0.07
)

// Simulator draws a random delay in [MinDelay, MaxDelay) for each write and
// fails it with probability FailureRate once the delay has elapsed.
type Simulator struct {
	MinDelay    time.Duration
	MaxDelay    time.Duration
	FailureRate float64

	// Float64 returns a number in [0, 1). Nil means math/rand/v2.Float64.
	Float64 func() float64
	// Sleep waits for d or until ctx is done. Nil means a timer-based wait.
	Sleep func(ctx context.Context, d time.Duration) error
}

// New returns a simulator for the given write parameters.
func New(minDelay, maxDelay time.Duration, failureRate float64) *Simulator {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &Simulator{
		MinDelay:    minDelay,
		MaxDelay:    maxDelay,
		FailureRate: failureRate,
	}
}

// Disabled returns a simulator that neither waits nor fails.
func Disabled() *Simulator {
	return &Simulator{Sleep: func(context.Context, time.Duration) error { return nil }}
}

// Write waits a random delay and then possibly fails with ErrNetwork.
func (s *Simulator) Write(ctx context.Context) error {
	if err := s.sleep(ctx, s.writeDelay()); err != nil {
		return err
	}
	if s.FailureRate > 0 && s.float64() < s.FailureRate {
		return ErrNetwork
	}
	return nil
}

// Pause waits a fixed delay without injecting failures.
func (s *Simulator) Pause(ctx context.Context, d time.Duration) error {
	return s.sleep(ctx, d)
}

func (s *Simulator) writeDelay() time.Duration {
	span := s.MaxDelay - s.MinDelay
	if span <= 0 {
		return s.MinDelay
	}
	return s.MinDelay + time.Duration(s.float64()*float64(span))
}

func (s *Simulator) float64() float64 {
	if s.Float64 != nil {
		return s.Float64()
	}
	return rand.Float64()
}

func (s *Simulator) sleep(ctx context.Context, d time.Duration) error {
	if s.Sleep != nil {
		return s.Sleep(ctx, d)
	}
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
