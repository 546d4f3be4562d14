// Package adgate models the ad network the reward flows pass through
// before a reward is applied. In this build it is a fixed-delay no-op; a
// real ad SDK can replace it without changing any engine.
package adgate

import (
	"context"
	"time"
)

// Gate presents an ad for the named action and returns when the ad is done.
// The engines are agnostic to the delay — they only ask that Present has
// returned before a reward is applied. Nothing here stops a re-entrant
// activation while an ad is showing; that exclusion belongs to the UI's
// modal overlay, matching the shipped behavior.
type Gate interface {
	Present(ctx context.Context, action string) error
}

// Simulated is the fixed-delay stand-in for a real ad network.
type Simulated struct {
	Delay time.Duration // default 3s
}

// Present blocks for the configured delay or until the context is done.
func (s Simulated) Present(ctx context.Context, action string) error {
	delay := s.Delay
	if delay <= 0 {
		delay = 3 * time.Second
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// Nop completes immediately. Used by tests and the headless simulator.
type Nop struct{}

// Present returns at once.
func (Nop) Present(ctx context.Context, action string) error { return nil }
