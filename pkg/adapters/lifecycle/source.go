// Package lifecycle exposes note watching as a lifecycle.Source, so a note
// being edited can drive anything built on github.com/aretw0/lifecycle.
package lifecycle

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notenik/pkg/adapters/fs"
)

// Options tune a change source.
type Options struct {
	Logger *slog.Logger
	// SkipErrors drops changes whose re-read failed, such as the moment
	// between an editor deleting a file and writing its replacement. They
	// are still logged.
	SkipErrors bool
}

// ChangeSource relays the changes produced by fs.Store.Watch as lifecycle
// events. fs.Change satisfies lifecycle.Event through its String method.
type ChangeSource struct {
	changes <-chan fs.Change
	out     chan lifecycle.Event
	opts    Options

	delivered atomic.Int64
	skipped   atomic.Int64
}

var _ lifecycle.Source = (*ChangeSource)(nil)

// NewSource wraps a Watch channel.
func NewSource(changes <-chan fs.Change, opts Options) *ChangeSource {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &ChangeSource{
		changes: changes,
		out:     make(chan lifecycle.Event),
		opts:    opts,
	}
}

func (s *ChangeSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start relays changes until ctx is done or the Watch channel closes, then
// closes Events.
func (s *ChangeSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			var c fs.Change
			select {
			case <-ctx.Done():
				return nil
			case next, ok := <-s.changes:
				if !ok {
					return nil
				}
				c = next
			}

			if c.Err != nil {
				s.opts.Logger.Warn("note re-read failed", "path", c.Path, "error", c.Err)
				if s.opts.SkipErrors {
					s.skipped.Add(1)
					continue
				}
			}
			select {
			case s.out <- c:
				s.delivered.Add(1)
			case <-ctx.Done():
				return nil
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.opts.Logger.Error("change relay stopped", "error", err)
	}))
	return nil
}

// SourceState is the introspection snapshot of a ChangeSource.
type SourceState struct {
	Delivered int64
	Skipped   int64
}

// State implements introspection.Introspectable.
func (s *ChangeSource) State() any {
	return SourceState{Delivered: s.delivered.Load(), Skipped: s.skipped.Load()}
}

// ComponentType implements introspection.Component.
func (s *ChangeSource) ComponentType() string {
	return "change-source"
}
