// Package lifecycle exposes editor events as a lifecycle.Source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/quire/pkg/core"
)

type editorSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that forwards editor events, such as
// those from Editor.Events or Editor.Watch.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &editorSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *editorSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until the input closes or ctx is done, then closes
// the output channel.
func (s *editorSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
