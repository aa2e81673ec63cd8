package hook

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// registry is the default implementation of the Registry interface.
// It manages handler registration and sequential event dispatch with
// block short-circuit and timeout support.
type registry struct {
	handlers map[EventType][]Handler
	timeout  time.Duration
}

// NewRegistry creates a Registry with the default timeout.
func NewRegistry() Registry {
	return NewRegistryWithTimeout(DefaultHookTimeout)
}

// NewRegistryWithTimeout creates a Registry with a custom timeout.
func NewRegistryWithTimeout(timeout time.Duration) Registry {
	if timeout <= 0 {
		timeout = DefaultHookTimeout
	}
	return &registry{
		handlers: make(map[EventType][]Handler),
		timeout:  timeout,
	}
}

// Register adds a handler to the registry for its declared event type.
func (r *registry) Register(handler Handler) {
	event := handler.EventType()
	r.handlers[event] = append(r.handlers[event], handler)
	slog.Debug("handler registered",
		"event", string(event),
		"handler_count", len(r.handlers[event]),
	)
}

// Dispatch sends an event to all registered handlers for the given event
// type. Handlers run sequentially within a timeout context; the first
// blocking output short-circuits the rest so only one stage prompt is ever
// injected per event.
func (r *registry) Dispatch(ctx context.Context, event EventType, input *HookInput) (*HookOutput, error) {
	handlers := r.handlers[event]
	if len(handlers) == 0 {
		slog.Debug("no handlers registered for event", "event", string(event))
		return NewPassOutput(), nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	for i, h := range handlers {
		output, err := h.Handle(ctx, input)

		if ctx.Err() != nil {
			slog.Error("hook execution timed out",
				"event", string(event),
				"handler_index", i,
				"timeout", r.timeout.String(),
			)
			return nil, fmt.Errorf("%w: %v", ErrHookTimeout, ctx.Err())
		}

		if err != nil {
			return nil, fmt.Errorf("handler %d for event %s: %w", i, event, err)
		}

		if output.IsBlock() {
			slog.Info("handler blocked action",
				"event", string(event),
				"handler_index", i,
			)
			return output, nil
		}
	}

	return NewPassOutput(), nil
}

// Handlers returns all handlers registered for the given event type.
func (r *registry) Handlers(event EventType) []Handler {
	return r.handlers[event]
}
