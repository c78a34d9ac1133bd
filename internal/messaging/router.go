// Package messaging routes new-tab page requests to bookmark and favicon
// operations using the { action, requestId, ... } envelope.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/tempo/internal/logging"
)

// ErrUnknownAction is returned for actions with no registered handler.
var ErrUnknownAction = errors.New("unknown action")

// Handler handles a decoded request payload. The returned value becomes the
// response data.
type Handler interface {
	Handle(ctx context.Context, payload json.RawMessage) (any, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Handle calls f(ctx, payload).
func (f HandlerFunc) Handle(ctx context.Context, payload json.RawMessage) (any, error) {
	return f(ctx, payload)
}

// Router dispatches requests to registered handlers by action name.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]Handler)}
}

// Register registers a handler for an action.
func (r *Router) Register(action string, handler Handler) error {
	if action == "" {
		return errors.New("action cannot be empty")
	}
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[action] = handler
	return nil
}

// Actions returns the registered action names, sorted.
func (r *Router) Actions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actions := make([]string, 0, len(r.handlers))
	for action := range r.handlers {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	return actions
}

// Dispatch decodes the envelope, runs the matching handler and wraps the
// outcome. Dispatch always returns a response; failures set Success=false.
func (r *Router) Dispatch(ctx context.Context, payload json.RawMessage) (resp Response) {
	var base baseRequest
	if err := json.Unmarshal(payload, &base); err != nil {
		return NewErrorResponse("", fmt.Errorf("invalid request: %w", err))
	}

	ctx = logging.WithComponent(ctx, "messaging")
	if base.RequestID != "" {
		ctx = logging.WithRequestID(ctx, base.RequestID)
	}
	log := logging.FromContext(ctx)

	r.mu.RLock()
	handler, ok := r.handlers[base.Action]
	r.mu.RUnlock()
	if !ok {
		log.Warn().Str("action", base.Action).Msg("no handler registered for action")
		return NewErrorResponse(base.RequestID, fmt.Errorf("%w: %q", ErrUnknownAction, base.Action))
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Str("action", base.Action).Msg("handler panicked")
			resp = NewErrorResponse(base.RequestID, fmt.Errorf("%s failed", base.Action))
		}
	}()

	log.Debug().Str("action", base.Action).Int("payload_len", len(payload)).Msg("handling request")

	data, err := handler.Handle(ctx, payload)
	if err != nil {
		log.Debug().Err(err).Str("action", base.Action).Msg("handler returned error")
		return NewErrorResponse(base.RequestID, err)
	}
	return NewSuccessResponse(base.RequestID, data)
}
