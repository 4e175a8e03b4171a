// SPDX-License-Identifier: MIT

// Package skill routes decoded request envelopes to handler functions and
// encodes their responses. It is transport-free: Invoke takes envelope bytes
// and returns envelope bytes, so the same Mux works behind a Lambda runtime,
// an HTTP server, or a test harness.
package skill

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jct-tympanon/alexa-go/internal/log"
	"github.com/jct-tympanon/alexa-go/request"
	"github.com/jct-tympanon/alexa-go/response"
)

// ErrNoHandler is returned when a request reaches the Mux and no registered
// handler matches it.
var ErrNoHandler = errors.New("skill: no handler registered for request")

// HandlerFunc handles one decoded request and produces a response envelope.
type HandlerFunc func(ctx context.Context, env *request.RequestEnvelope) (*response.ResponseEnvelope, error)

// Mux dispatches requests by request type and intent. Register handlers
// before the first Invoke; a Mux is not safe for concurrent mutation, only
// for concurrent dispatch.
type Mux struct {
	logger       zerolog.Logger
	launch       HandlerFunc
	sessionEnded HandlerFunc
	fallback     HandlerFunc
	intents      map[request.IntentType]HandlerFunc
}

// NewMux returns an empty Mux.
func NewMux() *Mux {
	return &Mux{
		logger:  log.WithComponent("skill"),
		intents: make(map[request.IntentType]HandlerFunc),
	}
}

// Launch registers the handler for LaunchRequest.
func (m *Mux) Launch(h HandlerFunc) *Mux {
	m.launch = h
	return m
}

// Intent registers a handler for one intent. Registering the same intent
// twice overwrites the previous handler.
func (m *Mux) Intent(t request.IntentType, h HandlerFunc) *Mux {
	m.intents[t] = h
	return m
}

// Fallback registers the handler invoked when no other registration matches:
// unregistered intents, unknown request types, and intent requests without
// an intent.
func (m *Mux) Fallback(h HandlerFunc) *Mux {
	m.fallback = h
	return m
}

// SessionEnded registers the handler for SessionEndedRequest. Without one,
// session-ended requests produce an empty session-closing response.
func (m *Mux) SessionEnded(h HandlerFunc) *Mux {
	m.sessionEnded = h
	return m
}

// Dispatch routes a decoded envelope to the matching handler.
func (m *Mux) Dispatch(ctx context.Context, env *request.RequestEnvelope) (*response.ResponseEnvelope, error) {
	switch env.Type() {
	case request.RequestTypeLaunch:
		if m.launch != nil {
			return m.launch(ctx, env)
		}
	case request.RequestTypeSessionEnded:
		if m.sessionEnded != nil {
			return m.sessionEnded(ctx, env)
		}
		return response.End(), nil
	case request.RequestTypeIntent:
		if it, ok := env.IntentType(); ok {
			if h := m.intents[it]; h != nil {
				return h(ctx, env)
			}
		}
	}
	if m.fallback != nil {
		return m.fallback(ctx, env)
	}
	return nil, fmt.Errorf("%w: %s", ErrNoHandler, env.Type())
}

// Invoke decodes envelope bytes, dispatches, and encodes the response. Each
// invocation is logged under a fresh correlation id.
func (m *Mux) Invoke(ctx context.Context, body []byte) ([]byte, error) {
	logger := m.logger.With().Str(log.FieldInvocationID, uuid.NewString()).Logger()

	env, err := request.ParseRequestEnvelope(body)
	if err != nil {
		logger.Error().Err(err).Str(log.FieldEvent, "skill.decode").Msg("envelope failed to decode")
		return nil, err
	}

	entry := logger.With().
		Str(log.FieldRequestType, env.Type().String()).
		Str(log.FieldRequestID, env.Request.RequestID).
		Str(log.FieldLocale, env.Locale().String()).
		Logger()
	if it, ok := env.IntentType(); ok {
		entry = entry.With().Str(log.FieldIntent, it.String()).Logger()
	}

	res, err := m.Dispatch(ctx, env)
	if err != nil {
		entry.Error().Err(err).Str(log.FieldEvent, "skill.dispatch").Msg("handler failed")
		return nil, err
	}

	out, err := json.Marshal(res)
	if err != nil {
		entry.Error().Err(err).Str(log.FieldEvent, "skill.encode").Msg("response failed to encode")
		return nil, fmt.Errorf("skill: encode response: %w", err)
	}

	entry.Info().Str(log.FieldEvent, "skill.handled").Bool("end_session", res.Response.ShouldEndSession).Msg("request handled")
	return out, nil
}
