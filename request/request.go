// SPDX-License-Identifier: MIT

// Package request models the inbound half of the Alexa skill protocol: the
// request envelope, its session and context, and the intent/slot structures
// inside it.
//
// Decoding is deliberately forgiving. Enumerated fields are open enumerations
// (see package apienum), so wire values this package does not know about are
// carried through instead of failing, and fields the protocol adds later are
// simply ignored. Only a structurally broken envelope — missing top-level
// required fields, wrong JSON shapes — fails to decode, and then it fails as
// a whole.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidEnvelope is the sentinel wrapped by every structural decode
// failure, for errors.Is checks at the boundary.
var ErrInvalidEnvelope = errors.New("request: invalid envelope")

// RequestEnvelope is the top-level inbound value.
type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Request Request  `json:"request"`
	Context Context  `json:"context"`
}

// Session carries the cross-turn conversation state.
type Session struct {
	New         bool              `json:"new"`
	SessionID   string            `json:"sessionId"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	Application Application       `json:"application"`
	User        User              `json:"user"`
}

// Application identifies the skill.
type Application struct {
	ApplicationID string `json:"applicationId"`
}

// User identifies the Amazon account invoking the skill.
type User struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken,omitempty"`
}

// Device identifies the Echo device the request originated from.
type Device struct {
	DeviceID string `json:"deviceId"`
}

// Request is the typed body of the envelope.
type Request struct {
	Type        RequestType `json:"type"`
	RequestID   string      `json:"requestId"`
	Timestamp   string      `json:"timestamp"`
	Locale      Locale      `json:"locale"`
	Intent      *Intent     `json:"intent,omitempty"`
	Reason      string      `json:"reason,omitempty"`
	DialogState DialogState `json:"dialogState,omitempty"`
}

// Context describes the invoking device and interface state. The top-level
// keys are capitalized on the wire ("System", "AudioPlayer"), not camel case.
type Context struct {
	System      System            `json:"System"`
	AudioPlayer *AudioPlayerState `json:"AudioPlayer,omitempty"`
}

// System carries device, application and API access information.
type System struct {
	APIAccessToken string       `json:"apiAccessToken,omitempty"`
	APIEndpoint    string       `json:"apiEndpoint,omitempty"`
	Device         *Device      `json:"device,omitempty"`
	Application    *Application `json:"application,omitempty"`
	User           *User        `json:"user,omitempty"`
}

// AudioPlayerState reports playback state in the request context.
type AudioPlayerState struct {
	Token                string         `json:"token,omitempty"`
	OffsetInMilliseconds *int64         `json:"offsetInMilliseconds,omitempty"`
	PlayerActivity       PlayerActivity `json:"playerActivity,omitempty"`
}

// Intent is the recognized voice intent with its captured slots.
type Intent struct {
	Name               string             `json:"name"`
	ConfirmationStatus ConfirmationStatus `json:"confirmationStatus,omitempty"`
	Slots              map[string]Slot    `json:"slots,omitempty"`
}

// Slot is one named argument captured within an intent. A slot may be present
// without a resolved value (the user never filled it).
type Slot struct {
	Name               string             `json:"name"`
	Value              string             `json:"value,omitempty"`
	ConfirmationStatus ConfirmationStatus `json:"confirmationStatus,omitempty"`
	Resolutions        *Resolution        `json:"resolutions,omitempty"`
}

// Resolution holds ranked candidate values per matching authority.
type Resolution struct {
	ResolutionsPerAuthority []ResolutionsPerAuthority `json:"resolutionsPerAuthority"`
}

// ResolutionsPerAuthority is one authority's match attempt for a slot.
type ResolutionsPerAuthority struct {
	Authority string                   `json:"authority"`
	Status    ResolutionStatus         `json:"status"`
	Values    []ResolutionValueWrapper `json:"values"`
}

// ResolutionStatus reports whether an authority matched the slot.
type ResolutionStatus struct {
	Code string `json:"code"`
}

// ResolutionValueWrapper wraps a single candidate value.
type ResolutionValueWrapper struct {
	Value ResolutionValue `json:"value"`
}

// ResolutionValue is one resolved candidate for a slot.
type ResolutionValue struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// ParseRequestEnvelope decodes an inbound envelope. A malformed or
// structurally incomplete document fails as a whole; every error wraps
// ErrInvalidEnvelope.
func ParseRequestEnvelope(data []byte) (*RequestEnvelope, error) {
	// Required fields decode through pointers so absence is distinguishable
	// from a zero value.
	var wire struct {
		Version string   `json:"version"`
		Session *Session `json:"session"`
		Request *Request `json:"request"`
		Context *Context `json:"context"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	if wire.Version == "" {
		return nil, fmt.Errorf("%w: missing version", ErrInvalidEnvelope)
	}
	if wire.Request == nil || (wire.Request.Type == "" && wire.Request.RequestID == "") {
		return nil, fmt.Errorf("%w: missing request object", ErrInvalidEnvelope)
	}
	if wire.Context == nil {
		return nil, fmt.Errorf("%w: missing context", ErrInvalidEnvelope)
	}
	return &RequestEnvelope{
		Version: wire.Version,
		Session: wire.Session,
		Request: *wire.Request,
		Context: *wire.Context,
	}, nil
}

// Type returns the request type enumeration.
func (e *RequestEnvelope) Type() RequestType {
	return e.Request.Type
}

// Locale returns the decomposed request locale.
func (e *RequestEnvelope) Locale() Locale {
	return e.Request.Locale
}

// IntentType returns the request's intent, if the request carries one. The
// returned value is an open enumeration: built-in Amazon intents decode to
// the Intent* values, custom intents carry their name through unchanged.
func (e *RequestEnvelope) IntentType() (IntentType, bool) {
	if e.Request.Intent == nil {
		return "", false
	}
	return intentTypes.Decode(e.Request.Intent.Name), true
}

// SlotValue looks up the resolved value of the named slot. An absent intent,
// absent slot, or unfilled slot is a miss, not an error.
func (e *RequestEnvelope) SlotValue(name string) (string, bool) {
	if e.Request.Intent == nil {
		return "", false
	}
	slot, ok := e.Request.Intent.Slots[name]
	if !ok || slot.Value == "" {
		return "", false
	}
	return slot.Value, true
}

// AttributeValue looks up a session attribute by key. An absent session or
// absent key is a miss, not an error.
func (e *RequestEnvelope) AttributeValue(key string) (string, bool) {
	if e.Session == nil {
		return "", false
	}
	v, ok := e.Session.Attributes[key]
	return v, ok
}

// IsNew reports whether this request opens a new session. A request without
// a session reports false.
func (e *RequestEnvelope) IsNew() bool {
	return e.Session != nil && e.Session.New
}
