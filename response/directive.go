// SPDX-License-Identifier: MIT

package response

import (
	"encoding/json"

	"github.com/jct-tympanon/alexa-go/audioplayer"
)

// Directive is one entry in Response.Directives. Known payload shapes decode
// to their typed form; everything else is preserved verbatim as a
// RawDirective, so a directive this package does not model is never dropped
// and never fails to parse.
type Directive interface {
	// DirectiveType returns the wire discriminator from the "type" field.
	DirectiveType() string
}

// DirectiveList is an ordered list of directives with a discriminator-aware
// JSON decoder.
type DirectiveList []Directive

// UnmarshalJSON decodes each element by peeking at its "type" field. Elements
// with an unrecognized or missing discriminator, or whose payload does not
// match the recognized shape, are kept as RawDirective.
func (l *DirectiveList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(DirectiveList, 0, len(raws))
	for _, raw := range raws {
		out = append(out, decodeDirective(raw))
	}
	*l = out
	return nil
}

func decodeDirective(raw json.RawMessage) Directive {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return RawDirective(raw)
	}
	switch head.Type {
	case audioplayer.DirectiveTypePlay:
		var d audioplayer.PlayDirective
		if err := json.Unmarshal(raw, &d); err == nil {
			return d
		}
	case audioplayer.DirectiveTypeStop:
		return audioplayer.StopDirective{}
	case audioplayer.DirectiveTypeClearQueue:
		var d audioplayer.ClearQueueDirective
		if err := json.Unmarshal(raw, &d); err == nil {
			return d
		}
	}
	return RawDirective(raw)
}

// RawDirective is the opaque passthrough arm of the directive union: the
// original JSON value, byte for byte.
type RawDirective json.RawMessage

// DirectiveType peeks the "type" field of the raw value; it returns "" when
// the value carries none.
func (d RawDirective) DirectiveType() string {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(d), &head); err != nil {
		return ""
	}
	return head.Type
}

// MarshalJSON writes the preserved bytes verbatim.
func (d RawDirective) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return []byte(d), nil
}
