// SPDX-License-Identifier: MIT

// Package response models the outbound half of the Alexa skill protocol and
// the fluent helpers for building envelopes.
//
// Serialization is byte-compatible with the wire contract: field names use
// the exact upstream casing, and optional fields that were never set are
// omitted from the output rather than emitted as null.
package response

import (
	"github.com/jct-tympanon/alexa-go/apienum"
	"github.com/jct-tympanon/alexa-go/audioplayer"
)

// Version is the protocol version carried by every envelope.
type Version string

var versions = apienum.DeclareExplicit[Version](map[string]string{
	"V1_0": "1.0",
})

// Version1_0 is the only protocol version defined today.
var Version1_0 = versions.Value("V1_0")

func (v Version) String() string { return string(v) }

// Known reports whether the version is one this package declares.
func (v Version) Known() bool { return versions.Known(v) }

// SpeechType selects plain text or SSML output speech.
type SpeechType string

var speechTypes = apienum.Declare[SpeechType](apienum.Identity,
	"PlainText",
	"SSML",
)

var (
	SpeechTypePlainText = speechTypes.Value("PlainText")
	SpeechTypeSSML      = speechTypes.Value("SSML")
)

func (t SpeechType) String() string { return string(t) }

// Known reports whether the speech type is one of the declared constants.
func (t SpeechType) Known() bool { return speechTypes.Known(t) }

// CardType selects the card shape shown in the Alexa companion app.
type CardType string

var cardTypes = apienum.Declare[CardType](apienum.Identity,
	"Simple",
	"Standard",
	"LinkAccount",
	"AskForPermissionsConsent",
)

var (
	CardTypeSimple            = cardTypes.Value("Simple")
	CardTypeStandard          = cardTypes.Value("Standard")
	CardTypeLinkAccount       = cardTypes.Value("LinkAccount")
	CardTypeAskForPermissions = cardTypes.Value("AskForPermissionsConsent")
)

func (t CardType) String() string { return string(t) }

// Known reports whether the card type is one of the declared constants.
func (t CardType) Known() bool { return cardTypes.Known(t) }

// ResponseEnvelope is the top-level outbound value.
type ResponseEnvelope struct {
	Version           Version           `json:"version"`
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
	Response          Response          `json:"response"`
}

// Response is the typed body of the envelope.
type Response struct {
	OutputSpeech     *Speech       `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
	Directives       DirectiveList `json:"directives,omitempty"`
}

// Speech is spoken output, either plain text or SSML.
type Speech struct {
	Type         SpeechType               `json:"type"`
	Text         string                   `json:"text,omitempty"`
	SSML         string                   `json:"ssml,omitempty"`
	PlayBehavior audioplayer.PlayBehavior `json:"playBehavior,omitempty"`
}

// PlainSpeech builds a plain text output speech.
func PlainSpeech(text string) *Speech {
	return &Speech{Type: SpeechTypePlainText, Text: text}
}

// SSMLSpeech builds an SSML output speech from pre-rendered markup.
func SSMLSpeech(ssml string) *Speech {
	return &Speech{Type: SpeechTypeSSML, SSML: ssml}
}

// WithPlayBehavior sets the speech play behavior and returns the speech for
// chaining.
func (s *Speech) WithPlayBehavior(b audioplayer.PlayBehavior) *Speech {
	s.PlayBehavior = b
	return s
}

// Card is shown in the Alexa companion app alongside the spoken response.
type Card struct {
	Type        CardType `json:"type"`
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	Text        string   `json:"text,omitempty"`
	Image       *Image   `json:"image,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// SimpleCard builds a simple title/content card.
func SimpleCard(title, content string) *Card {
	return &Card{Type: CardTypeSimple, Title: title, Content: content}
}

// StandardCard builds a standard card with text and an image.
func StandardCard(title, text string, image *Image) *Card {
	return &Card{Type: CardTypeStandard, Title: title, Text: text, Image: image}
}

// LinkAccountCard builds the account-linking card.
func LinkAccountCard() *Card {
	return &Card{Type: CardTypeLinkAccount}
}

// AskForPermissionsCard builds a card requesting the listed permissions.
func AskForPermissionsCard(permissions []string) *Card {
	return &Card{Type: CardTypeAskForPermissions, Permissions: permissions}
}

// Reprompt is the speech played when the user does not answer a question.
type Reprompt struct {
	OutputSpeech Speech `json:"outputSpeech"`
}

// Image is a card image, referenced by small and large URLs.
type Image struct {
	SmallImageURL string `json:"smallImageUrl,omitempty"`
	LargeImageURL string `json:"largeImageUrl,omitempty"`
}

// NewImage builds an empty card image for use with the URL setters.
func NewImage() *Image {
	return &Image{}
}

// WithSmallImageURL sets the small rendition URL.
func (i *Image) WithSmallImageURL(url string) *Image {
	i.SmallImageURL = url
	return i
}

// WithLargeImageURL sets the large rendition URL.
func (i *Image) WithLargeImageURL(url string) *Image {
	i.LargeImageURL = url
	return i
}

// New builds a response with only the required end-of-session flag; all other
// fields stay absent until set.
func New(shouldEnd bool) *ResponseEnvelope {
	return &ResponseEnvelope{
		Version:  Version1_0,
		Response: Response{ShouldEndSession: shouldEnd},
	}
}

// Simple builds the common one-shot answer: a plain text speech and a
// matching simple card, ending the session.
func Simple(title, text string) *ResponseEnvelope {
	return New(true).
		WithCard(SimpleCard(title, text)).
		WithSpeech(PlainSpeech(text))
}

// End builds an empty response that ends the session.
func End() *ResponseEnvelope {
	return New(true)
}

// WithSpeech sets the output speech and returns the envelope for chaining.
func (e *ResponseEnvelope) WithSpeech(s *Speech) *ResponseEnvelope {
	e.Response.OutputSpeech = s
	return e
}

// WithCard sets the card and returns the envelope for chaining.
func (e *ResponseEnvelope) WithCard(c *Card) *ResponseEnvelope {
	e.Response.Card = c
	return e
}

// WithReprompt sets the reprompt speech and returns the envelope for
// chaining.
func (e *ResponseEnvelope) WithReprompt(s *Speech) *ResponseEnvelope {
	e.Response.Reprompt = &Reprompt{OutputSpeech: *s}
	return e
}

// WithDirective appends a directive, preserving the order directives were
// added in.
func (e *ResponseEnvelope) WithDirective(d Directive) *ResponseEnvelope {
	e.Response.Directives = append(e.Response.Directives, d)
	return e
}

// AddAttribute records a session attribute for the next request. The map is
// created lazily on first write; setting an existing key overwrites it.
func (e *ResponseEnvelope) AddAttribute(key, value string) {
	if e.SessionAttributes == nil {
		e.SessionAttributes = make(map[string]string)
	}
	e.SessionAttributes[key] = value
}
