// SPDX-License-Identifier: MIT

// Package audioplayer models the AudioPlayer interface: the directives a
// response can carry to start, stop, or clear audio playback, and the stream
// payloads inside them.
package audioplayer

import (
	"encoding/json"

	"github.com/jct-tympanon/alexa-go/apienum"
	"github.com/jct-tympanon/alexa-go/display"
)

// Wire discriminators for the AudioPlayer directives.
const (
	DirectiveTypePlay       = "AudioPlayer.Play"
	DirectiveTypeStop       = "AudioPlayer.Stop"
	DirectiveTypeClearQueue = "AudioPlayer.ClearQueue"
)

// PlayBehavior controls how a play directive interacts with the playback
// queue.
type PlayBehavior string

var playBehaviors = apienum.Declare[PlayBehavior](apienum.UpperSnake,
	"Enqueue",
	"ReplaceAll",
	"ReplaceEnqueued",
)

var (
	PlayBehaviorEnqueue         = playBehaviors.Value("Enqueue")
	PlayBehaviorReplaceAll      = playBehaviors.Value("ReplaceAll")
	PlayBehaviorReplaceEnqueued = playBehaviors.Value("ReplaceEnqueued")
)

func (b PlayBehavior) String() string { return string(b) }

// Known reports whether the behavior is one of the declared constants.
func (b PlayBehavior) Known() bool { return playBehaviors.Known(b) }

// ClearBehavior controls how much of the playback queue a clear-queue
// directive discards.
type ClearBehavior string

var clearBehaviors = apienum.Declare[ClearBehavior](apienum.UpperSnake,
	"ClearEnqueued",
	"ClearAll",
)

var (
	ClearBehaviorEnqueued = clearBehaviors.Value("ClearEnqueued")
	ClearBehaviorAll      = clearBehaviors.Value("ClearAll")
)

func (b ClearBehavior) String() string { return string(b) }

// Known reports whether the behavior is one of the declared constants.
func (b ClearBehavior) Known() bool { return clearBehaviors.Known(b) }

// PlayDirective starts or enqueues playback of a stream.
type PlayDirective struct {
	AudioItem    AudioItem    `json:"audioItem"`
	PlayBehavior PlayBehavior `json:"playBehavior"`
}

// DirectiveType returns the wire discriminator "AudioPlayer.Play".
func (PlayDirective) DirectiveType() string { return DirectiveTypePlay }

// MarshalJSON writes the directive with its type discriminator.
func (d PlayDirective) MarshalJSON() ([]byte, error) {
	type alias PlayDirective
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: DirectiveTypePlay, alias: alias(d)})
}

// StopDirective stops playback. It has no payload.
type StopDirective struct{}

// DirectiveType returns the wire discriminator "AudioPlayer.Stop".
func (StopDirective) DirectiveType() string { return DirectiveTypeStop }

// MarshalJSON writes the bare type discriminator.
func (StopDirective) MarshalJSON() ([]byte, error) {
	return []byte(`{"type":"AudioPlayer.Stop"}`), nil
}

// ClearQueueDirective discards queued streams.
type ClearQueueDirective struct {
	ClearBehavior ClearBehavior `json:"clearBehavior"`
}

// DirectiveType returns the wire discriminator "AudioPlayer.ClearQueue".
func (ClearQueueDirective) DirectiveType() string { return DirectiveTypeClearQueue }

// MarshalJSON writes the directive with its type discriminator.
func (d ClearQueueDirective) MarshalJSON() ([]byte, error) {
	type alias ClearQueueDirective
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: DirectiveTypeClearQueue, alias: alias(d)})
}

// AudioItem pairs a stream with its optional display metadata.
type AudioItem struct {
	Stream   Stream             `json:"stream"`
	Metadata *AudioItemMetadata `json:"metadata,omitempty"`
}

// Stream describes the audio source for a play directive.
type Stream struct {
	URL   string `json:"url"`
	Token string `json:"token"`

	// Should be a non-negative offset, but Alexa has been observed to send -1.
	OffsetInMilliseconds int64 `json:"offsetInMilliseconds"`

	ExpectedPreviousToken string       `json:"expectedPreviousToken,omitempty"`
	CaptionData           *CaptionData `json:"captionData,omitempty"`
}

// CaptionData carries closed-caption content for a stream.
type CaptionData struct {
	Type    string `json:"type,omitempty"`
	Content string `json:"content,omitempty"`
}

// AudioItemMetadata is what the device shows while the stream plays.
type AudioItemMetadata struct {
	Title           string         `json:"title,omitempty"`
	Subtitle        string         `json:"subtitle,omitempty"`
	Art             *display.Image `json:"art,omitempty"`
	BackgroundImage *display.Image `json:"backgroundImage,omitempty"`
}
