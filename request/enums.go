// SPDX-License-Identifier: MIT

package request

import "github.com/jct-tympanon/alexa-go/apienum"

// RequestType identifies the kind of inbound request. Wire strings match the
// PascalCase symbol names exactly.
type RequestType string

var requestTypes = apienum.Declare[RequestType](apienum.Identity,
	"LaunchRequest",
	"IntentRequest",
	"SessionEndedRequest",
	"CanFulfillIntentRequest",
)

var (
	RequestTypeLaunch       = requestTypes.Value("LaunchRequest")
	RequestTypeIntent       = requestTypes.Value("IntentRequest")
	RequestTypeSessionEnded = requestTypes.Value("SessionEndedRequest")
	RequestTypeCanFulfill   = requestTypes.Value("CanFulfillIntentRequest")
)

// String implements fmt.Stringer.
func (t RequestType) String() string { return string(t) }

// Known reports whether the request type is one of the declared constants.
func (t RequestType) Known() bool { return requestTypes.Known(t) }

// IntentType identifies a voice intent. The built-in Amazon intents use a
// fixed "AMAZON.<Name>Intent" wire string; custom skill intents are carried
// through with their caller-defined name.
type IntentType string

var intentTypes = apienum.DeclareExplicit[IntentType](map[string]string{
	"Cancel":       "AMAZON.CancelIntent",
	"Fallback":     "AMAZON.FallbackIntent",
	"Help":         "AMAZON.HelpIntent",
	"LoopOff":      "AMAZON.LoopOffIntent",
	"LoopOn":       "AMAZON.LoopOnIntent",
	"NavigateHome": "AMAZON.NavigateHomeIntent",
	"Next":         "AMAZON.NextIntent",
	"No":           "AMAZON.NoIntent",
	"Pause":        "AMAZON.PauseIntent",
	"Previous":     "AMAZON.PreviousIntent",
	"Repeat":       "AMAZON.RepeatIntent",
	"Resume":       "AMAZON.ResumeIntent",
	"Select":       "AMAZON.SelectIntent",
	"ShuffleOff":   "AMAZON.ShuffleOffIntent",
	"ShuffleOn":    "AMAZON.ShuffleOnIntent",
	"StartOver":    "AMAZON.StartOverIntent",
	"Stop":         "AMAZON.StopIntent",
	"Yes":          "AMAZON.YesIntent",
})

var (
	IntentCancel       = intentTypes.Value("Cancel")
	IntentFallback     = intentTypes.Value("Fallback")
	IntentHelp         = intentTypes.Value("Help")
	IntentLoopOff      = intentTypes.Value("LoopOff")
	IntentLoopOn       = intentTypes.Value("LoopOn")
	IntentNavigateHome = intentTypes.Value("NavigateHome")
	IntentNext         = intentTypes.Value("Next")
	IntentNo           = intentTypes.Value("No")
	IntentPause        = intentTypes.Value("Pause")
	IntentPrevious     = intentTypes.Value("Previous")
	IntentRepeat       = intentTypes.Value("Repeat")
	IntentResume       = intentTypes.Value("Resume")
	IntentSelect       = intentTypes.Value("Select")
	IntentShuffleOff   = intentTypes.Value("ShuffleOff")
	IntentShuffleOn    = intentTypes.Value("ShuffleOn")
	IntentStartOver    = intentTypes.Value("StartOver")
	IntentStop         = intentTypes.Value("Stop")
	IntentYes          = intentTypes.Value("Yes")
)

// String returns the intent's wire name directly, without going through the
// codec.
func (t IntentType) String() string { return string(t) }

// Known reports whether the intent is one of the built-in Amazon intents.
// Custom skill intents report false.
func (t IntentType) Known() bool { return intentTypes.Known(t) }

// ConfirmationStatus tracks whether the user has confirmed an intent or slot.
type ConfirmationStatus string

var confirmationStatuses = apienum.Declare[ConfirmationStatus](apienum.UpperSnake,
	"None",
	"Confirmed",
	"Denied",
)

var (
	ConfirmationNone      = confirmationStatuses.Value("None")
	ConfirmationConfirmed = confirmationStatuses.Value("Confirmed")
	ConfirmationDenied    = confirmationStatuses.Value("Denied")
)

func (s ConfirmationStatus) String() string { return string(s) }

// Known reports whether the status is one of the declared constants.
func (s ConfirmationStatus) Known() bool { return confirmationStatuses.Known(s) }

// DialogState tracks the progress of a multi-turn dialog.
type DialogState string

var dialogStates = apienum.Declare[DialogState](apienum.UpperSnake,
	"Started",
	"InProgress",
	"Completed",
)

var (
	DialogStarted    = dialogStates.Value("Started")
	DialogInProgress = dialogStates.Value("InProgress")
	DialogCompleted  = dialogStates.Value("Completed")
)

func (s DialogState) String() string { return string(s) }

// Known reports whether the dialog state is one of the declared constants.
func (s DialogState) Known() bool { return dialogStates.Known(s) }

// PlayerActivity describes the AudioPlayer state reported in the request
// context.
type PlayerActivity string

var playerActivities = apienum.Declare[PlayerActivity](apienum.UpperSnake,
	"Idle",
	"Paused",
	"Playing",
	"BufferUnderrun",
	"Finished",
	"Stopped",
)

var (
	PlayerActivityIdle           = playerActivities.Value("Idle")
	PlayerActivityPaused         = playerActivities.Value("Paused")
	PlayerActivityPlaying        = playerActivities.Value("Playing")
	PlayerActivityBufferUnderrun = playerActivities.Value("BufferUnderrun")
	PlayerActivityFinished       = playerActivities.Value("Finished")
	PlayerActivityStopped        = playerActivities.Value("Stopped")
)

func (a PlayerActivity) String() string { return string(a) }

// Known reports whether the activity is one of the declared constants.
func (a PlayerActivity) Known() bool { return playerActivities.Known(a) }
