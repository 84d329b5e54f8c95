package models

// RequestType is the discriminator of RequestBody.Type.
type RequestType string

const (
	TypeAPLUserEvent                            RequestType = "Alexa.Presentation.APL.UserEvent"
	TypeIntentRequest                           RequestType = "IntentRequest"
	TypeLaunchRequest                           RequestType = "LaunchRequest"
	TypeAudioPlayerPlaybackStarted              RequestType = "AudioPlayer.PlaybackStarted"
	TypeAudioPlayerPlaybackFinished             RequestType = "AudioPlayer.PlaybackFinished"
	TypeAudioPlayerPlaybackNearlyFinished       RequestType = "AudioPlayer.PlaybackNearlyFinished"
	TypeAudioPlayerPlaybackStopped              RequestType = "AudioPlayer.PlaybackStopped"
	TypeAudioPlayerPlaybackFailed               RequestType = "AudioPlayer.PlaybackFailed"
	TypePlaybackControllerNextCommandIssued     RequestType = "PlaybackController.NextCommandIssued"
	TypePlaybackControllerPreviousCommandIssued RequestType = "PlaybackController.PreviousCommandIssued"
	TypePlaybackControllerPlayCommandIssued     RequestType = "PlaybackController.PlayCommandIssued"
	TypePlaybackControllerPauseCommandIssued    RequestType = "PlaybackController.PauseCommandIssued"
	TypeSessionEndedRequest                     RequestType = "SessionEndedRequest"
	TypeConnectionsResponse                     RequestType = "Connections.Response"
	TypeCanFulfillIntentRequest                 RequestType = "CanFulfillIntentRequest"
	TypeDisplayElementSelected                  RequestType = "Display.ElementSelected"
	TypeSessionResumedRequest                   RequestType = "SessionResumedRequest"
)

// FallbackRequestType is what unrecognized request types are classified as.
const FallbackRequestType = TypeSessionEndedRequest

var requestTypes = map[RequestType]struct{}{
	TypeAPLUserEvent:                            {},
	TypeIntentRequest:                           {},
	TypeLaunchRequest:                           {},
	TypeAudioPlayerPlaybackStarted:              {},
	TypeAudioPlayerPlaybackFinished:             {},
	TypeAudioPlayerPlaybackNearlyFinished:       {},
	TypeAudioPlayerPlaybackStopped:              {},
	TypeAudioPlayerPlaybackFailed:               {},
	TypePlaybackControllerNextCommandIssued:     {},
	TypePlaybackControllerPreviousCommandIssued: {},
	TypePlaybackControllerPlayCommandIssued:     {},
	TypePlaybackControllerPauseCommandIssued:    {},
	TypeSessionEndedRequest:                     {},
	TypeConnectionsResponse:                     {},
	TypeCanFulfillIntentRequest:                 {},
	TypeDisplayElementSelected:                  {},
	TypeSessionResumedRequest:                   {},
}

// ParseRequestType maps a wire string to its RequestType. Unknown strings
// yield FallbackRequestType and ok == false.
func ParseRequestType(s string) (t RequestType, ok bool) {
	if _, ok := requestTypes[RequestType(s)]; ok {
		return RequestType(s), true
	}
	return FallbackRequestType, false
}

func (t RequestType) String() string {
	return string(t)
}

type SpeechType string

const (
	SpeechPlainText SpeechType = "PlainText"
	SpeechSSML      SpeechType = "SSML"
)

func ParseSpeechType(s string) (SpeechType, bool) {
	switch t := SpeechType(s); t {
	case SpeechPlainText, SpeechSSML:
		return t, true
	}
	return SpeechPlainText, false
}

func (t SpeechType) String() string {
	return string(t)
}

type CardType string

const (
	CardSimple      CardType = "Simple"
	CardStandard    CardType = "Standard"
	CardLinkAccount CardType = "LinkAccount"

	// The platform spells it this way.
	CardAskForPermission CardType = "AskForPermissonConsent"
)

func ParseCardType(s string) (CardType, bool) {
	switch t := CardType(s); t {
	case CardSimple, CardStandard, CardLinkAccount, CardAskForPermission:
		return t, true
	}
	return CardSimple, false
}

func (t CardType) String() string {
	return string(t)
}

type DirectiveType string

const (
	DirectiveAPLRenderDocument          DirectiveType = "Alexa.Presentation.APL.RenderDocument"
	DirectiveAPLExecuteCommands         DirectiveType = "Alexa.Presentation.APL.ExecuteCommands"
	DirectiveAPLARenderDocument         DirectiveType = "Alexa.Presentation.APLA.RenderDocument"
	DirectiveConnectionsStartConnection DirectiveType = "Connections.StartConnection"
)

func ParseDirectiveType(s string) (DirectiveType, bool) {
	switch t := DirectiveType(s); t {
	case DirectiveAPLRenderDocument, DirectiveAPLExecuteCommands,
		DirectiveAPLARenderDocument, DirectiveConnectionsStartConnection:
		return t, true
	}
	return DirectiveAPLRenderDocument, false
}

func (t DirectiveType) String() string {
	return string(t)
}

type PlayBehavior string

const (
	PlayEnqueue         PlayBehavior = "ENQUEUE"
	PlayReplaceAll      PlayBehavior = "REPLACE_ALL"
	PlayReplaceEnqueued PlayBehavior = "REPLACE_ENQUEUED"
)

func ParsePlayBehavior(s string) (PlayBehavior, bool) {
	switch b := PlayBehavior(s); b {
	case PlayEnqueue, PlayReplaceAll, PlayReplaceEnqueued:
		return b, true
	}
	return PlayEnqueue, false
}

func (b PlayBehavior) String() string {
	return string(b)
}
