package models

// Speech is an output speech fragment. Exactly one of Text and SSML is set by
// the named constructors.
type Speech struct {
	Type         SpeechType   `json:"type"`
	Text         string       `json:"text,omitempty"`
	SSML         string       `json:"ssml,omitempty"`
	PlayBehavior PlayBehavior `json:"playBehavior,omitempty"`
}

func NewSpeech(t SpeechType, text, ssml string, pb PlayBehavior) Speech {
	return Speech{Type: t, Text: text, SSML: ssml, PlayBehavior: pb}
}

func PlainSpeech(text string) Speech {
	return Speech{Type: SpeechPlainText, Text: text}
}

func SSMLSpeech(ssml string) Speech {
	return Speech{Type: SpeechSSML, SSML: ssml}
}

// WithPlayBehavior returns a copy of s with the play behavior set.
func (s Speech) WithPlayBehavior(pb PlayBehavior) Speech {
	s.PlayBehavior = pb
	return s
}

// Reprompt wraps the speech played when the user does not answer.
type Reprompt struct {
	OutputSpeech Speech `json:"outputSpeech"`
}

func NewReprompt(s Speech) Reprompt {
	return Reprompt{OutputSpeech: s}
}
