package models

import "encoding/json"

// Response is the reply sent back to the platform.
type Response struct {
	Version           string                     `json:"version"`
	SessionAttributes map[string]json.RawMessage `json:"sessionAttributes,omitempty"`
	Body              ResponseBody               `json:"response"`
}

type ResponseBody struct {
	OutputSpeech     *Speech     `json:"outputSpeech,omitempty"`
	Card             *Card       `json:"card,omitempty"`
	Reprompt         *Reprompt   `json:"reprompt,omitempty"`
	Directives       []Directive `json:"directives,omitempty"`
	ShouldEndSession *bool       `json:"shouldEndSession,omitempty"`
}
