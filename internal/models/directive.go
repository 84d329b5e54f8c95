package models

import "encoding/json"

// Directive asks the device to perform a multimodal action. Document,
// datasources, sources and input are opaque JSON owned by the skill.
type Directive struct {
	Type         DirectiveType     `json:"type"`
	Token        string            `json:"token,omitempty"`
	Document     json.RawMessage   `json:"document,omitempty"`
	Datasources  json.RawMessage   `json:"datasources,omitempty"`
	Sources      json.RawMessage   `json:"sources,omitempty"`
	Commands     []json.RawMessage `json:"commands,omitempty"`
	URI          string            `json:"uri,omitempty"`
	Input        json.RawMessage   `json:"input,omitempty"`
	OnCompletion string            `json:"onCompletion,omitempty"`
}

func NewDirective(t DirectiveType) Directive {
	return Directive{Type: t}
}

func APLRenderDocument(token string, document, datasources, sources json.RawMessage) Directive {
	return Directive{
		Type:        DirectiveAPLRenderDocument,
		Token:       token,
		Document:    document,
		Datasources: datasources,
		Sources:     sources,
	}
}

func APLARenderDocument(token string, document, datasources, sources json.RawMessage) Directive {
	return Directive{
		Type:        DirectiveAPLARenderDocument,
		Token:       token,
		Document:    document,
		Datasources: datasources,
		Sources:     sources,
	}
}

func APLExecuteCommands(token string, commands ...json.RawMessage) Directive {
	return Directive{
		Type:     DirectiveAPLExecuteCommands,
		Token:    token,
		Commands: commands,
	}
}

// StartConnection hands the session over to the task at uri. onCompletion is
// RESUME_SESSION or SEND_ERRORS_ONLY; empty leaves the platform default.
func StartConnection(uri, token string, input json.RawMessage, onCompletion string) Directive {
	return Directive{
		Type:         DirectiveConnectionsStartConnection,
		Token:        token,
		URI:          uri,
		Input:        input,
		OnCompletion: onCompletion,
	}
}
