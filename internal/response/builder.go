// Package response composes skill responses.
package response

import (
	"bitbucket.org/sotavant/alexa-skill/internal/models"
	"encoding/json"
)

const DefaultVersion = "1.0"

// Builder accumulates one response. It is not safe for concurrent use and must
// not be shared between requests. Setters overwrite: the last call wins.
type Builder struct {
	resp models.Response
}

func New(version string) *Builder {
	return &Builder{resp: models.Response{Version: version}}
}

func NewBuilder() *Builder {
	return New(DefaultVersion)
}

// DefaultSessionClose returns a response that only ends the session.
func DefaultSessionClose() *models.Response {
	return NewBuilder().WithShouldEndSession(true).Response()
}

// SetSessionAttributes replaces the attributes, nothing is merged.
func (b *Builder) SetSessionAttributes(attrs map[string]json.RawMessage) *Builder {
	b.resp.SessionAttributes = attrs
	return b
}

func (b *Builder) Speak(s models.Speech) *Builder {
	b.resp.Body.OutputSpeech = &s
	return b
}

func (b *Builder) Reprompt(s models.Speech) *Builder {
	r := models.NewReprompt(s)
	b.resp.Body.Reprompt = &r
	return b
}

func (b *Builder) Card(c models.Card) *Builder {
	b.resp.Body.Card = &c
	return b
}

// AddDirective appends d; directives keep their insertion order.
func (b *Builder) AddDirective(d models.Directive) *Builder {
	b.resp.Body.Directives = append(b.resp.Body.Directives, d)
	return b
}

func (b *Builder) WithShouldEndSession(end bool) *Builder {
	b.resp.Body.ShouldEndSession = &end
	return b
}

// Response returns a snapshot of the response built so far.
func (b *Builder) Response() *models.Response {
	r := b.resp
	if b.resp.Body.Directives != nil {
		r.Body.Directives = append([]models.Directive(nil), b.resp.Body.Directives...)
	}
	return &r
}
