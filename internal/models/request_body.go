package models

import (
	"encoding/json"
	"fmt"
)

// RequestBody is the event that triggered the request. Type is kept as the raw
// wire string so that unknown types never fail decoding; see ParseRequestType.
type RequestBody struct {
	Type                       string            `json:"type"`
	RequestID                  string            `json:"requestId"`
	Timestamp                  string            `json:"timestamp"`
	Locale                     string            `json:"locale"`
	DialogState                string            `json:"dialogState,omitempty"`
	Token                      string            `json:"token,omitempty"`
	Arguments                  []json.RawMessage `json:"arguments,omitempty"`
	Source                     json.RawMessage   `json:"source,omitempty"`
	Components                 json.RawMessage   `json:"components,omitempty"`
	Intent                     *Intent           `json:"intent,omitempty"`
	Reason                     string            `json:"reason,omitempty"`
	Error                      *RequestError     `json:"error,omitempty"`
	ShouldLinkResultBeReturned *bool             `json:"shouldLinkResultBeReturned,omitempty"`
	Cause                      *Cause            `json:"cause,omitempty"`
}

type RequestError struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

// Cause describes why a Connections.Response was sent back to the skill.
type Cause struct {
	Type   string            `json:"type"`
	Token  string            `json:"token"`
	Status map[string]string `json:"status"`
	Result map[string]string `json:"result,omitempty"`
}

// Flatten returns the cause as a single-level map with status_ and result_
// prefixed keys.
func (c Cause) Flatten() map[string]string {
	m := make(map[string]string, 2+len(c.Status)+len(c.Result))
	m["cause_type"] = c.Type
	m["token"] = c.Token
	for k, v := range c.Status {
		m[fmt.Sprintf("status_%s", k)] = v
	}
	for k, v := range c.Result {
		m[fmt.Sprintf("result_%s", k)] = v
	}
	return m
}

type Intent struct {
	Name               string          `json:"name"`
	ConfirmationStatus string          `json:"confirmationStatus,omitempty"`
	Slots              map[string]Slot `json:"slots,omitempty"`
}

// Slot is a recognized intent parameter. SlotValue nests the same shape again,
// the platform sends at most two levels of it.
type Slot struct {
	Name               string       `json:"name"`
	Value              string       `json:"value,omitempty"`
	ConfirmationStatus string       `json:"confirmationStatus,omitempty"`
	SlotValue          *Slot        `json:"slotValue,omitempty"`
	Resolutions        *Resolutions `json:"resolutions,omitempty"`
}

type Resolutions struct {
	PerAuthority []AuthorityResolution `json:"resolutionsPerAuthority"`
}

// AuthorityResolution holds the candidates one resolution authority offers,
// best first.
type AuthorityResolution struct {
	Authority string            `json:"authority"`
	Status    ResolutionStatus  `json:"status"`
	Values    []ResolutionValue `json:"values"`
}

type ResolutionStatus struct {
	Code string `json:"code"`
}

type ResolutionValue struct {
	Value ResolvedEntity `json:"value"`
}

type ResolvedEntity struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}
