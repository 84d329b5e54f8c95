package models

import "encoding/json"

// Request describes an inbound skill request.
// The core only reads it; the caller owns decoding.
type Request struct {
	Version string      `json:"version"`
	Session *Session    `json:"session,omitempty"`
	Body    RequestBody `json:"request"`
	Context Context     `json:"context"`
}

// SessionDataKey is the well-known session attribute holding skill state.
const SessionDataKey = "session_data"

type Session struct {
	New         bool                       `json:"new"`
	SessionID   string                     `json:"sessionId"`
	Application *Application               `json:"application,omitempty"`
	Attributes  map[string]json.RawMessage `json:"attributes,omitempty"`
	User        *User                      `json:"user,omitempty"`
}

type Application struct {
	ApplicationID string       `json:"applicationId"`
	AccessToken   string       `json:"accessToken,omitempty"`
	Permissions   *Permissions `json:"permissions,omitempty"`
}

type Permissions struct {
	ConsentToken string `json:"consentToken,omitempty"`
}

type User struct {
	UserID      string       `json:"userId"`
	AccessToken string       `json:"accessToken,omitempty"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

type Unit struct {
	UnitID           string `json:"unitId"`
	PersistentUnitID string `json:"persistentUnitId,omitempty"`
}

type Person struct {
	PersonID    string `json:"personId"`
	AccessToken string `json:"accessToken,omitempty"`
}
