package models

import "encoding/json"

const commandControlMedia = "ControlMedia"

// ControlMedia is the APL command controlling a video component.
type ControlMedia struct {
	Type        string `json:"type"`
	ComponentID string `json:"componentId"`
	Command     string `json:"command"`
	Value       *int   `json:"value,omitempty"`
}

func NewControlMedia(componentID, command string, value *int) ControlMedia {
	return ControlMedia{
		Type:        commandControlMedia,
		ComponentID: componentID,
		Command:     command,
		Value:       value,
	}
}

// Raw encodes the command for use in APLExecuteCommands.
func (c ControlMedia) Raw() json.RawMessage {
	// cannot fail: only strings and an int
	b, _ := json.Marshal(c)
	return b
}
