package store

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// Store keeps the voice messages exchanged between skill users.
type Store interface {
	// FindRecipient returns the userId registered under username.
	FindRecipient(ctx context.Context, username string) (userID string, err error)
	// RegisterRecipient makes userID reachable as username.
	RegisterRecipient(ctx context.Context, username, userID string) error
	ListMessages(ctx context.Context, userID string) ([]Message, error)
	GetMessage(ctx context.Context, id int64) (*Message, error)
	SaveMessage(ctx context.Context, userID string, msg Message) error
}

type Message struct {
	ID      int64     `json:"id"`
	Sender  string    `json:"sender"`
	Time    time.Time `json:"time"`
	Payload string    `json:"payload"`
}
