// Package redis keeps messages in Redis.
//
// Keys:
//
//	recipients        hash username -> userId
//	messages:seq      message id counter
//	message:<id>      JSON encoded message
//	inbox:<userId>    list of message ids, oldest first
package redis

import (
	"bitbucket.org/sotavant/alexa-skill/internal/store"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"strconv"
	"time"
)

const (
	keyRecipients = "recipients"
	keySeq        = "messages:seq"
)

func messageKey(id int64) string {
	return "message:" + strconv.FormatInt(id, 10)
}

func inboxKey(userID string) string {
	return "inbox:" + userID
}

var _ store.Store = (*Store)(nil)

type Store struct {
	client *goredis.Client
	log    *zap.Logger
}

// New connects to the server at url (redis://...) and pings it.
func New(url string, log *zap.Logger) (*Store, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("connected to redis", zap.String("addr", opts.Addr))
	return NewWithClient(client, log), nil
}

func NewWithClient(client *goredis.Client, log *zap.Logger) *Store {
	return &Store{client: client, log: log}
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) FindRecipient(ctx context.Context, username string) (string, error) {
	id, err := s.client.HGet(ctx, keyRecipients, username).Result()
	if errors.Is(err, goredis.Nil) {
		return "", fmt.Errorf("recipient %q: %w", username, store.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("find recipient: %w", err)
	}
	return id, nil
}

func (s *Store) RegisterRecipient(ctx context.Context, username, userID string) error {
	if err := s.client.HSet(ctx, keyRecipients, username, userID).Err(); err != nil {
		return fmt.Errorf("register recipient: %w", err)
	}
	return nil
}

func (s *Store) ListMessages(ctx context.Context, userID string) ([]store.Message, error) {
	ids, err := s.client.LRange(ctx, inboxKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list inbox: %w", err)
	}
	if len(ids) == 0 {
		return []store.Message{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = "message:" + id
	}

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	out := make([]store.Message, 0, len(vals))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			s.log.Warn("inbox references missing message", zap.String("key", keys[i]))
			continue
		}
		var msg store.Message
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		out = append(out, msg)
	}
	return out, nil
}

func (s *Store) GetMessage(ctx context.Context, id int64) (*store.Message, error) {
	raw, err := s.client.Get(ctx, messageKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("message %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}

	var msg store.Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("decode message %d: %w", id, err)
	}
	return &msg, nil
}

func (s *Store) SaveMessage(ctx context.Context, userID string, msg store.Message) error {
	id, err := s.client.Incr(ctx, keySeq).Result()
	if err != nil {
		return fmt.Errorf("next message id: %w", err)
	}
	msg.ID = id

	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Set(ctx, messageKey(id), raw, 0)
		p.RPush(ctx, inboxKey(userID), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}

	s.log.Debug("message saved", zap.Int64("id", id), zap.String("recipient", userID))
	return nil
}
