package main

import (
	"bitbucket.org/sotavant/alexa-skill/internal/accessor"
	"bitbucket.org/sotavant/alexa-skill/internal/logger"
	"bitbucket.org/sotavant/alexa-skill/internal/models"
	"bitbucket.org/sotavant/alexa-skill/internal/response"
	"bitbucket.org/sotavant/alexa-skill/internal/slots"
	"bitbucket.org/sotavant/alexa-skill/internal/store"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"net/http"
	"strings"
	"time"
)

const (
	intentReadMessages = "ReadMessagesIntent"
	intentSendMessage  = "SendMessageIntent"
	intentRegister     = "RegisterIntent"
	intentHelp         = "AMAZON.HelpIntent"
	intentStop         = "AMAZON.StopIntent"
	intentCancel       = "AMAZON.CancelIntent"

	slotRecipient = "recipient"
	slotMessage   = "message"
	slotName      = "name"

	inboxToken = "inbox"
)

const helpText = "You can say read my messages, send a message to someone, or register as a name."

// inboxDocument renders the inbox counter on screen devices.
const inboxDocument = `{"type":"APL","version":"1.8","mainTemplate":{"parameters":["payload"],"items":[{"type":"Text","text":"${payload.inbox.count} new messages"}]}}`

var errUnsupported = errors.New("unsupported request")

// sessionData is kept in the session_data attribute between turns.
type sessionData struct {
	LastRead int64 `json:"lastRead"`
}

type app struct {
	store store.Store
}

func newApp(s store.Store) *app {
	return &app{store: s}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))

		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger.Log.Debug("decoding request")
	var req models.Request
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp, err := a.handle(ctx, accessor.New(&req, logger.Log))
	switch {
	case errors.Is(err, errUnsupported):
		logger.Log.Debug("unsupported request type", zap.String("type", req.Body.Type))
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	case errors.Is(err, accessor.ErrUserIDNotFound):
		logger.Log.Debug("request without user", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	case err != nil:
		logger.Log.Debug("cannot handle request", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}

func (a *app) handle(ctx context.Context, acc *accessor.Accessor) (*models.Response, error) {
	switch t := acc.RequestType(); t {
	case models.TypeLaunchRequest:
		return a.launch(ctx, acc)
	case models.TypeIntentRequest:
		return a.intent(ctx, acc)
	case models.TypeSessionEndedRequest, models.TypeSessionResumedRequest:
		return response.DefaultSessionClose(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupported, t)
	}
}

func (a *app) launch(ctx context.Context, acc *accessor.Accessor) (*models.Response, error) {
	userID, err := acc.UserID()
	if err != nil {
		return nil, err
	}

	messages, err := a.store.ListMessages(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cannot load messages for user: %w", err)
	}

	n := len(unread(messages, lastRead(acc)))
	text := "You have no new messages."
	if n > 0 {
		text = fmt.Sprintf("You have %d new messages.", n)
	}
	if acc.IsNewSession() {
		text = "Welcome to voice mail. " + text
	}

	b := response.NewBuilder().
		Speak(models.PlainSpeech(text)).
		Reprompt(models.PlainSpeech(helpText)).
		WithShouldEndSession(false)

	if acc.IsAPLSupported() {
		datasources, _ := json.Marshal(map[string]any{
			"inbox": map[string]int{"count": n},
		})
		b.AddDirective(models.APLRenderDocument(inboxToken, json.RawMessage(inboxDocument), datasources, nil))
	}

	return b.Response(), nil
}

func (a *app) intent(ctx context.Context, acc *accessor.Accessor) (*models.Response, error) {
	name, err := acc.IntentName()
	if err != nil {
		return nil, err
	}

	logger.Log.Debug("handling intent", zap.String("intent", name), zap.String("locale", acc.Locale()))

	switch name {
	case intentReadMessages:
		return a.readMessages(ctx, acc)
	case intentSendMessage:
		return a.sendMessage(ctx, acc)
	case intentRegister:
		return a.register(ctx, acc)
	case intentHelp:
		return response.NewBuilder().
			Speak(models.PlainSpeech(helpText)).
			Reprompt(models.PlainSpeech(helpText)).
			WithShouldEndSession(false).
			Response(), nil
	case intentStop, intentCancel:
		return response.NewBuilder().
			Speak(models.PlainSpeech("Goodbye.")).
			WithShouldEndSession(true).
			Response(), nil
	}

	return response.NewBuilder().
		Speak(models.PlainSpeech("Sorry, I can't help with that.")).
		Reprompt(models.PlainSpeech(helpText)).
		WithShouldEndSession(false).
		Response(), nil
}

func (a *app) readMessages(ctx context.Context, acc *accessor.Accessor) (*models.Response, error) {
	userID, err := acc.UserID()
	if err != nil {
		return nil, err
	}

	messages, err := a.store.ListMessages(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cannot load messages for user: %w", err)
	}

	last := lastRead(acc)
	fresh := unread(messages, last)
	if len(fresh) == 0 {
		return response.NewBuilder().
			Speak(models.PlainSpeech("You have no new messages.")).
			WithShouldEndSession(false).
			Response(), nil
	}

	var spoken, card strings.Builder
	fmt.Fprintf(&spoken, "You have %d new messages.", len(fresh))
	for i, m := range fresh {
		fmt.Fprintf(&spoken, " Message %d: %s.", i+1, m.Payload)
		fmt.Fprintf(&card, "%s: %s\n", m.Time.Format(time.RFC822), m.Payload)
		if m.ID > last {
			last = m.ID
		}
	}

	data, err := json.Marshal(sessionData{LastRead: last})
	if err != nil {
		return nil, err
	}

	return response.NewBuilder().
		SetSessionAttributes(map[string]json.RawMessage{models.SessionDataKey: data}).
		Speak(models.PlainSpeech(spoken.String())).
		Card(models.SimpleCard("New messages", strings.TrimSpace(card.String()))).
		WithShouldEndSession(false).
		Response(), nil
}

func (a *app) sendMessage(ctx context.Context, acc *accessor.Accessor) (*models.Response, error) {
	userID, err := acc.UserID()
	if err != nil {
		return nil, err
	}

	values := acc.SlotValues()
	recipient, ok := slotValue(values, slotRecipient)
	if !ok {
		return elicit("Who should I send it to?"), nil
	}
	text, ok := slotValue(values, slotMessage)
	if !ok {
		return elicit("What should the message say?"), nil
	}

	to, err := a.store.FindRecipient(ctx, recipient)
	if errors.Is(err, store.ErrNotFound) {
		return response.NewBuilder().
			Speak(models.PlainSpeech(fmt.Sprintf("I don't know anyone called %s.", recipient))).
			Reprompt(models.PlainSpeech("Who should I send it to?")).
			WithShouldEndSession(false).
			Response(), nil
	}
	if err != nil {
		return nil, err
	}

	msg := store.Message{Sender: userID, Time: time.Now(), Payload: text}
	if err := a.store.SaveMessage(ctx, to, msg); err != nil {
		return nil, err
	}

	return response.NewBuilder().
		Speak(models.PlainSpeech(fmt.Sprintf("Message sent to %s.", recipient))).
		WithShouldEndSession(false).
		Response(), nil
}

func (a *app) register(ctx context.Context, acc *accessor.Accessor) (*models.Response, error) {
	userID, err := acc.UserID()
	if err != nil {
		return nil, err
	}

	name, ok := slotValue(acc.SlotValues(), slotName)
	if !ok {
		return elicit("What name should people use to reach you?"), nil
	}

	if err := a.store.RegisterRecipient(ctx, name, userID); err != nil {
		return nil, err
	}

	return response.NewBuilder().
		Speak(models.PlainSpeech(fmt.Sprintf("You can now receive messages as %s.", name))).
		Card(models.SimpleCard("Registered", name)).
		WithShouldEndSession(false).
		Response(), nil
}

func elicit(question string) *models.Response {
	return response.NewBuilder().
		Speak(models.PlainSpeech(question)).
		Reprompt(models.PlainSpeech(question)).
		WithShouldEndSession(false).
		Response()
}

// slotValue finds a non-empty slot by key. Resolved slots are matched by type
// and answer with their canonical name.
func slotValue(values []slots.Descriptor, key string) (string, bool) {
	for _, d := range values {
		switch {
		case d.ID == slots.NestedSlotID && d.Type == key && d.Name != "":
			return d.Name, true
		case d.ID == key && d.Value != "":
			return d.Value, true
		}
	}
	return "", false
}

// lastRead is zero when the session carries no state yet.
func lastRead(acc *accessor.Accessor) int64 {
	raw, err := acc.SessionData()
	if err != nil {
		return 0
	}
	var data sessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Log.Debug("cannot decode session data", zap.Error(err))
		return 0
	}
	return data.LastRead
}

func unread(messages []store.Message, after int64) []store.Message {
	out := make([]store.Message, 0, len(messages))
	for _, m := range messages {
		if m.ID > after {
			out = append(out, m)
		}
	}
	return out
}
