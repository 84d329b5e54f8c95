// Package accessor answers questions about a decoded request: who the user is,
// which session it belongs to, what the device can do. Every operation is
// read-only; diagnostics go to the injected logger and never change results.
package accessor

import (
	"bitbucket.org/sotavant/alexa-skill/internal/models"
	"bitbucket.org/sotavant/alexa-skill/internal/slots"
	"encoding/json"
	"errors"
	"fmt"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound           = errors.New("session not found")
	ErrUserIDNotFound            = errors.New("userId not found")
	ErrAccessTokenNotFound       = errors.New("access token not found")
	ErrSessionAttributesNotFound = errors.New("session attributes not found")
	ErrSessionDataKeyMissing     = errors.New(models.SessionDataKey + " not found in session attributes")
	ErrNotAnIntentRequest        = errors.New("not an intent request")
	ErrIntentNameNotFound        = errors.New("intent name not found")
)

type Accessor struct {
	req *models.Request
	log *zap.Logger
}

// New wraps req. A nil log discards diagnostics.
func New(req *models.Request, log *zap.Logger) *Accessor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Accessor{req: req, log: log}
}

// Request returns the wrapped request.
func (a *Accessor) Request() *models.Request {
	return a.req
}

// RequestType classifies the request body type. Unknown types fall back to
// models.FallbackRequestType.
func (a *Accessor) RequestType() models.RequestType {
	t, ok := models.ParseRequestType(a.req.Body.Type)
	if !ok {
		a.log.Error("unknown request type", zap.String("type", a.req.Body.Type))
	}
	return t
}

// IsNewSession reports the session's new flag. A request without a session
// is reported as not new.
func (a *Accessor) IsNewSession() bool {
	if a.req.Session == nil {
		a.log.Warn("session not found")
		return false
	}
	return a.req.Session.New
}

func (a *Accessor) SessionID() (string, error) {
	if a.req.Session == nil {
		return "", ErrSessionNotFound
	}
	return a.req.Session.SessionID, nil
}

// UserID returns the user id. When both the session and the system carry a
// user, the system one wins.
func (a *Accessor) UserID() (string, error) {
	id, ok := a.resolveUser(func(u *models.User) string { return u.UserID })
	if !ok {
		return "", ErrUserIDNotFound
	}
	return id, nil
}

// UserAccessToken follows the same precedence as UserID.
func (a *Accessor) UserAccessToken() (string, error) {
	token, ok := a.resolveUser(func(u *models.User) string { return u.AccessToken })
	if !ok {
		return "", ErrAccessTokenNotFound
	}
	return token, nil
}

func (a *Accessor) resolveUser(field func(*models.User) string) (string, bool) {
	var (
		value string
		found bool
	)
	if u := a.sessionUser(); u != nil {
		if v := field(u); v != "" {
			value, found = v, true
		}
	}
	if u := a.systemUser(); u != nil {
		if v := field(u); v != "" {
			value, found = v, true
		}
	}
	return value, found
}

func (a *Accessor) sessionUser() *models.User {
	if a.req.Session == nil {
		a.log.Debug("session not found")
		return nil
	}
	return a.req.Session.User
}

func (a *Accessor) systemUser() *models.User {
	if a.req.Context.System == nil {
		a.log.Debug("system not found")
		return nil
	}
	return a.req.Context.System.User
}

// SessionData returns the raw session_data attribute. Without a session the
// error matches both ErrSessionAttributesNotFound and ErrSessionNotFound.
func (a *Accessor) SessionData() (json.RawMessage, error) {
	if a.req.Session == nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionAttributesNotFound, ErrSessionNotFound)
	}
	if a.req.Session.Attributes == nil {
		return nil, ErrSessionAttributesNotFound
	}
	data, ok := a.req.Session.Attributes[models.SessionDataKey]
	if !ok {
		return nil, ErrSessionDataKeyMissing
	}
	return data, nil
}

// IntentName is only defined for IntentRequest, whatever the body carries.
func (a *Accessor) IntentName() (string, error) {
	if a.req.Body.Type != models.TypeIntentRequest.String() {
		return "", ErrNotAnIntentRequest
	}
	if a.req.Body.Intent == nil {
		return "", ErrIntentNameNotFound
	}
	return a.req.Body.Intent.Name, nil
}

func (a *Accessor) Locale() string {
	return a.req.Body.Locale
}

// SlotValues flattens the intent slots, see slots.Extract.
func (a *Accessor) SlotValues() []slots.Descriptor {
	if a.req.Body.Intent == nil {
		a.log.Debug("intent not found")
		return nil
	}
	return slots.Extract(a.req.Body.Intent)
}

func (a *Accessor) IsAPLSupported() bool {
	si := a.supportedInterfaces()
	ok := si != nil && si.APL != nil
	a.log.Debug("APL support probed", zap.Bool("supported", ok))
	return ok
}

func (a *Accessor) IsAudioPlayerSupported() bool {
	si := a.supportedInterfaces()
	ok := si != nil && si.AudioPlayer != nil
	a.log.Debug("AudioPlayer support probed", zap.Bool("supported", ok))
	return ok
}

func (a *Accessor) supportedInterfaces() *models.SupportedInterfaces {
	sys := a.req.Context.System
	if sys == nil {
		a.log.Debug("system not found")
		return nil
	}
	if sys.Device == nil {
		a.log.Debug("device not found")
		return nil
	}
	return &sys.Device.SupportedInterfaces
}
