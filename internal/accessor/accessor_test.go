package accessor

import (
	"bitbucket.org/sotavant/alexa-skill/internal/models"
	"bitbucket.org/sotavant/alexa-skill/internal/slots"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"testing"
)

func newRequest(session *models.Session, system *models.System) *models.Request {
	return &models.Request{
		Version: "1.0",
		Session: session,
		Body: models.RequestBody{
			Type:   models.TypeLaunchRequest.String(),
			Locale: "en-US",
		},
		Context: models.Context{System: system},
	}
}

func TestUserID(t *testing.T) {
	testCases := []struct {
		name    string
		session *models.Session
		system  *models.System
		want    string
		wantErr error
	}{
		{
			name:    "system_overrides_session",
			session: &models.Session{User: &models.User{UserID: "session-user"}},
			system:  &models.System{User: &models.User{UserID: "system-user"}},
			want:    "system-user",
		},
		{
			name:    "session_only",
			session: &models.Session{User: &models.User{UserID: "session-user"}},
			system:  &models.System{},
			want:    "session-user",
		},
		{
			name:   "system_only",
			system: &models.System{User: &models.User{UserID: "system-user"}},
			want:   "system-user",
		},
		{
			name:    "system_user_empty_id",
			session: &models.Session{User: &models.User{UserID: "session-user"}},
			system:  &models.System{User: &models.User{}},
			want:    "session-user",
		},
		{
			name:    "neither",
			session: &models.Session{},
			wantErr: ErrUserIDNotFound,
		},
		{
			name:    "nothing_at_all",
			wantErr: ErrUserIDNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(newRequest(tc.session, tc.system), nil).UserID()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUserAccessToken(t *testing.T) {
	testCases := []struct {
		name    string
		session *models.Session
		system  *models.System
		want    string
		wantErr error
	}{
		{
			name:    "system_overrides_session",
			session: &models.Session{User: &models.User{UserID: "u", AccessToken: "session-token"}},
			system:  &models.System{User: &models.User{UserID: "u", AccessToken: "system-token"}},
			want:    "system-token",
		},
		{
			name:    "system_user_without_token",
			session: &models.Session{User: &models.User{UserID: "u", AccessToken: "session-token"}},
			system:  &models.System{User: &models.User{UserID: "u"}},
			want:    "session-token",
		},
		{
			name:   "system_only",
			system: &models.System{User: &models.User{UserID: "u", AccessToken: "system-token"}},
			want:   "system-token",
		},
		{
			name:    "absent",
			session: &models.Session{User: &models.User{UserID: "u"}},
			system:  &models.System{User: &models.User{UserID: "u"}},
			wantErr: ErrAccessTokenNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(newRequest(tc.session, tc.system), nil).UserAccessToken()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSession(t *testing.T) {
	t.Run("no_session", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		a := New(newRequest(nil, nil), zap.New(core))

		assert.False(t, a.IsNewSession())
		assert.Equal(t, 1, logs.FilterMessage("session not found").Len())

		_, err := a.SessionID()
		assert.ErrorIs(t, err, ErrSessionNotFound)

		_, err = a.SessionData()
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.ErrorIs(t, err, ErrSessionAttributesNotFound)
	})

	t.Run("new_session", func(t *testing.T) {
		a := New(newRequest(&models.Session{New: true, SessionID: "s-1"}, nil), nil)

		assert.True(t, a.IsNewSession())
		id, err := a.SessionID()
		require.NoError(t, err)
		assert.Equal(t, "s-1", id)
	})
}

func TestSessionData(t *testing.T) {
	testCases := []struct {
		name    string
		session *models.Session
		want    string
		wantErr error
	}{
		{
			name:    "no_session",
			wantErr: ErrSessionAttributesNotFound,
		},
		{
			name:    "no_attributes",
			session: &models.Session{},
			wantErr: ErrSessionAttributesNotFound,
		},
		{
			name: "key_missing",
			session: &models.Session{Attributes: map[string]json.RawMessage{
				"other": json.RawMessage(`1`),
			}},
			wantErr: ErrSessionDataKeyMissing,
		},
		{
			name: "present",
			session: &models.Session{Attributes: map[string]json.RawMessage{
				models.SessionDataKey: json.RawMessage(`{"lastRead":2}`),
			}},
			want: `{"lastRead":2}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(newRequest(tc.session, nil), nil).SessionData()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(got))
		})
	}
}

func TestIntentName(t *testing.T) {
	intent := &models.Intent{Name: "ReadMessagesIntent"}

	t.Run("intent_request", func(t *testing.T) {
		req := newRequest(nil, nil)
		req.Body.Type = models.TypeIntentRequest.String()
		req.Body.Intent = intent

		name, err := New(req, nil).IntentName()
		require.NoError(t, err)
		assert.Equal(t, "ReadMessagesIntent", name)
	})

	t.Run("not_intent_request_with_intent", func(t *testing.T) {
		req := newRequest(nil, nil)
		req.Body.Type = models.TypeCanFulfillIntentRequest.String()
		req.Body.Intent = intent

		_, err := New(req, nil).IntentName()
		assert.ErrorIs(t, err, ErrNotAnIntentRequest)
	})

	t.Run("intent_missing", func(t *testing.T) {
		req := newRequest(nil, nil)
		req.Body.Type = models.TypeIntentRequest.String()

		_, err := New(req, nil).IntentName()
		assert.ErrorIs(t, err, ErrIntentNameNotFound)
	})
}

func TestRequestType(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	req := newRequest(nil, nil)
	req.Body.Type = "Alexa.Unknown"
	assert.Equal(t, models.FallbackRequestType, New(req, zap.New(core)).RequestType())
	assert.Equal(t, 1, logs.Len())

	req.Body.Type = "SessionResumedRequest"
	assert.Equal(t, models.TypeSessionResumedRequest, New(req, zap.New(core)).RequestType())
	assert.Equal(t, 1, logs.Len())
}

func TestLocale(t *testing.T) {
	assert.Equal(t, "en-US", New(newRequest(nil, nil), nil).Locale())
}

func TestCapabilities(t *testing.T) {
	testCases := []struct {
		name      string
		system    *models.System
		wantAPL   bool
		wantAudio bool
	}{
		{
			name: "no_system",
		},
		{
			name:   "no_device",
			system: &models.System{},
		},
		{
			name:   "no_interfaces",
			system: &models.System{Device: &models.Device{DeviceID: "d"}},
		},
		{
			name: "apl_only",
			system: &models.System{Device: &models.Device{
				SupportedInterfaces: models.SupportedInterfaces{APL: &models.APLInterface{}},
			}},
			wantAPL: true,
		},
		{
			name: "both",
			system: &models.System{Device: &models.Device{
				SupportedInterfaces: models.SupportedInterfaces{
					APL:         &models.APLInterface{Runtime: map[string]string{"maxVersion": "1.8"}},
					AudioPlayer: &models.AudioPlayerInterface{},
				},
			}},
			wantAPL:   true,
			wantAudio: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := New(newRequest(nil, tc.system), nil)
			assert.Equal(t, tc.wantAPL, a.IsAPLSupported())
			assert.Equal(t, tc.wantAudio, a.IsAudioPlayerSupported())
		})
	}
}

func TestCapabilitiesFromJSON(t *testing.T) {
	var req models.Request
	body := `{"version":"1.0","context":{"System":{"apiAccessToken":"t","apiEndpoint":"e","device":{"deviceId":"d","supportedInterfaces":{"AudioPlayer":{}}}}},"request":{"type":"LaunchRequest","requestId":"r","timestamp":"t","locale":"en-US"}}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	a := New(&req, nil)
	assert.True(t, a.IsAudioPlayerSupported())
	assert.False(t, a.IsAPLSupported())
}

func TestSlotValues(t *testing.T) {
	req := newRequest(nil, nil)
	assert.Empty(t, New(req, nil).SlotValues())

	req.Body.Intent = &models.Intent{
		Name: "WeatherIntent",
		Slots: map[string]models.Slot{
			"city": {Name: "City", Value: "Seattle"},
		},
	}
	assert.Equal(t, []slots.Descriptor{
		{ID: "city", Name: "City", Value: "Seattle", Type: "City"},
	}, New(req, nil).SlotValues())
}
