package models

// Context is the environment snapshot taken at request time.
type Context struct {
	AudioPlayer map[string]any `json:"AudioPlayer,omitempty"`
	APL         *APLContext    `json:"Alexa.Presentation.APL,omitempty"`
	System      *System        `json:"System,omitempty"`
	Viewport    *Viewport      `json:"Viewport,omitempty"`
	Viewports   []Viewport     `json:"Viewports,omitempty"`
	Extensions  *Extensions    `json:"Extensions,omitempty"`
}

type Extensions struct {
	Available map[string]map[string]string `json:"available,omitempty"`
}

// System carries the endpoint and token for outbound API calls made by the caller.
type System struct {
	APIAccessToken string       `json:"apiAccessToken"`
	APIEndpoint    string       `json:"apiEndpoint"`
	Application    *Application `json:"application,omitempty"`
	Device         *Device      `json:"device,omitempty"`
	Unit           *Unit        `json:"unit,omitempty"`
	Person         *Person      `json:"person,omitempty"`
	User           *User        `json:"user,omitempty"`
}

type Device struct {
	DeviceID             string              `json:"deviceId"`
	SupportedInterfaces  SupportedInterfaces `json:"supportedInterfaces"`
	PersistentEndpointID string              `json:"persistentEndpointId,omitempty"`
}

// SupportedInterfaces records which optional interfaces the device has.
// A non-nil block means the interface is supported, whatever it contains.
type SupportedInterfaces struct {
	AudioPlayer *AudioPlayerInterface `json:"AudioPlayer,omitempty"`
	APL         *APLInterface         `json:"Alexa.Presentation.APL,omitempty"`
}

type AudioPlayerInterface struct{}

type APLInterface struct {
	Runtime map[string]string `json:"runtime,omitempty"`
}

type APLContext struct {
	Token                     string             `json:"token"`
	Version                   string             `json:"version"`
	ComponentsVisibleOnScreen []VisibleComponent `json:"componentsVisibleOnScreen,omitempty"`
}

type VisibleComponent struct {
	UID      string                `json:"uid"`
	Position string                `json:"position"`
	Type     string                `json:"type"`
	Tags     *VisibleComponentTags `json:"tags,omitempty"`
	Children []VisibleComponent    `json:"children,omitempty"`
	Entities []string              `json:"entities"`
}

type VisibleComponentTags struct {
	Viewport  map[string]string `json:"viewport,omitempty"`
	Clickable *bool             `json:"clickable,omitempty"`
	Focused   *bool             `json:"focused,omitempty"`
}

type Experience struct {
	CanRotate       *bool `json:"canRotate,omitempty"`
	CanResize       *bool `json:"canResize,omitempty"`
	ArcMinuteWidth  *int  `json:"arcMinuteWidth,omitempty"`
	ArcMinuteHeight *int  `json:"arcMinuteHeight,omitempty"`
}

type Viewport struct {
	PresentationType   string                 `json:"presentationType,omitempty"`
	Type               string                 `json:"type,omitempty"`
	Experiences        []Experience           `json:"experiences,omitempty"`
	Mode               string                 `json:"mode,omitempty"`
	Shape              string                 `json:"shape,omitempty"`
	CanRotate          *bool                  `json:"canRotate,omitempty"`
	CanResize          *bool                  `json:"canResize,omitempty"`
	ArcMinuteWidth     *int                   `json:"arcMinuteWidth,omitempty"`
	ArcMinuteHeight    *int                   `json:"arcMinuteHeight,omitempty"`
	PixelWidth         *int                   `json:"pixelWidth,omitempty"`
	PixelHeight        *int                   `json:"pixelHeight,omitempty"`
	DPI                *int                   `json:"dpi,omitempty"`
	CurrentPixelWidth  *int                   `json:"currentPixelWidth,omitempty"`
	CurrentPixelHeight *int                   `json:"currentPixelHeight,omitempty"`
	Keyboard           string                 `json:"keyboard,omitempty"`
	Touch              []string               `json:"touch,omitempty"`
	Video              *ViewportVideo         `json:"video,omitempty"`
	Size               *ViewportSize          `json:"size,omitempty"`
	Configuration      *ViewportConfiguration `json:"configuration,omitempty"`
}

type ViewportConfiguration struct {
	Current *Viewport `json:"current,omitempty"`
}

type ViewportVideo struct {
	Codecs []string `json:"codecs,omitempty"`
}

type ViewportSize struct {
	Type        string `json:"type,omitempty"`
	PixelWidth  *int   `json:"pixelWidth,omitempty"`
	PixelHeight *int   `json:"pixelHeight,omitempty"`
}
