package wa

import "context"

// MessageContent is the outbound payload union accepted by the bridge.
// Exactly one payload shape is expected to be set per send.
type MessageContent struct {
	Text string `json:"text,omitempty"`

	Image    []byte `json:"image,omitempty"`
	Video    []byte `json:"video,omitempty"`
	Audio    []byte `json:"audio,omitempty"`
	Document []byte `json:"document,omitempty"`

	Caption  string `json:"caption,omitempty"`
	FileName string `json:"fileName,omitempty"`
	Mimetype string `json:"mimetype,omitempty"`
	PTT      bool   `json:"ptt,omitempty"`

	Poll     *Poll        `json:"poll,omitempty"`
	Location *Location    `json:"location,omitempty"`
	Contacts *ContactList `json:"contacts,omitempty"`
}

type Poll struct {
	Name            string   `json:"name"`
	Values          []string `json:"values"`
	SelectableCount int      `json:"selectableCount"`
}

type Location struct {
	DegreesLatitude  float64 `json:"degreesLatitude"`
	DegreesLongitude float64 `json:"degreesLongitude"`
	Caption          string  `json:"caption,omitempty"`
}

type ContactList struct {
	DisplayName string    `json:"displayName"`
	Contacts    []Contact `json:"contacts"`
}

type Contact struct {
	VCard string `json:"vcard"`
}

// QuotedStub is the quoted-message reference attached to replies. The bot
// sends a synthetic stub rather than the true quoted message.
type QuotedStub struct {
	Key          MessageKey `json:"key"`
	Conversation string     `json:"conversation"`
}

type SendOptions struct {
	Quoted *QuotedStub `json:"quoted,omitempty"`
}

type Presence string

const (
	PresenceAvailable   Presence = "available"
	PresenceUnavailable Presence = "unavailable"
	PresenceComposing   Presence = "composing"
	PresenceRecording   Presence = "recording"
	PresencePaused      Presence = "paused"
)

// Client is the outbound send contract against the external messaging
// client. The concrete protocol implementation lives behind the bridge.
type Client interface {
	SendMessage(ctx context.Context, jid string, content MessageContent, opts *SendOptions) error
	SendPresence(ctx context.Context, state Presence, jid string) error
}
