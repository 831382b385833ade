package wa

// MessageKey identifies an event: the message id, origin flag, the chat JID
// and, for group contexts, the sending participant.
type MessageKey struct {
	ID          string `json:"id"`
	FromMe      bool   `json:"fromMe"`
	RemoteJID   string `json:"remoteJid"`
	Participant string `json:"participant,omitempty"`
}

// Event is an inbound message event as delivered by the bridge.
type Event struct {
	Key         MessageKey    `json:"key"`
	Message     *MessageUnion `json:"message,omitempty"`
	Participant string        `json:"participant,omitempty"`
}

// MessageUnion is the inbound message-content union, keyed by content kind.
// At most one variant is expected to be present.
type MessageUnion struct {
	Conversation        string               `json:"conversation,omitempty"`
	ExtendedText        *ExtendedText        `json:"extendedTextMessage,omitempty"`
	Image               *MediaMessage        `json:"imageMessage,omitempty"`
	Video               *MediaMessage        `json:"videoMessage,omitempty"`
	Document            *MediaMessage        `json:"documentMessage,omitempty"`
	ListResponse        *ListResponse        `json:"listResponseMessage,omitempty"`
	ButtonsResponse     *ButtonsResponse     `json:"buttonsResponseMessage,omitempty"`
	InteractiveResponse *InteractiveResponse `json:"interactiveResponseMessage,omitempty"`
}

type ExtendedText struct {
	Text string `json:"text,omitempty"`
}

type MediaMessage struct {
	Caption  string `json:"caption,omitempty"`
	Title    string `json:"title,omitempty"`
	Mimetype string `json:"mimetype,omitempty"`
}

type ListResponse struct {
	Title             string             `json:"title,omitempty"`
	Description       string             `json:"description,omitempty"`
	SingleSelectReply *SingleSelectReply `json:"singleSelectReply,omitempty"`
}

type SingleSelectReply struct {
	SelectedRowID string `json:"selectedRowId,omitempty"`
}

type ButtonsResponse struct {
	SelectedButtonID    string `json:"selectedButtonId,omitempty"`
	SelectedDisplayText string `json:"selectedDisplayText,omitempty"`
}

type InteractiveResponse struct {
	NativeFlowResponse *NativeFlowResponse `json:"nativeFlowResponseMessage,omitempty"`
}

type NativeFlowResponse struct {
	Name       string `json:"name,omitempty"`
	ParamsJSON string `json:"paramsJson,omitempty"`
}

// Content-kind tags, matching the union's wire field names.
const (
	KindConversation        = "conversation"
	KindExtendedText        = "extendedTextMessage"
	KindImage               = "imageMessage"
	KindVideo               = "videoMessage"
	KindDocument            = "documentMessage"
	KindListResponse        = "listResponseMessage"
	KindButtonsResponse     = "buttonsResponseMessage"
	KindInteractiveResponse = "interactiveResponseMessage"
)

// ContentType returns the tag of the first present variant, conversation
// first, or "" when the union is empty.
func (m *MessageUnion) ContentType() string {
	switch {
	case m == nil:
		return ""
	case m.Conversation != "":
		return KindConversation
	case m.ExtendedText != nil:
		return KindExtendedText
	case m.Image != nil:
		return KindImage
	case m.Video != nil:
		return KindVideo
	case m.Document != nil:
		return KindDocument
	case m.ListResponse != nil:
		return KindListResponse
	case m.ButtonsResponse != nil:
		return KindButtonsResponse
	case m.InteractiveResponse != nil:
		return KindInteractiveResponse
	default:
		return ""
	}
}
