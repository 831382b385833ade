package message

import (
	"encoding/json"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/marcelandrean/wabot/pkg/config"
	"github.com/marcelandrean/wabot/pkg/wa"
)

// Normalizer converts inbound bridge events into Message records bound to
// the outbound client.
type Normalizer struct {
	client   wa.Client
	cfg      *config.Config
	resolver *Resolver
}

func NewNormalizer(client wa.Client, cfg *config.Config) *Normalizer {
	return &Normalizer{
		client:   client,
		cfg:      cfg,
		resolver: NewResolver(),
	}
}

// Normalize builds the Message record for ev. It returns (nil, false) when
// the event carries no message content; no dispatch should happen then.
func (n *Normalizer) Normalize(ev *wa.Event) (*Message, bool) {
	if ev == nil || ev.Message == nil {
		return nil, false
	}

	m := &Message{
		ID:       ev.Key.ID,
		ChatID:   ev.Key.RemoteJID,
		FromMe:   ev.Key.FromMe,
		client:   n.client,
		resolver: n.resolver,
	}

	m.ChatKind = classifyChat(m.ChatID)
	m.SenderID = senderID(ev, m.ChatKind)
	m.IsOwner = n.cfg.OwnerNumber != "" && wa.DecodeUser(m.SenderID) == n.cfg.OwnerNumber

	m.ContentKind = ev.Message.ContentType()
	m.Body = extractBody(ev.Message, m.ContentKind)
	m.DisplayText = extractDisplayText(ev.Message, m.ContentKind)

	m.IsCommand, m.Cmd, m.Args = parseCommand(m.Body, n.cfg.Prefix, n.cfg.SplitArgs)

	return m, true
}

func classifyChat(jid string) ChatKind {
	switch {
	case wa.IsGroupJID(jid):
		return ChatGroup
	case wa.IsNewsletterJID(jid):
		return ChatNewsletter
	case wa.IsBroadcastJID(jid):
		return ChatStory
	default:
		return ChatDirect
	}
}

func senderID(ev *wa.Event, kind ChatKind) string {
	switch kind {
	case ChatNewsletter:
		return ""
	case ChatGroup, ChatStory:
		if ev.Key.Participant != "" {
			return ev.Key.Participant
		}
		return wa.NormalizeUser(ev.Participant)
	default:
		return ev.Key.RemoteJID
	}
}

// extractBody returns the canonical text payload for the active content
// kind, following the ordered fallbacks of the inbound contract.
func extractBody(m *wa.MessageUnion, kind string) string {
	switch kind {
	case wa.KindConversation:
		return m.Conversation
	case wa.KindExtendedText:
		return m.ExtendedText.Text
	case wa.KindImage:
		return m.Image.Caption
	case wa.KindVideo:
		return m.Video.Caption
	case wa.KindDocument:
		return m.Document.Caption
	case wa.KindListResponse:
		if m.ListResponse.SingleSelectReply != nil {
			return m.ListResponse.SingleSelectReply.SelectedRowID
		}
		return ""
	case wa.KindButtonsResponse:
		return m.ButtonsResponse.SelectedButtonID
	case wa.KindInteractiveResponse:
		return flowResponseID(m.InteractiveResponse)
	default:
		return ""
	}
}

// extractDisplayText is the secondary best-effort rendering used for quoting.
func extractDisplayText(m *wa.MessageUnion, kind string) string {
	switch kind {
	case wa.KindConversation:
		return m.Conversation
	case wa.KindExtendedText:
		return m.ExtendedText.Text
	case wa.KindImage:
		return m.Image.Caption
	case wa.KindVideo:
		return m.Video.Caption
	case wa.KindDocument:
		if m.Document.Caption != "" {
			return m.Document.Caption
		}
		return m.Document.Title
	case wa.KindListResponse:
		if m.ListResponse.Description != "" {
			return m.ListResponse.Description
		}
		return m.ListResponse.Title
	case wa.KindButtonsResponse:
		return m.ButtonsResponse.SelectedDisplayText
	case wa.KindInteractiveResponse:
		if m.InteractiveResponse.NativeFlowResponse != nil {
			return m.InteractiveResponse.NativeFlowResponse.Name
		}
		return ""
	default:
		return ""
	}
}

// flowResponseID pulls the "id" parameter out of a flow-response payload.
func flowResponseID(ir *wa.InteractiveResponse) string {
	if ir.NativeFlowResponse == nil || ir.NativeFlowResponse.ParamsJSON == "" {
		return ""
	}
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(ir.NativeFlowResponse.ParamsJSON), &params); err != nil {
		return ""
	}
	return params.ID
}

// parseCommand derives the command token and argument list from a body.
// The command is the first whitespace-delimited token with the prefix
// stripped, NFKC-normalized and lowercased; arguments are the remainder of
// the body split on the configured separator, trimmed, empties dropped.
func parseCommand(body, prefix, splitArgs string) (bool, string, []string) {
	trimmed := strings.TrimSpace(body)
	isCommand := prefix != "" && strings.HasPrefix(trimmed, prefix)

	normalized := norm.NFKC.String(trimmed)
	stripped := strings.Replace(normalized, prefix, "", 1)

	cmd := stripped
	if i := strings.IndexFunc(stripped, unicode.IsSpace); i >= 0 {
		cmd = stripped[:i]
	}
	cmd = strings.ToLower(cmd)

	var args []string
	rest := ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		rest = trimmed[i:]
	}
	if rest != "" {
		for _, arg := range strings.Split(rest, splitArgs) {
			arg = strings.TrimSpace(arg)
			if arg != "" {
				args = append(args, arg)
			}
		}
	}

	return isCommand, cmd, args
}
