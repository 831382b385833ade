package message

import (
	"context"
	"fmt"

	"github.com/marcelandrean/wabot/pkg/wa"
)

// ChatKind classifies the conversation a message belongs to. The kinds are
// mutually exclusive and derived from the chat JID shape.
type ChatKind string

const (
	ChatDirect     ChatKind = "direct"
	ChatGroup      ChatKind = "group"
	ChatStory      ChatKind = "story"
	ChatNewsletter ChatKind = "newsletter"
)

// Message is the normalized record for one inbound event, with the outbound
// responder surface bound to the originating chat. It lives for the duration
// of a single dispatch.
type Message struct {
	ID       string
	ChatID   string
	ChatKind ChatKind
	SenderID string
	FromMe   bool
	IsOwner  bool

	ContentKind string
	Body        string
	DisplayText string

	IsCommand bool
	Cmd       string
	Args      []string

	client   wa.Client
	resolver *Resolver
}

// Reply sends a text reply to the originating chat, quoting a synthetic
// message stub (a cosmetic forwarded marker, not a true reply-thread link).
func (m *Message) Reply(ctx context.Context, text string) error {
	return m.client.SendMessage(ctx, m.ChatID, wa.MessageContent{Text: text}, &wa.SendOptions{
		Quoted: &wa.QuotedStub{
			Key: wa.MessageKey{
				ID:          m.ID,
				FromMe:      false,
				RemoteJID:   wa.StatusBroadcastJID,
				Participant: "0" + wa.UserSuffix,
			},
			Conversation: "💬 " + m.DisplayText,
		},
	})
}

// SendText sends a plain text message to a number or JID.
func (m *Message) SendText(ctx context.Context, number, text string) error {
	return m.client.SendMessage(ctx, wa.EnsureUserJID(number), wa.MessageContent{Text: text}, nil)
}

// SendMedia fetches source (URL or file path) and delivers it with a kind
// inferred from its extension, defaulting to document delivery with the
// trailing path segment as the file name.
func (m *Message) SendMedia(ctx context.Context, number, source, caption string) error {
	src, err := SourceFrom(source)
	if err != nil {
		return err
	}

	switch inferKind(source) {
	case MediaImage:
		return m.SendImage(ctx, number, src, caption)
	case MediaVideo:
		return m.SendVideo(ctx, number, src, caption)
	case MediaAudio:
		return m.SendAudio(ctx, number, src)
	default:
		data, err := m.resolver.Resolve(ctx, src)
		if err != nil {
			return err
		}
		return m.client.SendMessage(ctx, wa.EnsureUserJID(number), wa.MessageContent{
			Document: data,
			FileName: lastSegment(source),
			Mimetype: "application/octet-stream",
			Caption:  caption,
		}, nil)
	}
}

func (m *Message) SendImage(ctx context.Context, number string, src MediaSource, caption string) error {
	data, err := m.resolver.Resolve(ctx, src)
	if err != nil {
		return err
	}
	return m.client.SendMessage(ctx, wa.EnsureUserJID(number), wa.MessageContent{
		Image:   data,
		Caption: caption,
	}, nil)
}

func (m *Message) SendVideo(ctx context.Context, number string, src MediaSource, caption string) error {
	data, err := m.resolver.Resolve(ctx, src)
	if err != nil {
		return err
	}
	return m.client.SendMessage(ctx, wa.EnsureUserJID(number), wa.MessageContent{
		Video:   data,
		Caption: caption,
	}, nil)
}

// SendAudio delivers an audio payload. Captions are not supported for audio
// by the underlying transport, so none is taken.
func (m *Message) SendAudio(ctx context.Context, number string, src MediaSource) error {
	data, err := m.resolver.Resolve(ctx, src)
	if err != nil {
		return err
	}
	return m.client.SendMessage(ctx, wa.EnsureUserJID(number), wa.MessageContent{
		Audio:    data,
		Mimetype: "audio/mp4",
		PTT:      false,
	}, nil)
}

func (m *Message) SendFile(ctx context.Context, number string, src MediaSource, fileName string) error {
	data, err := m.resolver.Resolve(ctx, src)
	if err != nil {
		return err
	}
	if fileName == "" {
		fileName = src.name()
	}
	return m.client.SendMessage(ctx, wa.EnsureUserJID(number), wa.MessageContent{
		Document: data,
		FileName: fileName,
		Mimetype: "application/octet-stream",
	}, nil)
}

// SendPoll sends a single-select poll.
func (m *Message) SendPoll(ctx context.Context, number, name string, values []string) error {
	return m.client.SendMessage(ctx, wa.EnsureUserJID(number), wa.MessageContent{
		Poll: &wa.Poll{
			Name:            name,
			Values:          values,
			SelectableCount: 1,
		},
	}, nil)
}

func (m *Message) SendLocation(ctx context.Context, number string, latitude, longitude float64, caption string) error {
	return m.client.SendMessage(ctx, wa.EnsureUserJID(number), wa.MessageContent{
		Location: &wa.Location{
			DegreesLatitude:  latitude,
			DegreesLongitude: longitude,
			Caption:          caption,
		},
	}, nil)
}

func (m *Message) SendContact(ctx context.Context, number, contactNumber, displayName string) error {
	vcard := fmt.Sprintf("BEGIN:VCARD\nVERSION:3.0\nFN:%s\nTEL;type=CELL;waid=%s:%s\nEND:VCARD",
		displayName, contactNumber, contactNumber)
	return m.client.SendMessage(ctx, wa.EnsureUserJID(number), wa.MessageContent{
		Contacts: &wa.ContactList{
			DisplayName: displayName,
			Contacts:    []wa.Contact{{VCard: vcard}},
		},
	}, nil)
}

// SendPresenceUpdate forwards a presence indicator to the originating chat.
func (m *Message) SendPresenceUpdate(ctx context.Context, state wa.Presence) error {
	return m.client.SendPresence(ctx, state, m.ChatID)
}

func (m *Message) ReplyWithImage(ctx context.Context, src MediaSource, caption string) error {
	return m.SendImage(ctx, m.ChatID, src, caption)
}

func (m *Message) ReplyWithVideo(ctx context.Context, src MediaSource, caption string) error {
	return m.SendVideo(ctx, m.ChatID, src, caption)
}

func (m *Message) ReplyWithAudio(ctx context.Context, src MediaSource) error {
	return m.SendAudio(ctx, m.ChatID, src)
}

func (m *Message) ReplyWithFile(ctx context.Context, src MediaSource, fileName string) error {
	return m.SendFile(ctx, m.ChatID, src, fileName)
}

func (m *Message) ReplyWithPoll(ctx context.Context, name string, values []string) error {
	return m.SendPoll(ctx, m.ChatID, name, values)
}

func (m *Message) ReplyWithLocation(ctx context.Context, latitude, longitude float64, caption string) error {
	return m.SendLocation(ctx, m.ChatID, latitude, longitude, caption)
}

func (m *Message) ReplyWithContact(ctx context.Context, contactNumber, displayName string) error {
	return m.SendContact(ctx, m.ChatID, contactNumber, displayName)
}
