package message

import (
	"reflect"
	"testing"

	"github.com/marcelandrean/wabot/pkg/config"
	"github.com/marcelandrean/wabot/pkg/wa"
)

func testConfig() *config.Config {
	return &config.Config{
		Prefix:      "!",
		SplitArgs:   "|",
		OwnerNumber: "628999",
		CountryCode: "62",
	}
}

func TestNormalizeNoContent(t *testing.T) {
	n := NewNormalizer(&fakeClient{}, testConfig())

	if _, ok := n.Normalize(nil); ok {
		t.Error("nil event should produce no record")
	}
	if _, ok := n.Normalize(&wa.Event{Key: wa.MessageKey{ID: "x"}}); ok {
		t.Error("event without message should produce no record")
	}
}

func TestNormalizeCommandParsing(t *testing.T) {
	n := NewNormalizer(&fakeClient{}, testConfig())

	tests := []struct {
		name      string
		body      string
		isCommand bool
		cmd       string
		args      []string
	}{
		{"simple command", "!ping", true, "ping", nil},
		{"case folded with arg", "!Ping now", true, "ping", []string{"now"}},
		{"split args", "!bc 0812,0813|hello world", true, "bc", []string{"0812,0813", "hello world"}},
		{"prefix only", "!", true, "", nil},
		{"no prefix", "ping", false, "ping", nil},
		{"leading whitespace", "  !menu  ", true, "menu", nil},
		{"empty body", "", false, "", nil},
		{"empty tokens dropped", "!bc a| |b", true, "bc", []string{"a", "b"}},
		// NFKC folds the fullwidth exclamation into the ASCII prefix before
		// the strip, but the raw body does not start with the prefix.
		{"fullwidth normalized", "！ping", false, "ping", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := n.Normalize(&wa.Event{
				Key:     wa.MessageKey{ID: "1", RemoteJID: "628111@s.whatsapp.net"},
				Message: &wa.MessageUnion{Conversation: tt.body},
			})
			if tt.body == "" {
				// Empty conversation means an empty union.
				if ok && m.ContentKind != "" {
					t.Fatalf("empty body got kind %q", m.ContentKind)
				}
				return
			}
			if !ok {
				t.Fatal("expected a record")
			}
			if m.IsCommand != tt.isCommand {
				t.Errorf("IsCommand = %v, want %v", m.IsCommand, tt.isCommand)
			}
			if m.Cmd != tt.cmd {
				t.Errorf("Cmd = %q, want %q", m.Cmd, tt.cmd)
			}
			if !reflect.DeepEqual(m.Args, tt.args) {
				t.Errorf("Args = %#v, want %#v", m.Args, tt.args)
			}
		})
	}
}

func TestNormalizeChatKindAndSender(t *testing.T) {
	n := NewNormalizer(&fakeClient{}, testConfig())
	msg := &wa.MessageUnion{Conversation: "hello"}

	tests := []struct {
		name        string
		key         wa.MessageKey
		participant string
		kind        ChatKind
		sender      string
	}{
		{
			"direct",
			wa.MessageKey{ID: "1", RemoteJID: "628111@s.whatsapp.net"},
			"",
			ChatDirect,
			"628111@s.whatsapp.net",
		},
		{
			"group with key participant",
			wa.MessageKey{ID: "2", RemoteJID: "12345-67@g.us", Participant: "628222@s.whatsapp.net"},
			"",
			ChatGroup,
			"628222@s.whatsapp.net",
		},
		{
			"group falls back to event participant",
			wa.MessageKey{ID: "3", RemoteJID: "12345-67@g.us"},
			"628333:5@s.whatsapp.net",
			ChatGroup,
			"628333@s.whatsapp.net",
		},
		{
			"story",
			wa.MessageKey{ID: "4", RemoteJID: "status@broadcast", Participant: "628444@s.whatsapp.net"},
			"",
			ChatStory,
			"628444@s.whatsapp.net",
		},
		{
			"newsletter has no sender",
			wa.MessageKey{ID: "5", RemoteJID: "99@newsletter"},
			"",
			ChatNewsletter,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := n.Normalize(&wa.Event{Key: tt.key, Message: msg, Participant: tt.participant})
			if !ok {
				t.Fatal("expected a record")
			}
			if m.ChatKind != tt.kind {
				t.Errorf("ChatKind = %q, want %q", m.ChatKind, tt.kind)
			}
			if m.SenderID != tt.sender {
				t.Errorf("SenderID = %q, want %q", m.SenderID, tt.sender)
			}
		})
	}
}

func TestNormalizeOwner(t *testing.T) {
	n := NewNormalizer(&fakeClient{}, testConfig())
	msg := &wa.MessageUnion{Conversation: "hi"}

	m, _ := n.Normalize(&wa.Event{
		Key:     wa.MessageKey{ID: "1", RemoteJID: "628999@s.whatsapp.net"},
		Message: msg,
	})
	if !m.IsOwner {
		t.Error("owner number should be recognized")
	}

	m, _ = n.Normalize(&wa.Event{
		Key:     wa.MessageKey{ID: "2", RemoteJID: "628111@s.whatsapp.net"},
		Message: msg,
	})
	if m.IsOwner {
		t.Error("non-owner number should not be recognized")
	}

	// Unset owner never matches, even the empty newsletter sender.
	unset := NewNormalizer(&fakeClient{}, &config.Config{Prefix: "!", SplitArgs: "|"})
	m, _ = unset.Normalize(&wa.Event{
		Key:     wa.MessageKey{ID: "3", RemoteJID: "99@newsletter"},
		Message: msg,
	})
	if m.IsOwner {
		t.Error("empty owner config must not grant ownership")
	}
}

func TestNormalizeBodyExtraction(t *testing.T) {
	n := NewNormalizer(&fakeClient{}, testConfig())

	tests := []struct {
		name    string
		msg     *wa.MessageUnion
		kind    string
		body    string
		display string
	}{
		{
			"conversation",
			&wa.MessageUnion{Conversation: "plain text"},
			wa.KindConversation, "plain text", "plain text",
		},
		{
			"extended text",
			&wa.MessageUnion{ExtendedText: &wa.ExtendedText{Text: "linked text"}},
			wa.KindExtendedText, "linked text", "linked text",
		},
		{
			"image caption",
			&wa.MessageUnion{Image: &wa.MediaMessage{Caption: "pic caption"}},
			wa.KindImage, "pic caption", "pic caption",
		},
		{
			"document title fallback",
			&wa.MessageUnion{Document: &wa.MediaMessage{Title: "report.pdf"}},
			wa.KindDocument, "", "report.pdf",
		},
		{
			"list reply row id",
			&wa.MessageUnion{ListResponse: &wa.ListResponse{
				Title:             "Pick one",
				SingleSelectReply: &wa.SingleSelectReply{SelectedRowID: "row-2"},
			}},
			wa.KindListResponse, "row-2", "Pick one",
		},
		{
			"button reply",
			&wa.MessageUnion{ButtonsResponse: &wa.ButtonsResponse{
				SelectedButtonID:    "btn-1",
				SelectedDisplayText: "Yes",
			}},
			wa.KindButtonsResponse, "btn-1", "Yes",
		},
		{
			"flow response params",
			&wa.MessageUnion{InteractiveResponse: &wa.InteractiveResponse{
				NativeFlowResponse: &wa.NativeFlowResponse{
					Name:       "menu_flow",
					ParamsJSON: `{"id":"flow-7"}`,
				},
			}},
			wa.KindInteractiveResponse, "flow-7", "menu_flow",
		},
		{
			"flow response bad json",
			&wa.MessageUnion{InteractiveResponse: &wa.InteractiveResponse{
				NativeFlowResponse: &wa.NativeFlowResponse{ParamsJSON: "{broken"},
			}},
			wa.KindInteractiveResponse, "", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := n.Normalize(&wa.Event{
				Key:     wa.MessageKey{ID: "1", RemoteJID: "628111@s.whatsapp.net"},
				Message: tt.msg,
			})
			if !ok {
				t.Fatal("expected a record")
			}
			if m.ContentKind != tt.kind {
				t.Errorf("ContentKind = %q, want %q", m.ContentKind, tt.kind)
			}
			if m.Body != tt.body {
				t.Errorf("Body = %q, want %q", m.Body, tt.body)
			}
			if m.DisplayText != tt.display {
				t.Errorf("DisplayText = %q, want %q", m.DisplayText, tt.display)
			}
		})
	}
}
