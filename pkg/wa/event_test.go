package wa

import (
	"encoding/json"
	"testing"
)

func TestContentType(t *testing.T) {
	tests := []struct {
		name string
		msg  *MessageUnion
		want string
	}{
		{"nil union", nil, ""},
		{"empty union", &MessageUnion{}, ""},
		{"conversation", &MessageUnion{Conversation: "hi"}, KindConversation},
		{"extended text", &MessageUnion{ExtendedText: &ExtendedText{Text: "hi"}}, KindExtendedText},
		{"image", &MessageUnion{Image: &MediaMessage{Caption: "c"}}, KindImage},
		{"list response", &MessageUnion{ListResponse: &ListResponse{Title: "t"}}, KindListResponse},
		{"buttons response", &MessageUnion{ButtonsResponse: &ButtonsResponse{SelectedButtonID: "b1"}}, KindButtonsResponse},
		{
			"conversation wins over others",
			&MessageUnion{Conversation: "hi", Image: &MediaMessage{}},
			KindConversation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.msg.ContentType(); got != tt.want {
				t.Errorf("ContentType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEventDecode(t *testing.T) {
	raw := `{
		"key": {"id": "ABC123", "fromMe": false, "remoteJid": "628111@s.whatsapp.net"},
		"message": {"extendedTextMessage": {"text": "!ping"}}
	}`

	var ev Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ev.Key.ID != "ABC123" {
		t.Errorf("Key.ID = %q", ev.Key.ID)
	}
	if ev.Message.ContentType() != KindExtendedText {
		t.Errorf("ContentType() = %q", ev.Message.ContentType())
	}
	if ev.Message.ExtendedText.Text != "!ping" {
		t.Errorf("Text = %q", ev.Message.ExtendedText.Text)
	}
}
