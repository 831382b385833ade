package wa

import "testing"

func TestJIDClassification(t *testing.T) {
	tests := []struct {
		jid        string
		user       bool
		group      bool
		broadcast  bool
		newsletter bool
	}{
		{"6281234567@s.whatsapp.net", true, false, false, false},
		{"123456789-987654@g.us", false, true, false, false},
		{"status@broadcast", false, false, true, false},
		{"12345@broadcast", false, false, true, false},
		{"12345@newsletter", false, false, false, true},
		{"", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.jid, func(t *testing.T) {
			if got := IsUserJID(tt.jid); got != tt.user {
				t.Errorf("IsUserJID() = %v, want %v", got, tt.user)
			}
			if got := IsGroupJID(tt.jid); got != tt.group {
				t.Errorf("IsGroupJID() = %v, want %v", got, tt.group)
			}
			if got := IsBroadcastJID(tt.jid); got != tt.broadcast {
				t.Errorf("IsBroadcastJID() = %v, want %v", got, tt.broadcast)
			}
			if got := IsNewsletterJID(tt.jid); got != tt.newsletter {
				t.Errorf("IsNewsletterJID() = %v, want %v", got, tt.newsletter)
			}
		})
	}
}

func TestDecodeUser(t *testing.T) {
	tests := []struct {
		jid  string
		want string
	}{
		{"6281234567@s.whatsapp.net", "6281234567"},
		{"6281234567:12@s.whatsapp.net", "6281234567"},
		{"6281234567", "6281234567"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DecodeUser(tt.jid); got != tt.want {
			t.Errorf("DecodeUser(%q) = %q, want %q", tt.jid, got, tt.want)
		}
	}
}

func TestNormalizeUser(t *testing.T) {
	if got := NormalizeUser("6281234567:3@s.whatsapp.net"); got != "6281234567@s.whatsapp.net" {
		t.Errorf("NormalizeUser() = %q", got)
	}
	if got := NormalizeUser(""); got != "" {
		t.Errorf("NormalizeUser(\"\") = %q, want \"\"", got)
	}
}

func TestEnsureUserJID(t *testing.T) {
	if got := EnsureUserJID("6281234567"); got != "6281234567@s.whatsapp.net" {
		t.Errorf("EnsureUserJID() = %q", got)
	}
	if got := EnsureUserJID("123@g.us"); got != "123@g.us" {
		t.Errorf("EnsureUserJID() should keep qualified JIDs, got %q", got)
	}
}
