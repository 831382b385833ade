package wa

import "strings"

// JID suffixes for the chat kinds the bot distinguishes.
const (
	UserSuffix       = "@s.whatsapp.net"
	GroupSuffix      = "@g.us"
	BroadcastSuffix  = "@broadcast"
	NewsletterSuffix = "@newsletter"

	// StatusBroadcastJID is the story/status pseudo-chat.
	StatusBroadcastJID = "status" + BroadcastSuffix
)

func IsUserJID(jid string) bool {
	return strings.HasSuffix(jid, UserSuffix)
}

func IsGroupJID(jid string) bool {
	return strings.HasSuffix(jid, GroupSuffix)
}

func IsBroadcastJID(jid string) bool {
	return strings.HasSuffix(jid, BroadcastSuffix)
}

func IsNewsletterJID(jid string) bool {
	return strings.HasSuffix(jid, NewsletterSuffix)
}

// DecodeUser returns the user portion of a JID: the local part with any
// device or agent suffix ("123:4@s.whatsapp.net") stripped. Empty input
// decodes to "".
func DecodeUser(jid string) string {
	local, _, found := strings.Cut(jid, "@")
	if !found {
		local = jid
	}
	user, _, _ := strings.Cut(local, ":")
	return user
}

// NormalizeUser rewrites a JID to its canonical user form, dropping device
// and agent markers.
func NormalizeUser(jid string) string {
	if jid == "" {
		return ""
	}
	return DecodeUser(jid) + UserSuffix
}

// EnsureUserJID qualifies a bare number as a user JID. Already-qualified
// identifiers pass through unchanged.
func EnsureUserJID(number string) string {
	if strings.Contains(number, "@") {
		return number
	}
	return number + UserSuffix
}
