package auth

import (
	"log/slog"
	"strings"
)

// OAuthIdentity is the account a provider vouched for. Only Email is needed
// to sign in; Name and AvatarURL seed the profile on first login.
type OAuthIdentity struct {
	Email     string
	Name      *string
	AvatarURL *string
	// Subject is the provider's account id ("sub" for Google). Users added
	// with signdeckctl carry the tool name instead.
	Subject string
}

// DisplayName returns the trimmed provider name, or "" if there is none.
func (id *OAuthIdentity) DisplayName() string {
	if id.Name == nil {
		return ""
	}
	return strings.TrimSpace(*id.Name)
}

// LogValue records the subject and the email domain, never the address.
func (id *OAuthIdentity) LogValue() slog.Value {
	domain := ""
	if at := strings.LastIndexByte(id.Email, '@'); at >= 0 {
		domain = id.Email[at+1:]
	}
	return slog.GroupValue(
		slog.String("subject", id.Subject),
		slog.String("email_domain", domain),
	)
}
