package domain

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
)

const maxUsernameLen = 25

var (
	usernameInvalidChars = regexp.MustCompile(`[^a-z0-9._]`)
	usernameRepeatedSeps = regexp.MustCompile(`[._]{2,}`)
)

// reservedUsernames collide with client routes and must never be used as a
// display name.
var reservedUsernames = map[string]struct{}{
	"admin": {}, "root": {}, "me": {}, "login": {}, "logout": {},
	"signup": {}, "signin": {}, "settings": {}, "profile": {}, "api": {},
	"support": {}, "help": {}, "about": {}, "contact": {},
}

// NormalizeEmail trims and lowercases an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SanitizeUsername derives a display name from the local part of an email:
//   - lowercased, only [a-z0-9._] kept
//   - runs of '.' and '_' collapsed to a single '_'
//   - leading/trailing separators removed, cut to 25 characters
//
// Empty or reserved results fall back to "user_<n>".
func SanitizeUsername(email string) string {
	prefix, _, _ := strings.Cut(email, "@")
	name := strings.ToLower(strings.TrimSpace(prefix))
	name = usernameInvalidChars.ReplaceAllString(name, "")
	name = usernameRepeatedSeps.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if len(name) > maxUsernameLen {
		name = name[:maxUsernameLen]
	}

	if name == "" || IsReservedUsername(name) {
		return fmt.Sprintf("user_%d", rand.IntN(100000))
	}
	return name
}

// IsReservedUsername reports whether name is on the reserved list.
func IsReservedUsername(name string) bool {
	_, ok := reservedUsernames[name]
	return ok
}
