// Package links builds the frontend URLs embedded in emails and
// redirects, and masks addresses echoed back in API messages.
package links

import (
	"fmt"
	"strings"

	"github.com/noterepo/noterepo/config"
)

// Welcome returns the set-username welcome page for a freshly verified user.
func Welcome(userID string) string {
	return fmt.Sprintf("%s/welcome?user=%s", config.Server.FrontendBaseURL(), userID)
}

// SignIn returns the sign-in page.
func SignIn() string {
	return config.Server.FrontendBaseURL() + "/sign-in"
}

// Verify returns the account verification endpoint for a token.
func Verify(token string) string {
	return fmt.Sprintf("%s/verify?token=%s", config.Server.FrontendBaseURL(), token)
}

// ResetPassword returns the reset-password page for a token.
func ResetPassword(token string) string {
	return fmt.Sprintf("%s/reset-password?token=%s", config.Server.FrontendBaseURL(), token)
}

// MaskEmail keeps the first three characters of the local part and
// replaces the rest with asterisks: "johndoe@x.com" -> "joh****@x.com".
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 3 {
		return email
	}
	return email[:3] + strings.Repeat("*", at-3) + email[at:]
}
