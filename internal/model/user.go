package model

import "strings"

// LinkedAccount is an external advertising-platform credential attached to
// a user after the platform confirmed it. DisplayName comes from the API,
// never from user input.
type LinkedAccount struct {
	ExternalLogin string `json:"external_login"`
	DisplayName   string `json:"display_name"`
	AccessToken   string `json:"access_token"`
}

// User is a registered visitor. The normalized email is the primary key.
type User struct {
	Email          string          `json:"email"`
	PasswordHash   string          `json:"password_hash"`
	DirectAccounts []LinkedAccount `json:"direct_accounts"`
}

// ApplyDefaults backfills fields absent in older stored records.
func (u *User) ApplyDefaults() {
	if u.DirectAccounts == nil {
		u.DirectAccounts = []LinkedAccount{}
	}
}

// HasLinkedAccount reports whether the user already linked the given login.
func (u *User) HasLinkedAccount(externalLogin string) bool {
	for _, account := range u.DirectAccounts {
		if account.ExternalLogin == externalLogin {
			return true
		}
	}
	return false
}

// NormalizeEmail canonicalizes an email for lookups and uniqueness checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
