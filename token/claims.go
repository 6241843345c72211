// Package token signs, decodes and verifies JWT bearer tokens.
// It distinguishes claims that were merely decoded from claims whose
// signature has been verified, so the former cannot leak into
// authorization decisions.
package token

import "encoding/json"

// ClaimView is the raw claim mapping shared by trusted and untrusted claim
// sets. Credential managers select signing/verification parameters from a
// view, which lets the same lookup serve both the sign and the verify side.
type ClaimView map[string]any

// UntrustedClaims is a claim set decoded without signature verification.
// It exists solely to choose verification parameters; never use it to
// authorize anything.
type UntrustedClaims map[string]any

// Claims is a signature-verified claim set. Authorization predicates and
// application handlers consume this type only.
type Claims map[string]any

// View exposes the raw claim mapping for parameter selection.
func (u UntrustedClaims) View() ClaimView { return ClaimView(u) }

// View exposes the raw claim mapping for parameter selection.
func (c Claims) View() ClaimView { return ClaimView(c) }

// String returns the named claim as a string.
func (c Claims) String(key string) (string, bool) {
	s, ok := c[key].(string)
	return s, ok
}

// Int returns the named claim as an int64. Numeric claims arrive as float64
// after a JSON round trip, so both representations are accepted.
func (c Claims) Int(key string) (int64, bool) {
	switch v := c[key].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	}
	return 0, false
}

// Bool returns the named claim as a bool.
func (c Claims) Bool(key string) (bool, bool) {
	b, ok := c[key].(bool)
	return b, ok
}
