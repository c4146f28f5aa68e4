// Package security masks credentials found in URL segments before they are printed or logged.
package security

import "fmt"

const (
	// Minimum secret length to show partial masking (show last 4 chars).
	minSecretLengthForPartialMask = 8
	// Number of characters to show when masking.
	maskShowChars = 4
	// maskEmpty is returned for empty secrets.
	maskEmpty = "[empty]"
	// maskRedacted is returned for short secrets.
	maskRedacted = "[redacted]"
)

// Secret wraps a password so that formatting it never prints the real value.
//
// Example:
//
//	s := NewSecret("hunter2hunter2")
//	fmt.Printf("%s", s)  // Output: "****ter2"
//	fmt.Printf("%#v", s) // Output: "****ter2"
type Secret struct {
	value string
}

// NewSecret creates a new Secret from a string value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// String implements fmt.Stringer and returns a masked representation.
func (s Secret) String() string {
	if s.value == "" {
		return maskEmpty
	}

	if len(s.value) < minSecretLengthForPartialMask {
		return maskRedacted
	}

	return fmt.Sprintf("****%s", s.value[len(s.value)-maskShowChars:])
}

// Value returns the actual secret. Never log the result.
func (s Secret) Value() string {
	return s.value
}

// IsEmpty returns true if the secret is empty.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}

// GoString implements fmt.GoStringer to prevent leaking in %#v formatting.
func (s Secret) GoString() string {
	return s.String()
}
