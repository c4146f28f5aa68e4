package security

import (
	"strings"

	"github.com/sgaunet/urlseg/pkg/urlparser"
)

// MaskPassword returns the masked form of a password.
// An empty password stays empty: there is nothing to hide and "user:@host" stays readable.
func MaskPassword(password string) string {
	if password == "" {
		return ""
	}
	return NewSecret(password).String()
}

// RedactSegments returns a copy of segs with the password masked.
// Every other segment is left untouched.
func RedactSegments(segs urlparser.Segments) urlparser.Segments {
	password, ok := segs.Get(urlparser.KeyPassword)
	if !ok || password == "" {
		return segs
	}
	return segs.With(urlparser.KeyPassword, MaskPassword(password))
}

// SanitizeURL masks the password of a URL-like string so it can be logged.
// Inputs without a password, or that cannot be segmented, are returned unchanged.
//
// Thread Safety: Safe for concurrent use.
func SanitizeURL(input string) string {
	segs, err := urlparser.ParseURL(input)
	if err != nil || !segs.Has(urlparser.KeyPassword) {
		segs, err = urlparser.ParsePartialURL(input)
		if err != nil {
			return input
		}
	}

	return RedactInput(input, segs)
}

// RedactInput masks the password of segs inside the original input string.
// The input keeps its exact shape, unlike [urlparser.Segments.URL].
func RedactInput(input string, segs urlparser.Segments) string {
	password, ok := segs.Get(urlparser.KeyPassword)
	if !ok || password == "" {
		return input
	}
	return strings.Replace(input, ":"+password+"@", ":"+MaskPassword(password)+"@", 1)
}
