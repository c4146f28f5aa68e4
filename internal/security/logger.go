package security

import (
	"fmt"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/urlseg/pkg/urlparser"
)

// DebugSegments logs the segments of a URL safely.
// The password is masked before logging.
//
// Example:
//
//	DebugSegments(logger, "origin", segs)
//	// Logs: "origin: {scheme=https username=oauth2 password=****ab12 domain=gitlab.com specific=}"
func DebugSegments(logger *bullets.Logger, label string, segs urlparser.Segments) {
	if logger == nil {
		return
	}

	logger.Debug(fmt.Sprintf("%s: %s", label, RedactSegments(segs)))
}

// DebugURL logs a URL-like string with its password masked.
func DebugURL(logger *bullets.Logger, label, input string) {
	if logger == nil {
		return
	}

	logger.Debug(label + ": " + SanitizeURL(input))
}
