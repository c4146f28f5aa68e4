package urlparser

import "regexp"

// Sub-patterns shared by the strict and partial patterns.
const (
	// MatchDomain matches an internet domain name. Label structure is not validated.
	MatchDomain = `[a-zA-Z0-9\-\.]+`

	// MatchIPv4 matches dot-separated digit groups. Octet ranges and group count are not checked.
	MatchIPv4 = `(?:\d+)(?:\.\d+)+`

	// MatchPath matches a file path made of unescaped path characters.
	MatchPath = `[a-zA-Z0-9$\-.+!*'(),&;/@]*`
)

// partialGuard is the leading character that makes a partial URL unparseable.
const partialGuard = "&"

var (
	// strictPattern parses a complete URL. The scheme is required.
	strictPattern = regexp.MustCompile(`^` +
		`(?:(?P<scheme>.+?):)` +
		`(?://` +
		`(?:` +
		`(?:(?P<username>.*?))` +
		`(?::(?P<password>.*?))?` +
		`@)?` +
		`(?:` +
		`(?P<ipv4>` + MatchIPv4 + `)|` +
		`(?P<domain>` + MatchDomain + `)` +
		`)` +
		`(?::(?P<port>\d+))?` +
		`(?:(?P<path>` + MatchPath + `))?` +
		`)?` +
		`(?P<specific>(?s:.*))` +
		`$`)

	// partialPattern parses any fragment of a URL; every segment is optional.
	// A scheme is only recognised when its colon opens "//" or ends the input,
	// so "host:123" reads as a domain and a port. At most one "//" opener is consumed.
	partialPattern = regexp.MustCompile(`^` +
		`(?:(?P<scheme>[a-z]+):(?://|$)|//)?` +
		`(?:` +
		`(?:(?P<username>.*?))?` +
		`(?::(?P<password>.*?))?` +
		`@)?` +
		`(?:` +
		`(?P<ipv4>` + MatchIPv4 + `)|` +
		`(?P<domain>` + MatchDomain + `)` +
		`)?` +
		`(?::(?P<port>\d+))?` +
		`(?:(?P<path>` + MatchPath + `))?` +
		`(?P<specific>(?s:.*))` +
		`$`)
)
