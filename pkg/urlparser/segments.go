package urlparser

import "strings"

// Segment names, in the order they are reported.
const (
	KeyScheme   = "scheme"
	KeyUsername = "username"
	KeyPassword = "password"
	KeyIPv4     = "ipv4"
	KeyDomain   = "domain"
	KeyPort     = "port"
	KeyPath     = "path"
	KeySpecific = "specific"
)

const keyCount = 8

var segmentKeys = [keyCount]string{
	KeyScheme, KeyUsername, KeyPassword, KeyIPv4, KeyDomain, KeyPort, KeyPath, KeySpecific,
}

// AllKeys returns every segment name in report order.
func AllKeys() []string {
	keys := make([]string, keyCount)
	copy(keys, segmentKeys[:])
	return keys
}

func keyIndex(key string) int {
	for i, k := range segmentKeys {
		if k == key {
			return i
		}
	}
	return -1
}

// Segments is an ordered mapping from segment name to value.
// A key that is absent was not found in the input; it is not the same as an empty value.
// Segments values are comparable with ==.
type Segments struct {
	values  [keyCount]string
	present [keyCount]bool
}

// Get returns the value of a segment and whether it is present.
func (s Segments) Get(key string) (string, bool) {
	i := keyIndex(key)
	if i < 0 || !s.present[i] {
		return "", false
	}
	return s.values[i], true
}

// Value returns the value of a segment, or "" when it is absent.
func (s Segments) Value(key string) string {
	v, _ := s.Get(key)
	return v
}

// Has reports whether the segment is present.
func (s Segments) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Keys returns the names of the present segments in report order.
func (s Segments) Keys() []string {
	keys := make([]string, 0, keyCount)
	for i, k := range segmentKeys {
		if s.present[i] {
			keys = append(keys, k)
		}
	}
	return keys
}

// Len returns the number of present segments.
func (s Segments) Len() int {
	n := 0
	for _, p := range s.present {
		if p {
			n++
		}
	}
	return n
}

// Map returns the present segments as a plain map. Order is lost.
func (s Segments) Map() map[string]string {
	m := make(map[string]string, keyCount)
	for i, k := range segmentKeys {
		if s.present[i] {
			m[k] = s.values[i]
		}
	}
	return m
}

// With returns a copy of s where key is set to value.
// Unknown keys leave the copy unchanged.
func (s Segments) With(key, value string) Segments {
	if i := keyIndex(key); i >= 0 {
		s.values[i] = value
		s.present[i] = true
	}
	return s
}

// Without returns a copy of s where key is absent.
func (s Segments) Without(key string) Segments {
	if i := keyIndex(key); i >= 0 {
		s.values[i] = ""
		s.present[i] = false
	}
	return s
}

// Host returns the ipv4 or domain segment, whichever is present.
func (s Segments) Host() string {
	if v, ok := s.Get(KeyIPv4); ok {
		return v
	}
	return s.Value(KeyDomain)
}

// URL reassembles the segments into a URL string.
//
// For segments produced by [ParseURL], parsing the result again yields the same segments.
func (s Segments) URL() string {
	var b strings.Builder

	scheme, hasScheme := s.Get(KeyScheme)
	if hasScheme {
		b.WriteString(scheme)
		b.WriteByte(':')
	}

	hasAuth := s.Has(KeyUsername) || s.Has(KeyPassword)
	if hasScheme && (hasAuth || s.Has(KeyIPv4) || s.Has(KeyDomain)) {
		b.WriteString("//")
	}

	if hasAuth {
		b.WriteString(s.Value(KeyUsername))
		if password, ok := s.Get(KeyPassword); ok {
			b.WriteByte(':')
			b.WriteString(password)
		}
		b.WriteByte('@')
	}

	b.WriteString(s.Host())
	if port, ok := s.Get(KeyPort); ok {
		b.WriteByte(':')
		b.WriteString(port)
	}
	b.WriteString(s.Value(KeyPath))
	b.WriteString(s.Value(KeySpecific))

	return b.String()
}

// String formats the present segments as "key=value" pairs in report order.
func (s Segments) String() string {
	parts := make([]string, 0, keyCount)
	for i, k := range segmentKeys {
		if s.present[i] {
			parts = append(parts, k+"="+s.values[i])
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}
