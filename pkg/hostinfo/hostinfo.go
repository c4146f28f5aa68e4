// Package hostinfo describes the host segment of a URL: its public suffix, its registrable
// domain and the code hosting platform it belongs to.
package hostinfo

import (
	"slices"
	"strings"

	"github.com/sgaunet/urlseg/pkg/urlparser"
	"golang.org/x/net/publicsuffix"
)

// Platform identifies a code hosting service.
type Platform string

// Known platforms.
const (
	PlatformGitHub    Platform = "github"
	PlatformGitLab    Platform = "gitlab"
	PlatformBitbucket Platform = "bitbucket"
	PlatformUnknown   Platform = "unknown"
)

var platformDomains = map[string]Platform{
	"github.com":    PlatformGitHub,
	"gitlab.com":    PlatformGitLab,
	"bitbucket.org": PlatformBitbucket,
}

// Info describes a host.
type Info struct {
	Host string
	IsIP bool
	// PublicSuffix is the effective top-level domain, such as "com" or "co.uk".
	PublicSuffix string
	// ICANN reports whether the public suffix is managed by ICANN rather than privately.
	ICANN bool
	// RegistrableDomain is the public suffix plus one label (eTLD+1).
	// Empty when the host is itself a public suffix or an IP address.
	RegistrableDomain string
	Platform          Platform
}

// Describe returns information about the ipv4 or domain segment of segs.
// A zero Info is returned when segs has no host.
func Describe(segs urlparser.Segments) Info {
	if ip, ok := segs.Get(urlparser.KeyIPv4); ok {
		return Info{Host: ip, IsIP: true, Platform: PlatformUnknown}
	}
	if domain, ok := segs.Get(urlparser.KeyDomain); ok {
		return DescribeDomain(domain)
	}
	return Info{}
}

// DescribeDomain returns information about a domain name.
func DescribeDomain(domain string) Info {
	host := strings.TrimSuffix(strings.ToLower(domain), ".")
	info := Info{Host: host, Platform: PlatformUnknown}
	if host == "" {
		return info
	}

	info.PublicSuffix, info.ICANN = publicsuffix.PublicSuffix(host)
	if registrable, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		info.RegistrableDomain = registrable
	}
	info.Platform = detectPlatform(host, info.RegistrableDomain)

	return info
}

// detectPlatform matches well-known hosting domains first, then self-hosted
// instances whose first label names the platform (gitlab.example.com).
func detectPlatform(host, registrable string) Platform {
	if p, ok := platformDomains[registrable]; ok {
		return p
	}

	labels := strings.Split(host, ".")
	for _, p := range []Platform{PlatformGitLab, PlatformGitHub, PlatformBitbucket} {
		if len(labels) > 2 && slices.Contains(labels[:len(labels)-2], string(p)) {
			return p
		}
	}
	return PlatformUnknown
}
