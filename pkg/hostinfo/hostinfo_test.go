package hostinfo_test

import (
	"testing"

	"github.com/sgaunet/urlseg/pkg/hostinfo"
	"github.com/sgaunet/urlseg/pkg/urlparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeDomain(t *testing.T) {
	tests := []struct {
		domain string
		want   hostinfo.Info
	}{
		{
			domain: "github.com",
			want: hostinfo.Info{
				Host: "github.com", PublicSuffix: "com", ICANN: true,
				RegistrableDomain: "github.com", Platform: hostinfo.PlatformGitHub,
			},
		},
		{
			domain: "WWW.GitLab.com.",
			want: hostinfo.Info{
				Host: "www.gitlab.com", PublicSuffix: "com", ICANN: true,
				RegistrableDomain: "gitlab.com", Platform: hostinfo.PlatformGitLab,
			},
		},
		{
			domain: "www.example.co.uk",
			want: hostinfo.Info{
				Host: "www.example.co.uk", PublicSuffix: "co.uk", ICANN: true,
				RegistrableDomain: "example.co.uk", Platform: hostinfo.PlatformUnknown,
			},
		},
		{
			domain: "gitlab.example.com",
			want: hostinfo.Info{
				Host: "gitlab.example.com", PublicSuffix: "com", ICANN: true,
				RegistrableDomain: "example.com", Platform: hostinfo.PlatformGitLab,
			},
		},
		{
			domain: "bitbucket.org",
			want: hostinfo.Info{
				Host: "bitbucket.org", PublicSuffix: "org", ICANN: true,
				RegistrableDomain: "bitbucket.org", Platform: hostinfo.PlatformBitbucket,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			assert.Equal(t, tt.want, hostinfo.DescribeDomain(tt.domain))
		})
	}
}

func TestDescribeDomain_NotRegistrable(t *testing.T) {
	info := hostinfo.DescribeDomain("localhost")
	assert.Equal(t, "localhost", info.Host)
	assert.Empty(t, info.RegistrableDomain)
	assert.Equal(t, hostinfo.PlatformUnknown, info.Platform)

	info = hostinfo.DescribeDomain("com")
	assert.Equal(t, "com", info.PublicSuffix)
	assert.Empty(t, info.RegistrableDomain)
}

func TestDescribe(t *testing.T) {
	segs, err := urlparser.ParseURL("https://git@github.com/owner/repo")
	require.NoError(t, err)
	assert.Equal(t, hostinfo.PlatformGitHub, hostinfo.Describe(segs).Platform)

	segs, err = urlparser.ParseURL("http://192.168.0.1/x")
	require.NoError(t, err)
	info := hostinfo.Describe(segs)
	assert.True(t, info.IsIP)
	assert.Equal(t, "192.168.0.1", info.Host)
	assert.Empty(t, info.PublicSuffix)

	segs, err = urlparser.ParseURL("mailto:someone@example.com")
	require.NoError(t, err)
	assert.Equal(t, hostinfo.Info{}, hostinfo.Describe(segs))
}
