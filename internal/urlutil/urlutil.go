// Package urlutil extracts repository paths from git remote URLs.
//
// It handles three URL formats:
//   - HTTPS: https://github.com/owner/repo.git
//   - SSH colon: git@github.com:owner/repo.git
//   - SSH protocol: ssh://git@github.com/owner/repo.git
//
// Remote URLs are segmented with [urlparser]; the repository path is whatever follows the
// host, up to a query or fragment.
package urlutil

import (
	"strings"

	"github.com/sgaunet/urlseg/pkg/urlparser"
)

const gitSuffix = ".git"

// SegmentRemote segments a git remote URL.
// Complete URLs are parsed strictly; scp-like and local forms fall back to partial parsing.
func SegmentRemote(remote string) (urlparser.Segments, error) {
	segs, err := urlparser.ParseURL(remote)
	if err == nil && segs.Host() != "" {
		return segs, nil
	}
	return urlparser.ParsePartialURL(remote)
}

// TrimGitSuffix removes a trailing ".git" from a repository path.
func TrimGitSuffix(path string) string {
	return strings.TrimSuffix(path, gitSuffix)
}

// RepositoryPath returns the repository path of a remote URL without leading or trailing
// slashes and without the .git suffix.
//
// Examples:
//
//	RepositoryPath("git@github.com:owner/repo.git")            → "owner/repo"
//	RepositoryPath("https://gitlab.com/group/sub/project?x=1") → "group/sub/project"
func RepositoryPath(remote string) string {
	segs, err := SegmentRemote(remote)
	if err != nil {
		return ""
	}

	// Characters outside the path alphabet (such as "_") end the path segment,
	// so the repository path continues into specific.
	path := segs.Value(urlparser.KeyPath) + segs.Value(urlparser.KeySpecific)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimPrefix(path, ":")
	path = strings.Trim(path, "/")
	return TrimGitSuffix(path)
}

// ExtractPathComponents extracts the last N components of the repository path of a git
// remote URL.
// Returns empty string if the path has fewer than componentCount components.
//
// Examples:
//
//	ExtractPathComponents("git@github.com:owner/repo", 2) → "owner/repo"
//	ExtractPathComponents("https://gitlab.com/group/subgroup/project", 2) → "subgroup/project"
//	ExtractPathComponents("https://gitlab.com/group/subgroup/project", 3) → "group/subgroup/project"
func ExtractPathComponents(url string, componentCount int) string {
	if componentCount <= 0 {
		return ""
	}

	path := RepositoryPath(url)
	if path == "" {
		return ""
	}

	parts := strings.Split(path, "/")
	if len(parts) < componentCount {
		return ""
	}
	return strings.Join(parts[len(parts)-componentCount:], "/")
}
