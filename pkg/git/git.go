// Package git reads the remotes of a local git repository and segments their URLs.
package git

import (
	"errors"
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/sgaunet/bullets"
	"github.com/sgaunet/urlseg/internal/logger"
	"github.com/sgaunet/urlseg/internal/security"
	"github.com/sgaunet/urlseg/internal/urlutil"
	"github.com/sgaunet/urlseg/pkg/hostinfo"
	"github.com/sgaunet/urlseg/pkg/urlparser"
)

var (
	// ErrRemoteNotFound is returned when the requested remote does not exist.
	ErrRemoteNotFound = errors.New("remote not found")

	// ErrNoRemoteURLs is returned when a remote has no configured URL.
	ErrNoRemoteURLs = errors.New("no URLs found for remote")
)

// Repository wraps a go-git repository.
type Repository struct {
	repo *gogit.Repository
	log  *bullets.Logger
}

// Remote is a configured remote and its URLs.
type Remote struct {
	Name string
	URLs []string
}

// RemoteURL is one remote URL together with its segments.
type RemoteURL struct {
	Remote         string
	URL            string
	Segments       urlparser.Segments
	Host           hostinfo.Info
	RepositoryPath string
}

// OpenRepository opens the repository containing path, searching parent directories.
func OpenRepository(path string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	return &Repository{repo: repo, log: logger.NoLogger()}, nil
}

// SetLogger sets the logger used for debug output.
func (r *Repository) SetLogger(log *bullets.Logger) {
	r.log = log
}

// Remotes returns the configured remotes sorted by name.
func (r *Repository) Remotes() ([]Remote, error) {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	result := make([]Remote, 0, len(remotes))
	for _, remote := range remotes {
		cfg := remote.Config()
		urls := make([]string, len(cfg.URLs))
		copy(urls, cfg.URLs)
		result = append(result, Remote{Name: cfg.Name, URLs: urls})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// GetRemoteURL returns the first URL of the named remote.
func (r *Repository) GetRemoteURL(remoteName string) (string, error) {
	remote, err := r.repo.Remote(remoteName)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return "", fmt.Errorf("%w: %s", ErrRemoteNotFound, remoteName)
		}
		return "", fmt.Errorf("failed to get remote %s: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoRemoteURLs, remoteName)
	}

	return urls[0], nil
}

// SegmentRemotes segments every URL of every remote.
// URLs that cannot be segmented are logged and skipped.
func (r *Repository) SegmentRemotes() ([]RemoteURL, error) {
	remotes, err := r.Remotes()
	if err != nil {
		return nil, err
	}

	var result []RemoteURL
	for _, remote := range remotes {
		for _, url := range remote.URLs {
			segmented, err := SegmentRemoteURL(remote.Name, url)
			if err != nil {
				r.log.Warn(fmt.Sprintf("Skipping URL of remote %s: %s", remote.Name, security.SanitizeURL(url)))
				continue
			}
			security.DebugSegments(r.log, remote.Name, segmented.Segments)
			result = append(result, segmented)
		}
	}

	return result, nil
}

// DetectPlatform reports the hosting platform of the named remote's first URL.
func (r *Repository) DetectPlatform(remoteName string) (hostinfo.Platform, error) {
	url, err := r.GetRemoteURL(remoteName)
	if err != nil {
		return hostinfo.PlatformUnknown, err
	}

	segmented, err := SegmentRemoteURL(remoteName, url)
	if err != nil {
		return hostinfo.PlatformUnknown, err
	}

	return segmented.Host.Platform, nil
}

// SegmentRemoteURL segments a single remote URL.
func SegmentRemoteURL(remoteName, url string) (RemoteURL, error) {
	segs, err := urlutil.SegmentRemote(url)
	if err != nil {
		return RemoteURL{}, fmt.Errorf("failed to segment remote %s: %w", remoteName, err)
	}

	return RemoteURL{
		Remote:         remoteName,
		URL:            url,
		Segments:       segs,
		Host:           hostinfo.Describe(segs),
		RepositoryPath: urlutil.RepositoryPath(url),
	}, nil
}
