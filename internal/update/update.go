// Package update checks GitHub for a newer dsh release.
package update

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/go-github/v67/github"
)

const (
	repoOwner = "msto63"
	repoName  = "dsh"
)

// Result describes the outcome of an update check.
type Result struct {
	CurrentVersion string
	LatestVersion  string
	UpdateURL      string
}

// Newer reports whether the latest release is newer than the running build.
func (r Result) Newer() bool {
	return compareVersions(r.CurrentVersion, r.LatestVersion) < 0
}

// Checker queries the release feed. The zero client is unauthenticated,
// which is enough for public release metadata.
type Checker struct {
	client *github.Client
}

// NewChecker creates a checker against the public GitHub API.
func NewChecker() *Checker {
	return &Checker{client: github.NewClient(nil)}
}

// Check fetches the latest release and compares it with currentVersion.
func (c *Checker) Check(ctx context.Context, currentVersion string) (Result, error) {
	release, _, err := c.client.Repositories.GetLatestRelease(ctx, repoOwner, repoName)
	if err != nil {
		return Result{}, fmt.Errorf("fetching latest release: %w", err)
	}
	return Result{
		CurrentVersion: currentVersion,
		LatestVersion:  release.GetTagName(),
		UpdateURL:      release.GetHTMLURL(),
	}, nil
}

// compareVersions compares dotted version strings numerically, ignoring a
// leading "v" and any pre-release suffix. Unparseable segments compare as 0.
func compareVersions(a, b string) int {
	as := versionSegments(a)
	bs := versionSegments(b)
	for i := 0; i < len(as) || i < len(bs); i++ {
		av, bv := 0, 0
		if i < len(as) {
			av = as[i]
		}
		if i < len(bs) {
			bv = bs[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

func versionSegments(v string) []int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	parts := strings.Split(v, ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		out[i] = n
	}
	return out
}
