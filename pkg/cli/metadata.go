package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
)

// DetectGitHubOrg returns the owner of the GitHub "origin" remote of the git repository
// containing dir.
func DetectGitHubOrg(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin")
	}
	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found")
	}

	url := remote.Config().URLs[0]
	owner := parseGitHubOwner(url)
	if owner == "" {
		return "", goerr.New("failed to parse GitHub owner from git remote URL", goerr.V("url", url))
	}
	return owner, nil
}

// parseGitHubOwner handles git@github.com:owner/repo.git, ssh://git@github.com/owner/repo
// and https://github.com/owner/repo.git forms.
func parseGitHubOwner(url string) string {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		parts := strings.SplitN(url, "github.com/", 2)
		path = parts[1]
	default:
		return ""
	}

	ownerRepo := strings.Split(strings.TrimSuffix(path, ".git"), "/")
	if len(ownerRepo) != 2 || ownerRepo[0] == "" || ownerRepo[1] == "" {
		return ""
	}
	return ownerRepo[0]
}
