package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relsum/pkg/cli"
)

func initRepo(t *testing.T, urls ...string) string {
	t.Helper()
	dir := t.TempDir()
	repo := gt.R1(git.PlainInit(dir, false)).NoError(t)
	if len(urls) > 0 {
		gt.R1(repo.CreateRemote(&config.RemoteConfig{
			Name: "origin",
			URLs: urls,
		})).NoError(t)
	}
	return dir
}

func TestDetectGitHubOrg(t *testing.T) {
	t.Run("from https remote", func(t *testing.T) {
		dir := initRepo(t, "https://github.com/example-org/service-api.git")
		gt.V(t, gt.R1(cli.DetectGitHubOrg(dir)).NoError(t)).Equal("example-org")
	})

	t.Run("from a subdirectory", func(t *testing.T) {
		dir := initRepo(t, "git@github.com:example-org/service-api.git")
		sub := filepath.Join(dir, "pkg", "deep")
		gt.NoError(t, os.MkdirAll(sub, 0o755))
		gt.V(t, gt.R1(cli.DetectGitHubOrg(sub)).NoError(t)).Equal("example-org")
	})

	t.Run("no origin remote", func(t *testing.T) {
		dir := initRepo(t)
		_, err := cli.DetectGitHubOrg(dir)
		gt.Error(t, err)
	})

	t.Run("not a GitHub remote", func(t *testing.T) {
		dir := initRepo(t, "https://gitlab.com/example-org/service-api.git")
		_, err := cli.DetectGitHubOrg(dir)
		gt.Error(t, err)
	})

	t.Run("not a git repository", func(t *testing.T) {
		_, err := cli.DetectGitHubOrg(t.TempDir())
		gt.Error(t, err)
	})
}

func TestParseGitHubOwner(t *testing.T) {
	testCases := map[string]string{
		"git@github.com:example-org/service-api.git":       "example-org",
		"ssh://git@github.com/example-org/service-api.git": "example-org",
		"https://github.com/example-org/service-api":       "example-org",
		"https://github.com/example-org":                   "",
		"https://github.com/example-org/a/b":               "",
		"https://bitbucket.org/example-org/service-api":    "",
	}

	for url, expected := range testCases {
		t.Run(url, func(t *testing.T) {
			gt.V(t, cli.ParseGitHubOwnerForTest(url)).Equal(expected)
		})
	}
}
