package config_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relsum/pkg/cli/config"
	"github.com/m-mizutani/relsum/pkg/domain/types"
)

func TestGitHub(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		var cfg config.GitHub
		parseFlags(t, cfg.Flags())
		client, err := cfg.New(ctx)
		gt.NoError(t, err)
		gt.V(t, client).Nil()
	})

	t.Run("token", func(t *testing.T) {
		var cfg config.GitHub
		parseFlags(t, cfg.Flags(),
			"--github-org", "acme",
			"--github-repo-prefix", "svc-",
			"--github-token", "ghp_secret_token",
		)
		client, err := cfg.New(ctx)
		gt.NoError(t, err)
		gt.V(t, client).NotNil()
		gt.V(t, cfg.Org()).Equal("acme")
		gt.V(t, cfg.RepoPrefix()).Equal("svc-")

		out := logText(t, cfg)
		gt.True(t, strings.Contains(out, "acme"))
		gt.False(t, strings.Contains(out, "ghp_secret_token"))
	})

	t.Run("token from GITHUB_TOKEN", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "ghp_from_env")
		var cfg config.GitHub
		parseFlags(t, cfg.Flags())
		client := gt.R1(cfg.HTTPClient(ctx)).NoError(t)
		gt.V(t, client).NotNil()
	})

	t.Run("partial app credentials", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		var cfg config.GitHub
		parseFlags(t, cfg.Flags(), "--github-app-id", "1234")
		_, err := cfg.New(ctx)
		gt.Error(t, err).Is(types.ErrInvalidOption)
	})

	t.Run("override org", func(t *testing.T) {
		var cfg config.GitHub
		cfg.SetOrg("detected")
		gt.V(t, cfg.Org()).Equal("detected")
	})
}
