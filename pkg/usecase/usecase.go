package usecase

import (
	"github.com/m-mizutani/relsum/pkg/domain/interfaces"
	"github.com/m-mizutani/relsum/pkg/domain/types"
	"github.com/m-mizutani/relsum/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients

	project    types.ProjectKey
	githubOrg  string
	repoPrefix string

	tools     map[string]*tool
	toolOrder []*tool
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithProject sets the default tracker project used when a call does not name one.
func WithProject(project types.ProjectKey) Option {
	return func(x *UseCase) {
		x.project = project
	}
}

func WithGitHubOrg(org string) Option {
	return func(x *UseCase) {
		x.githubOrg = org
	}
}

// WithRepoPrefix limits branch discovery to repositories whose name starts with prefix.
func WithRepoPrefix(prefix string) Option {
	return func(x *UseCase) {
		x.repoPrefix = prefix
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
	}
	for _, opt := range options {
		opt(uc)
	}
	uc.registerTools()

	return uc
}
