package infra

import (
	"github.com/m-mizutani/relsum/pkg/domain/interfaces"
)

// Clients holds the remote API collaborators. Any of them may be nil when the integration is
// not configured.
type Clients struct {
	issueTracker  interfaces.IssueTracker
	sourceControl interfaces.SourceControl
	wiki          interfaces.Wiki
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) IssueTracker() interfaces.IssueTracker {
	return x.issueTracker
}
func (x *Clients) SourceControl() interfaces.SourceControl {
	return x.sourceControl
}
func (x *Clients) Wiki() interfaces.Wiki {
	return x.wiki
}

func WithIssueTracker(client interfaces.IssueTracker) Option {
	return func(x *Clients) {
		x.issueTracker = client
	}
}

func WithSourceControl(client interfaces.SourceControl) Option {
	return func(x *Clients) {
		x.sourceControl = client
	}
}

func WithWiki(client interfaces.Wiki) Option {
	return func(x *Clients) {
		x.wiki = client
	}
}
