package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relsum/pkg/domain/interfaces"
	"github.com/m-mizutani/relsum/pkg/domain/mock"
	"github.com/m-mizutani/relsum/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.IssueTracker()).Equal(nil)
		gt.V(t, clients.SourceControl()).Equal(nil)
		gt.V(t, clients.Wiki()).Equal(nil)
	})

	t.Run("WithIssueTracker option sets tracker client", func(t *testing.T) {
		mockTracker := &mock.IssueTrackerMock{}
		clients := infra.New(infra.WithIssueTracker(mockTracker))
		gt.V(t, clients.IssueTracker()).Equal(interfaces.IssueTracker(mockTracker))
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockTracker := &mock.IssueTrackerMock{}
		mockSC := &mock.SourceControlMock{}
		mockWiki := &mock.WikiMock{}

		clients := infra.New(
			infra.WithIssueTracker(mockTracker),
			infra.WithSourceControl(mockSC),
			infra.WithWiki(mockWiki),
		)

		gt.V(t, clients.IssueTracker()).Equal(interfaces.IssueTracker(mockTracker))
		gt.V(t, clients.SourceControl()).Equal(interfaces.SourceControl(mockSC))
		gt.V(t, clients.Wiki()).Equal(interfaces.Wiki(mockWiki))
	})
}
