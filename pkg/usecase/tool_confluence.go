package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/relsum/pkg/domain/model"
)

const (
	defaultWikiSearchLimit = 25
	maxWikiSearchLimit     = 100
)

func (x *UseCase) callConfluenceGetPage(ctx context.Context, args model.ToolArgs) (string, any, error) {
	pageID, err := args.RequireString("page_id")
	if err != nil {
		return "", nil, err
	}
	wiki, err := x.wiki()
	if err != nil {
		return "", nil, err
	}

	page, err := wiki.GetPage(ctx, pageID)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("page %q (version %d)", page.Title, page.Version), page, nil
}

func (x *UseCase) callConfluenceSearch(ctx context.Context, args model.ToolArgs) (string, any, error) {
	cql, err := args.RequireString("cql")
	if err != nil {
		return "", nil, err
	}
	limit, err := positiveInt(args, "limit", defaultWikiSearchLimit, maxWikiSearchLimit)
	if err != nil {
		return "", nil, err
	}
	wiki, err := x.wiki()
	if err != nil {
		return "", nil, err
	}

	pages, err := wiki.SearchPages(ctx, cql, int(limit))
	if err != nil {
		return "", nil, err
	}
	if pages == nil {
		pages = []*model.WikiPage{}
	}
	return fmt.Sprintf("%d pages found", len(pages)), pages, nil
}
