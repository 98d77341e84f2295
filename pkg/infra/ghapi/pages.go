package ghapi

import (
	"context"
	"log/slog"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

type pageFetcher[T any] func(ctx context.Context, opt github.ListOptions) ([]T, *github.Response, error)

// fetchAllPages fetches the first page to learn the last page number, then fetches the rest
// concurrently. A failing page after the first one contributes no items; items keep page order.
func fetchAllPages[T any](ctx context.Context, concurrency int, fetch pageFetcher[T]) ([]T, error) {
	first, resp, err := fetch(ctx, github.ListOptions{PerPage: defaultPerPage, Page: 1})
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.LastPage <= 1 {
		return first, nil
	}

	pages := make([][]T, resp.LastPage+1)
	pages[1] = first

	var eg errgroup.Group
	eg.SetLimit(concurrency)
	for page := 2; page <= resp.LastPage; page++ {
		eg.Go(func() error {
			items, _, err := fetch(ctx, github.ListOptions{PerPage: defaultPerPage, Page: page})
			if err != nil {
				logging.From(ctx).Warn("Failed to fetch page, skipping",
					slog.Int("page", page),
					slog.Any("error", err),
				)
				return nil
			}
			pages[page] = items
			return nil
		})
	}
	_ = eg.Wait()

	var result []T
	for _, items := range pages {
		result = append(result, items...)
	}
	return result, nil
}
