package usecase

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zip"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/interfaces"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
	"github.com/m-mizutani/relsum/pkg/utils/safe"
)

const (
	// deployLogMarker identifies the log entry of the deploy trigger stage.
	deployLogMarker = "deploy trigger stage"

	maxLogEntrySize = 64 * 1024 * 1024
)

// extractLogEntries returns the non-directory entries of a zip archive in archive order,
// decoded as text. When nameFilter is not empty only entries whose name contains it
// (case-insensitive) are returned.
func extractLogEntries(data []byte, nameFilter string) ([]*model.LogEntry, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidArchive, "failed to open log archive",
			goerr.V("size", len(data)),
			goerr.V("cause", err.Error()),
		)
	}

	filter := strings.ToLower(nameFilter)
	entries := []*model.LogEntry{}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(f.Name), filter) {
			continue
		}

		content, err := readLogEntry(f)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &model.LogEntry{
			FileName: f.Name,
			Content:  content,
		})
	}

	return entries, nil
}

func readLogEntry(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", goerr.Wrap(types.ErrInvalidArchive, "failed to open archive entry",
			goerr.V("file", f.Name),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(rc)

	return readLogText(rc, f.Name, maxLogEntrySize)
}

// readLogText fails instead of truncating when r holds more than limit bytes.
func readLogText(r io.Reader, name string, limit int64) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", goerr.Wrap(types.ErrInvalidArchive, "failed to read archive entry",
			goerr.V("file", name),
			goerr.V("cause", err.Error()),
		)
	}
	if int64(len(raw)) > limit {
		return "", goerr.Wrap(types.ErrInvalidArchive, "archive entry is too large",
			goerr.V("file", name),
			goerr.V("limit", limit),
		)
	}

	return decodeLogText(raw), nil
}

// decodeLogText decodes raw bytes as UTF-8, dropping a leading BOM and replacing invalid
// sequences with U+FFFD.
func decodeLogText(raw []byte) string {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), "�")
}

// findDeployLog returns the first entry whose file name contains the deploy trigger stage
// marker, or nil.
func findDeployLog(entries []*model.LogEntry) *model.LogEntry {
	for _, entry := range entries {
		if entry != nil && strings.Contains(strings.ToLower(entry.FileName), deployLogMarker) {
			return entry
		}
	}
	return nil
}

// latestCompletedRun returns the ID of the most recent completed workflow run of repo.
func latestCompletedRun(ctx context.Context, sc interfaces.SourceControl, org string, repo types.RepoName) (types.RunID, error) {
	runs, err := sc.ListWorkflowRuns(ctx, org, repo, &model.WorkflowRunFilter{
		Status:  model.WorkflowRunStatusCompleted,
		PerPage: 1,
	})
	if err != nil {
		return 0, err
	}
	if len(runs) == 0 || runs[0] == nil {
		return 0, goerr.Wrap(types.ErrNotFound, "no completed workflow run",
			goerr.V("org", org),
			goerr.V("repo", repo),
		)
	}

	logging.From(ctx).Debug("resolved latest completed run",
		slog.String("repo", repo.String()),
		slog.Int64("run_id", int64(runs[0].ID)),
	)
	return runs[0].ID, nil
}

// fetchDeployLog downloads the log archive of a run and locates the deploy trigger stage
// entry. It returns all extracted entries together with the located one.
func fetchDeployLog(ctx context.Context, sc interfaces.SourceControl, org string, repo types.RepoName, runID types.RunID) ([]*model.LogEntry, *model.LogEntry, error) {
	data, err := sc.DownloadRunLogArchive(ctx, org, repo, runID)
	if err != nil {
		return nil, nil, err
	}

	entries, err := extractLogEntries(data, "")
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to extract log archive",
			goerr.V("repo", repo),
			goerr.V("run_id", runID),
		)
	}

	entry := findDeployLog(entries)
	if entry == nil {
		return entries, nil, goerr.Wrap(types.ErrNotFound, "deploy trigger stage log not found",
			goerr.V("repo", repo),
			goerr.V("run_id", runID),
			goerr.V("entries", len(entries)),
		)
	}

	return entries, entry, nil
}
