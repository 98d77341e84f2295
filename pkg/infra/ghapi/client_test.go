package ghapi_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
	"github.com/m-mizutani/relsum/pkg/infra/ghapi"
)

func newTestClient(t *testing.T, mux *http.ServeMux) (*ghapi.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := gt.R1(ghapi.New(nil,
		ghapi.WithBaseURL(srv.URL+"/api"),
		ghapi.WithDownloadClient(srv.Client()),
	)).NoError(t)
	return client, srv
}

func TestListRepositories(t *testing.T) {
	t.Run("fetches every page and filters by prefix", func(t *testing.T) {
		mux := http.NewServeMux()
		var srvURL string
		mux.HandleFunc("GET /api/orgs/acme/repos", func(w http.ResponseWriter, r *http.Request) {
			page := r.URL.Query().Get("page")
			if page == "" || page == "1" {
				w.Header().Set("Link", fmt.Sprintf(`<%s/api/orgs/acme/repos?page=2>; rel="next", <%s/api/orgs/acme/repos?page=3>; rel="last"`, srvURL, srvURL))
				fmt.Fprint(w, `[{"name":"svc-api","archived":false},{"name":"docs"}]`)
				return
			}
			switch page {
			case "2":
				fmt.Fprint(w, `[{"name":"SVC-web","archived":true}]`)
			case "3":
				fmt.Fprint(w, `[{"name":"svc-worker"}]`)
			}
		})
		client, srv := newTestClient(t, mux)
		srvURL = srv.URL

		repos := gt.R1(client.ListRepositories(context.Background(), "acme", "svc-")).NoError(t)
		gt.A(t, repos).Length(3)
		gt.V(t, repos[0].Name).Equal(types.RepoName("svc-api"))
		gt.V(t, repos[1].Name).Equal(types.RepoName("SVC-web"))
		gt.True(t, repos[1].Archived)
		gt.V(t, repos[2].Name).Equal(types.RepoName("svc-worker"))
	})

	t.Run("failing later page contributes nothing", func(t *testing.T) {
		mux := http.NewServeMux()
		var srvURL string
		mux.HandleFunc("GET /api/orgs/acme/repos", func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Query().Get("page") {
			case "", "1":
				w.Header().Set("Link", fmt.Sprintf(`<%s/api/orgs/acme/repos?page=2>; rel="last"`, srvURL))
				fmt.Fprint(w, `[{"name":"a"}]`)
			default:
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"message":"boom"}`)
			}
		})
		client, srv := newTestClient(t, mux)
		srvURL = srv.URL

		repos := gt.R1(client.ListRepositories(context.Background(), "acme", "")).NoError(t)
		gt.A(t, repos).Length(1)
	})

	t.Run("failing first page is an error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/orgs/acme/repos", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"Not Found"}`)
		})
		client, _ := newTestClient(t, mux)

		_, err := client.ListRepositories(context.Background(), "acme", "")
		gt.Error(t, err)
	})
}

func TestListBranches(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/repos/acme/svc-api/branches", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"name":"main","commit":{"sha":"abc"}},{"name":"feature/PROJ-1"}]`)
	})
	client, _ := newTestClient(t, mux)

	branches := gt.R1(client.ListBranches(context.Background(), "acme", "svc-api")).NoError(t)
	gt.A(t, branches).Length(2)
	gt.V(t, branches[0].Name).Equal("main")
	gt.V(t, branches[0].CommitSHA).Equal("abc")
	gt.V(t, branches[1].Name).Equal("feature/PROJ-1")
}

func TestListWorkflowRuns(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/repos/acme/svc-api/actions/runs", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Query().Get("status")).Equal("completed")
		gt.V(t, r.URL.Query().Get("per_page")).Equal("1")
		fmt.Fprint(w, `{"total_count":10,"workflow_runs":[{"id":99,"name":"deploy","status":"completed","conclusion":"success"}]}`)
	})
	client, _ := newTestClient(t, mux)

	runs := gt.R1(client.ListWorkflowRuns(context.Background(), "acme", "svc-api", &model.WorkflowRunFilter{
		Status:  model.WorkflowRunStatusCompleted,
		PerPage: 1,
	})).NoError(t)
	gt.A(t, runs).Length(1)
	gt.V(t, runs[0].ID).Equal(types.RunID(99))
	gt.V(t, runs[0].Conclusion).Equal("success")
}

func TestDownloadRunLogArchive(t *testing.T) {
	t.Run("follows the archive redirect", func(t *testing.T) {
		mux := http.NewServeMux()
		var srvURL string
		mux.HandleFunc("GET /api/repos/acme/svc-api/actions/runs/5/logs", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Location", srvURL+"/archive/5.zip")
			w.WriteHeader(http.StatusFound)
		})
		mux.HandleFunc("GET /archive/5.zip", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("PK-archive-bytes"))
		})
		client, srv := newTestClient(t, mux)
		srvURL = srv.URL

		data := gt.R1(client.DownloadRunLogArchive(context.Background(), "acme", "svc-api", 5)).NoError(t)
		gt.V(t, string(data)).Equal("PK-archive-bytes")
	})

	t.Run("archive download failure", func(t *testing.T) {
		mux := http.NewServeMux()
		var srvURL string
		mux.HandleFunc("GET /api/repos/acme/svc-api/actions/runs/5/logs", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Location", srvURL+"/archive/5.zip")
			w.WriteHeader(http.StatusFound)
		})
		mux.HandleFunc("GET /archive/5.zip", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusGone)
		})
		client, srv := newTestClient(t, mux)
		srvURL = srv.URL

		_, err := client.DownloadRunLogArchive(context.Background(), "acme", "svc-api", 5)
		gt.Error(t, err)
	})

	t.Run("logs not available", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/repos/acme/svc-api/actions/runs/5/logs", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		client, _ := newTestClient(t, mux)

		_, err := client.DownloadRunLogArchive(context.Background(), "acme", "svc-api", 5)
		gt.Error(t, err)
	})
}

func TestNewAppHTTPClient(t *testing.T) {
	t.Run("zero app ID fails", func(t *testing.T) {
		_, err := ghapi.NewAppHTTPClient(0, 1, "pem")
		gt.Error(t, err)
	})

	t.Run("zero install ID fails", func(t *testing.T) {
		_, err := ghapi.NewAppHTTPClient(1, 0, "pem")
		gt.Error(t, err)
	})

	t.Run("invalid key fails", func(t *testing.T) {
		_, err := ghapi.NewAppHTTPClient(1, 2, "invalid-key")
		gt.Error(t, err)
	})
}

func TestNewTokenHTTPClient(t *testing.T) {
	_, err := ghapi.NewTokenHTTPClient(context.Background(), "")
	gt.Error(t, err)

	client := gt.R1(ghapi.NewTokenHTTPClient(context.Background(), "ghp_test")).NoError(t)
	gt.V(t, client).NotEqual(nil)
}
