package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/internal/client/api"
	"github.com/carebook/carebook/internal/client/models"
	"github.com/carebook/carebook/internal/client/repositories/credentials"
	"github.com/carebook/carebook/internal/client/session"
	"github.com/carebook/carebook/internal/logging"

	_ "modernc.org/sqlite"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

// testSession builds a session manager over a real in-memory SQLite store.
func testSession(t *testing.T) (*session.Manager, *credentials.SQLiteRepository) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE credentials (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)

	repo := credentials.NewSQLiteRepository(db)
	m := session.NewManager(repo, testLogger())
	m.Bootstrap(context.Background())
	return m, repo
}

// failingStore rejects every write; it stands in for a broken device store.
type failingStore struct{ err error }

func (f *failingStore) Token(ctx context.Context) (string, error)         { return "", nil }
func (f *failingStore) Profile(ctx context.Context) (*models.User, error) { return nil, nil }
func (f *failingStore) Save(ctx context.Context, token string, profile *models.User) error {
	return f.err
}
func (f *failingStore) Clear(ctx context.Context) error { return f.err }

// fakeAPI scripts responses per "METHOD path" and records every call.
type recordedCall struct {
	method string
	path   string
	body   any
}

type fakeAPI struct {
	responses map[string]*api.Response
	calls     []recordedCall
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{responses: map[string]*api.Response{}}
}

func (f *fakeAPI) stub(method, path string, status int, body string) {
	r := &api.Response{Status: status}
	if body != "" {
		r.Data = json.RawMessage(body)
		if status < 200 || status >= 300 {
			var m map[string]any
			if err := json.Unmarshal([]byte(body), &m); err == nil {
				for _, key := range []string{"detail", "error", "message"} {
					if s, ok := m[key].(string); ok {
						r.Error = s
						break
					}
				}
			}
			if r.Error == "" {
				r.Error = "Request failed"
			}
		}
	} else if status < 200 || status >= 300 {
		r.Error = "Request failed"
	}
	f.responses[method+" "+path] = r
}

func (f *fakeAPI) respond(method, path string, body any) *api.Response {
	f.calls = append(f.calls, recordedCall{method: method, path: path, body: body})
	if r, ok := f.responses[method+" "+path]; ok {
		return r
	}
	return &api.Response{Status: http.StatusNotFound, Error: "Request failed"}
}

func (f *fakeAPI) Get(ctx context.Context, path string, opts ...api.CallOption) *api.Response {
	return f.respond(http.MethodGet, path, nil)
}

func (f *fakeAPI) Post(ctx context.Context, path string, body any, opts ...api.CallOption) *api.Response {
	return f.respond(http.MethodPost, path, body)
}

func (f *fakeAPI) Put(ctx context.Context, path string, body any, opts ...api.CallOption) *api.Response {
	return f.respond(http.MethodPut, path, body)
}

func (f *fakeAPI) Patch(ctx context.Context, path string, body any, opts ...api.CallOption) *api.Response {
	return f.respond(http.MethodPatch, path, body)
}

func (f *fakeAPI) Delete(ctx context.Context, path string, opts ...api.CallOption) *api.Response {
	return f.respond(http.MethodDelete, path, nil)
}
