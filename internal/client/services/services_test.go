package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/localstore"
)

// recordedRequest is one request captured by the fake server. List holds the
// body when it was a bare JSON array rather than an object.
type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Body   map[string]any
	List   []any
}

// fakeServer records every request and answers each path with a canned JSON
// response.
type fakeServer struct {
	responses map[string]string
	statuses  map[string]int
	requests  []recordedRequest
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		responses: map[string]string{},
		statuses:  map[string]int{},
	}
}

func (f *fakeServer) respond(path, body string) { f.responses[path] = body }

func (f *fakeServer) fail(path string, status int, detail string) {
	f.statuses[path] = status
	f.responses[path] = `{"detail": "` + detail + `"}`
}

func (f *fakeServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Query: map[string]string{}}
		for k := range r.URL.Query() {
			rec.Query[k] = r.URL.Query().Get(k)
		}
		if data, err := io.ReadAll(r.Body); err == nil && len(data) > 0 {
			if data[0] == '[' {
				json.Unmarshal(data, &rec.List)
			} else {
				json.Unmarshal(data, &rec.Body)
			}
		}
		f.requests = append(f.requests, rec)

		if status, ok := f.statuses[r.URL.Path]; ok {
			w.WriteHeader(status)
		}
		if body, ok := f.responses[r.URL.Path]; ok {
			w.Write([]byte(body))
			return
		}
		w.Write([]byte(`{}`))
	})
}

func (f *fakeServer) last() recordedRequest {
	return f.requests[len(f.requests)-1]
}

func newTestAPI(t *testing.T, fake *fakeServer) *api.Client {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return api.New(srv.URL, srv.Client(), nil)
}

// memRepo is an in-memory metadata.Repository for cache-backed services.
type memRepo struct {
	data map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (m *memRepo) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memRepo) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *memRepo) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memRepo) Clear(_ context.Context) error {
	m.data = map[string][]byte{}
	return nil
}

func newTestWordCache() (*localstore.WordCache, *memRepo) {
	repo := newMemRepo()
	return localstore.NewWordCache(repo), repo
}
