package crud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
)

// fakeAdmin serves the generic admin endpoints for a single "words" resource
// with sequentially numbered records.
type fakeAdmin struct {
	total      int
	schemaHits int
	created    []map[string]any
	updated    map[string]map[string]any
	deleted    []string
}

func (f *fakeAdmin) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/admin/generic/words/schema":
			f.schemaHits++
			fmt.Fprint(w, `{"columns":[
				{"name":"id","type":"number","required":true,"pk":true,"fk":false},
				{"name":"title","type":"string","required":true,"pk":false,"fk":false}
			]}`)

		case r.Method == http.MethodGet && r.URL.Path == "/admin/generic/words":
			skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
			limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
			items := make([]string, 0, limit)
			for i := skip + 1; i <= f.total && i <= skip+limit; i++ {
				items = append(items, fmt.Sprintf(`{"id":%d,"title":"word-%d"}`, i, i))
			}
			fmt.Fprintf(w, `{"items":[%s],"total":%d}`, strings.Join(items, ","), f.total)

		case r.Method == http.MethodPost && r.URL.Path == "/admin/generic/words":
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			f.created = append(f.created, body)
			f.total++
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{}`)

		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/admin/generic/words/"):
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if f.updated == nil {
				f.updated = map[string]map[string]any{}
			}
			f.updated[strings.TrimPrefix(r.URL.Path, "/admin/generic/words/")] = body
			fmt.Fprint(w, `{}`)

		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/admin/generic/words/"):
			f.deleted = append(f.deleted, strings.TrimPrefix(r.URL.Path, "/admin/generic/words/"))
			f.total--
			fmt.Fprint(w, `{}`)

		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"detail": "Not found"}`)
		}
	})
}

func newTestEngine(t *testing.T, fake *fakeAdmin) *Engine {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	e, err := NewEngine(api.New(srv.URL, srv.Client(), nil))
	require.NoError(t, err)
	return e
}

func TestEngineOpenLoadsSchemaAndFirstPage(t *testing.T) {
	fake := &fakeAdmin{total: 5}
	e := newTestEngine(t, fake)

	require.NoError(t, e.Open(context.Background(), "words"))

	assert.Equal(t, StateReady, e.State())
	assert.Equal(t, "words", e.Resource())
	require.Len(t, e.Schema().Columns, 2)
	assert.Len(t, e.Records(), 5)
	assert.Equal(t, 5, e.Total())
	assert.Equal(t, "word-1", e.Records()[0].Cell(Column{Name: "title"}).Display)
}

func TestEnginePagination(t *testing.T) {
	fake := &fakeAdmin{total: 45}
	e := newTestEngine(t, fake)
	ctx := context.Background()

	require.NoError(t, e.Open(ctx, "words"))
	from, to := e.Showing()
	assert.Equal(t, 1, from)
	assert.Equal(t, 20, to)
	assert.True(t, e.HasNext())
	assert.False(t, e.HasPrev())

	require.NoError(t, e.NextPage(ctx))
	from, to = e.Showing()
	assert.Equal(t, 21, from)
	assert.Equal(t, 40, to)

	require.NoError(t, e.NextPage(ctx))
	from, to = e.Showing()
	assert.Equal(t, 41, from)
	assert.Equal(t, 45, to)
	assert.Len(t, e.Records(), 5)
	assert.False(t, e.HasNext())

	// past the last page is a no-op
	require.NoError(t, e.NextPage(ctx))
	assert.Equal(t, 3, e.Page())

	require.NoError(t, e.PrevPage(ctx))
	assert.Equal(t, 2, e.Page())
}

func TestEngineShowingEmpty(t *testing.T) {
	fake := &fakeAdmin{total: 0}
	e := newTestEngine(t, fake)

	require.NoError(t, e.Open(context.Background(), "words"))
	from, to := e.Showing()
	assert.Zero(t, from)
	assert.Zero(t, to)
	assert.False(t, e.HasNext())
}

func TestEngineSchemaCachedAcrossOpens(t *testing.T) {
	fake := &fakeAdmin{total: 3}
	e := newTestEngine(t, fake)
	ctx := context.Background()

	require.NoError(t, e.Open(ctx, "words"))
	require.NoError(t, e.Open(ctx, "words"))

	assert.Equal(t, 1, fake.schemaHits)
}

func TestEngineCreatePostsAndRefetches(t *testing.T) {
	fake := &fakeAdmin{total: 2}
	e := newTestEngine(t, fake)
	ctx := context.Background()
	require.NoError(t, e.Open(ctx, "words"))

	require.NoError(t, e.Create(ctx, map[string]string{"id": "99", "title": "nuevo"}))

	require.Len(t, fake.created, 1)
	assert.Equal(t, "nuevo", fake.created[0]["title"])
	assert.NotContains(t, fake.created[0], "id")
	// the table reflects the server after the refetch
	assert.Equal(t, 3, e.Total())
	assert.Len(t, e.Records(), 3)
}

func TestEngineUpdateTargetsPrimaryKey(t *testing.T) {
	fake := &fakeAdmin{total: 2}
	e := newTestEngine(t, fake)
	ctx := context.Background()
	require.NoError(t, e.Open(ctx, "words"))

	rec := e.Records()[1]
	require.NoError(t, e.Update(ctx, rec, map[string]string{"id": "2", "title": "editado"}))

	require.Contains(t, fake.updated, "2")
	assert.Equal(t, "editado", fake.updated["2"]["title"])
}

func TestEngineDelete(t *testing.T) {
	fake := &fakeAdmin{total: 3}
	e := newTestEngine(t, fake)
	ctx := context.Background()
	require.NoError(t, e.Open(ctx, "words"))

	require.NoError(t, e.Delete(ctx, e.Records()[0]))

	assert.Equal(t, []string{"1"}, fake.deleted)
	assert.Equal(t, 2, e.Total())
}

func TestEngineDeleteWithoutPrimaryKeySkipsServer(t *testing.T) {
	fake := &fakeAdmin{total: 1}
	e := newTestEngine(t, fake)
	ctx := context.Background()
	require.NoError(t, e.Open(ctx, "words"))

	rec := parseRecord(t, `{"title": "orphan"}`)
	require.NoError(t, e.Delete(ctx, rec))

	assert.Empty(t, fake.deleted)
}

func TestEngineDeleteLastRecordOnPageStepsBack(t *testing.T) {
	fake := &fakeAdmin{total: 21}
	e := newTestEngine(t, fake)
	ctx := context.Background()
	require.NoError(t, e.Open(ctx, "words"))
	require.NoError(t, e.NextPage(ctx))
	require.Len(t, e.Records(), 1)

	require.NoError(t, e.Delete(ctx, e.Records()[0]))

	assert.Equal(t, 1, e.Page())
	assert.Len(t, e.Records(), 20)
}

func TestEngineOpenUnknownResourceFails(t *testing.T) {
	fake := &fakeAdmin{}
	e := newTestEngine(t, fake)

	err := e.Open(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrNotFound)
	assert.Equal(t, StateError, e.State())
	assert.Error(t, e.Err())
}
