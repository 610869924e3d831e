package crud

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/valyala/fastjson"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/logging"
)

// PageSize is the fixed page length of the record table.
const PageSize = 20

// State is the browser's lifecycle phase. Mutations are only accepted in
// StateReady; a failed load lands in StateError and Open must be retried.
type State int

const (
	StateIdle State = iota
	StateLoadingSchema
	StateLoadingData
	StateReady
	StateError
)

// Engine drives the generic admin browser for one resource at a time:
// schema fetch, paginated record listing, and create/update/delete with a
// full refetch afterwards so the table always shows server truth.
type Engine struct {
	client  *api.Client
	schemas *ristretto.Cache[string, Schema]
	log     logging.Logger

	state    State
	resource string
	schema   Schema
	page     int
	total    int
	records  []*Record
	parser   fastjson.Parser
	lastErr  error
}

type EngineOption func(*Engine)

func WithEngineLogger(l logging.Logger) EngineOption {
	return func(e *Engine) { e.log = l }
}

// NewEngine builds an engine with a process-wide schema cache. Schemas
// change only on deploy, so revisiting a resource skips the schema round
// trip.
func NewEngine(client *api.Client, opts ...EngineOption) (*Engine, error) {
	schemas, err := ristretto.NewCache(&ristretto.Config[string, Schema]{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("schema cache: %w", err)
	}
	e := &Engine{client: client, schemas: schemas, log: logging.Nop{}}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) State() State      { return e.state }
func (e *Engine) Resource() string  { return e.resource }
func (e *Engine) Schema() Schema    { return e.schema }
func (e *Engine) Records() []*Record { return e.records }
func (e *Engine) Total() int        { return e.total }
func (e *Engine) Page() int         { return e.page }
func (e *Engine) Err() error        { return e.lastErr }

// Open selects a resource, loading its schema and first page. Switching
// resources resets pagination.
func (e *Engine) Open(ctx context.Context, resource string) error {
	e.resource = resource
	e.page = 1
	e.state = StateLoadingSchema

	schema, ok := e.schemas.Get(resource)
	if !ok {
		if err := e.client.Get(ctx, "/admin/generic/"+resource+"/schema", nil, &schema); err != nil {
			return e.fail(ctx, fmt.Errorf("load schema for %s: %w", resource, err))
		}
		e.schemas.Set(resource, schema, int64(len(schema.Columns)))
		e.schemas.Wait()
	}
	e.schema = schema
	return e.loadPage(ctx)
}

// Refresh refetches the current page.
func (e *Engine) Refresh(ctx context.Context) error {
	return e.loadPage(ctx)
}

// HasNext reports whether another page exists beyond the current one.
func (e *Engine) HasNext() bool { return e.page*PageSize < e.total }

func (e *Engine) HasPrev() bool { return e.page > 1 }

// Showing describes the visible slice, e.g. "21-40 of 45". Both bounds are
// zero on an empty table.
func (e *Engine) Showing() (from, to int) {
	if e.total == 0 {
		return 0, 0
	}
	from = (e.page-1)*PageSize + 1
	to = from + len(e.records) - 1
	return from, to
}

func (e *Engine) NextPage(ctx context.Context) error {
	if !e.HasNext() {
		return nil
	}
	e.page++
	return e.loadPage(ctx)
}

func (e *Engine) PrevPage(ctx context.Context) error {
	if !e.HasPrev() {
		return nil
	}
	e.page--
	return e.loadPage(ctx)
}

// Create posts the form values as a new record, then refetches the page.
func (e *Engine) Create(ctx context.Context, values map[string]string) error {
	payload, err := BuildPayload(e.schema, values, false)
	if err != nil {
		return err
	}
	if err := e.client.Post(ctx, "/admin/generic/"+e.resource, payload, nil); err != nil {
		return fmt.Errorf("create %s record: %w", e.resource, err)
	}
	e.log.Debug(ctx, "record created", "resource", e.resource)
	return e.loadPage(ctx)
}

// Update writes the form values over an existing record, then refetches.
func (e *Engine) Update(ctx context.Context, rec *Record, values map[string]string) error {
	pk, ok := rec.PrimaryKey(e.schema)
	if !ok {
		return fmt.Errorf("%s record has no primary key", e.resource)
	}
	payload, err := BuildPayload(e.schema, values, true)
	if err != nil {
		return err
	}
	if err := e.client.Put(ctx, "/admin/generic/"+e.resource+"/"+url.PathEscape(pk), payload, nil); err != nil {
		return fmt.Errorf("update %s record %s: %w", e.resource, pk, err)
	}
	return e.loadPage(ctx)
}

// Delete removes a record and refetches. A record with no primary key is
// not addressable, so the call short-circuits without touching the server.
func (e *Engine) Delete(ctx context.Context, rec *Record) error {
	pk, ok := rec.PrimaryKey(e.schema)
	if !ok {
		e.log.Warn(ctx, "delete skipped, record has no primary key", "resource", e.resource)
		return nil
	}
	if err := e.client.Delete(ctx, "/admin/generic/"+e.resource+"/"+url.PathEscape(pk)); err != nil {
		return fmt.Errorf("delete %s record %s: %w", e.resource, pk, err)
	}
	return e.loadPage(ctx)
}

func (e *Engine) loadPage(ctx context.Context) error {
	e.state = StateLoadingData
	q := url.Values{}
	q.Set("skip", strconv.Itoa((e.page-1)*PageSize))
	q.Set("limit", strconv.Itoa(PageSize))
	raw, err := e.client.RawGet(ctx, "/admin/generic/"+e.resource, q)
	if err != nil {
		return e.fail(ctx, fmt.Errorf("load %s page %d: %w", e.resource, e.page, err))
	}
	v, err := e.parser.ParseBytes(raw)
	if err != nil {
		return e.fail(ctx, fmt.Errorf("decode %s page: %w", e.resource, err))
	}
	items := v.GetArray("items")
	records := make([]*Record, 0, len(items))
	for _, item := range items {
		records = append(records, NewRecord(item))
	}
	e.records = records
	e.total = v.GetInt("total")
	// a deletion on the last page can leave it empty; step back once
	if len(e.records) == 0 && e.page > 1 {
		e.page--
		return e.loadPage(ctx)
	}
	e.state = StateReady
	e.lastErr = nil
	return nil
}

func (e *Engine) fail(ctx context.Context, err error) error {
	e.state = StateError
	e.lastErr = err
	e.log.Error(ctx, "admin browser", "resource", e.resource, "err", err)
	return err
}
