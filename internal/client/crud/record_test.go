package crud

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"
)

func parseRecord(t *testing.T, raw string) *Record {
	t.Helper()
	v, err := fastjson.Parse(raw)
	require.NoError(t, err)
	return NewRecord(v)
}

func TestRecordCell(t *testing.T) {
	rec := parseRecord(t, `{
		"title": "Subjunctive basics",
		"level": 3,
		"ratio": 0.25,
		"is_active": true,
		"archived": false,
		"deleted_at": null,
		"meta": {"source": "import"}
	}`)

	assert.Equal(t, "Subjunctive basics", rec.Cell(Column{Name: "title"}).Display)
	assert.Equal(t, "3", rec.Cell(Column{Name: "level", Kind: KindNumber}).Display)
	assert.Equal(t, "0.25", rec.Cell(Column{Name: "ratio", Kind: KindNumber}).Display)
	assert.Equal(t, "Yes", rec.Cell(Column{Name: "is_active", Kind: KindBoolean}).Display)
	assert.Equal(t, "No", rec.Cell(Column{Name: "archived", Kind: KindBoolean}).Display)
	assert.Equal(t, "", rec.Cell(Column{Name: "deleted_at", Kind: KindDate}).Display)
	assert.Equal(t, "", rec.Cell(Column{Name: "missing"}).Display)
	assert.JSONEq(t, `{"source":"import"}`, rec.Cell(Column{Name: "meta"}).Display)
}

func TestRecordCellTruncation(t *testing.T) {
	long := strings.Repeat("a", 60)
	rec := parseRecord(t, `{"body": "`+long+`"}`)

	cell := rec.Cell(Column{Name: "body"})
	assert.True(t, cell.Truncated)
	assert.Equal(t, strings.Repeat("a", 50)+"...", cell.Display)
	assert.Equal(t, long, cell.Full)
}

func TestRecordCellTruncationCountsRunes(t *testing.T) {
	// 55 multibyte runes must clip at 50 runes, not 50 bytes
	long := strings.Repeat("ñ", 55)
	rec := parseRecord(t, `{"body": "`+long+`"}`)

	cell := rec.Cell(Column{Name: "body"})
	assert.True(t, cell.Truncated)
	assert.Equal(t, strings.Repeat("ñ", 50)+"...", cell.Display)
}

func TestRecordCellShortValueNotTruncated(t *testing.T) {
	exact := strings.Repeat("b", 50)
	rec := parseRecord(t, `{"body": "`+exact+`"}`)

	cell := rec.Cell(Column{Name: "body"})
	assert.False(t, cell.Truncated)
	assert.Equal(t, exact, cell.Display)
}

func TestRecordPrimaryKey(t *testing.T) {
	schema := Schema{Columns: []Column{
		{Name: "id", Kind: KindNumber, PrimaryKey: true},
		{Name: "title"},
	}}

	rec := parseRecord(t, `{"id": 7, "title": "x"}`)
	pk, ok := rec.PrimaryKey(schema)
	require.True(t, ok)
	assert.Equal(t, "7", pk)

	rec = parseRecord(t, `{"title": "x"}`)
	_, ok = rec.PrimaryKey(schema)
	assert.False(t, ok)

	rec = parseRecord(t, `{"id": null, "title": "x"}`)
	_, ok = rec.PrimaryKey(schema)
	assert.False(t, ok)

	_, ok = rec.PrimaryKey(Schema{Columns: []Column{{Name: "title"}}})
	assert.False(t, ok)
}

func TestRecordInputValue(t *testing.T) {
	rec := parseRecord(t, `{
		"title": "Hola",
		"level": 3,
		"is_active": true,
		"missing_flag": null,
		"created_at": "2026-02-14T09:30:15.123456"
	}`)

	assert.Equal(t, "Hola", rec.InputValue(Column{Name: "title"}))
	assert.Equal(t, "3", rec.InputValue(Column{Name: "level", Kind: KindNumber}))
	assert.Equal(t, "true", rec.InputValue(Column{Name: "is_active", Kind: KindBoolean}))
	assert.Equal(t, "false", rec.InputValue(Column{Name: "missing_flag", Kind: KindBoolean}))
	// datetime values drop seconds so the widget accepts them
	assert.Equal(t, "2026-02-14T09:30", rec.InputValue(Column{Name: "created_at", Kind: KindDate}))
}
