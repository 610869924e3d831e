package crud

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

// displayLimit caps a table cell before appending an ellipsis.
const displayLimit = 50

// Record is one row of a generic resource, kept as dynamic JSON because the
// column set is only known at runtime.
type Record struct {
	v *fastjson.Value
}

// NewRecord wraps a parsed JSON object. The value must outlive the record;
// callers keep the owning parser alive alongside the page.
func NewRecord(v *fastjson.Value) *Record {
	return &Record{v: v}
}

// PrimaryKey returns the record's primary-key value as a path segment.
// It is absent on records the server returned without one, in which case
// no mutation besides create is possible.
func (r *Record) PrimaryKey(s Schema) (string, bool) {
	pk, ok := s.PrimaryKey()
	if !ok {
		return "", false
	}
	v := r.v.Get(pk.Name)
	if v == nil || v.Type() == fastjson.TypeNull {
		return "", false
	}
	return scalarString(v), true
}

// InputValue renders the column's current value in the form a widget expects:
// booleans as "true"/"false", dates truncated to minute precision, numbers
// without a forced decimal point.
func (r *Record) InputValue(c Column) string {
	v := r.v.Get(c.Name)
	if v == nil || v.Type() == fastjson.TypeNull {
		if c.Kind == KindBoolean {
			return "false"
		}
		return ""
	}
	s := scalarString(v)
	if c.Kind == KindDate && len(s) > 16 {
		// "2006-01-02T15:04:05.999" -> "2006-01-02T15:04"
		return s[:16]
	}
	return s
}

// Cell is one rendered table cell.
type Cell struct {
	Display   string
	Full      string
	Truncated bool
}

// Cell renders the column's value for the table: booleans become Yes/No,
// nested structures are serialized JSON, and anything longer than the
// display limit is clipped at a rune boundary.
func (r *Record) Cell(c Column) Cell {
	v := r.v.Get(c.Name)
	if v == nil || v.Type() == fastjson.TypeNull {
		return Cell{}
	}
	if v.Type() == fastjson.TypeTrue || v.Type() == fastjson.TypeFalse {
		if v.Type() == fastjson.TypeTrue {
			return Cell{Display: "Yes", Full: "Yes"}
		}
		return Cell{Display: "No", Full: "No"}
	}
	full := scalarString(v)
	runes := []rune(full)
	if len(runes) <= displayLimit {
		return Cell{Display: full, Full: full}
	}
	return Cell{Display: string(runes[:displayLimit]) + "...", Full: full, Truncated: true}
}

func scalarString(v *fastjson.Value) string {
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		f := v.GetFloat64()
		if f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case fastjson.TypeTrue:
		return "true"
	case fastjson.TypeFalse:
		return "false"
	default:
		// objects and arrays render as their JSON text
		return v.String()
	}
}

// BuildPayload converts form input back into the JSON body a create or
// update expects. Input arrives as widget strings; columns recover their
// typed values from the kind. Primary keys are dropped on create. An empty
// optional non-text field is sent as an explicit null so the server clears
// it rather than rejecting "".
func BuildPayload(s Schema, values map[string]string, editing bool) (map[string]any, error) {
	payload := make(map[string]any, len(s.Columns))
	for _, c := range s.Columns {
		if c.PrimaryKey && !editing {
			continue
		}
		raw := strings.TrimSpace(values[c.Name])
		if raw == "" {
			if c.Required && !c.PrimaryKey {
				return nil, fmt.Errorf("%s is required", c.Name)
			}
			if c.Kind != KindText {
				payload[c.Name] = nil
			} else {
				payload[c.Name] = ""
			}
			continue
		}
		switch c.Kind {
		case KindNumber:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%s must be a number", c.Name)
			}
			payload[c.Name] = f
		case KindBoolean:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("%s must be true or false", c.Name)
			}
			payload[c.Name] = b
		default:
			payload[c.Name] = raw
		}
	}
	return payload, nil
}
