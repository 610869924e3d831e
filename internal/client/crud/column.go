// Package crud is the schema-driven admin database browser: given a resource
// slug it fetches a column descriptor, renders records as a paginated table,
// and derives create/edit forms from column kinds alone. Record shapes are
// only known at runtime, so records stay dynamic JSON values end to end.
package crud

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the tagged variant of a column's value type.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindBoolean
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	default:
		return "string"
	}
}

// UnmarshalJSON maps the server's type names onto Kind. Unknown types
// degrade to text, which renders and round-trips any value.
func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("column type: %w", err)
	}
	switch s {
	case "number":
		*k = KindNumber
	case "boolean":
		*k = KindBoolean
	case "date":
		*k = KindDate
	default:
		*k = KindText
	}
	return nil
}

// Column describes one field of a generic admin resource.
type Column struct {
	Name         string `json:"name"`
	Kind         Kind   `json:"type"`
	Required     bool   `json:"required"`
	PrimaryKey   bool   `json:"pk"`
	ForeignKey   bool   `json:"fk"`
}

// Schema is the ordered column list returned by GET /admin/generic/:r/schema.
type Schema struct {
	Columns []Column `json:"columns"`
}

// PrimaryKey returns the first primary-key column.
func (s Schema) PrimaryKey() (Column, bool) {
	for _, c := range s.Columns {
		if c.PrimaryKey {
			return c, true
		}
	}
	return Column{}, false
}

// Sorted returns the columns with primary keys first, otherwise preserving
// server order.
func (s Schema) Sorted() []Column {
	sorted := make([]Column, 0, len(s.Columns))
	for _, c := range s.Columns {
		if c.PrimaryKey {
			sorted = append(sorted, c)
		}
	}
	for _, c := range s.Columns {
		if !c.PrimaryKey {
			sorted = append(sorted, c)
		}
	}
	return sorted
}

// FormColumns returns the columns a form should render. The create form
// omits primary keys entirely (they are server-generated); the edit form
// includes them, read-only.
func (s Schema) FormColumns(editing bool) []Column {
	cols := make([]Column, 0, len(s.Columns))
	for _, c := range s.Sorted() {
		if c.PrimaryKey && !editing {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}

// Widget is the input control a form renders for a column.
type Widget int

const (
	WidgetTextInput Widget = iota
	WidgetTextArea
	WidgetNumberInput
	WidgetSwitch
	WidgetDateTimeInput
)

func (w Widget) String() string {
	switch w {
	case WidgetTextArea:
		return "textarea"
	case WidgetNumberInput:
		return "number"
	case WidgetSwitch:
		return "switch"
	case WidgetDateTimeInput:
		return "datetime-local"
	default:
		return "text"
	}
}

// longTextMarkers in a column name promote it to a multi-line widget.
var longTextMarkers = []string{"description", "content", "text"}

// WidgetFor derives the input widget purely from the column descriptor.
// Precedence: boolean wins outright, then the long-text name heuristic,
// then the kind.
func WidgetFor(c Column) Widget {
	if c.Kind == KindBoolean {
		return WidgetSwitch
	}
	for _, marker := range longTextMarkers {
		if strings.Contains(c.Name, marker) {
			return WidgetTextArea
		}
	}
	switch c.Kind {
	case KindDate:
		return WidgetDateTimeInput
	case KindNumber:
		return WidgetNumberInput
	default:
		return WidgetTextInput
	}
}

// Editable reports whether the column accepts input in a form. Primary keys
// never do.
func Editable(c Column) bool {
	return !c.PrimaryKey
}
