package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/crud"
)

// adminBrowserScreen is the schema-driven database browser: any resource the
// server exposes under /admin/generic becomes a table with forms derived
// from its column descriptor.
func (a *App) adminBrowserScreen(ctx context.Context) {
	resource, err := promptLineFn(a.reader, "Resource (e.g. words, questions, plans)", a.out)
	if err != nil || resource == "" {
		return
	}
	if err := a.browser.Open(ctx, resource); err != nil {
		fmt.Fprintln(a.out, "Could not open the resource:", api.Detail(err))
		return
	}
	a.printTable()

	for {
		cmd, err := promptLineFn(a.reader, "[n]ext, [p]rev, [c]reate, [e]dit <n>, [d]elete <n>, [b]ack", a.out)
		if err != nil {
			return
		}
		switch cmd {
		case "b", "back", "":
			return
		case "n", "next":
			if err := a.browser.NextPage(ctx); err != nil {
				fmt.Fprintln(a.out, "Failed:", api.Detail(err))
				continue
			}
			a.printTable()
		case "p", "prev":
			if err := a.browser.PrevPage(ctx); err != nil {
				fmt.Fprintln(a.out, "Failed:", api.Detail(err))
				continue
			}
			a.printTable()
		case "c", "create":
			a.recordForm(ctx, nil)
		default:
			n, target, ok := indexedCommand(cmd, len(a.browser.Records()))
			if !ok {
				fmt.Fprintln(a.out, "Unknown choice:", cmd)
				continue
			}
			switch target {
			case "e":
				a.recordForm(ctx, a.browser.Records()[n])
			case "d":
				a.deleteRecord(ctx, a.browser.Records()[n])
			}
		}
	}
}

func (a *App) printTable() {
	schema := a.browser.Schema()
	cols := schema.Sorted()

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}
	fmt.Fprintf(a.out, "--- %s ---\n", a.browser.Resource())
	fmt.Fprintln(a.out, "    "+strings.Join(header, " | "))

	for i, rec := range a.browser.Records() {
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = rec.Cell(c).Display
		}
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, strings.Join(cells, " | "))
	}

	from, to := a.browser.Showing()
	fmt.Fprintf(a.out, "Showing %d-%d of %d", from, to, a.browser.Total())
	if a.browser.HasNext() {
		fmt.Fprint(a.out, "  (more pages)")
	}
	fmt.Fprintln(a.out)
}

// recordForm walks the schema-derived form. rec == nil means create; on
// edit, primary keys are shown but not editable.
func (a *App) recordForm(ctx context.Context, rec *crud.Record) {
	schema := a.browser.Schema()
	editing := rec != nil
	values := map[string]string{}

	for _, col := range schema.FormColumns(editing) {
		current := ""
		if editing {
			current = rec.InputValue(col)
		}
		if !crud.Editable(col) {
			fmt.Fprintf(a.out, "%s: %s (read-only)\n", col.Name, current)
			values[col.Name] = current
			continue
		}

		var entered string
		var err error
		switch crud.WidgetFor(col) {
		case crud.WidgetSwitch:
			on, cerr := confirm(a.reader, fieldPrompt(col, current), a.out)
			if cerr != nil {
				return
			}
			entered = fmt.Sprintf("%t", on)
		case crud.WidgetTextArea:
			entered, err = promptMultiline(a.reader, fieldPrompt(col, current), a.out)
		default:
			entered, err = promptLineFn(a.reader, fieldPrompt(col, current), a.out)
		}
		if err != nil {
			return
		}
		if entered == "" && editing {
			entered = current
		}
		values[col.Name] = entered
	}

	var err error
	if editing {
		err = a.browser.Update(ctx, rec, values)
	} else {
		err = a.browser.Create(ctx, values)
	}
	if err != nil {
		fmt.Fprintln(a.out, "Save failed:", api.Detail(err))
		return
	}
	a.printTable()
}

func fieldPrompt(col crud.Column, current string) string {
	p := col.Name
	if col.Required {
		p += " (required)"
	}
	switch crud.WidgetFor(col) {
	case crud.WidgetNumberInput:
		p += " [number]"
	case crud.WidgetDateTimeInput:
		p += " [YYYY-MM-DDTHH:MM]"
	}
	if current != "" {
		p += " (current: " + current + ")"
	}
	return p
}

// deleteRecord asks for confirmation before anything leaves the client.
func (a *App) deleteRecord(ctx context.Context, rec *crud.Record) {
	label := a.browser.Resource() + " record"
	if pk, ok := rec.PrimaryKey(a.browser.Schema()); ok {
		label += " " + pk
	}
	yes, err := confirm(a.reader, "Delete "+label+"? This cannot be undone.", a.out)
	if err != nil || !yes {
		return
	}
	if err := a.browser.Delete(ctx, rec); err != nil {
		fmt.Fprintln(a.out, "Delete failed:", api.Detail(err))
		return
	}
	a.printTable()
}
