package cli

import (
	"context"
	"fmt"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

func (a *App) savedScreen(ctx context.Context) {
	items, err := a.svc.Features.SavedItems(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load saved items:", api.Detail(err))
		return
	}
	fmt.Fprintln(a.out, "--- Saved ---")
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Nothing saved yet.")
		return
	}
	for i, item := range items {
		fmt.Fprintf(a.out, "%2d. [%s] %s\n", i+1, item.ContentType, savedTitle(item))
	}

	for {
		cmd, err := promptLineFn(a.reader, "[r]emove <n>, [b]ack", a.out)
		if err != nil {
			return
		}
		if cmd == "b" || cmd == "back" || cmd == "" {
			return
		}
		n, target, ok := indexedCommand(cmd, len(items))
		if !ok || target != "r" {
			fmt.Fprintln(a.out, "Unknown choice:", cmd)
			continue
		}
		if err := a.svc.Features.Unsave(ctx, items[n]); err != nil {
			fmt.Fprintln(a.out, "Could not remove:", api.Detail(err))
			continue
		}
		items = append(items[:n], items[n+1:]...)
		fmt.Fprintln(a.out, "Removed.")
	}
}

// savedTitle picks a display line from the type-dependent details payload.
func savedTitle(item models.SavedItem) string {
	for _, key := range []string{"title", "text"} {
		if v := item.Details[key]; v != "" {
			if author := item.Details["author"]; author != "" {
				return fmt.Sprintf("%s (by %s)", v, author)
			}
			return v
		}
	}
	return item.ContentID
}
