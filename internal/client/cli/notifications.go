package cli

import (
	"context"
	"fmt"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
)

func (a *App) notificationsScreen(ctx context.Context) {
	notes, err := a.svc.Notifications.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load notifications:", api.Detail(err))
		return
	}
	a.mu.Lock()
	a.notifications = notes
	a.mu.Unlock()

	fmt.Fprintln(a.out, "--- Notifications ---")
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return
	}
	for i, n := range notes {
		read := "*"
		if n.IsRead {
			read = " "
		}
		fmt.Fprintf(a.out, "%2d.%s %s - %s\n", i+1, read, n.Title, n.Message)
	}

	for {
		cmd, err := promptLineFn(a.reader, "[r]ead <n>, [all] mark all read, [b]ack", a.out)
		if err != nil {
			return
		}
		switch cmd {
		case "b", "back", "":
			return
		case "all":
			if err := a.svc.Notifications.MarkAllRead(ctx); err != nil {
				fmt.Fprintln(a.out, "Failed:", api.Detail(err))
				continue
			}
			a.mu.Lock()
			for i := range a.notifications {
				a.notifications[i].IsRead = true
			}
			a.mu.Unlock()
			fmt.Fprintln(a.out, "All read.")
		default:
			n, target, ok := indexedCommand(cmd, len(notes))
			if !ok || target != "r" {
				fmt.Fprintln(a.out, "Unknown choice:", cmd)
				continue
			}
			if err := a.svc.Notifications.MarkRead(ctx, notes[n].ID); err != nil {
				fmt.Fprintln(a.out, "Failed:", api.Detail(err))
				continue
			}
			notes[n].IsRead = true
		}
	}
}
