package cli

import (
	"context"
	"fmt"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
	"github.com/lanxpert/lanxpert-cli/internal/client/xlsx"
)

func (a *App) adminDashboardScreen(ctx context.Context) {
	stats, err := a.svc.Admin.DashboardStats(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load admin stats:", api.Detail(err))
		return
	}
	fmt.Fprintln(a.out, "--- Admin ---")
	fmt.Fprintf(a.out, "Users: %d | Words: %d | Questions: %d | Articles: %d\n",
		stats.Users, stats.Words, stats.Questions, stats.Articles)
	fmt.Fprintln(a.out, "Subareas: admin-users, admin-db, admin-import")
}

func (a *App) adminUsersScreen(ctx context.Context) {
	search, err := promptLineFn(a.reader, "Search users (empty for all)", a.out)
	if err != nil {
		return
	}
	users, err := a.svc.Admin.ListUsers(ctx, search)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load users:", api.Detail(err))
		return
	}
	a.printAdminUsers(users)

	for {
		cmd, err := promptLineFn(a.reader, "[t]oggle <n>, [p]romote <n>, [d]emote <n>, [r]eset limits <n>, [b]ack", a.out)
		if err != nil {
			return
		}
		if cmd == "b" || cmd == "back" || cmd == "" {
			return
		}
		n, target, ok := indexedCommand(cmd, len(users))
		if !ok {
			fmt.Fprintln(a.out, "Unknown choice:", cmd)
			continue
		}
		u := &users[n]
		switch target {
		case "t":
			active, err := a.svc.Admin.ToggleActive(ctx, u.ID)
			if err != nil {
				fmt.Fprintln(a.out, "Failed:", api.Detail(err))
				continue
			}
			u.IsActive = active
			a.printAdminUsers(users)
		case "p":
			role, err := promptLineFn(a.reader, "Role to grant (moderator/admin)", a.out)
			if err != nil || role == "" {
				continue
			}
			if err := a.svc.Admin.PromoteRole(ctx, u.ID, role); err != nil {
				fmt.Fprintln(a.out, "Failed:", api.Detail(err))
				continue
			}
			fmt.Fprintf(a.out, "%s is now a %s.\n", u.Username, role)
		case "d":
			role, err := promptLineFn(a.reader, "Role to remove", a.out)
			if err != nil || role == "" {
				continue
			}
			if err := a.svc.Admin.RemoveRole(ctx, u.ID, role); err != nil {
				fmt.Fprintln(a.out, "Failed:", api.Detail(err))
				continue
			}
			fmt.Fprintf(a.out, "Removed %s from %s.\n", role, u.Username)
		case "r":
			if err := a.svc.Admin.ResetLimits(ctx, u.ID); err != nil {
				fmt.Fprintln(a.out, "Failed:", api.Detail(err))
				continue
			}
			fmt.Fprintf(a.out, "Daily limits reset for %s.\n", u.Username)
		default:
			fmt.Fprintln(a.out, "Unknown choice:", cmd)
		}
	}
}

func (a *App) printAdminUsers(users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return
	}
	for i, u := range users {
		state := "active"
		if !u.IsActive {
			state = "disabled"
		}
		roles := ""
		for _, r := range u.Roles {
			roles += " " + r.Role.Name
		}
		fmt.Fprintf(a.out, "%2d. %s <%s> %s%s\n", i+1, u.Username, u.Email, state, roles)
	}
}

func (a *App) adminImportScreen(ctx context.Context) {
	path, err := promptLineFn(a.reader, "Path to the .xlsx word list", a.out)
	if err != nil || path == "" {
		return
	}

	names := make([]string, len(models.Languages))
	for i, l := range models.Languages {
		names[i] = l.Name
	}
	lang, err := promptChoice(a.reader, "Language of the words", names, a.out)
	if err != nil {
		return
	}

	words, report, err := xlsx.ParseFile(path, xlsx.DefaultConfig(models.Languages[lang].ID))
	if err != nil {
		fmt.Fprintln(a.out, "Could not read the file:", err)
		return
	}
	fmt.Fprintf(a.out, "Parsed %d of %d rows.\n", report.Parsed, report.TotalRows)
	for _, e := range report.Errors {
		fmt.Fprintln(a.out, " ", e)
	}
	if len(words) == 0 {
		return
	}

	yes, err := confirm(a.reader, fmt.Sprintf("Import %d words?", len(words)), a.out)
	if err != nil || !yes {
		return
	}
	res, err := a.svc.Admin.BulkImportWords(ctx, words)
	if err != nil {
		fmt.Fprintln(a.out, "Import failed:", api.Detail(err))
		return
	}
	fmt.Fprintf(a.out, "Imported %d words.\n", res.Created)
	for _, e := range res.Errors {
		fmt.Fprintln(a.out, " ", e)
	}
}
