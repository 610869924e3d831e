package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) status() string {
	u := a.session.Get()
	if u == nil {
		return "guest"
	}
	s := u.Username
	if n := a.unreadCount(); n > 0 {
		s = fmt.Sprintf("%s [%d]", s, n)
	}
	return s
}

func (a *App) root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to LanXpert (type 'help' for commands)")

	// a persisted token survives restarts; pick the session back up
	if a.svc.Auth.Authenticated() {
		if _, err := a.session.Refresh(ctx); err != nil {
			fmt.Fprintln(a.out, "Stored session expired, please log in again.")
		}
	}
	a.syncBackground(ctx)

	for {
		fmt.Fprintf(a.out, "lx (%s)> ", a.status())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			a.printHelp()
		case "register":
			a.open(ctx, ScreenRegister)
		case "login":
			a.open(ctx, ScreenLogin)
		case "logout":
			a.logoutScreen(ctx)
		case "onboard":
			a.open(ctx, ScreenOnboarding)
		case "verify":
			a.open(ctx, ScreenVerifyEmail)
		case "dash", "dashboard":
			a.open(ctx, ScreenDashboard)
		case "word", "practice":
			a.open(ctx, ScreenWords)
		case "q", "questions":
			a.open(ctx, ScreenQuestions)
		case "a", "articles":
			a.open(ctx, ScreenArticles)
		case "saved":
			a.open(ctx, ScreenSaved)
		case "chat":
			a.open(ctx, ScreenChat)
		case "n", "notifications":
			a.open(ctx, ScreenNotifications)
		case "settings":
			a.open(ctx, ScreenSettings)
		case "admin":
			a.open(ctx, ScreenAdminDashboard)
		case "admin-users":
			a.open(ctx, ScreenAdminUsers)
		case "admin-db":
			a.open(ctx, ScreenAdminDatabase)
		case "admin-import":
			a.open(ctx, ScreenAdminImport)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) printHelp() {
	if !a.loggedIn() {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
		return
	}
	fmt.Fprintln(a.out, "Available commands: dash, word, (q)uestions, (a)rticles, saved, chat, (n)otifications, settings, logout, exit")
	if u := a.session.Get(); u != nil && (u.HasRole("admin") || u.HasRole("moderator")) {
		fmt.Fprintln(a.out, "Admin commands: admin, admin-users, admin-db, admin-import")
	}
}

// open runs the gate chain and renders whichever screen it lands on.
func (a *App) open(ctx context.Context, want Screen) {
	dest := Resolve(a.session.Get(), want)
	if dest != want {
		switch dest {
		case ScreenLogin:
			fmt.Fprintln(a.out, "Please log in first.")
		case ScreenOnboarding:
			fmt.Fprintln(a.out, "Finish onboarding first.")
		case ScreenVerifyEmail:
			fmt.Fprintln(a.out, "Please verify your email first.")
		default:
			fmt.Fprintln(a.out, "You don't have access to that area.")
		}
	}
	a.render(ctx, dest)
}

func (a *App) render(ctx context.Context, s Screen) {
	switch s {
	case ScreenLogin:
		a.loginScreen(ctx)
	case ScreenRegister:
		a.registerScreen(ctx)
	case ScreenOnboarding:
		a.onboardingScreen(ctx)
	case ScreenVerifyEmail:
		a.verifyEmailScreen(ctx)
	case ScreenDashboard:
		a.dashboardScreen(ctx)
	case ScreenWords:
		a.wordsScreen(ctx)
	case ScreenQuestions:
		a.questionsScreen(ctx)
	case ScreenArticles:
		a.articlesScreen(ctx)
	case ScreenSaved:
		a.savedScreen(ctx)
	case ScreenChat:
		a.chatScreen(ctx)
	case ScreenNotifications:
		a.notificationsScreen(ctx)
	case ScreenSettings:
		a.settingsScreen(ctx)
	case ScreenAdminDashboard:
		a.adminDashboardScreen(ctx)
	case ScreenAdminUsers:
		a.adminUsersScreen(ctx)
	case ScreenAdminDatabase:
		a.adminBrowserScreen(ctx)
	case ScreenAdminImport:
		a.adminImportScreen(ctx)
	}
}

// syncBackground aligns the notification poller with the session state.
func (a *App) syncBackground(ctx context.Context) {
	if a.loggedIn() {
		if !a.notificationPoller.Active() {
			a.notificationPoller.Start(ctx, "")
		}
		return
	}
	a.notificationPoller.Stop()
}
