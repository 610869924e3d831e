package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

// promptLineFn and promptSecretFn are indirections for tests.
var promptLineFn = promptLine
var promptSecretFn = promptSecret

func (a *App) loginScreen(ctx context.Context) {
	username, err := promptLineFn(a.reader, "Username", a.out)
	if err != nil {
		return
	}
	password, err := promptSecretFn("Password", a.out)
	if err != nil {
		return
	}

	if err := a.svc.Auth.Login(ctx, username, password); err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			fmt.Fprintln(a.out, "Wrong username or password.")
		case errors.Is(err, api.ErrUnavailable):
			fmt.Fprintln(a.out, "Server unavailable, try again later.")
		default:
			fmt.Fprintln(a.out, "Login failed:", api.Detail(err))
		}
		return
	}

	u, err := a.session.Refresh(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load your profile:", api.Detail(err))
		return
	}
	fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Username)
	a.syncBackground(ctx)

	// route new accounts straight into the remaining setup steps
	if dest := Resolve(u, ScreenDashboard); dest != ScreenDashboard {
		a.render(ctx, dest)
	}
}

func (a *App) registerScreen(ctx context.Context) {
	username, err := promptLineFn(a.reader, "Username", a.out)
	if err != nil {
		return
	}
	email, err := promptLineFn(a.reader, "Email", a.out)
	if err != nil {
		return
	}
	password, err := promptSecretFn("Password", a.out)
	if err != nil {
		return
	}

	_, err = a.svc.Auth.Register(ctx, models.UserCreate{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Registration failed:", api.Detail(err))
		return
	}
	fmt.Fprintln(a.out, "Account created. Logging you in...")

	if err := a.svc.Auth.Login(ctx, username, password); err != nil {
		fmt.Fprintln(a.out, "Automatic login failed, use 'login'.")
		return
	}
	if u, err := a.session.Refresh(ctx); err == nil {
		a.syncBackground(ctx)
		a.render(ctx, Resolve(u, ScreenDashboard))
	}
}

func (a *App) verifyEmailScreen(ctx context.Context) {
	u := a.session.Get()
	if u == nil {
		return
	}
	fmt.Fprintf(a.out, "A verification code will be sent to %s.\n", u.Email)
	if err := a.svc.Auth.SendVerificationCode(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not send the code:", api.Detail(err))
		return
	}

	code, err := promptLineFn(a.reader, "Verification code", a.out)
	if err != nil || code == "" {
		return
	}
	if err := a.svc.Auth.VerifyEmail(ctx, code); err != nil {
		fmt.Fprintln(a.out, "Verification failed:", api.Detail(err))
		return
	}
	fmt.Fprintln(a.out, "Email verified!")
	a.session.Refresh(ctx)
}

func (a *App) logoutScreen(ctx context.Context) {
	if !a.loggedIn() {
		return
	}
	if err := a.svc.Auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", api.Detail(err))
		return
	}
	a.session.Invalidate()
	a.stopPollers()
	fmt.Fprintln(a.out, "Logged out.")
}
