package cli

import "github.com/lanxpert/lanxpert-cli/internal/client/models"

// Screen identifies one screen of the client.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenOnboarding
	ScreenVerifyEmail
	ScreenDashboard
	ScreenWords
	ScreenQuestions
	ScreenArticles
	ScreenSaved
	ScreenChat
	ScreenNotifications
	ScreenSettings
	ScreenAdminDashboard
	ScreenAdminDatabase
	ScreenAdminImport
	ScreenAdminUsers
	ScreenAdminSettings
)

// public screens are reachable without a session.
func public(s Screen) bool {
	return s == ScreenLogin || s == ScreenRegister
}

// adminArea screens require the admin or moderator role.
func adminArea(s Screen) bool {
	switch s {
	case ScreenAdminDashboard, ScreenAdminDatabase, ScreenAdminImport,
		ScreenAdminUsers, ScreenAdminSettings:
		return true
	}
	return false
}

// adminOnly screens are the management subareas moderators cannot enter.
func adminOnly(s Screen) bool {
	return s == ScreenAdminUsers || s == ScreenAdminSettings
}

// Resolve runs the gate chain for one screen entry and returns the screen
// actually shown. The checks apply in a fixed order: a missing session
// redirects to login, an incomplete profile to onboarding, an unverified
// email to the verification screen, and insufficient roles bounce off the
// admin area. The chain is client-side convenience only; the server
// enforces authorization on every request regardless.
func Resolve(u *models.User, want Screen) Screen {
	if public(want) {
		return want
	}
	if u == nil {
		return ScreenLogin
	}
	if !u.Onboarded() {
		return ScreenOnboarding
	}
	if want == ScreenOnboarding {
		return want
	}
	if !u.EmailVerified {
		return ScreenVerifyEmail
	}
	if want == ScreenVerifyEmail {
		return want
	}
	if adminArea(want) {
		admin := u.HasRole("admin")
		if !admin && !u.HasRole("moderator") {
			return ScreenDashboard
		}
		if adminOnly(want) && !admin {
			return ScreenAdminDashboard
		}
	}
	return want
}
