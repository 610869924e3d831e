// Package cli implements the interactive LanXpert terminal client.
//
// The entry point is App.Run, which drives a read-eval-print loop: each
// command opens a screen, and every screen entry passes through the
// authorization gate chain (session, onboarding, email verification, admin
// roles) before rendering. Background pollers keep the chat list, the open
// conversation and the notification badge fresh while the user types.
//
// Interactive input goes through small seam variables (promptLine,
// promptSecret) so tests can script a session without a terminal.
package cli
