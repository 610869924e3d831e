package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

func TestHelpAnonymous(t *testing.T) {
	f := newTestApp(t, nil, "help\nexit\n")

	f.app.Run(context.Background())

	assert.Contains(t, f.out.String(), "register, login, exit")
	assert.NotContains(t, f.out.String(), "admin")
}

func TestHelpMember(t *testing.T) {
	f := newTestApp(t, memberUser(), "help\nexit\n")

	f.app.Run(context.Background())

	assert.Contains(t, f.out.String(), "(q)uestions")
	assert.NotContains(t, f.out.String(), "admin-db")
}

func TestHelpAdmin(t *testing.T) {
	u := memberUser()
	u.Roles = []models.UserRole{{Role: models.Role{Name: "admin"}}}
	f := newTestApp(t, u, "help\nexit\n")

	f.app.Run(context.Background())

	assert.Contains(t, f.out.String(), "admin-db")
}

func TestUnknownCommand(t *testing.T) {
	f := newTestApp(t, nil, "frobnicate\nexit\n")

	f.app.Run(context.Background())

	assert.Contains(t, f.out.String(), "Unknown command: frobnicate")
}

func TestPromptShowsUsername(t *testing.T) {
	f := newTestApp(t, memberUser(), "exit\n")

	f.app.Run(context.Background())

	assert.Contains(t, f.out.String(), "lx (maria)>")
}

func TestGateRedirectsAnonymousToLogin(t *testing.T) {
	restore := promptLineFn
	promptLineFn = func(*bufio.Reader, string, io.Writer) (string, error) {
		return "", io.EOF
	}
	defer func() { promptLineFn = restore }()

	f := newTestApp(t, nil, "chat\nexit\n")
	f.app.Run(context.Background())

	assert.Contains(t, f.out.String(), "Please log in first.")
}

func TestGateRedirectsMemberOffAdmin(t *testing.T) {
	f := newTestApp(t, memberUser(), "admin\nexit\n")

	f.app.Run(context.Background())

	assert.Contains(t, f.out.String(), "You don't have access to that area.")
}
