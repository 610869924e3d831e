package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable covers transport-level failures: the request never
	// produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is any 401; the session store invalidates on it.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is any 403. In LanXpert these are domain errors
	// (daily limit exceeded, messaging restricted) surfaced with an
	// upgrade prompt.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is any 404, rendered as an inline empty state.
	ErrNotFound = errors.New("not found")
)

// Error carries the HTTP status and the server's "detail" string, which is
// shown to the user verbatim.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api: %d: %s", e.Status, http.StatusText(e.Status))
}

// Is maps status classes onto the package sentinels so call sites can use
// errors.Is without inspecting status codes.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// Detail extracts the server-provided detail string from err, or "" when
// err carries none.
func Detail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
