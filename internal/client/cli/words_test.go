package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
)

func TestWordsScreenShowsWord(t *testing.T) {
	f := newTestApp(t, memberUser(), "b\n")

	f.app.wordsScreen(context.Background())

	out := f.out.String()
	assert.Contains(t, out, "casa")
	assert.Contains(t, out, "house")
}

func TestWordsScreenDailyLimitPanel(t *testing.T) {
	f := newTestApp(t, memberUser(), "")
	f.vocab.randomErr = &api.Error{
		Status: 403,
		Detail: "Free plan limit reached (5 words/day). Please upgrade.",
	}

	f.app.wordsScreen(context.Background())

	out := f.out.String()
	assert.Contains(t, out, "Daily Limit Reached")
	assert.Contains(t, out, "Free plan limit reached (5 words/day). Please upgrade.")
	assert.Contains(t, out, "Upgrade your plan")
}

func TestWordsScreenOtherErrorsArePlain(t *testing.T) {
	f := newTestApp(t, memberUser(), "")
	f.vocab.randomErr = &api.Error{Status: 500, Detail: "boom"}

	f.app.wordsScreen(context.Background())

	assert.NotContains(t, f.out.String(), "Daily Limit Reached")
	assert.Contains(t, f.out.String(), "boom")
}
