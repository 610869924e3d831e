package cli

import (
	"context"
	"fmt"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
	"github.com/lanxpert/lanxpert-cli/internal/client/services"
)

func (a *App) wordsScreen(ctx context.Context) {
	word, err := a.svc.Vocabulary.CurrentWord(ctx)
	if err != nil {
		a.showWordError(err)
		return
	}
	a.printWord(word)

	for {
		cmd, err := promptLineFn(a.reader, "[n]ext word, [t]oday's words, [a]dd word, [b]ack", a.out)
		if err != nil {
			return
		}
		switch cmd {
		case "n", "next":
			word, err := a.svc.Vocabulary.RandomWord(ctx)
			if err != nil {
				a.showWordError(err)
				return
			}
			a.printWord(word)
		case "t", "today":
			words, err := a.svc.Vocabulary.LearnedToday(ctx)
			if err != nil {
				fmt.Fprintln(a.out, "Could not load today's words:", api.Detail(err))
				continue
			}
			if len(words) == 0 {
				fmt.Fprintln(a.out, "No words learned today yet.")
				continue
			}
			for _, w := range words {
				fmt.Fprintf(a.out, "  %s - %s\n", w.Word, w.Meaning)
			}
		case "a", "add":
			a.addWord(ctx)
		case "b", "back", "":
			return
		default:
			fmt.Fprintln(a.out, "Unknown choice:", cmd)
		}
	}
}

// showWordError renders the upgrade panel on the free-plan daily limit and a
// plain error otherwise.
func (a *App) showWordError(err error) {
	if services.IsDailyLimit(err) {
		fmt.Fprintln(a.out, "+--------------------------------------------+")
		fmt.Fprintln(a.out, "|            Daily Limit Reached             |")
		fmt.Fprintln(a.out, "| "+api.Detail(err))
		fmt.Fprintln(a.out, "| Upgrade your plan to keep practicing.      |")
		fmt.Fprintln(a.out, "+--------------------------------------------+")
		return
	}
	fmt.Fprintln(a.out, "Could not load a word:", api.Detail(err))
}

func (a *App) printWord(w *models.Word) {
	fmt.Fprintf(a.out, "\n  %s", w.Word)
	if w.PartOfSpeech != "" {
		fmt.Fprintf(a.out, " (%s)", w.PartOfSpeech)
	}
	fmt.Fprintf(a.out, "  [%s, %s]\n", w.Level, models.LanguageName(w.LanguageID))
	fmt.Fprintf(a.out, "  %s\n\n", w.Meaning)
}

func (a *App) addWord(ctx context.Context) {
	u := a.session.Get()
	word, err := promptLineFn(a.reader, "Word", a.out)
	if err != nil || word == "" {
		return
	}
	meaning, err := promptLineFn(a.reader, "Meaning", a.out)
	if err != nil || meaning == "" {
		return
	}
	level, err := promptLineFn(a.reader, "Level (A1-C2, empty for A1)", a.out)
	if err != nil {
		return
	}
	if level == "" {
		level = "A1"
	}

	created, err := a.svc.Vocabulary.Create(ctx, models.WordCreate{
		Word:       word,
		Meaning:    meaning,
		Level:      level,
		LanguageID: u.TargetLanguageID,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Could not add the word:", api.Detail(err))
		return
	}
	fmt.Fprintf(a.out, "Added %q.\n", created.Word)
}
