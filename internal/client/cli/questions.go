package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
	"github.com/lanxpert/lanxpert-cli/internal/client/services"
	"github.com/lanxpert/lanxpert-cli/internal/client/sync"
)

var questionTabs = []string{"All", "My questions", "Unanswered", "For me"}

func (a *App) questionsScreen(ctx context.Context) {
	tab := services.TabAll
	questions, err := a.svc.Questions.List(ctx, tab, a.session.Get())
	if err != nil {
		fmt.Fprintln(a.out, "Could not load questions:", api.Detail(err))
		return
	}
	a.printQuestions(questions, tab)

	for {
		cmd, err := promptLineFn(a.reader, "[1-4] switch tab, [o]pen <n>, [ask], [s]ave <n>, [b]ack", a.out)
		if err != nil {
			return
		}
		switch {
		case cmd == "b" || cmd == "back" || cmd == "":
			return
		case cmd == "1" || cmd == "2" || cmd == "3" || cmd == "4":
			tab = services.QuestionTab(int(cmd[0] - '1'))
			questions, err = a.svc.Questions.List(ctx, tab, a.session.Get())
			if err != nil {
				fmt.Fprintln(a.out, "Could not load questions:", api.Detail(err))
				continue
			}
			a.printQuestions(questions, tab)
		case cmd == "ask":
			a.askQuestion(ctx)
		default:
			if n, target, ok := indexedCommand(cmd, len(questions)); ok {
				switch target {
				case "o":
					a.openQuestion(ctx, &questions[n])
				case "s":
					a.toggleQuestionSave(ctx, &questions[n])
				}
				continue
			}
			fmt.Fprintln(a.out, "Unknown choice:", cmd)
		}
	}
}

// indexedCommand parses "o 3" / "s 1" style commands against a list length.
func indexedCommand(cmd string, size int) (int, string, bool) {
	var target string
	var num string
	if _, err := fmt.Sscanf(cmd, "%s %s", &target, &num); err != nil {
		return 0, "", false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 || n > size {
		return 0, "", false
	}
	return n - 1, target, true
}

func (a *App) printQuestions(questions []models.Question, tab services.QuestionTab) {
	fmt.Fprintf(a.out, "--- Questions | %s ---\n", questionTabs[tab])
	if len(questions) == 0 {
		fmt.Fprintln(a.out, "Nothing here yet.")
		return
	}
	for i, q := range questions {
		saved := " "
		if q.IsSaved {
			saved = "*"
		}
		author := "unknown"
		if q.User != nil {
			author = q.User.Username
		}
		fmt.Fprintf(a.out, "%2d.%s %s (%s, %d answers)\n",
			i+1, saved, q.QuestionText, author, len(q.Answers))
	}
}

func (a *App) openQuestion(ctx context.Context, q *models.Question) {
	fmt.Fprintf(a.out, "\n%s\n", q.QuestionText)
	if q.Description != "" {
		fmt.Fprintln(a.out, q.Description)
	}
	if q.TargetLanguageID != "" {
		fmt.Fprintln(a.out, "About:", models.LanguageName(q.TargetLanguageID))
	}
	if len(q.Answers) == 0 {
		fmt.Fprintln(a.out, "No answers yet.")
	}
	for i, ans := range q.Answers {
		author := "unknown"
		if ans.User != nil {
			author = ans.User.Username
		}
		fmt.Fprintf(a.out, "%2d. %s - %s (%d helpful)\n", i+1, author, ans.AnswerText, ans.HelpfulCount)
	}

	for {
		cmd, err := promptLineFn(a.reader, "[a]nswer, [h]elpful <n>, [b]ack", a.out)
		if err != nil {
			return
		}
		switch {
		case cmd == "b" || cmd == "back" || cmd == "":
			return
		case cmd == "a" || cmd == "answer":
			text, err := promptMultiline(a.reader, "Your answer", a.out)
			if err != nil || text == "" {
				continue
			}
			ans, err := a.svc.Questions.Answer(ctx, models.AnswerCreate{QuestionID: q.ID, AnswerText: text})
			if err != nil {
				fmt.Fprintln(a.out, "Could not post the answer:", api.Detail(err))
				continue
			}
			q.Answers = append(q.Answers, *ans)
			fmt.Fprintln(a.out, "Answer posted.")
		default:
			if n, target, ok := indexedCommand(cmd, len(q.Answers)); ok && target == "h" {
				if err := a.svc.Questions.MarkHelpful(ctx, &q.Answers[n]); err != nil {
					fmt.Fprintln(a.out, "Could not mark helpful:", api.Detail(err))
					continue
				}
				fmt.Fprintf(a.out, "Helpful count: %d\n", q.Answers[n].HelpfulCount)
				continue
			}
			fmt.Fprintln(a.out, "Unknown choice:", cmd)
		}
	}
}

func (a *App) toggleQuestionSave(ctx context.Context, q *models.Question) {
	if err := a.svc.Questions.ToggleSave(ctx, q); err != nil {
		if errors.Is(err, sync.ErrMutationInFlight) {
			return
		}
		fmt.Fprintln(a.out, "Could not update the bookmark:", api.Detail(err))
		return
	}
	if q.IsSaved {
		fmt.Fprintln(a.out, "Saved.")
	} else {
		fmt.Fprintln(a.out, "Removed from saved.")
	}
}

func (a *App) askQuestion(ctx context.Context) {
	u := a.session.Get()
	text, err := promptLineFn(a.reader, "Your question", a.out)
	if err != nil || text == "" {
		return
	}
	desc, err := promptMultiline(a.reader, "Extra context (optional)", a.out)
	if err != nil {
		return
	}
	_, err = a.svc.Questions.Create(ctx, models.QuestionCreate{
		QuestionText:     text,
		Description:      desc,
		SourceLanguageID: u.NativeLanguageID,
		TargetLanguageID: u.TargetLanguageID,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Could not post the question:", api.Detail(err))
		return
	}
	fmt.Fprintln(a.out, "Question posted.")
}
