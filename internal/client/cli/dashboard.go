package cli

import (
	"context"
	"fmt"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
)

func (a *App) dashboardScreen(ctx context.Context) {
	u := a.session.Get()
	fmt.Fprintf(a.out, "--- Dashboard | %s ---\n", u.Username)

	if overview, err := a.svc.Stats.Overview(ctx); err == nil {
		fmt.Fprintf(a.out, "Level %s | %d XP (%d%% to next) | %d day streak\n",
			overview.Level, overview.XP, overview.LevelProgress, overview.CurrentStreak)
		fmt.Fprintf(a.out, "Vocabulary: %d (+%d this week) | Questions: %d | Articles: %d\n",
			overview.TotalVocabulary, overview.VocabThisWeek, overview.TotalQuestions, overview.TotalArticles)
	} else {
		fmt.Fprintln(a.out, "Stats unavailable:", api.Detail(err))
	}

	if goals, err := a.svc.Stats.DailyGoals(ctx); err == nil {
		fmt.Fprintf(a.out, "Today: words %d/%d | questions %d/%d | articles %d/%d\n",
			goals.Words.Current, goals.Words.Target,
			goals.Questions.Current, goals.Questions.Target,
			goals.Articles.Current, goals.Articles.Target)
	}

	if ds, err := a.svc.Features.DailySentence(ctx); err == nil && ds.ID != "" {
		fmt.Fprintln(a.out, "\nSentence of the day:")
		fmt.Fprintf(a.out, "  %q\n", ds.AnswerText)
		if ds.User != nil {
			fmt.Fprintf(a.out, "  by %s (%d found this helpful)\n", ds.User.Username, ds.HelpfulCount)
		}
	}

	if wc, err := a.svc.Features.WeeklyChampion(ctx); err == nil && wc.User.ID != "" {
		fmt.Fprintf(a.out, "\nChampion of the week: %s (%d accepted answers, %d points)\n",
			wc.User.Username, wc.AcceptedCount, wc.Score)
	}

	if activity, err := a.svc.Stats.Activity(ctx); err == nil && len(activity) > 0 {
		fmt.Fprintln(a.out, "\nRecent activity:")
		for i, item := range activity {
			if i == 5 {
				break
			}
			fmt.Fprintf(a.out, "  %s  %s\n", item.CreatedAt.Format("Jan 02 15:04"), item.Text)
		}
	}
}
