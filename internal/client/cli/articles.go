package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
	"github.com/lanxpert/lanxpert-cli/internal/client/services"
	"github.com/lanxpert/lanxpert-cli/internal/client/sync"
)

func (a *App) articlesScreen(ctx context.Context) {
	tab := services.ArticlesAll
	articles, err := a.svc.Articles.List(ctx, tab, a.session.Get())
	if err != nil {
		fmt.Fprintln(a.out, "Could not load articles:", api.Detail(err))
		return
	}
	a.printArticles(articles, tab)

	for {
		cmd, err := promptLineFn(a.reader, "[1] all, [2] mine, [o]pen <n>, [l]ike <n>, [s]ave <n>, [w]rite, [b]ack", a.out)
		if err != nil {
			return
		}
		switch cmd {
		case "b", "back", "":
			return
		case "1", "2":
			tab = services.ArticleTab(int(cmd[0] - '1'))
			articles, err = a.svc.Articles.List(ctx, tab, a.session.Get())
			if err != nil {
				fmt.Fprintln(a.out, "Could not load articles:", api.Detail(err))
				continue
			}
			a.printArticles(articles, tab)
		case "w", "write":
			a.writeArticle(ctx)
		default:
			n, target, ok := indexedCommand(cmd, len(articles))
			if !ok {
				fmt.Fprintln(a.out, "Unknown choice:", cmd)
				continue
			}
			switch target {
			case "o":
				a.openArticle(ctx, &articles[n])
			case "l":
				a.toggleArticleLike(ctx, &articles[n])
				// reload so counters match what everyone else sees
				if fresh, err := a.svc.Articles.List(ctx, tab, a.session.Get()); err == nil {
					articles = fresh
					a.printArticles(articles, tab)
				}
			case "s":
				if err := a.svc.Articles.ToggleSave(ctx, &articles[n]); err != nil && !errors.Is(err, sync.ErrMutationInFlight) {
					fmt.Fprintln(a.out, "Could not update the bookmark:", api.Detail(err))
				}
			}
		}
	}
}

func (a *App) printArticles(articles []models.Article, tab services.ArticleTab) {
	title := "All articles"
	if tab == services.ArticlesMine {
		title = "My articles"
	}
	fmt.Fprintf(a.out, "--- %s ---\n", title)
	if len(articles) == 0 {
		fmt.Fprintln(a.out, "Nothing here yet.")
		return
	}
	for i, art := range articles {
		liked := " "
		if art.IsLiked {
			liked = "+"
		}
		author := "unknown"
		if art.User != nil {
			author = art.User.Username
		}
		fmt.Fprintf(a.out, "%2d.%s %s (%s, %d likes, %s)\n",
			i+1, liked, art.Title, author, art.LikeCount, models.LanguageName(art.LanguageID))
	}
}

func (a *App) openArticle(ctx context.Context, art *models.Article) {
	full, err := a.svc.Articles.Get(ctx, art.ID)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load the article:", api.Detail(err))
		return
	}
	fmt.Fprintf(a.out, "\n# %s\n\n%s\n\n", full.Title, full.Content)
	fmt.Fprintf(a.out, "%d likes\n", full.LikeCount)
}

func (a *App) toggleArticleLike(ctx context.Context, art *models.Article) {
	if err := a.svc.Articles.ToggleLike(ctx, art); err != nil && !errors.Is(err, sync.ErrMutationInFlight) {
		fmt.Fprintln(a.out, "Could not update the like:", api.Detail(err))
	}
}

func (a *App) writeArticle(ctx context.Context) {
	u := a.session.Get()
	title, err := promptLineFn(a.reader, "Title", a.out)
	if err != nil || title == "" {
		return
	}
	content, err := promptMultiline(a.reader, "Write your article", a.out)
	if err != nil || content == "" {
		return
	}
	_, err = a.svc.Articles.Create(ctx, models.ArticleCreate{
		Title:      title,
		Content:    content,
		LanguageID: u.TargetLanguageID,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Could not publish:", api.Detail(err))
		return
	}
	fmt.Fprintln(a.out, "Published.")
}
