package models

import "time"

// DailySentence is the community answer featured on the dashboard,
// GET /features/daily-sentence.
type DailySentence struct {
	ID           string `json:"id"`
	AnswerText   string `json:"answer_text"`
	HelpfulCount int    `json:"helpful_count"`
	ContextTags  string `json:"context_tags,omitempty"`
	User         *User  `json:"user,omitempty"`
}

// WeeklyChampion mirrors GET /features/weekly-champion.
type WeeklyChampion struct {
	User          User `json:"user"`
	AcceptedCount int  `json:"accepted_count"`
	Score         int  `json:"score"`
}

// Saved content types accepted by POST /features/save/:type/:id.
const (
	SavedTypeQuestion = "question"
	SavedTypeArticle  = "article"
)

// SavedItem is one bookmark from GET /features/saved. Details is a loose
// payload whose keys depend on the content type (text/description/author for
// questions, title/author for articles).
type SavedItem struct {
	ID          string            `json:"id"`
	ContentType string            `json:"content_type"`
	ContentID   string            `json:"content_id"`
	CreatedAt   time.Time         `json:"created_at"`
	Details     map[string]string `json:"details,omitempty"`
}

// SaveResult is the confirmed state returned by the save toggle.
type SaveResult struct {
	IsSaved bool `json:"is_saved"`
}

// HelpfulResult is the declared-success response of POST /features/helpful/:id.
// Status is "success" on the first mark and "ignored" on duplicates.
type HelpfulResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (r HelpfulResult) Accepted() bool { return r.Status == "success" }
