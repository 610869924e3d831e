package models

import "time"

type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"` // server-sanitized HTML
	LanguageID string    `json:"language_id"`
	UserID     string    `json:"user_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	User       *User     `json:"user,omitempty"`
	LikeCount  int       `json:"like_count"`
	IsLiked    bool      `json:"is_liked"`
	IsSaved    bool      `json:"is_saved"`
}

// LikeResult is the confirmed state returned by the like toggle.
type LikeResult struct {
	IsLiked   bool `json:"is_liked"`
	LikeCount int  `json:"like_count"`
}

type ArticleCreate struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	LanguageID string `json:"language_id"`
}
