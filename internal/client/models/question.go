package models

import "time"

type Answer struct {
	ID           string     `json:"id"`
	QuestionID   string     `json:"question_id"`
	AnswerText   string     `json:"answer_text"`
	UserID       string     `json:"user_id,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	User         *User      `json:"user,omitempty"`
	HelpfulCount int        `json:"helpful_count"`
	IsHelpful    bool       `json:"is_helpful"`
	ContextTags  string     `json:"context_tags,omitempty"` // comma separated
}

type Question struct {
	ID               string     `json:"id"`
	QuestionText     string     `json:"question_text"`
	Description      string     `json:"description,omitempty"`
	SourceLanguageID string     `json:"source_language_id,omitempty"`
	TargetLanguageID string     `json:"target_language_id,omitempty"`
	UserID           string     `json:"user_id,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	User             *User      `json:"user,omitempty"`
	Answers          []Answer   `json:"answers"`
	IsSaved          bool       `json:"is_saved"`
}

type QuestionCreate struct {
	QuestionText     string `json:"question_text"`
	Description      string `json:"description,omitempty"`
	SourceLanguageID string `json:"source_language_id,omitempty"`
	TargetLanguageID string `json:"target_language_id,omitempty"`
}

type AnswerCreate struct {
	QuestionID  string `json:"question_id"`
	AnswerText  string `json:"answer_text"`
	ContextTags string `json:"context_tags,omitempty"`
}
