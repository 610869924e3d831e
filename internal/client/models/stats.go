package models

import "time"

// Overview mirrors GET /stats/overview.
type Overview struct {
	TotalVocabulary   int    `json:"total_vocabulary"`
	VocabThisWeek     int    `json:"vocab_this_week"`
	TotalQuestions    int    `json:"total_questions"`
	QuestionsThisWeek int    `json:"questions_this_week"`
	TotalArticles     int    `json:"total_articles"`
	CurrentStreak     int    `json:"current_streak"`
	XP                int    `json:"xp"`
	Level             string `json:"level"`
	NextLevelGoal     int    `json:"next_level_goal"`
	LevelProgress     int    `json:"level_progress"` // percentage, 0-100
}

// GoalProgress is a current/target pair for one daily-limit bucket.
type GoalProgress struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

// DailyGoals mirrors GET /stats/daily.
type DailyGoals struct {
	Words     GoalProgress `json:"words"`
	Questions GoalProgress `json:"questions"`
	Articles  GoalProgress `json:"articles"`
}

// ActivityItem is one entry of GET /stats/activity.
type ActivityItem struct {
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
