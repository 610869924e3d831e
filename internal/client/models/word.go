package models

type Word struct {
	ID               string `json:"id"`
	Word             string `json:"word"`
	Meaning          string `json:"meaning"`
	PartOfSpeech     string `json:"part_of_speech,omitempty"`
	Level            string `json:"level"`
	LanguageID       string `json:"language_id"`
	TargetLanguageID string `json:"target_language_id,omitempty"`
	IsActive         bool   `json:"is_active"`
}

// WordCreate is the POST /words payload, also used for bulk admin imports.
type WordCreate struct {
	Word             string `json:"word"`
	Meaning          string `json:"meaning"`
	PartOfSpeech     string `json:"part_of_speech,omitempty"`
	Level            string `json:"level"`
	LanguageID       string `json:"language_id"`
	TargetLanguageID string `json:"target_language_id,omitempty"`
}

type WordUpdate struct {
	Word     *string `json:"word,omitempty"`
	Meaning  *string `json:"meaning,omitempty"`
	Level    *string `json:"level,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
