// Package xlsx parses spreadsheet word lists for the admin bulk import.
// Parsing happens client-side so a broken file is reported row by row
// before anything reaches the server.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

// knownLevels are the CEFR levels the server accepts.
var knownLevels = map[string]bool{
	"A1": true, "A2": true,
	"B1": true, "B2": true,
	"C1": true, "C2": true,
}

const defaultLevel = "A1"

// Config maps spreadsheet columns onto word fields. Columns are Excel
// letters; level and part of speech are optional.
type Config struct {
	SheetName          string
	WordColumn         string
	MeaningColumn      string
	PartOfSpeechColumn string
	LevelColumn        string
	LanguageID         string
	TargetLanguageID   string
	StartRow           int // 1-based; rows above it are headers
}

// DefaultConfig reads word/meaning/part-of-speech/level from columns A-D of
// the first sheet, skipping one header row.
func DefaultConfig(languageID string) Config {
	return Config{
		WordColumn:         "A",
		MeaningColumn:      "B",
		PartOfSpeechColumn: "C",
		LevelColumn:        "D",
		LanguageID:         languageID,
		StartRow:           2,
	}
}

// Report summarizes one parse. Rows that fail validation are skipped and
// described in Errors; the rest of the file still imports.
type Report struct {
	TotalRows int
	Parsed    int
	Skipped   int
	Errors    []string
}

// ParseFile reads the spreadsheet at path into bulk-import payloads.
func ParseFile(path string, cfg Config) ([]models.WordCreate, *Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	return parseRows(rows, cfg)
}

func parseRows(rows [][]string, cfg Config) ([]models.WordCreate, *Report, error) {
	if cfg.LanguageID == "" {
		return nil, nil, fmt.Errorf("language id is required")
	}

	report := &Report{}
	words := make([]models.WordCreate, 0, len(rows))
	for i, row := range rows {
		if i < cfg.StartRow-1 {
			continue
		}
		report.TotalRows++

		w, err := parseRow(row, cfg)
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		words = append(words, w)
		report.Parsed++
	}
	return words, report, nil
}

func parseRow(row []string, cfg Config) (models.WordCreate, error) {
	w := models.WordCreate{
		Word:             cell(row, cfg.WordColumn),
		Meaning:          cell(row, cfg.MeaningColumn),
		PartOfSpeech:     cell(row, cfg.PartOfSpeechColumn),
		Level:            strings.ToUpper(cell(row, cfg.LevelColumn)),
		LanguageID:       cfg.LanguageID,
		TargetLanguageID: cfg.TargetLanguageID,
	}
	if w.Word == "" {
		return models.WordCreate{}, fmt.Errorf("word is empty")
	}
	if w.Meaning == "" {
		return models.WordCreate{}, fmt.Errorf("meaning is empty")
	}
	switch {
	case w.Level == "":
		w.Level = defaultLevel
	case !knownLevels[w.Level]:
		return models.WordCreate{}, fmt.Errorf("unknown level %q", w.Level)
	}
	return w, nil
}

func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	idx := columnIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnIndex converts an Excel column letter ("A", "AB") to a zero-based
// index.
func columnIndex(column string) int {
	idx := 0
	for _, r := range strings.ToUpper(column) {
		if r < 'A' || r > 'Z' {
			return -1
		}
		idx = idx*26 + int(r-'A'+1)
	}
	return idx - 1
}
