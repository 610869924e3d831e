package models

type Language struct {
	ID   string
	Code string
	Name string
}

// Languages is the static list the client resolves language ids against.
// Foreign-key style relations (language_id on words, questions, users) are
// resolved by linear lookup at render time; the list is small enough that an
// index would not pay for itself.
var Languages = []Language{
	{ID: "lang-en", Code: "en", Name: "English"},
	{ID: "lang-tr", Code: "tr", Name: "Turkish"},
	{ID: "lang-es", Code: "es", Name: "Spanish"},
	{ID: "lang-fr", Code: "fr", Name: "French"},
	{ID: "lang-jp", Code: "jp", Name: "Japanese"},
	{ID: "lang-de", Code: "de", Name: "German"},
}

// LanguageName resolves a language id to its display name.
// Unknown ids fall back to the raw id so the UI never shows an empty cell.
func LanguageName(id string) string {
	for _, l := range Languages {
		if l.ID == id {
			return l.Name
		}
	}
	return id
}

// LanguageByCode returns the language with the given ISO-style code.
func LanguageByCode(code string) (Language, bool) {
	for _, l := range Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}
