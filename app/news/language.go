package news

import "golang.org/x/text/language"

// Preference display names accepted from user profiles, mapped onto the
// language tags the news API understands. Anything not listed falls back
// to English.
var preferenceTags = map[string]language.Tag{
	"Hindi":   language.Hindi,
	"English": language.English,
}

// LanguageCode maps a user's stored language preference to the two-letter
// code used in news API queries.
func LanguageCode(preference string) string {
	tag, ok := preferenceTags[preference]
	if !ok {
		tag = language.English
	}
	return tag.String()
}
