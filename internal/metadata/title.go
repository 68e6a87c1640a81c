package metadata

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Slugs whose titles never come out right from word capitalization alone.
var titleOverrides = map[string]string{
	"jiradown": "Jiradown",
}

var slugSeparators = strings.NewReplacer("-", " ", "_", " ")

// TitleFromSlug derives a display title from a slug: overrides first, then
// separator characters become spaces and each word is capitalized.
func TitleFromSlug(slug string) string {
	if override, ok := titleOverrides[slug]; ok {
		return override
	}
	words := strings.Fields(slugSeparators.Replace(slug))
	for i, word := range words {
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[0:1])) + strings.ToLower(string(runes[1:]))
	}
	return strings.Join(words, " ")
}

// TitleFromHTML reads the first <title> element of a rendered document and
// strips a trailing " - <site name>" suffix, accepting hyphen, en-dash, and
// em-dash variants case-insensitively. The second return is false when the
// document has no <title> element or cannot be parsed.
func TitleFromHTML(doc, siteName string) (string, bool) {
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return "", false
	}
	title := parsed.Find("title").First()
	if title.Length() == 0 {
		return "", false
	}
	return stripSiteSuffix(strings.TrimSpace(title.Text()), siteName), true
}

func stripSiteSuffix(title, siteName string) string {
	if strings.TrimSpace(siteName) == "" {
		return title
	}
	for _, dash := range []string{"-", "–", "—"} {
		suffix := " " + dash + " " + siteName
		if len(title) < len(suffix) {
			continue
		}
		if strings.EqualFold(title[len(title)-len(suffix):], suffix) {
			return strings.TrimSpace(title[:len(title)-len(suffix)])
		}
	}
	return title
}
