package render

import "strings"

// Fields are the values substituted into the shared page template.
type Fields struct {
	Title       string
	Description string
	MaxWidth    string
	Content     string
	Styles      string
	Script      string
}

// Placeholders lists the tokens the template must use, verbatim.
var Placeholders = []string{
	"{{TITLE}}",
	"{{DESCRIPTION}}",
	"{{MAX_WIDTH}}",
	"{{CONTENT}}",
	"{{STYLES}}",
	"{{SCRIPT}}",
}

// Page replaces every placeholder occurrence with its field value in a
// single pass. Values are inserted verbatim: no escaping, and a value that
// itself contains a placeholder token is not expanded again.
func Page(template string, fields Fields) string {
	replacer := strings.NewReplacer(
		"{{TITLE}}", fields.Title,
		"{{DESCRIPTION}}", fields.Description,
		"{{MAX_WIDTH}}", fields.MaxWidth,
		"{{CONTENT}}", fields.Content,
		"{{STYLES}}", fields.Styles,
		"{{SCRIPT}}", fields.Script,
	)
	return replacer.Replace(template)
}
