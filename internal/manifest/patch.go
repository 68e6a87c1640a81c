package manifest

import (
	"regexp"
	"strings"
)

// The landing page declares its tool list as a single inline assignment.
// The array literal may span lines and may be empty; the match is
// non-greedy so only the first statement is rewritten.
var toolsArrayRe = regexp.MustCompile(`(?s)const tools = \[.*?\];`)

const patchIndent = "        "

// PatchIndex splices the serialized manifest into the landing-page
// document, re-indented by 8 spaces per line. When the document has no
// tools assignment it is returned unchanged and the second return is
// false.
func PatchIndex(doc string, records []Record) (string, bool, error) {
	loc := toolsArrayRe.FindStringIndex(doc)
	if loc == nil {
		return doc, false, nil
	}
	encoded, err := Encode(records, patchIndent, patchIndent)
	if err != nil {
		return doc, false, err
	}
	var out strings.Builder
	out.WriteString(doc[:loc[0]])
	out.WriteString("const tools = ")
	out.Write(encoded)
	out.WriteString(";")
	out.WriteString(doc[loc[1]:])
	return out.String(), true, nil
}
