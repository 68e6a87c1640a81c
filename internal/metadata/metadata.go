package metadata

import (
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCategory = "Utilities"
	DefaultMaxWidth = "900px"
)

// Meta holds the per-tool fields harvested from a docs.md document.
// A zero Title means the caller derives one from the slug.
type Meta struct {
	Title       string
	Category    string
	MaxWidth    string
	Description string
}

var (
	titleRe    = regexp.MustCompile(`(?i)<!--\s*title:\s*(.+?)\s*-->`)
	categoryRe = regexp.MustCompile(`(?i)<!--\s*category:\s*(.+?)\s*-->`)
	maxWidthRe = regexp.MustCompile(`(?i)<!--\s*max-width:\s*(.+?)\s*-->`)
	commentRe  = regexp.MustCompile(`(?s)<!--.*?-->`)
)

type frontmatter struct {
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	MaxWidth    string `yaml:"max-width"`
	Description string `yaml:"description"`
}

// Read parses the document at path. A missing, unreadable, or empty path
// yields an all-default Meta; extraction never fails.
func Read(path string) Meta {
	if strings.TrimSpace(path) == "" {
		return Parse("")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Parse("")
	}
	return Parse(string(data))
}

// Parse extracts metadata from an in-memory document. Fields come from an
// optional YAML frontmatter block first, then HTML-comment keys override.
func Parse(content string) Meta {
	meta := Meta{Category: DefaultCategory, MaxWidth: DefaultMaxWidth}

	fm, body := splitFrontmatter(content)
	if fm != nil {
		if strings.TrimSpace(fm.Title) != "" {
			meta.Title = strings.TrimSpace(fm.Title)
		}
		if strings.TrimSpace(fm.Category) != "" {
			meta.Category = strings.TrimSpace(fm.Category)
		}
		if strings.TrimSpace(fm.MaxWidth) != "" {
			meta.MaxWidth = strings.TrimSpace(fm.MaxWidth)
		}
	}

	if match := titleRe.FindStringSubmatch(body); match != nil {
		meta.Title = strings.TrimSpace(match[1])
	}
	if match := categoryRe.FindStringSubmatch(body); match != nil {
		meta.Category = strings.TrimSpace(match[1])
	}
	if match := maxWidthRe.FindStringSubmatch(body); match != nil {
		meta.MaxWidth = strings.TrimSpace(match[1])
	}

	meta.Description = firstParagraph(commentRe.ReplaceAllString(body, ""))
	if meta.Description == "" && fm != nil {
		meta.Description = strings.TrimSpace(fm.Description)
	}

	return meta
}

func splitFrontmatter(content string) (*frontmatter, string) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return nil, content
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, content
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &fm); err != nil {
		return nil, content
	}
	return &fm, strings.Join(lines[end+1:], "\n")
}

type paragraphState int

const (
	beforeContent paragraphState = iota
	inParagraph
	paragraphDone
)

// firstParagraph joins the first run of consecutive non-blank lines with
// single spaces. A blank line ends collection once content has accumulated.
func firstParagraph(text string) string {
	state := beforeContent
	var collected []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch state {
		case beforeContent:
			if trimmed != "" {
				collected = append(collected, trimmed)
				state = inParagraph
			}
		case inParagraph:
			if trimmed == "" {
				state = paragraphDone
			} else {
				collected = append(collected, trimmed)
			}
		}
		if state == paragraphDone {
			break
		}
	}
	return strings.Join(collected, " ")
}
