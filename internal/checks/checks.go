package checks

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/noahbw/toolsmith/internal/config"
	"github.com/noahbw/toolsmith/internal/discover"
	"github.com/noahbw/toolsmith/internal/metadata"
)

// Findings separates build-blocking errors from advisory warnings. Every
// finding is a single human-readable line.
type Findings struct {
	Errors   []string
	Warnings []string
}

func (f Findings) HasErrors() bool {
	return len(f.Errors) > 0
}

var (
	fullDocumentMarkers = []string{"<html", "<head", "<body>"}
	hexColorRe          = regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b`)
)

// Run inspects every discovered source and collects findings. It reads
// files but never writes; unreadable content or style documents surface as
// errors rather than aborting the scan.
func Run(sources []discover.Source, cfg config.Config) Findings {
	var findings Findings
	knownCategories := map[string]bool{}
	for _, name := range cfg.Categories {
		knownCategories[name] = true
	}

	for _, source := range sources {
		if source.Layout != discover.LayoutFolderModern {
			findings.Warnings = append(findings.Warnings,
				fmt.Sprintf("%s: no content.html, legacy tool (%s)", source.Slug, source.Layout))
		} else {
			checkModern(source, &findings)
		}

		if source.DocsPath != "" {
			meta := metadata.Read(source.DocsPath)
			if meta.Description == "" {
				findings.Warnings = append(findings.Warnings,
					fmt.Sprintf("%s: docs.md has no description paragraph", source.Slug))
			}
			if !knownCategories[meta.Category] {
				findings.Warnings = append(findings.Warnings,
					fmt.Sprintf("%s: unknown category %q (known: %s)",
						source.Slug, meta.Category, strings.Join(cfg.Categories, ", ")))
			}
		}
	}

	return findings
}

func checkModern(source discover.Source, findings *Findings) {
	content, err := os.ReadFile(source.ContentPath)
	if err != nil {
		findings.Errors = append(findings.Errors,
			fmt.Sprintf("%s: cannot read content.html: %v", source.Slug, err))
		return
	}

	lower := strings.ToLower(string(content))
	for _, marker := range fullDocumentMarkers {
		if strings.Contains(lower, marker) {
			findings.Warnings = append(findings.Warnings,
				fmt.Sprintf("%s: content.html contains %q, fragments must not be full documents", source.Slug, marker))
			break
		}
	}

	if source.StylesPath == "" {
		findings.Warnings = append(findings.Warnings, fmt.Sprintf("%s: missing styles.css", source.Slug))
	} else {
		checkStyles(source, findings)
	}
	if source.ScriptPath == "" {
		findings.Warnings = append(findings.Warnings, fmt.Sprintf("%s: missing script.js", source.Slug))
	}
	if source.DocsPath == "" {
		findings.Warnings = append(findings.Warnings, fmt.Sprintf("%s: missing docs.md", source.Slug))
	}
}

func checkStyles(source discover.Source, findings *Findings) {
	styles, err := os.ReadFile(source.StylesPath)
	if err != nil {
		findings.Warnings = append(findings.Warnings,
			fmt.Sprintf("%s: cannot read styles.css: %v", source.Slug, err))
		return
	}
	matches := hexColorRe.FindAllString(string(styles), 3)
	if len(matches) > 0 {
		findings.Warnings = append(findings.Warnings,
			fmt.Sprintf("%s: styles.css hardcodes colors (%s), prefer shared palette variables",
				source.Slug, strings.Join(matches, ", ")))
	}
}
