package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/noahbw/toolsmith/internal/config"
)

type Layout string

const (
	LayoutFolderModern Layout = "folder-modern"
	LayoutFolderLegacy Layout = "folder-legacy-index"
	LayoutFlatLegacy   Layout = "flat-legacy"
)

// Source identifies one tool's on-disk origin. ContentPath is always set;
// the other document paths are empty when the file does not exist.
type Source struct {
	Slug        string
	Layout      Layout
	Dir         string
	ContentPath string
	StylesPath  string
	ScriptPath  string
	DocsPath    string
	OutputPath  string
}

// Directories that can never hold tools, beyond the dot/underscore rule.
var reservedDirs = map[string]bool{
	".git":         true,
	".github":      true,
	".claude":      true,
	"node_modules": true,
	"__pycache__":  true,
	"assets":       true,
}

// Probes for folder-based tools, in priority order: the modern fragment
// layout wins over a pre-rendered legacy index.html when both exist.
type layoutProbe struct {
	layout  Layout
	content string
}

var folderProbes = []layoutProbe{
	{LayoutFolderModern, "content.html"},
	{LayoutFolderLegacy, "index.html"},
}

// Scan enumerates the immediate children of root and classifies each as a
// tool source. Folder sources come first in lexical directory order, then
// flat .html files whose slug no folder claimed, in lexical file order.
// A folder source always wins a slug collision regardless of enumeration
// order.
func Scan(root string, cfg config.Config) ([]Source, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var sources []Source
	claimed := map[string]bool{}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		skip, err := skipName(name, cfg.Exclude)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}

		dir := filepath.Join(root, name)
		source, ok := probeFolder(name, dir)
		if !ok {
			continue
		}
		claimed[name] = true
		sources = append(sources, source)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".html") {
			continue
		}
		skip, err := skipName(name, cfg.Exclude)
		if err != nil {
			return nil, err
		}
		if skip || name == cfg.Index || name == cfg.Template {
			continue
		}

		slug := strings.TrimSuffix(name, ".html")
		if claimed[slug] {
			continue
		}
		sources = append(sources, Source{
			Slug:        slug,
			Layout:      LayoutFlatLegacy,
			ContentPath: filepath.Join(root, name),
			DocsPath:    existingPath(filepath.Join(root, slug+".md")),
		})
	}

	return sources, nil
}

func probeFolder(slug, dir string) (Source, bool) {
	for _, probe := range folderProbes {
		contentPath := filepath.Join(dir, probe.content)
		if _, err := os.Stat(contentPath); err != nil {
			continue
		}
		source := Source{
			Slug:        slug,
			Layout:      probe.layout,
			Dir:         dir,
			ContentPath: contentPath,
			StylesPath:  existingPath(filepath.Join(dir, "styles.css")),
			ScriptPath:  existingPath(filepath.Join(dir, "script.js")),
			DocsPath:    existingPath(filepath.Join(dir, "docs.md")),
		}
		if probe.layout == LayoutFolderModern {
			source.OutputPath = filepath.Join(dir, "index.html")
		}
		return source, true
	}
	return Source{}, false
}

func skipName(name string, exclude []string) (bool, error) {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true, nil
	}
	if reservedDirs[name] {
		return true, nil
	}
	for _, pattern := range exclude {
		match, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("exclude glob %s: %w", pattern, err)
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

func existingPath(path string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
