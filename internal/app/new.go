package app

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/noahbw/toolsmith/internal/config"
	"github.com/noahbw/toolsmith/internal/metadata"
)

type NewOptions struct {
	Category string
	Reporter Reporter
}

var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// New scaffolds a folder-modern tool: content.html, styles.css, script.js,
// and a docs.md seeded with the category comment. It refuses slugs that
// would collide with an existing folder or flat-file tool.
func New(root, slug string, opts NewOptions) error {
	reporter := ensureReporter(opts.Reporter)
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	if !slugRe.MatchString(slug) {
		return fmt.Errorf("invalid slug %q: use lowercase words separated by hyphens", slug)
	}

	dir := filepath.Join(root, slug)
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("tool %s already exists", slug)
	} else if !os.IsNotExist(err) {
		return err
	}
	if _, err := os.Stat(filepath.Join(root, slug+".html")); err == nil {
		return fmt.Errorf("flat-file tool %s.html already exists", slug)
	}

	category := strings.TrimSpace(opts.Category)
	if category == "" {
		category = metadata.DefaultCategory
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	title := metadata.TitleFromSlug(slug)
	files := map[string]string{
		"content.html": fmt.Sprintf("<div class=\"%s\">\n    <p>%s goes here.</p>\n</div>\n", slug, title),
		"styles.css":   "",
		"script.js":    "",
		"docs.md": fmt.Sprintf(
			"<!-- category: %s -->\n<!-- max-width: %s -->\n\nDescribe %s in one short paragraph.\n",
			category, metadata.DefaultMaxWidth, title),
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}

	reporter.Info("created " + slug + "/")
	reporter.Info("next steps:")
	reporter.Info("1. Put the tool markup in " + slug + "/content.html (fragment, not a full document).")
	reporter.Info("2. Replace the placeholder paragraph in " + slug + "/docs.md.")
	reporter.Info(fmt.Sprintf("3. Run `toolsmith build` to generate %s/index.html and refresh %s.", slug, cfg.Manifest))
	return nil
}
