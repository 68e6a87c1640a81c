package checks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/noahbw/toolsmith/internal/config"
	"github.com/noahbw/toolsmith/internal/discover"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func scan(t *testing.T, root string) []discover.Source {
	t.Helper()
	sources, err := discover.Scan(root, config.Default())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	return sources
}

func TestMissingOptionalDocumentsWarn(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "bare", "content.html"), "<div></div>")

	findings := Run(scan(t, root), config.Default())
	if len(findings.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", findings.Errors)
	}
	if len(findings.Warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(findings.Warnings), findings.Warnings)
	}
}

func TestCompleteToolProducesNoFindings(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "timer")
	writeFile(t, filepath.Join(dir, "content.html"), "<div class=\"timer\"></div>")
	writeFile(t, filepath.Join(dir, "styles.css"), ".timer { color: var(--fg); }")
	writeFile(t, filepath.Join(dir, "script.js"), "")
	writeFile(t, filepath.Join(dir, "docs.md"), "<!-- category: Utilities -->\n\nA countdown timer.\n")

	findings := Run(scan(t, root), config.Default())
	if len(findings.Errors) != 0 || len(findings.Warnings) != 0 {
		t.Fatalf("expected clean run, got %+v", findings)
	}
}

func TestLegacyToolWarns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "old", "index.html"), "<html></html>")

	findings := Run(scan(t, root), config.Default())
	if len(findings.Errors) != 0 {
		t.Fatalf("legacy tools must not block: %v", findings.Errors)
	}
	if len(findings.Warnings) != 1 || !strings.Contains(findings.Warnings[0], "legacy") {
		t.Fatalf("expected one legacy warning, got %v", findings.Warnings)
	}
}

func TestUnknownCategoryWarnsWithKnownSet(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "timer")
	writeFile(t, filepath.Join(dir, "content.html"), "<div></div>")
	writeFile(t, filepath.Join(dir, "styles.css"), "")
	writeFile(t, filepath.Join(dir, "script.js"), "")
	writeFile(t, filepath.Join(dir, "docs.md"), "<!-- category: Gadgets -->\n\nA timer.\n")

	findings := Run(scan(t, root), config.Default())
	if len(findings.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", findings.Warnings)
	}
	warning := findings.Warnings[0]
	if !strings.Contains(warning, "Gadgets") || !strings.Contains(warning, "Utilities") {
		t.Fatalf("warning should name the bad category and the known set: %q", warning)
	}
}

func TestEmptyDescriptionWarns(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "timer")
	writeFile(t, filepath.Join(dir, "content.html"), "<div></div>")
	writeFile(t, filepath.Join(dir, "styles.css"), "")
	writeFile(t, filepath.Join(dir, "script.js"), "")
	writeFile(t, filepath.Join(dir, "docs.md"), "<!-- category: Utilities -->\n")

	findings := Run(scan(t, root), config.Default())
	if len(findings.Warnings) != 1 || !strings.Contains(findings.Warnings[0], "description") {
		t.Fatalf("expected description warning, got %v", findings.Warnings)
	}
}

func TestFullDocumentMarkerWarns(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "timer")
	writeFile(t, filepath.Join(dir, "content.html"), "<HTML><body>full page</body></HTML>")
	writeFile(t, filepath.Join(dir, "styles.css"), "")
	writeFile(t, filepath.Join(dir, "script.js"), "")
	writeFile(t, filepath.Join(dir, "docs.md"), "<!-- category: Utilities -->\n\nA timer.\n")

	findings := Run(scan(t, root), config.Default())
	if len(findings.Warnings) != 1 || !strings.Contains(findings.Warnings[0], "full documents") {
		t.Fatalf("expected full-document warning, got %v", findings.Warnings)
	}
}

func TestHardcodedColorsWarnWithFirstThreeMatches(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "timer")
	writeFile(t, filepath.Join(dir, "content.html"), "<div></div>")
	writeFile(t, filepath.Join(dir, "styles.css"),
		"a { color: #fff; } b { color: #a1b2c3; } c { background: #00000080; } d { color: #123; }")
	writeFile(t, filepath.Join(dir, "script.js"), "")
	writeFile(t, filepath.Join(dir, "docs.md"), "<!-- category: Utilities -->\n\nA timer.\n")

	findings := Run(scan(t, root), config.Default())
	if len(findings.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", findings.Warnings)
	}
	warning := findings.Warnings[0]
	for _, hex := range []string{"#fff", "#a1b2c3", "#00000080"} {
		if !strings.Contains(warning, hex) {
			t.Fatalf("warning missing %s: %q", hex, warning)
		}
	}
	if strings.Contains(warning, "#123") {
		t.Fatalf("warning should stop at three matches: %q", warning)
	}
}
