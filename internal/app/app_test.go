package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testTemplate = `<!DOCTYPE html>
<html>
<head>
<title>{{TITLE}} - Noah's Tools</title>
<meta name="description" content="{{DESCRIPTION}}">
<style>main { max-width: {{MAX_WIDTH}}; }
{{STYLES}}</style>
</head>
<body>
<main>{{CONTENT}}</main>
<script>{{SCRIPT}}</script>
</body>
</html>
`

const testLanding = `<!DOCTYPE html>
<html>
<body>
<script>
        const tools = [];
        renderTools(tools);
</script>
</body>
</html>
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func siteFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "_template.html"), testTemplate)
	writeFile(t, filepath.Join(root, "index.html"), testLanding)

	converter := filepath.Join(root, "unit-converter")
	writeFile(t, filepath.Join(converter, "content.html"), `<div id="converter"></div>`)
	writeFile(t, filepath.Join(converter, "styles.css"), "#converter { display: grid; }")
	writeFile(t, filepath.Join(converter, "script.js"), "setup();")
	writeFile(t, filepath.Join(converter, "docs.md"),
		"<!-- category: Converters -->\n<!-- max-width: 1200px -->\n\nConverts between units.\n")

	writeFile(t, filepath.Join(root, "old-tool", "index.html"),
		"<html><head><title>Old Tool - Noah's Tools</title></head><body></body></html>")

	writeFile(t, filepath.Join(root, "timer.html"),
		"<html><head><title>Timer - Noah's Tools</title></head><body></body></html>")
	writeFile(t, filepath.Join(root, "timer.md"), "A countdown timer.\n")

	return root
}

func TestBuildRendersManifestAndLandingPage(t *testing.T) {
	root := siteFixture(t)

	if err := Build(root, BuildOptions{}); err != nil {
		t.Fatalf("build: %v", err)
	}

	page, err := os.ReadFile(filepath.Join(root, "unit-converter", "index.html"))
	if err != nil {
		t.Fatalf("rendered page missing: %v", err)
	}
	for _, want := range []string{
		"<title>Unit Converter - Noah's Tools</title>",
		"max-width: 1200px;",
		`<div id="converter"></div>`,
		"#converter { display: grid; }",
		"setup();",
	} {
		if !strings.Contains(string(page), want) {
			t.Fatalf("rendered page missing %q:\n%s", want, page)
		}
	}
	if strings.Contains(string(page), "{{") {
		t.Fatalf("placeholders left in rendered page:\n%s", page)
	}

	manifestData, err := os.ReadFile(filepath.Join(root, "tools.json"))
	if err != nil {
		t.Fatalf("manifest missing: %v", err)
	}
	manifestText := string(manifestData)
	for _, slug := range []string{"unit-converter", "old-tool", "timer"} {
		if !strings.Contains(manifestText, `"slug": "`+slug+`"`) {
			t.Fatalf("manifest missing %s:\n%s", slug, manifestText)
		}
	}
	oldIdx := strings.Index(manifestText, `"Old Tool"`)
	timerIdx := strings.Index(manifestText, `"Timer"`)
	converterIdx := strings.Index(manifestText, `"Unit Converter"`)
	if oldIdx == -1 || timerIdx == -1 || converterIdx == -1 {
		t.Fatalf("legacy titles not resolved from their documents:\n%s", manifestText)
	}
	if !(oldIdx < timerIdx && timerIdx < converterIdx) {
		t.Fatalf("manifest not sorted by title:\n%s", manifestText)
	}

	landing, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatalf("landing page: %v", err)
	}
	if strings.Contains(string(landing), "const tools = [];") {
		t.Fatalf("landing page not patched:\n%s", landing)
	}
	if !strings.Contains(string(landing), "renderTools(tools);") {
		t.Fatalf("landing page surroundings changed:\n%s", landing)
	}
	if !strings.Contains(string(landing), "const tools = [\n        ") {
		t.Fatalf("manifest not re-indented into landing page:\n%s", landing)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	root := siteFixture(t)

	if err := Build(root, BuildOptions{}); err != nil {
		t.Fatalf("first build: %v", err)
	}
	firstManifest, _ := os.ReadFile(filepath.Join(root, "tools.json"))
	firstLanding, _ := os.ReadFile(filepath.Join(root, "index.html"))

	if err := Build(root, BuildOptions{}); err != nil {
		t.Fatalf("second build: %v", err)
	}
	secondManifest, _ := os.ReadFile(filepath.Join(root, "tools.json"))
	secondLanding, _ := os.ReadFile(filepath.Join(root, "index.html"))

	if !bytes.Equal(firstManifest, secondManifest) {
		t.Fatal("manifest differs across identical runs")
	}
	if !bytes.Equal(firstLanding, secondLanding) {
		t.Fatal("landing page differs across identical runs")
	}
}

func TestBuildDryRunWritesNothing(t *testing.T) {
	root := siteFixture(t)

	if err := Build(root, BuildOptions{DryRun: true}); err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "tools.json")); !os.IsNotExist(err) {
		t.Fatal("dry-run wrote the manifest")
	}
	if _, err := os.Stat(filepath.Join(root, "unit-converter", "index.html")); !os.IsNotExist(err) {
		t.Fatal("dry-run rendered a tool page")
	}
}

func TestBuildWithoutTemplateStillWritesManifest(t *testing.T) {
	root := siteFixture(t)
	if err := os.Remove(filepath.Join(root, "_template.html")); err != nil {
		t.Fatalf("remove template: %v", err)
	}

	if err := Build(root, BuildOptions{}); err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "unit-converter", "index.html")); !os.IsNotExist(err) {
		t.Fatal("tool page should not be rendered without a template")
	}
	if _, err := os.Stat(filepath.Join(root, "tools.json")); err != nil {
		t.Fatalf("manifest should still be written: %v", err)
	}
}

func TestCheckReportsWarningsWithoutFailing(t *testing.T) {
	root := siteFixture(t)
	if err := Check(root, CheckOptions{}); err != nil {
		t.Fatalf("check should pass with warnings only: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "tools.json")); !os.IsNotExist(err) {
		t.Fatal("check must not write the manifest")
	}
}

func TestCleanRemovesGeneratedFilesOnly(t *testing.T) {
	root := siteFixture(t)
	if err := Build(root, BuildOptions{}); err != nil {
		t.Fatalf("build: %v", err)
	}

	if err := Clean(root, CleanOptions{}); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "unit-converter", "index.html")); !os.IsNotExist(err) {
		t.Fatal("generated tool page not removed")
	}
	if _, err := os.Stat(filepath.Join(root, "tools.json")); !os.IsNotExist(err) {
		t.Fatal("manifest not removed")
	}
	if _, err := os.Stat(filepath.Join(root, "old-tool", "index.html")); err != nil {
		t.Fatal("authored legacy page must survive clean")
	}
	if _, err := os.Stat(filepath.Join(root, "timer.html")); err != nil {
		t.Fatal("flat legacy page must survive clean")
	}
}

func TestNewScaffoldsTool(t *testing.T) {
	root := siteFixture(t)
	if err := New(root, "color-picker", NewOptions{Category: "Utilities"}); err != nil {
		t.Fatalf("new: %v", err)
	}
	for _, name := range []string{"content.html", "styles.css", "script.js", "docs.md"} {
		if _, err := os.Stat(filepath.Join(root, "color-picker", name)); err != nil {
			t.Fatalf("scaffold missing %s: %v", name, err)
		}
	}
	docs, _ := os.ReadFile(filepath.Join(root, "color-picker", "docs.md"))
	if !strings.Contains(string(docs), "<!-- category: Utilities -->") {
		t.Fatalf("docs.md missing category comment:\n%s", docs)
	}
}

func TestNewRejectsInvalidAndExistingSlugs(t *testing.T) {
	root := siteFixture(t)
	if err := New(root, "Bad Slug", NewOptions{}); err == nil {
		t.Fatal("expected invalid slug error")
	}
	if err := New(root, "unit-converter", NewOptions{}); err == nil {
		t.Fatal("expected collision error for existing folder")
	}
	if err := New(root, "timer", NewOptions{}); err == nil {
		t.Fatal("expected collision error for existing flat file")
	}
}

func TestFindRootAscendsToTemplate(t *testing.T) {
	root := siteFixture(t)
	nested := filepath.Join(root, "unit-converter")
	if got := FindRoot(nested); got != root {
		t.Fatalf("FindRoot(%q) = %q, want %q", nested, got, root)
	}
}
