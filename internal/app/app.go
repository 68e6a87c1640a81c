package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/noahbw/toolsmith/internal/checks"
	"github.com/noahbw/toolsmith/internal/config"
	"github.com/noahbw/toolsmith/internal/discover"
	"github.com/noahbw/toolsmith/internal/manifest"
	"github.com/noahbw/toolsmith/internal/metadata"
	"github.com/noahbw/toolsmith/internal/render"
)

type BuildOptions struct {
	DryRun   bool
	Reporter Reporter
}

type CheckOptions struct {
	Reporter Reporter
}

type ListOptions struct {
	Reporter Reporter
}

type CleanOptions struct {
	DryRun   bool
	Reporter Reporter
}

// Build runs the full batch: discover, validate, render folder-modern
// tools, write the manifest, and patch the landing page. Any validation
// error aborts before anything is rendered or written.
func Build(root string, opts BuildOptions) error {
	reporter := ensureReporter(opts.Reporter)
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	sources, err := discover.Scan(root, cfg)
	if err != nil {
		return err
	}

	findings := checks.Run(sources, cfg)
	reportFindings(reporter, findings)
	if findings.HasErrors() {
		return fmt.Errorf("validation failed with %d error(s)", len(findings.Errors))
	}

	template, haveTemplate, err := loadTemplate(root, cfg)
	if err != nil {
		return err
	}
	if !haveTemplate {
		reporter.Warning(cfg.Template + " not found, skipping tool page builds")
	}

	total := 0
	for _, source := range sources {
		if source.Layout == discover.LayoutFolderModern {
			total++
		}
	}
	progress := reporter.Progress("Building", total)

	records := make([]manifest.Record, 0, len(sources))
	for _, source := range sources {
		if haveTemplate && source.Layout == discover.LayoutFolderModern {
			progress.Increment(source.Slug)
			if err := buildToolPage(source, template, opts.DryRun); err != nil {
				return fmt.Errorf("build %s: %w", source.Slug, err)
			}
			reporter.Built(source.Slug, source.OutputPath)
		}
		records = append(records, toolRecord(source, cfg))
	}
	progress.Done()

	if opts.DryRun {
		reporter.Info(fmt.Sprintf("dry-run: would write %s with %d tools", cfg.Manifest, len(records)))
		return nil
	}

	if err := manifest.Write(root, cfg.Manifest, records); err != nil {
		return err
	}
	reporter.Summary(fmt.Sprintf("generated %s with %d tools", cfg.Manifest, len(records)))

	return patchLandingPage(root, cfg, records, reporter)
}

// Check runs discovery and validation only, printing findings. It never
// writes and returns an error when any finding is an error.
func Check(root string, opts CheckOptions) error {
	reporter := ensureReporter(opts.Reporter)
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	sources, err := discover.Scan(root, cfg)
	if err != nil {
		return err
	}

	findings := checks.Run(sources, cfg)
	reportFindings(reporter, findings)
	if findings.HasErrors() {
		return fmt.Errorf("validation failed with %d error(s)", len(findings.Errors))
	}
	return nil
}

// List prints each discovered tool with its resolved metadata.
func List(root string, opts ListOptions) error {
	reporter := ensureReporter(opts.Reporter)
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	sources, err := discover.Scan(root, cfg)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		reporter.Info("no tools found")
		return nil
	}

	for _, source := range sources {
		record := toolRecord(source, cfg)
		reporter.ListTool(record.Slug, string(source.Layout), record.Title, record.Category)
	}
	reporter.Summary(fmt.Sprintf("%d tools", len(sources)))
	return nil
}

// Clean removes the generated pages of folder-modern tools and the
// manifest file. Authored legacy pages and the landing page are left
// alone.
func Clean(root string, opts CleanOptions) error {
	reporter := ensureReporter(opts.Reporter)
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	sources, err := discover.Scan(root, cfg)
	if err != nil {
		return err
	}

	removed := 0
	missing := 0
	targets := []string{}
	for _, source := range sources {
		if source.Layout == discover.LayoutFolderModern {
			targets = append(targets, source.OutputPath)
		}
	}
	targets = append(targets, joinRoot(root, cfg.Manifest))

	for _, target := range targets {
		wasRemoved, wasMissing, err := removePath(target, opts.DryRun)
		if err != nil {
			return err
		}
		if wasRemoved {
			removed++
			reporter.CleanRemoved(target)
		}
		if wasMissing {
			missing++
			reporter.CleanMissing(target)
		}
	}

	reporter.CleanSummary(removed, missing)
	return nil
}

func reportFindings(reporter Reporter, findings checks.Findings) {
	for _, warning := range findings.Warnings {
		reporter.Warning(warning)
	}
	for _, problem := range findings.Errors {
		reporter.Problem(problem)
	}
	if len(findings.Errors) > 0 || len(findings.Warnings) > 0 {
		reporter.ValidationSummary(len(findings.Errors), len(findings.Warnings))
	}
}

func loadTemplate(root string, cfg config.Config) (string, bool, error) {
	data, err := os.ReadFile(joinRoot(root, cfg.Template))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

func buildToolPage(source discover.Source, template string, dryRun bool) error {
	content, err := os.ReadFile(source.ContentPath)
	if err != nil {
		return err
	}
	meta := metadata.Read(source.DocsPath)

	page := render.Page(template, render.Fields{
		Title:       resolveTitle(meta, source),
		Description: meta.Description,
		MaxWidth:    meta.MaxWidth,
		Content:     string(content),
		Styles:      readOptional(source.StylesPath),
		Script:      readOptional(source.ScriptPath),
	})

	if dryRun {
		return nil
	}
	return os.WriteFile(source.OutputPath, []byte(page), 0o644)
}

func toolRecord(source discover.Source, cfg config.Config) manifest.Record {
	meta := metadata.Read(source.DocsPath)
	title := strings.TrimSpace(meta.Title)
	if title == "" && source.Layout != discover.LayoutFolderModern {
		if data, err := os.ReadFile(source.ContentPath); err == nil {
			if extracted, ok := metadata.TitleFromHTML(string(data), cfg.SiteName); ok && extracted != "" {
				title = extracted
			}
		}
	}
	if title == "" {
		title = metadata.TitleFromSlug(source.Slug)
	}
	return manifest.Record{
		Slug:        source.Slug,
		Title:       title,
		Description: meta.Description,
		Category:    meta.Category,
	}
}

func resolveTitle(meta metadata.Meta, source discover.Source) string {
	if title := strings.TrimSpace(meta.Title); title != "" {
		return title
	}
	return metadata.TitleFromSlug(source.Slug)
}

func patchLandingPage(root string, cfg config.Config, records []manifest.Record, reporter Reporter) error {
	indexPath := joinRoot(root, cfg.Index)
	data, err := os.ReadFile(indexPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	patched, changed, err := manifest.PatchIndex(string(data), records)
	if err != nil {
		return err
	}
	if !changed || patched == string(data) {
		return nil
	}
	if err := os.WriteFile(indexPath, []byte(patched), 0o644); err != nil {
		return err
	}
	reporter.Summary("updated " + cfg.Index + " with tools data")
	return nil
}

func readOptional(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

func removePath(path string, dryRun bool) (removed bool, missing bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, true, nil
		}
		return false, false, err
	}
	if dryRun {
		return true, false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, false, err
	}
	return true, false, nil
}
