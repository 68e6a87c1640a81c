package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/noahbw/toolsmith/internal/app"
	"github.com/noahbw/toolsmith/internal/ui"
)

type CLI struct {
	NoColor bool     `help:"Disable color output."`
	Path    string   `help:"Run as if in this directory."`
	Build   BuildCmd `cmd:"" default:"1" help:"Build tool pages, the manifest, and the landing page."`
	Check   CheckCmd `cmd:"" help:"Validate tool sources without writing anything."`
	List    ListCmd  `cmd:"" help:"List discovered tools."`
	New     NewCmd   `cmd:"" help:"Scaffold a new tool folder."`
	Clean   CleanCmd `cmd:"" help:"Remove generated pages and the manifest."`
}

type BuildCmd struct {
	DryRun bool `help:"Print actions without writing files."`
	Watch  bool `help:"Rebuild whenever source files change."`
}

type CheckCmd struct{}

type ListCmd struct{}

type NewCmd struct {
	Slug     string `arg:"" help:"Tool slug (lowercase words separated by hyphens)."`
	Category string `help:"Category written to docs.md." default:"Utilities"`
}

type CleanCmd struct {
	DryRun bool `help:"Print actions without removing files."`
}

type Context struct {
	Root     string
	Reporter app.Reporter
}

func (c *BuildCmd) Run(ctx *Context) error {
	opts := app.BuildOptions{DryRun: c.DryRun, Reporter: ctx.Reporter}
	if c.Watch {
		return app.Watch(ctx.Root, opts)
	}
	return app.Build(ctx.Root, opts)
}

func (c *CheckCmd) Run(ctx *Context) error {
	return app.Check(ctx.Root, app.CheckOptions{Reporter: ctx.Reporter})
}

func (c *ListCmd) Run(ctx *Context) error {
	return app.List(ctx.Root, app.ListOptions{Reporter: ctx.Reporter})
}

func (c *NewCmd) Run(ctx *Context) error {
	return app.New(ctx.Root, c.Slug, app.NewOptions{
		Category: c.Category,
		Reporter: ctx.Reporter,
	})
}

func (c *CleanCmd) Run(ctx *Context) error {
	return app.Clean(ctx.Root, app.CleanOptions{
		DryRun:   c.DryRun,
		Reporter: ctx.Reporter,
	})
}

func main() {
	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("toolsmith"),
		kong.Description("Assemble the tools page from per-tool sources."),
		kong.UsageOnError(),
	)
	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	baseDir, err := resolveBaseDir(cwd, cli.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	root := app.FindRoot(baseDir)
	noColor := cli.NoColor || os.Getenv("NO_COLOR") != ""
	reporter := ui.NewRenderer(ui.Options{NoColor: noColor, Out: os.Stdout})

	if err := ctx.Run(&Context{Root: root, Reporter: reporter}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveBaseDir(cwd, override string) (string, error) {
	if strings.TrimSpace(override) == "" {
		return cwd, nil
	}
	path := override
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		path = filepath.Dir(path)
	}
	return path, nil
}
