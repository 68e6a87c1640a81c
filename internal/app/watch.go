package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/noahbw/toolsmith/internal/config"
)

const rebuildDebounce = 300 * time.Millisecond

// Watch runs an initial build, then rebuilds the whole site whenever a
// source file changes. Every rebuild is a full pass; nothing is cached
// between runs. Events for generated files are ignored so a build does
// not retrigger itself.
func Watch(root string, opts BuildOptions) error {
	reporter := ensureReporter(opts.Reporter)
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	if err := Build(root, opts); err != nil {
		reporter.Problem(err.Error())
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, root); err != nil {
		return err
	}
	reporter.Info("watching for changes, press ctrl-c to stop")

	var timer *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			reporter.Warning("watch: " + err.Error())
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			if !isSourceEvent(event.Name, cfg) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(rebuildDebounce)
				pending = timer.C
			} else {
				timer.Reset(rebuildDebounce)
			}
		case <-pending:
			timer = nil
			pending = nil
			if err := Build(root, opts); err != nil {
				reporter.Problem(err.Error())
			}
		}
	}
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	if err := watcher.Add(root); err != nil {
		return err
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || name == "node_modules" || name == "__pycache__" {
			continue
		}
		if err := watcher.Add(filepath.Join(root, name)); err != nil {
			return err
		}
	}
	return nil
}

// Generated artifacts must not retrigger builds: every tool's index.html,
// the landing page, and the manifest are outputs of the build itself.
func isSourceEvent(path string, cfg config.Config) bool {
	base := filepath.Base(path)
	if base == "index.html" || base == cfg.Manifest {
		return false
	}
	switch filepath.Ext(base) {
	case ".html", ".css", ".js", ".md", ".toml":
		return true
	}
	return false
}
