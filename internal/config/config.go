package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/noahbw/toolsmith/internal/categories"
)

// FileName is the optional site configuration file at the tools root.
const FileName = "toolsmith.toml"

type Config struct {
	SiteName   string   `toml:"site_name"`
	Template   string   `toml:"template"`
	Manifest   string   `toml:"manifest"`
	Index      string   `toml:"index"`
	Exclude    []string `toml:"exclude"`
	Categories []string `toml:"categories"`
}

func Default() Config {
	return Config{
		SiteName:   "Noah's Tools",
		Template:   "_template.html",
		Manifest:   "tools.json",
		Index:      "index.html",
		Categories: categories.Names(),
	}
}

// Load reads toolsmith.toml from root when present and merges it over the
// defaults. A missing file is not an error.
func Load(root string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", FileName, err)
	}

	if file.SiteName != "" {
		cfg.SiteName = file.SiteName
	}
	if file.Template != "" {
		cfg.Template = file.Template
	}
	if file.Manifest != "" {
		cfg.Manifest = file.Manifest
	}
	if file.Index != "" {
		cfg.Index = file.Index
	}
	if len(file.Exclude) > 0 {
		cfg.Exclude = file.Exclude
	}
	if len(file.Categories) > 0 {
		cfg.Categories = file.Categories
	}
	return cfg, nil
}
