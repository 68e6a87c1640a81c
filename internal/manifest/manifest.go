package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Record is the externally visible projection of one tool, in the key
// order the landing page expects.
type Record struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Sort orders records by case-insensitive title.
func Sort(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return strings.ToLower(records[i].Title) < strings.ToLower(records[j].Title)
	})
}

// Encode serializes records as pretty-printed JSON without escaping HTML
// or non-ASCII characters. prefix is prepended to every line after the
// first, indent nests one level.
func Encode(records []Record, prefix, indent string) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent(prefix, indent)
	if err := encoder.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Write sorts records and overwrites the manifest file under root. The
// previous manifest is fully replaced, never merged.
func Write(root, name string, records []Record) error {
	Sort(records)
	data, err := Encode(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(root, name), append(data, '\n'), 0o644)
}
