// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readinglist

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// Format selects how Write renders the list.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q: use text, json, or yaml", s)
	}
}

// document is the structured export shape.
type document struct {
	ReadingList []string `json:"readingList" yaml:"readingList"`
}

// Write renders entries to w. Text output is a "Reading List:" header
// followed by one numbered entry per line.
func Write(w io.Writer, entries []string, format Format) error {
	if entries == nil {
		entries = []string{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document{ReadingList: entries})
	case FormatYAML:
		data, err := yaml.Marshal(document{ReadingList: entries})
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return writeText(w, entries)
	}
}

func writeText(w io.Writer, entries []string) error {
	if _, err := fmt.Fprintln(w, "Reading List:"); err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "  (empty)")
		return err
	}
	for i, e := range entries {
		if _, err := fmt.Fprintf(w, "%3d. %s\n", i+1, e); err != nil {
			return err
		}
	}
	return nil
}
