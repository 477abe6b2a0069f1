// Package output writes command results in the selected format.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format for structured results.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (expected yaml or json)", s)
	}
}

// Print serializes v to w in the given format.
func Print(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatJSON:
		return PrintJSON(w, v, true)
	case FormatYAML:
		return PrintYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// PrintJSON serializes v to w as JSON.
// If pretty is true, uses two-space indentation; otherwise single-line.
func PrintJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrettyJSON returns v as two-space indented JSON without a trailing newline.
func PrettyJSON(v interface{}) (string, error) {
	var b strings.Builder
	if err := PrintJSON(&b, v, true); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// PrintYAML serializes v to w as YAML.
func PrintYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// PrintText writes generated source to w, ending it with a newline.
func PrintText(w io.Writer, s string) error {
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}
