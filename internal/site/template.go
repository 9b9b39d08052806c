package site

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/config"
)

// Template serializes s in the requested format.
func (s Site) Template(format config.OutputFormat) ([]byte, error) {
	switch format {
	case config.OutputYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("encode yaml template: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml template: %w", err)
		}
		return buf.Bytes(), nil
	case config.OutputJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("encode json template: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported template format %q", format)
	}
}

// Decode parses a template previously written by Template.
func Decode(data []byte, format config.OutputFormat) (Site, error) {
	var s Site
	switch format {
	case config.OutputYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Site{}, fmt.Errorf("decode yaml template: %w", err)
		}
	case config.OutputJSON, "":
		if err := json.Unmarshal(data, &s); err != nil {
			return Site{}, fmt.Errorf("decode json template: %w", err)
		}
	default:
		return Site{}, fmt.Errorf("unsupported template format %q", format)
	}
	return s, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for the tuple form.
func (h *HeadTag) UnmarshalYAML(value *yaml.Node) error {
	var parts []yaml.Node
	if err := value.Decode(&parts); err != nil {
		return err
	}
	if len(parts) < 1 || len(parts) > 3 {
		return fmt.Errorf("head tag: expected 1 to 3 elements, got %d", len(parts))
	}
	*h = HeadTag{}
	if err := parts[0].Decode(&h.Tag); err != nil {
		return fmt.Errorf("head tag name: %w", err)
	}
	if len(parts) > 1 {
		if err := parts[1].Decode(&h.Attrs); err != nil {
			return fmt.Errorf("head tag attrs: %w", err)
		}
	}
	if len(parts) > 2 {
		if err := parts[2].Decode(&h.Content); err != nil {
			return fmt.Errorf("head tag content: %w", err)
		}
	}
	return nil
}
