package site

import (
	"encoding/json"
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/basepath"
	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/placeholder"
)

// HeadTag is injected into every page head. It serializes as the
// [tag, attrs] or [tag, attrs, content] tuple the generator expects.
type HeadTag struct {
	Tag     string
	Attrs   map[string]string
	Content string
}

func (h HeadTag) tuple() []any {
	attrs := h.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}
	t := []any{h.Tag, attrs}
	if h.Content != "" {
		t = append(t, h.Content)
	}
	return t
}

// MarshalJSON implements json.Marshaler.
func (h HeadTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.tuple())
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *HeadTag) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) < 1 || len(parts) > 3 {
		return fmt.Errorf("head tag: expected 1 to 3 elements, got %d", len(parts))
	}
	*h = HeadTag{}
	if err := json.Unmarshal(parts[0], &h.Tag); err != nil {
		return fmt.Errorf("head tag name: %w", err)
	}
	if len(parts) > 1 {
		if err := json.Unmarshal(parts[1], &h.Attrs); err != nil {
			return fmt.Errorf("head tag attrs: %w", err)
		}
	}
	if len(parts) > 2 {
		if err := json.Unmarshal(parts[2], &h.Content); err != nil {
			return fmt.Errorf("head tag content: %w", err)
		}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h HeadTag) MarshalYAML() (any, error) {
	return h.tuple(), nil
}

// buildHead returns the favicon link, the cross-version scripts and the
// user-declared tags, plus the derivations left for phase 2.
func buildHead(def *config.Definition, base, favicon placeholder.Value) ([]HeadTag, []placeholder.Deferred) {
	var head []HeadTag
	var deferred []placeholder.Deferred

	head = append(head, HeadTag{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": favicon.String()}})

	if !def.Versions.Disabled {
		root, d := placeholder.Root(base)
		if d != nil {
			deferred = append(deferred, *d)
		}
		head = append(head,
			HeadTag{Tag: "script", Attrs: map[string]string{"src": root + strings.TrimLeft(def.Versions.Asset, "/")}},
			HeadTag{Tag: "script", Attrs: map[string]string{"src": basepath.Join(base.String(), def.Versions.SiteInfo)}},
		)
	}

	for _, h := range def.Head {
		attrs := make(map[string]string, len(h.Attrs))
		for k, v := range h.Attrs {
			attrs[k] = v
		}
		head = append(head, HeadTag{Tag: h.Tag, Attrs: attrs, Content: h.Content})
	}
	return head, deferred
}
