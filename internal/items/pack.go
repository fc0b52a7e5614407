package items

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pack is a named set of extra NKI descriptions loaded from the items
// directory.
//
// YAML packs carry their own id; .nki and .go packs take the file name.
type Pack struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Items       []string `json:"items" yaml:"items"`
}

// PackFile pairs a parsed pack with its on-disk source.
type PackFile struct {
	Pack Pack
	Path string
}

// Normalized returns a trimmed copy of the pack.
func (p Pack) Normalized() Pack {
	clone := Pack{
		ID:          strings.TrimSpace(p.ID),
		Name:        strings.TrimSpace(p.Name),
		Version:     strings.TrimSpace(p.Version),
		Description: strings.TrimSpace(p.Description),
	}
	if len(p.Items) > 0 {
		clone.Items = make([]string, len(p.Items))
		for i, item := range p.Items {
			clone.Items[i] = strings.TrimSpace(item)
		}
	}
	return clone
}

// Validate ensures the pack has an id and only non-empty descriptions.
func (p Pack) Validate() error {
	normalized := p.Normalized()
	if normalized.ID == "" {
		return fmt.Errorf("items: pack id is required")
	}
	if len(normalized.Items) == 0 {
		return fmt.Errorf("items: pack %s has no items", normalized.ID)
	}
	for i, item := range normalized.Items {
		if item == "" {
			return fmt.Errorf("items: pack %s: items[%d] is empty", normalized.ID, i)
		}
	}
	return nil
}

// DisplayName prefers the human name over the id.
func (p Pack) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// ParsePackYAML decodes and validates a YAML pack payload.
func ParsePackYAML(data []byte) (Pack, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Pack{}, fmt.Errorf("items: pack payload is empty")
	}
	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return Pack{}, fmt.Errorf("items: decode pack: %w", err)
	}
	if err := pack.Validate(); err != nil {
		return Pack{}, err
	}
	return pack.Normalized(), nil
}

// ParseNKI reads the classic one-description-per-line format. Blank lines
// and lines starting with '#' are skipped.
func ParseNKI(id string, data []byte) (Pack, error) {
	pack := Pack{ID: id}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pack.Items = append(pack.Items, line)
	}
	if err := scanner.Err(); err != nil {
		return Pack{}, fmt.Errorf("items: read %s: %w", id, err)
	}
	if err := pack.Validate(); err != nil {
		return Pack{}, err
	}
	return pack.Normalized(), nil
}
