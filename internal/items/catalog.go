package items

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
)

// BuiltinCount is the size of the stock catalog.
const BuiltinCount = 201

// Catalog is the deduplicated list of descriptions robot may encounter.
type Catalog struct {
	descriptions []string
	packs        []PackFile
}

// Builtin returns a copy of the stock descriptions.
func Builtin() []string {
	out := make([]string, len(builtin))
	copy(out, builtin)
	return out
}

// Load builds a catalog from the stock descriptions and the packs in dir.
func Load(ctx context.Context, dir string, includeBuiltin bool, only []string) (*Catalog, error) {
	packs, err := LoadPackDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	return NewCatalog(includeBuiltin, packs, only)
}

// NewCatalog merges the stock descriptions (optionally) with packs. When
// only is non-empty, packs whose id is not listed are skipped. Repeated
// descriptions keep their first occurrence.
func NewCatalog(includeBuiltin bool, packs []PackFile, only []string) (*Catalog, error) {
	seenIDs := map[string]string{}
	for _, file := range packs {
		id := file.Pack.ID
		if existing, ok := seenIDs[id]; ok {
			return nil, fmt.Errorf("items: duplicate pack id %s (%s and %s)", id, existing, file.Path)
		}
		seenIDs[id] = file.Path
	}
	allowed := map[string]struct{}{}
	for _, id := range only {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seenIDs[id]; !ok {
			return nil, fmt.Errorf("items: unknown pack %q", id)
		}
		allowed[id] = struct{}{}
	}

	c := &Catalog{}
	seen := map[string]struct{}{}
	add := func(values []string) {
		for _, value := range values {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			if _, dup := seen[value]; dup {
				continue
			}
			seen[value] = struct{}{}
			c.descriptions = append(c.descriptions, value)
		}
	}
	if includeBuiltin {
		add(builtin)
	}
	for _, file := range packs {
		if len(allowed) > 0 {
			if _, ok := allowed[file.Pack.ID]; !ok {
				continue
			}
		}
		c.packs = append(c.packs, file)
		add(file.Pack.Items)
	}
	return c, nil
}

// Len returns the number of distinct descriptions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.descriptions)
}

// Descriptions returns a copy of every description in catalog order.
func (c *Catalog) Descriptions() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.descriptions))
	copy(out, c.descriptions)
	return out
}

// Packs returns the packs that contributed to the catalog.
func (c *Catalog) Packs() []PackFile {
	if c == nil {
		return nil
	}
	out := make([]PackFile, len(c.packs))
	copy(out, c.packs)
	return out
}

// Sample picks n distinct descriptions. n is clamped to the catalog size.
func (c *Catalog) Sample(n int, rng *rand.Rand) []string {
	if c == nil || n <= 0 {
		return nil
	}
	if n > len(c.descriptions) {
		n = len(c.descriptions)
	}
	pool := c.Descriptions()
	// Partial Fisher-Yates: the first n slots end up a uniform sample.
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
