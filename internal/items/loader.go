package items

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// LoadPackFile reads a single pack, choosing the parser from the extension.
func LoadPackFile(path string) (PackFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return PackFile{}, fmt.Errorf("items: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return PackFile{}, fmt.Errorf("items: %s is a directory", path)
	}
	id := packIDFromPath(path)
	var pack Pack
	switch packKind(path) {
	case kindYAML:
		data, err := os.ReadFile(path)
		if err != nil {
			return PackFile{}, fmt.Errorf("items: read %s: %w", path, err)
		}
		pack, err = ParsePackYAML(data)
		if err != nil {
			return PackFile{}, fmt.Errorf("items: %s: %w", path, err)
		}
	case kindNKI:
		data, err := os.ReadFile(path)
		if err != nil {
			return PackFile{}, fmt.Errorf("items: read %s: %w", path, err)
		}
		pack, err = ParseNKI(id, data)
		if err != nil {
			return PackFile{}, fmt.Errorf("items: %s: %w", path, err)
		}
	case kindScript:
		pack, err = loadScriptPack(id, path)
		if err != nil {
			return PackFile{}, err
		}
	default:
		return PackFile{}, fmt.Errorf("items: %s: unsupported pack format", path)
	}
	return PackFile{Pack: pack, Path: filepath.Clean(path)}, nil
}

// LoadPackDir loads every supported pack in dir concurrently. Missing
// directories are treated as "no packs".
func LoadPackDir(ctx context.Context, dir string) ([]PackFile, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("items: read %s: %w", trimmed, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || packKind(entry.Name()) == kindUnknown {
			continue
		}
		paths = append(paths, filepath.Join(trimmed, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, nil
	}

	files := make([]PackFile, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file, err := LoadPackFile(path)
			if err != nil {
				return err
			}
			files[i] = file
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

type fileKind int

const (
	kindUnknown fileKind = iota
	kindYAML
	kindNKI
	kindScript
)

func packKind(name string) fileKind {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return kindYAML
	case strings.HasSuffix(lower, ".nki"):
		return kindNKI
	case strings.HasSuffix(lower, ".go") && !strings.HasSuffix(lower, "_test.go"):
		return kindScript
	}
	return kindUnknown
}

func packIDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
