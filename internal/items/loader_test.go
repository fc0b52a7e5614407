package items

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const samplePackYAML = `id: office
name: Office Supplies
version: 1.0.0
items:
  - "A red stapler."
  - "  A box of paperclips.  "
`

const sampleNKI = `# office leftovers
A dry highlighter.

A sticky note that says "call kitten".
`

const sampleScript = `package main

import "fmt"

func Items() ([]string, error) {
	out := []string{}
	for i := 1; i <= 3; i++ {
		out = append(out, fmt.Sprintf("Generated thing %d.", i))
	}
	return out, nil
}
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParsePackYAML(t *testing.T) {
	pack, err := ParsePackYAML([]byte(samplePackYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if pack.ID != "office" || pack.DisplayName() != "Office Supplies" {
		t.Fatalf("unexpected pack: %+v", pack)
	}
	if pack.Items[1] != "A box of paperclips." {
		t.Fatalf("items should be trimmed, got %q", pack.Items[1])
	}
}

func TestParsePackYAMLErrors(t *testing.T) {
	cases := map[string]string{
		"empty":      "",
		"no id":      "items: [a]\n",
		"no items":   "id: x\n",
		"blank item": "id: x\nitems: [\"  \"]\n",
		"bad yaml":   "id: [\n",
	}
	for name, body := range cases {
		if _, err := ParsePackYAML([]byte(body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestParseNKI(t *testing.T) {
	pack, err := ParseNKI("office", []byte(sampleNKI))
	if err != nil {
		t.Fatalf("parse nki: %v", err)
	}
	if len(pack.Items) != 2 {
		t.Fatalf("expected 2 items, got %v", pack.Items)
	}
	if _, err := ParseNKI("empty", []byte("# only a comment\n\n")); err == nil {
		t.Fatalf("expected comment-only file to fail")
	}
}

func TestLoadPackDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "office.yaml", samplePackYAML)
	writeFile(t, dir, "leftovers.nki", sampleNKI)
	writeFile(t, dir, "generated.go", sampleScript)
	writeFile(t, dir, "README.txt", "not a pack")

	files, err := LoadPackDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 packs, got %d", len(files))
	}
	wantIDs := []string{"generated", "leftovers", "office"}
	for i, want := range wantIDs {
		if files[i].Pack.ID != want {
			t.Fatalf("files[%d] id = %s, want %s", i, files[i].Pack.ID, want)
		}
	}
	if got := len(files[0].Pack.Items); got != 3 {
		t.Fatalf("script pack items = %d, want 3", got)
	}
}

func TestLoadPackDirMissing(t *testing.T) {
	files, err := LoadPackDir(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if files != nil {
		t.Fatalf("expected nil slice for missing dir, got %v", files)
	}
}

func TestLoadPackDirPropagatesErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.nki", "A thing.\n")
	writeFile(t, dir, "broken.yaml", "id: broken\n")
	if _, err := LoadPackDir(context.Background(), dir); err == nil {
		t.Fatalf("expected broken pack to fail the load")
	}
}

func TestLoadScriptPackMissingFunc(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.go", "package main\n")
	if _, err := LoadPackFile(path); err == nil {
		t.Fatalf("expected error for missing Items function")
	}
}

func TestLoadCombinesBuiltinAndPacks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "office.yaml", samplePackYAML)
	c, err := Load(context.Background(), dir, true, nil)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if got, want := c.Len(), BuiltinCount+2; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}
}
