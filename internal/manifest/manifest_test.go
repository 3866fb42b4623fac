package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func readDoc(t *testing.T, dir, name string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal %s: %v", name, err)
	}
	return doc
}

func TestSetScheme(t *testing.T) {
	t.Run("merges_and_preserves", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "app.json", `{"expo":{"name":"demo","slug":"demo","version":"1.0.0"}}`)

		if err := NewEditor(dir).SetScheme("demo"); err != nil {
			t.Fatalf("SetScheme error: %v", err)
		}

		doc := readDoc(t, dir, "app.json")
		expo := doc["expo"].(map[string]any)
		if expo["scheme"] != "demo" {
			t.Errorf("scheme = %v, want demo", expo["scheme"])
		}
		if expo["slug"] != "demo" || expo["version"] != "1.0.0" {
			t.Errorf("unrelated fields not preserved: %v", expo)
		}
	})

	t.Run("overwrites_existing_scheme", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "app.json", `{"expo":{"name":"demo","scheme":"old"}}`)

		if err := NewEditor(dir).SetScheme("myapp22"); err != nil {
			t.Fatalf("SetScheme error: %v", err)
		}
		expo := readDoc(t, dir, "app.json")["expo"].(map[string]any)
		if expo["scheme"] != "myapp22" {
			t.Errorf("scheme = %v, want myapp22", expo["scheme"])
		}
	})

	t.Run("missing_manifest", func(t *testing.T) {
		err := NewEditor(t.TempDir()).SetScheme("demo")
		if !errors.Is(err, ErrManifestNotFound) {
			t.Errorf("error = %v, want ErrManifestNotFound", err)
		}
	})

	t.Run("malformed_manifest", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "app.json", `{not json`)

		err := NewEditor(dir).SetScheme("demo")
		if !errors.Is(err, ErrManifestMalformed) {
			t.Errorf("error = %v, want ErrManifestMalformed", err)
		}
	})

	t.Run("missing_expo_object", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "app.json", `{"name":"demo"}`)

		err := NewEditor(dir).SetScheme("demo")
		if !errors.Is(err, ErrManifestMalformed) {
			t.Errorf("error = %v, want ErrManifestMalformed", err)
		}
	})
}

func TestSetMainEntry(t *testing.T) {
	t.Run("rewrites_main", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "package.json", `{"name":"demo","main":"index.js","version":"1.0.0"}`)

		if err := NewEditor(dir).SetMainEntry(); err != nil {
			t.Fatalf("SetMainEntry error: %v", err)
		}

		doc := readDoc(t, dir, "package.json")
		if doc["main"] != "expo-router/entry" {
			t.Errorf("main = %v, want expo-router/entry", doc["main"])
		}
		if doc["version"] != "1.0.0" {
			t.Errorf("unrelated fields not preserved: %v", doc)
		}
	})

	t.Run("missing_manifest", func(t *testing.T) {
		err := NewEditor(t.TempDir()).SetMainEntry()
		if !errors.Is(err, ErrManifestNotFound) {
			t.Errorf("error = %v, want ErrManifestNotFound", err)
		}
	})
}
