// Package manifest edits the two manifests the scaffolding tool leaves
// behind: app.json gains the deep-link scheme, package.json gets its
// entry point pointed at expo-router. Both files must already exist.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JamesHardey/create-expo-jmobile/internal/defs"
)

// Sentinel errors for manifest edits.
var (
	// ErrManifestNotFound indicates an expected manifest is missing from
	// the project root (the scaffold step did not produce it).
	ErrManifestNotFound = errors.New("manifest: file not found")

	// ErrManifestMalformed indicates a manifest could not be parsed.
	ErrManifestMalformed = errors.New("manifest: malformed JSON")
)

// Editor performs read-modify-write edits on the project manifests.
type Editor struct {
	root string
}

// NewEditor creates an Editor for the given project root.
func NewEditor(projectRoot string) *Editor {
	return &Editor{root: filepath.Clean(projectRoot)}
}

// SetScheme merges the deep-link scheme into app.json under the "expo"
// key, overwriting any existing scheme. All other fields are preserved.
func (e *Editor) SetScheme(scheme string) error {
	path := filepath.Join(e.root, defs.AppJSON)
	doc, err := readJSON(path)
	if err != nil {
		return err
	}

	expo, ok := doc["expo"].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %s has no expo object", ErrManifestMalformed, defs.AppJSON)
	}
	expo["scheme"] = scheme

	return writeJSON(path, doc)
}

// SetMainEntry rewrites the "main" field of package.json so the app
// boots through expo-router. All other fields are preserved.
func (e *Editor) SetMainEntry() error {
	path := filepath.Join(e.root, defs.PackageJSON)
	doc, err := readJSON(path)
	if err != nil {
		return err
	}

	doc["main"] = defs.MainEntry

	return writeJSON(path, doc)
}

// readJSON loads a manifest into a generic document.
func readJSON(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestMalformed, path, err)
	}
	return doc, nil
}

// writeJSON writes a manifest back with 2-space indentation, matching
// the formatting the scaffolding tool produces.
func writeJSON(path string, doc map[string]any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
