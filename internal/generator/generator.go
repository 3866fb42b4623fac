// Package generator materializes a file-tree plan into a scaffolded
// project: it resolves the theme, renders each planned template, writes
// the output, and applies the manifest edits. It is the only component
// that touches persistent state.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JamesHardey/create-expo-jmobile/internal/config"
	"github.com/JamesHardey/create-expo-jmobile/internal/defs"
	"github.com/JamesHardey/create-expo-jmobile/internal/manifest"
	"github.com/JamesHardey/create-expo-jmobile/internal/plan"
	"github.com/JamesHardey/create-expo-jmobile/internal/template"
	"github.com/JamesHardey/create-expo-jmobile/internal/theme"
	"github.com/JamesHardey/create-expo-jmobile/pkg/version"
)

// Sentinel errors for generation.
var (
	// ErrRootInaccessible indicates the scaffolded project root does not
	// exist or is not a directory.
	ErrRootInaccessible = errors.New("generator: project root inaccessible")

	// ErrPathEscape indicates a planned path would escape the project root.
	ErrPathEscape = errors.New("generator: planned path escapes project root")
)

// ProjectContext carries the root every relative path is resolved
// against. It replaces any reliance on the process working directory:
// nothing in the generator calls os.Chdir.
type ProjectContext struct {
	RootPath string
}

// Reporter receives progress notifications during materialization.
type Reporter interface {
	FileWritten(relPath string)
}

// noopReporter is used when no reporter is configured.
type noopReporter struct{}

func (noopReporter) FileWritten(string) {}

// Result summarizes a completed generation.
type Result struct {
	CreatedDirs  []string // directories ensured, in creation order
	CreatedFiles []string // files written, in plan order
	Warnings     []string // non-fatal notes
}

// Generator renders and writes the planned file tree.
type Generator struct {
	renderer template.Renderer
	logger   *slog.Logger
	reporter Reporter
}

// New creates a Generator. A nil logger discards log output.
func New(renderer template.Renderer, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		renderer: renderer,
		logger:   logger,
		reporter: noopReporter{},
	}
}

// SetReporter installs a progress reporter.
func (g *Generator) SetReporter(r Reporter) {
	if r != nil {
		g.reporter = r
	}
}

// Generate materializes the plan for cfg into pctx.RootPath.
// The first directory or write failure aborts the remaining plan; files
// already written are left in place (no rollback). Re-running against a
// populated root is safe: directory creation is idempotent and existing
// generated files are overwritten unconditionally.
func (g *Generator) Generate(ctx context.Context, pctx ProjectContext, cfg *config.Configuration) (*Result, error) {
	root := filepath.Clean(pctx.RootPath)

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootInaccessible, root)
	}

	resolved := theme.Resolve(cfg)
	tmplCtx := template.NewContext(
		template.WithApp(cfg.AppName, cfg.Scheme()),
		template.WithFont(string(cfg.Font), cfg.FontPackage()),
		template.WithNavigation(cfg.NeedsAuth, cfg.NeedsBottomTabs),
		template.WithTheme(resolved),
		template.WithVersion(version.GetVersion()),
		template.WithCreatedAt(time.Now().UTC().Format(time.RFC3339)),
	)

	entries := plan.Build(cfg, resolved)

	g.logger.Info("generating project files",
		"root", root,
		"name", cfg.AppName,
		"files", len(entries),
		"auth", cfg.NeedsAuth,
		"tabs", cfg.NeedsBottomTabs,
	)

	result := &Result{}
	ensuredDirs := map[string]bool{}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		destPath, err := resolvePath(root, entry.RelPath)
		if err != nil {
			return nil, err
		}

		destDir := filepath.Dir(destPath)
		if !ensuredDirs[destDir] {
			if err := os.MkdirAll(destDir, defs.DirPerm); err != nil {
				return nil, fmt.Errorf("create directory %q: %w", destDir, err)
			}
			ensuredDirs[destDir] = true
			if destDir != root {
				rel, _ := filepath.Rel(root, destDir)
				result.CreatedDirs = append(result.CreatedDirs, filepath.ToSlash(rel))
			}
		}

		renderCtx := tmplCtx
		if entry.Title != "" {
			renderCtx = tmplCtx.ForScreen(entry.Title)
		}

		content, err := g.renderer.Render(entry.Template, renderCtx)
		if err != nil {
			return nil, fmt.Errorf("render %q: %w", entry.RelPath, err)
		}

		if err := os.WriteFile(destPath, content, defs.FilePerm); err != nil {
			return nil, fmt.Errorf("write %q: %w", entry.RelPath, err)
		}

		result.CreatedFiles = append(result.CreatedFiles, entry.RelPath)
		g.reporter.FileWritten(entry.RelPath)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	editor := manifest.NewEditor(root)
	if err := editor.SetScheme(cfg.Scheme()); err != nil {
		return nil, err
	}
	if err := editor.SetMainEntry(); err != nil {
		return nil, err
	}

	if err := g.writeRecord(root, cfg); err != nil {
		// The record is tooling metadata, not part of the generated app.
		result.Warnings = append(result.Warnings, fmt.Sprintf("generation record: %s", err))
		g.logger.Warn("failed to write generation record", "error", err)
	}

	g.logger.Info("project generated",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)

	return result, nil
}

// record is the YAML document written to .jmobile.yaml so later tooling
// can see how the project was generated.
type record struct {
	AppName          string `yaml:"app_name"`
	Font             string `yaml:"font"`
	PrimaryColor     string `yaml:"primary_color,omitempty"`
	SecondaryColor   string `yaml:"secondary_color,omitempty"`
	Auth             bool   `yaml:"auth"`
	BottomTabs       bool   `yaml:"bottom_tabs"`
	GeneratorVersion string `yaml:"generator_version"`
	CreatedAt        string `yaml:"created_at"`
}

func (g *Generator) writeRecord(root string, cfg *config.Configuration) error {
	data, err := yaml.Marshal(record{
		AppName:          cfg.AppName,
		Font:             string(cfg.Font),
		PrimaryColor:     cfg.PrimaryColor,
		SecondaryColor:   cfg.SecondaryColor,
		Auth:             cfg.NeedsAuth,
		BottomTabs:       cfg.NeedsBottomTabs,
		GeneratorVersion: version.GetVersion(),
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return os.WriteFile(filepath.Join(root, defs.RecordYAML), data, defs.FilePerm)
}

// resolvePath joins a planned relative path to the root, rejecting
// anything that would escape it.
func resolvePath(root, relPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("%w: %q", ErrPathEscape, relPath)
	}

	abs := filepath.Join(root, cleaned)
	if !strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrPathEscape, relPath)
	}
	return abs, nil
}
