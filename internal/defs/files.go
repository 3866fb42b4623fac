package defs

import "io/fs"

// Common file names used across the generator.
const (
	// AppJSON is the Expo project manifest produced by create-expo-app.
	AppJSON = "app.json"

	// PackageJSON is the npm package manifest produced by create-expo-app.
	PackageJSON = "package.json"

	// RecordYAML is the generation record written into the new project.
	RecordYAML = ".jmobile.yaml"

	// RootLayout is the expo-router navigation entry file.
	RootLayout = "app/_layout.tsx"

	// MainEntry is the value written to package.json "main" so the
	// generated app boots through expo-router.
	MainEntry = "expo-router/entry"
)

// Filesystem permission modes for generated artifacts.
const (
	// DirPerm is the permission mode for created directories.
	DirPerm fs.FileMode = 0o755

	// FilePerm is the permission mode for generated files.
	FilePerm fs.FileMode = 0o644
)
