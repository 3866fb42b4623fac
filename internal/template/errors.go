package template

import "errors"

// Sentinel errors for template rendering.
var (
	// ErrTemplateNotFound indicates the named template does not exist in
	// the embedded filesystem.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the render context lacked a key the
	// template references (strict mode).
	ErrMissingTemplateKey = errors.New("template: missing context key")

	// ErrUnexpandedToken indicates a Go template action survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token in rendered output")
)
