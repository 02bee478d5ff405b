// Package spec embeds the OpenAPI specification for the Tourbook API.
// It is imported by the HTTP server to serve the spec at /openapi.yaml and by
// main to check the document at startup.
package spec

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
// Serving it from the binary means the spec and the running code are always in sync.
//
//go:embed openapi.yaml
var OpenAPI []byte

// Load parses the embedded document and validates it against the OpenAPI 3
// rules, resolving every $ref.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("spec.Load: parse: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("spec.Load: validate: %w", err)
	}
	return doc, nil
}
