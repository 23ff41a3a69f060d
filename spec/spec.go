// Package spec embeds the OpenAPI specification for the people registry API.
// The HTTP server serves it at /openapi.yaml; internal/handler/gen is
// generated from it.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
// The served document is the one the handlers were generated from.
//
//go:embed openapi.yaml
var OpenAPI []byte
