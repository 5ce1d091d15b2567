// Package iconbg provides embedded assets for the iconbg tool.
//
// The root package exists solely to embed [iconbg.default.toml] via
// [DefaultConfigTOML], which `iconbg -init` writes into a project.
package iconbg

import _ "embed"

// DefaultConfigTOML holds the raw bytes of iconbg.default.toml, embedded at
// build time. Regenerate it with `go generate ./internal/config`.
//
//go:embed iconbg.default.toml
var DefaultConfigTOML []byte
