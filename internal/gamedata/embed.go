// Package gamedata provides the embedded feature definitions (glyphs, colors,
// light radii and population counts) and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds the JSON definitions from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
