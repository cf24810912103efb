// Package assets embeds static game data.
package assets

import "embed"

// Roster holds the alien form definitions.
//
//go:embed roster/*.json
var Roster embed.FS
