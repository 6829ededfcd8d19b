// Package assets embeds the default map and settings.
package assets

import _ "embed"

// SkirmishMap is the default 20x16 map in Tiled JSON form.
//
//go:embed maps/skirmish.json
var SkirmishMap []byte

// DefaultConfig is the default settings file.
//
//go:embed config/default.yaml
var DefaultConfig []byte
