// Package data bundles the default Bangkok dataset.
package data

import (
	"embed"
)

// Path is the name of the bundled dataset within `FS`.
const Path = "places.json"

//go:embed places.json
var FS embed.FS
