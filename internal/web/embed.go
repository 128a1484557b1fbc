package web

import "embed"

// assets holds the page template and the static files under assets/static.
//
//go:embed assets
var assets embed.FS
