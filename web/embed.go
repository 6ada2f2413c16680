// Package web bundles the HTML templates and static assets into the binary,
// so a deployment is the executable and a database file, nothing else.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates static
var assets embed.FS

// Templates parses every page template in the bundle.
func Templates() (*template.Template, error) {
	return template.ParseFS(assets, "templates/*.html")
}

// Static returns the static asset tree rooted at its own directory, ready
// to serve under /static.
func Static() (fs.FS, error) {
	return fs.Sub(assets, "static")
}
