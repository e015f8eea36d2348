// Package views holds the page templates and browser assets compiled into the binary.
package views

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed templates
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Templates is rooted at templates/, so "layouts/main" and "home" resolve directly.
func Templates() http.FileSystem {
	return http.FS(mustSub(templateFiles, "templates"))
}

func Static() http.FileSystem {
	return http.FS(mustSub(staticFiles, "static"))
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
