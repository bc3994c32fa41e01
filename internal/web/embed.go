// Package web bundles the page templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/* static/*
var ContentFS embed.FS

// Templates parses every page template
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(ContentFS, "templates/*.html")
}

// StaticFS returns the static assets rooted at their directory
func StaticFS() fs.FS {
	sub, err := fs.Sub(ContentFS, "static")
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	return sub
}
