// Package web holds the embedded browser upload page served at the server
// root for air-gapped deployment.
package web

import (
	"embed"
)

//go:embed static/*
var staticFiles embed.FS

// IndexPage returns the embedded upload page.
func IndexPage() ([]byte, error) {
	return staticFiles.ReadFile("static/index.html")
}

// HasEmbeddedPage reports whether the upload page was embedded at build time.
func HasEmbeddedPage() bool {
	_, err := staticFiles.ReadFile("static/index.html")
	return err == nil
}
