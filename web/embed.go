// Package web holds the dashboard templates and static assets, embedded
// into the binary so the server does not depend on the working directory.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed views static
var content embed.FS

// Views returns the template tree rooted at views/.
func Views() http.FileSystem {
	sub, err := fs.Sub(content, "views")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Static returns the asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
