package ui

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed assets
	assetFS embed.FS

	pageTemplate = template.Must(template.New("page.html").ParseFS(templateFS, "templates/page.html"))
)

// Render writes the catalog page. html/template escapes every field by
// context, so user text is never emitted as markup and unsafe URLs in src
// or href come out as "#ZgotmplZ".
func Render(w io.Writer, page Page) error {
	return pageTemplate.Execute(w, page)
}

// Assets is the static stylesheet tree served under /assets.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
