// Package views embeds the HTML templates rendered by the handlers.
package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var files embed.FS

// Layout wraps every page.
const Layout = "layouts/main"

// New returns a Fiber view engine serving the embedded templates.
func New() *html.Engine {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err) // the embedded directory always exists
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
