package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/pep299/just-news/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the view model for the search page
type Page struct {
	Keyword string
	News    *model.NewsResponse
	Error   string
	Year    int
}

// Renderer renders the search UI
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"host": DisplayHost,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page for p
func (r *Renderer) Render(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", p)
}

// DisplayHost returns the host of rawURL, port included ("https://news.bbc.co.uk/x" -> "news.bbc.co.uk"),
// or "" when rawURL has no host.
func DisplayHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
