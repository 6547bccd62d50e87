// Package view renders the HTML pages and serves their static assets, all
// embedded in the binary.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	layoutFile  = "layout.html"
	shortSHALen = 7
	dateLayout  = "Jan 2, 2006 15:04 MST"
)

// Renderer holds one parsed template set per page, each combined with the
// shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, errors.Wrap(err, "list templates")
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, e := range entries {
		if e.IsDir() || e.Name() == layoutFile {
			continue
		}
		t, err := template.New(e.Name()).Funcs(Funcs()).ParseFS(templateFS,
			path.Join("templates", layoutFile),
			path.Join("templates", e.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", e.Name())
		}
		r.pages[e.Name()] = t
	}
	return r, nil
}

// Render writes page through the layout.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return errors.Newf("unknown page %q", page)
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return errors.Wrapf(err, "render %s", page)
	}
	return nil
}

// Static serves the embedded assets. Mount it with the /static/ prefix stripped.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"shortSHA":   ShortSHA,
		"firstLine":  FirstLine,
		"formatDate": FormatDate,
	}
}

func ShortSHA(sha string) string {
	if len(sha) <= shortSHALen {
		return sha
	}
	return sha[:shortSHALen]
}

// FirstLine returns the commit subject.
func FirstLine(message string) string {
	subject, _, _ := strings.Cut(message, "\n")
	return strings.TrimRight(subject, "\r")
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
