// Package view renders the admin HTML pages. Every page template defines a
// "content" block that is wrapped by layout.html.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"practice-scheduler/internal/domain/entity"

	"github.com/gorilla/csrf"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Page is the value every template is executed with.
type Page struct {
	Title  string
	Flash  []string
	Errors []string
	Data   any
}

type Renderer struct {
	log       *logrus.Logger
	templates map[string]*template.Template
}

// NewRenderer parses every page together with the layout once.
func NewRenderer(log *logrus.Logger) (*Renderer, error) {
	funcs := baseFuncs(goldmark.New())

	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		if page == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(page), ".html")
		tpl, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tpl
	}

	return &Renderer{
		log:       log,
		templates: templates,
	}, nil
}

func baseFuncs(md goldmark.Markdown) template.FuncMap {
	return template.FuncMap{
		// Replaced per request in Render.
		"csrfField": func() template.HTML { return "" },
		"markdown": func(source string) template.HTML {
			var buf bytes.Buffer
			if err := md.Convert([]byte(source), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(source))
			}
			return template.HTML(buf.String())
		},
		"duration": entity.FormatDuration,
		"longDate": func(t time.Time) string { return t.Format("Monday, January 2, 2006") },
		"isoDate":  func(t time.Time) string { return t.Format("2006-01-02") },
		"clock":    func(t time.Time) string { return t.Format("3:04PM") },
		"money":    func(d decimal.Decimal) string { return d.StringFixed(2) },
		"selected": func(value any, current string) bool { return fmt.Sprint(value) == current },
	}
}

// Render writes page name with the given status. The page is rendered into a
// buffer first so a template error still yields a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, name string, page Page) {
	base, ok := r.templates[name]
	if !ok {
		r.log.Errorf("Unknown template: %s", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	tpl, err := base.Clone()
	if err != nil {
		r.log.Errorf("Failed to clone template %s: %+v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	tpl.Funcs(template.FuncMap{
		"csrfField": func() template.HTML { return csrf.TemplateField(req) },
	})

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, page); err != nil {
		r.log.Errorf("Failed to render template %s: %+v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
