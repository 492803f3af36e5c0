package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed pages/*.md
var pageFS embed.FS

// views holds one parsed template set per page, each combined with the layout.
type views struct {
	pages map[string]*template.Template
}

func newViews() *views {
	v := &views{pages: make(map[string]*template.Template)}
	for _, name := range []string{"list", "form", "message", "page"} {
		v.pages[name] = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}
	return v
}

// render executes the named page into a buffer first so a template error
// never leaves a half-written response.
func (v *views) render(w http.ResponseWriter, status int, name string, data any) error {
	tmpl, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute %s template: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}
