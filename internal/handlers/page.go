package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"patientdoc/internal/contextutil"
)

// PageHandler serves the static help and author pages, written in markdown.
type PageHandler struct {
	views *views
	pages map[string]renderedPage
}

type renderedPage struct {
	title   string
	content template.HTML
}

type markdownPageData struct {
	pageData
	Content template.HTML
}

// NewPageHandler renders the embedded markdown pages once and returns a handler for them.
func NewPageHandler() (*PageHandler, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	h := &PageHandler{
		views: newViews(),
		pages: make(map[string]renderedPage),
	}
	for name, title := range map[string]string{"help": "Help", "about": "Author"} {
		src, err := pageFS.ReadFile("pages/" + name + ".md")
		if err != nil {
			return nil, fmt.Errorf("read %s page: %w", name, err)
		}
		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("convert %s page: %w", name, err)
		}
		h.pages[name] = renderedPage{title: title, content: template.HTML(buf.String())}
	}
	return h, nil
}

// Page returns a handler that renders the named page.
func (h *PageHandler) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		page, ok := h.pages[name]
		if !ok {
			http.NotFound(w, r)
			return
		}

		data := markdownPageData{
			pageData: pageData{Title: page.title},
			Content:  page.content,
		}
		if err := h.views.render(w, http.StatusOK, "page", data); err != nil {
			contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to render page", "page", name, "error", err)
			http.Error(w, "failed to render page", http.StatusInternalServerError)
		}
	}
}
