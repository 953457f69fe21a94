package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gauravsoni97/preservespecialmoments/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "product", "cart", "checkout", "notfound"}

type pages struct {
	byName map[string]*template.Template
}

func (h *Handler) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"price": func(amount decimal.Decimal) string { return h.display.Format(amount) },
		"stars": func(rating float64) int { return int(rating + 0.5) },
	}
}

// parsePages parses each page together with the shared layout so that every
// page can define its own "content" block.
func parsePages(funcs template.FuncMap) (*pages, error) {
	p := &pages{byName: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		p.byName[name] = t
	}
	return p, nil
}

// render executes the base layout for the named page. Output is buffered so
// a template error never leaves a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	t, ok := h.pages.byName[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		logger.FromContext(r.Context()).Error("template exec error", zap.String("page", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
