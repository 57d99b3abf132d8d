package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"finance-guide/logger"
	"finance-guide/service"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type indexPage struct {
	Title            string
	ServerKeyPresent bool
	ExampleQuestions []string
	Model            string
}

type UIHandler struct {
	page indexPage
}

func NewUIHandler(serverKeyPresent bool, model string) *UIHandler {
	return &UIHandler{
		page: indexPage{
			Title:            "M³ (Make Money with Mani) - Your Personal Finance Guide",
			ServerKeyPresent: serverKeyPresent,
			ExampleQuestions: service.ExampleQuestions,
			Model:            model,
		},
	}
}

// Index serves the single-page UI on GET /.
func (h *UIHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, "GET, HEAD")
		return
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, h.page); err != nil {
		logger.L.Error("error rendering index", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Health serves GET /healthz.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
