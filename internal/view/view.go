package view

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"owner-admin/internal/dto/response"

	"go.uber.org/zap"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Renderer executes the embedded page templates. Templates are addressed by
// file name ("owners.gohtml").
type Renderer struct {
	tmpl *template.Template
	log  *zap.Logger
}

func NewRenderer(log *zap.Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}

	return &Renderer{
		tmpl: tmpl,
		log:  log.With(zap.String("component", "view")),
	}, nil
}

// HTML renders the named template into a buffer first so a template failure
// can still answer with a clean 500 instead of a half-written page.
func (r *Renderer) HTML(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		r.log.Error("Failed to render template",
			zap.String("template", name),
			zap.Error(err),
		)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Error renders the generic error page with the given status.
func (r *Renderer) Error(w http.ResponseWriter, status int, message string) {
	r.HTML(w, status, "error.gohtml", ErrorData{
		Status:  status,
		Message: message,
	})
}

// ==================== TEMPLATE DATA ====================

type OwnersData struct {
	Username string
	Owners   []response.OwnerView
}

type OwnerFormData struct {
	Owner *response.OwnerView
	Error string
}

type RegisterData struct {
	Roles []response.RoleOption
	Error string
}

type LoginData struct{}

type LogoutData struct {
	Username string
}

type ErrorData struct {
	Status  int
	Message string
}
