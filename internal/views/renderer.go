package views

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names, each one is templates/<name>.html rendered inside templates/layout.html.
const (
	PageIndex          = "index"
	PageProfile        = "profile"
	PageWeight         = "weight"
	PageChooseMuscle   = "choose-muscle"
	PageChooseExercise = "choose-exercise"
	PageAddMuscle      = "add-muscle"
	PageAdminDatabase  = "admin-database"
	PageStats          = "stats"
	PageAnalytics      = "analytics"
)

var pages = []string{
	PageIndex,
	PageProfile,
	PageWeight,
	PageChooseMuscle,
	PageChooseExercise,
	PageAddMuscle,
	PageAdminDatabase,
	PageStats,
	PageAnalytics,
}

var funcs = template.FuncMap{
	"optFloat": func(v *float64) string {
		if v == nil {
			return "-"
		}
		return strconv.FormatFloat(*v, 'f', 1, 64)
	},
	"optInt": func(v *int) string {
		if v == nil {
			return "-"
		}
		return strconv.Itoa(*v)
	},
	"num": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"day": func(t time.Time) string {
		return t.Format("2006-01-02")
	},
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template, len(pages)),
	}
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templatesFS,
			"templates/layout.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template [%s]: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render writes the page, or its view model as JSON when the client asks for it.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, page string, data any) {
	r.RenderStatus(w, req, page, data, http.StatusOK)
}

func (r *Renderer) RenderStatus(w http.ResponseWriter, req *http.Request, page string, data any, status int) {
	if WantsJSON(req) {
		dataJson, err := json.Marshal(data)
		if err != nil {
			log.Errorf("render [%s]: marshal view model: %s", page, err)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dataJson, status)
		return
	}

	t, ok := r.pages[page]
	if !ok {
		log.Errorf("render: unknown page [%s]", page)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	// buffered, so a failing template never leaves a half written page behind
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		log.Errorf("render [%s]: %s", page, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.HTML, buf.Bytes(), status)
}

func WantsJSON(req *http.Request) bool {
	return strings.Contains(req.Header.Get("Accept"), pkg.ContentType.JSON)
}

func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusFound)
}

// Error responds with a plain text message and the status matching the error kind.
func Error(w http.ResponseWriter, err error, message string) {
	http.Error(w, message, pkg.StatusFor(err))
}
