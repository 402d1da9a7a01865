// Package views renders the server-side HTML pages. Each page template
// is parsed together with the shared layout so pages cannot drift from
// the common nav/footer structure.
package views

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"html/template"

	"github.com/szabolcsj/weblabor/internal/model"
)

//go:embed templates
var files embed.FS

// PageData is the data every page receives for the layout: the resolved
// principal's view plus a page title.
type PageData struct {
	Title    string
	IsAuth   bool
	IsAdmin  bool
	Username string
}

// NewPageData builds PageData from the resolved user (nil for anonymous)
func NewPageData(title string, user *model.User) PageData {
	pd := PageData{Title: title}
	if user != nil {
		pd.IsAuth = true
		pd.IsAdmin = user.IsAdmin
		pd.Username = user.Username
	}
	return pd
}

// HomeData is the home page payload
type HomeData struct {
	PageData
}

// ContactData is the contact page payload
type ContactData struct {
	PageData
	ContactError   bool
	ContactSuccess bool
	ErrorMessage   string
	Name           string
	Email          string
	Phone          string
	Body           string
}

// DatabaseData is the joined inventory page payload
type DatabaseData struct {
	PageData
	Machines []*model.Machine
}

// MessagesData is the messages page payload
type MessagesData struct {
	PageData
	Messages  []*model.Message
	LoadError string
}

// AdminData is the admin page payload
type AdminData struct {
	PageData
	Users []*model.User
}

// CrudListData is the processor list page payload
type CrudListData struct {
	PageData
	Processors []*model.Processor
	LoadError  string
}

// CrudFormData is the processor new/edit form payload
type CrudFormData struct {
	PageData
	Processor    *model.Processor
	ErrorMessage string
}

// Renderer holds the parsed page templates
type Renderer struct {
	pages map[string]*template.Template
}

// New parses all embedded page templates against the shared layout
func New() (*Renderer, error) {
	names, err := fs.Glob(files, "templates/pages/*.gohtml")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := template.ParseFS(files, "templates/layout.gohtml", name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		key := strings.TrimSuffix(path.Base(name), ".gohtml")
		pages[key] = t
	}

	return &Renderer{pages: pages}, nil
}

// Render writes the named page with the given data
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
