// Package page renders the host demo page around the hero renditions.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Zerubabel-J/HeroCraft/internal/hero"
	"github.com/Zerubabel-J/HeroCraft/internal/parity"
	"github.com/Zerubabel-J/HeroCraft/internal/presets"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// DefaultTitle heads the demo page.
const DefaultTitle = "Product Hero"

const layoutTemplate = "layout"

// Block is one preset rendered in both forms.
type Block struct {
	Preset    presets.Preset
	Section   template.HTML
	Component template.HTML
	Parity    parity.Report
}

// Demo is the view model of the demo page.
type Demo struct {
	Title  string
	Blocks []Block
}

// BuildDemo renders every preset in order.
func BuildDemo(list []presets.Preset) (Demo, error) {
	demo := Demo{Title: DefaultTitle, Blocks: make([]Block, 0, len(list))}
	for _, p := range list {
		block, err := BuildBlock(p)
		if err != nil {
			return Demo{}, err
		}
		demo.Blocks = append(demo.Blocks, block)
	}
	return demo, nil
}

// BuildBlock renders a single preset in both forms and records their parity.
func BuildBlock(p presets.Preset) (Block, error) {
	section, err := hero.SectionHTML(p.Settings)
	if err != nil {
		return Block{}, fmt.Errorf("page: render section %s: %w", p.Name, err)
	}
	component, err := hero.ComponentHTML(p.Settings)
	if err != nil {
		return Block{}, fmt.Errorf("page: render component %s: %w", p.Name, err)
	}
	report, err := parity.Compare([]byte(section), []byte(component))
	if err != nil {
		return Block{}, fmt.Errorf("page: parity %s: %w", p.Name, err)
	}
	return Block{Preset: p, Section: section, Component: component, Parity: report}, nil
}

// Renderer executes the layout. With a directory in dev mode the templates are
// re-parsed on every call; otherwise they are parsed once.
type Renderer struct {
	dir     string
	devMode bool
	cache   *template.Template
}

// NewRenderer parses the templates from dir, or from the embedded set when dir is empty.
func NewRenderer(dir string, devMode bool) (*Renderer, error) {
	r := &Renderer{dir: strings.TrimSpace(dir), devMode: devMode}
	if r.dir == "" {
		r.devMode = false
	}
	tmpl, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.cache = tmpl
	return r, nil
}

// Render writes the full page for data into w.
func (r *Renderer) Render(w io.Writer, data Demo) error {
	tmpl := r.cache
	if r.devMode {
		parsed, err := r.parse()
		if err != nil {
			return err
		}
		tmpl = parsed
	}
	if err := tmpl.ExecuteTemplate(w, layoutTemplate, data); err != nil {
		return fmt.Errorf("page: execute: %w", err)
	}
	return nil
}

func (r *Renderer) parse() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
	}
	root := template.New("_root").Funcs(funcMap)
	if r.dir == "" {
		tmpl, err := root.ParseFS(embedded, "templates/*.tmpl")
		if err != nil {
			return nil, fmt.Errorf("page: parse embedded templates: %w", err)
		}
		return tmpl, nil
	}

	// ParseGlob does not recurse, so walk the tree.
	var files []string
	err := filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("page: walk %s: %w", r.dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("page: no templates found under %s: %w", r.dir, os.ErrNotExist)
	}
	tmpl, err := root.ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("page: parse templates: %w", err)
	}
	return tmpl, nil
}
