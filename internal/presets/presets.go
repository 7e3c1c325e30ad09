// Package presets loads named hero settings payloads used by the preview host.
package presets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Zerubabel-J/HeroCraft/internal/hero"
	"github.com/Zerubabel-J/HeroCraft/internal/richtext"
)

// ErrNotFound is returned when a preset name is unknown.
var ErrNotFound = errors.New("presets: not found")

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Preset is a named settings payload.
type Preset struct {
	Name     string
	Label    string
	Summary  string
	Order    int
	Source   string
	Settings hero.Settings
}

type presetFile struct {
	Name     string       `yaml:"name"`
	Label    string       `yaml:"label"`
	Summary  string       `yaml:"summary"`
	Order    int          `yaml:"order"`
	Settings settingsFile `yaml:"settings"`
}

type settingsFile struct {
	Title             string `yaml:"title"`
	Description       string `yaml:"description"`
	DescriptionFormat string `yaml:"description_format"`
	MainImage         string `yaml:"main_image"`
	SecondaryImage    string `yaml:"secondary_image"`
	ButtonLabel       string `yaml:"button_label"`
	ButtonLink        string `yaml:"button_link"`
	ColorStyle        string `yaml:"color_style"`
	Layout            string `yaml:"layout"`
}

// Option customises Load.
type Option func(*Store)

// WithSanitize filters html descriptions through richtext.Sanitize.
func WithSanitize(enabled bool) Option {
	return func(s *Store) { s.sanitize = enabled }
}

// Store holds presets by name. Files in the configured directory override the embedded
// defaults with the same name.
type Store struct {
	mu       sync.RWMutex
	items    map[string]Preset
	dir      string
	sanitize bool
}

// Load builds a store from the embedded defaults and, when dir is set, every
// .yaml, .yml and .json file in it.
func Load(dir string, opts ...Option) (*Store, error) {
	s := &Store{dir: strings.TrimSpace(dir)}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the defaults and the directory, replacing the current set atomically.
func (s *Store) Reload() error {
	items := make(map[string]Preset)

	defaults, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		return fmt.Errorf("presets: open defaults: %w", err)
	}
	if err := s.readFS(defaults, "embedded", items); err != nil {
		return err
	}
	if s.dir != "" {
		if err := s.readFS(os.DirFS(s.dir), s.dir, items); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Dir returns the override directory, empty when only defaults are used.
func (s *Store) Dir() string {
	return s.dir
}

// Get returns the preset called name.
func (s *Store) Get(name string) (Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.items[normalizeName(name)]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p, nil
}

// List returns all presets ordered by Order then Name.
func (s *Store) List() []Preset {
	s.mu.RLock()
	out := make([]Preset, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (s *Store) readFS(fsys fs.FS, label string, items map[string]Preset) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("presets: read %s: %w", label, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !isPresetFile(entry.Name()) {
			continue
		}
		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return fmt.Errorf("presets: read %s: %w", path.Join(label, entry.Name()), err)
		}
		p, err := s.decode(entry.Name(), data)
		if err != nil {
			return fmt.Errorf("presets: parse %s: %w", path.Join(label, entry.Name()), err)
		}
		p.Source = path.Join(label, entry.Name())
		items[p.Name] = p
	}
	return nil
}

func (s *Store) decode(filename string, data []byte) (Preset, error) {
	var file presetFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Preset{}, err
	}

	format, err := richtext.ParseFormat(file.Settings.DescriptionFormat)
	if err != nil {
		return Preset{}, err
	}
	description, err := richtext.Build(file.Settings.Description, format, s.sanitize)
	if err != nil {
		return Preset{}, err
	}

	name := normalizeName(file.Name)
	if name == "" {
		name = normalizeName(strings.TrimSuffix(filename, path.Ext(filename)))
	}
	settings := hero.Settings{
		Title:          strings.TrimSpace(file.Settings.Title),
		Description:    description,
		MainImage:      strings.TrimSpace(file.Settings.MainImage),
		SecondaryImage: strings.TrimSpace(file.Settings.SecondaryImage),
		ButtonLabel:    strings.TrimSpace(file.Settings.ButtonLabel),
		ButtonLink:     strings.TrimSpace(file.Settings.ButtonLink),
		ColorStyle:     hero.ColorStyle(file.Settings.ColorStyle),
		Layout:         hero.Layout(file.Settings.Layout),
	}
	return Preset{
		Name:     name,
		Label:    firstNonEmpty(strings.TrimSpace(file.Label), name),
		Summary:  strings.TrimSpace(file.Summary),
		Order:    file.Order,
		Settings: settings.WithDefaults(),
	}, nil
}

func isPresetFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
