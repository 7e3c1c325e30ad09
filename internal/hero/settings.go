package hero

import "strings"

// Layout selects which side of the row the image cluster occupies on wide viewports.
type Layout string

const (
	LayoutImageLeft  Layout = "image-left"
	LayoutImageRight Layout = "image-right"

	DefaultLayout = LayoutImageLeft
)

// Valid reports whether l is one of the known layouts.
func (l Layout) Valid() bool {
	return l == LayoutImageLeft || l == LayoutImageRight
}

// Reversed reports whether the visual direction of the row is flipped.
func (l Layout) Reversed() bool {
	return l == LayoutImageRight
}

// TrustedHTML is markup the caller has vouched for. Renderers inject it verbatim;
// use the richtext package to build one from untrusted or markdown input.
type TrustedHTML string

// Settings is the hero block configuration. Field tags mirror the theme schema ids so
// the same payload feeds the section and the component.
type Settings struct {
	Title          string      `json:"title,omitempty" yaml:"title,omitempty"`
	Description    TrustedHTML `json:"description,omitempty" yaml:"description,omitempty"`
	MainImage      string      `json:"main_image,omitempty" yaml:"main_image,omitempty"`
	SecondaryImage string      `json:"secondary_image,omitempty" yaml:"secondary_image,omitempty"`
	ButtonLabel    string      `json:"button_label,omitempty" yaml:"button_label,omitempty"`
	ButtonLink     string      `json:"button_link,omitempty" yaml:"button_link,omitempty"`
	ColorStyle     ColorStyle  `json:"color_style,omitempty" yaml:"color_style,omitempty"`
	Layout         Layout      `json:"layout,omitempty" yaml:"layout,omitempty"`
}

// Option customises Settings built with New.
type Option func(*Settings)

// New returns settings with the defaults applied after the options.
func New(opts ...Option) Settings {
	var s Settings
	for _, opt := range opts {
		opt(&s)
	}
	return s.WithDefaults()
}

// WithTitle sets the heading text.
func WithTitle(title string) Option {
	return func(s *Settings) { s.Title = title }
}

// WithDescription sets the rich text body.
func WithDescription(body TrustedHTML) Option {
	return func(s *Settings) { s.Description = body }
}

// WithImages sets the primary and accent images. Either may be empty.
func WithImages(main, secondary string) Option {
	return func(s *Settings) {
		s.MainImage = main
		s.SecondaryImage = secondary
	}
}

// WithButton sets the call-to-action pair.
func WithButton(label, link string) Option {
	return func(s *Settings) {
		s.ButtonLabel = label
		s.ButtonLink = link
	}
}

// WithColorStyle selects the color variant.
func WithColorStyle(style ColorStyle) Option {
	return func(s *Settings) { s.ColorStyle = style }
}

// WithLayout selects the image side.
func WithLayout(layout Layout) Option {
	return func(s *Settings) { s.Layout = layout }
}

// WithDefaults fills the color style and layout when they were not supplied and
// replaces an unknown layout with the default one. The color style is kept as given;
// Resolve handles unknown keys.
func (s Settings) WithDefaults() Settings {
	s.ColorStyle = ColorStyle(strings.TrimSpace(string(s.ColorStyle)))
	if s.ColorStyle == "" {
		s.ColorStyle = DefaultColorStyle
	}
	s.Layout = Layout(strings.TrimSpace(string(s.Layout)))
	if !s.Layout.Valid() {
		s.Layout = DefaultLayout
	}
	return s
}

// HasButton reports whether the call-to-action renders. Both halves are required.
func (s Settings) HasButton() bool {
	return strings.TrimSpace(s.ButtonLabel) != "" && strings.TrimSpace(s.ButtonLink) != ""
}

// HasImage reports whether the image cluster renders at all.
func (s Settings) HasImage() bool {
	return strings.TrimSpace(s.MainImage) != ""
}

// HasAccent reports whether the overlapping accent image renders. It never does
// without a primary image.
func (s Settings) HasAccent() bool {
	return s.HasImage() && strings.TrimSpace(s.SecondaryImage) != ""
}
