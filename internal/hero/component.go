package hero

import (
	"context"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Component builds the hero as a node tree. DOM order is always image cluster then
// content cluster; image-right only adds the reverse direction class to the row.
func Component(s Settings) g.Node {
	v := newView(s)
	return h.Section(
		h.Class(v.SectionClass),
		g.Attr("data-hero"),
		g.Attr("data-color-style", string(v.ColorStyle)),
		h.Div(
			h.Class(v.ContainerClass),
			h.Div(
				h.Class(v.RowClass),
				g.Attr("data-hero-row"),
				g.Attr("data-layout", string(v.Layout)),
				g.If(v.ShowImage, imageCluster(v)),
				contentCluster(v),
			),
		),
	)
}

func imageCluster(v view) g.Node {
	return h.Div(
		h.Class(v.ImageClusterClass),
		g.Attr("data-hero-cluster", "image"),
		h.Div(
			h.Class(v.MainFrameClass),
			h.Img(h.Src(v.MainImage), h.Alt(v.MainAlt), h.Class(v.MainImageClass), g.Attr("loading", "lazy")),
		),
		g.If(v.ShowAccent,
			h.Div(
				h.Class(v.AccentFrameClass),
				g.Attr("data-hero-accent"),
				h.Img(h.Src(v.SecondaryImage), h.Alt(v.AccentAlt), h.Class(v.AccentImageClass), g.Attr("loading", "lazy")),
			),
		),
	)
}

func contentCluster(v view) g.Node {
	return h.Div(
		h.Class(v.ContentClusterClass),
		g.Attr("data-hero-cluster", "content"),
		g.If(v.Title != "", h.H2(h.Class(v.HeadingClass), g.Text(v.Title))),
		g.If(v.Description != "",
			h.Div(h.Class(v.BodyClass), g.Attr("data-hero-body"), g.Raw(string(v.Description))),
		),
		g.If(v.ShowButton,
			h.Div(
				h.Class(v.ActionFrameClass),
				h.A(h.Href(v.ButtonLink), h.Class(v.ActionClass), g.Attr("data-hero-action"), g.Text(v.ButtonLabel)),
			),
		),
	)
}

// Templ adapts the component for templ.Handler and templ layouts.
func Templ(s Settings) templ.Component {
	node := Component(s)
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// ComponentHTML renders the component into a string for embedding in a page.
func ComponentHTML(s Settings) (template.HTML, error) {
	var b strings.Builder
	if err := Component(s).Render(&b); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}
