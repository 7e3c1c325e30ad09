package hero

import (
	"html/template"
	"strings"
)

// Utility classes shared by the section template and the component tree.
const (
	sectionBaseClass    = "py-8 md:py-16"
	containerClass      = "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"
	rowBaseClass        = "flex flex-col lg:flex-row items-center gap-6 lg:gap-12"
	rowReverseClass     = "lg:flex-row-reverse"
	imageClusterClass   = "w-full lg:flex-1 relative"
	mainFrameClass      = "relative z-10"
	mainImageClass      = "w-full h-auto rounded-lg shadow-lg"
	accentFrameClass    = "absolute bottom-[-0.5rem] md:bottom-[-1rem] right-[-0.5rem] md:right-[-1rem] z-20 max-w-[30%] md:max-w-[40%]"
	accentImageClass    = "w-full h-auto rounded-lg shadow-md"
	contentClusterClass = "w-full lg:flex-1 max-w-lg text-center lg:text-left"
	headingClass        = "text-2xl md:text-3xl lg:text-4xl font-bold mb-4 leading-tight"
	bodyClass           = "text-base md:text-lg leading-relaxed mb-6 md:mb-8 text-gray-700"
	actionFrameClass    = "mt-4 md:mt-6"
	actionClass         = "inline-block px-6 md:px-8 py-2.5 md:py-3 bg-blue-600 text-white font-semibold rounded-md hover:bg-blue-700 hover:-translate-y-0.5 transition-all duration-200 shadow-md text-sm md:text-base"

	accentAlt = "Secondary product view"
)

// view is the layout decision both siblings render from. Building it is the only
// place where presence rules are evaluated.
type view struct {
	SectionClass string
	ColorStyle   ColorStyle
	RowClass     string
	Layout       Layout

	ShowImage      bool
	MainImage      string
	MainImageSrc   template.HTMLAttr
	MainAlt        string
	ShowAccent     bool
	SecondaryImage string
	SecondarySrc   template.HTMLAttr

	Title       string
	Description template.HTML
	ShowButton  bool
	ButtonLabel string
	ButtonLink  string

	ContainerClass      string
	ImageClusterClass   string
	MainFrameClass      string
	MainImageClass      string
	AccentFrameClass    string
	AccentImageClass    string
	AccentAlt           string
	ContentClusterClass string
	HeadingClass        string
	BodyClass           string
	ActionFrameClass    string
	ActionClass         string
}

func newView(s Settings) view {
	variant := Resolve(s.ColorStyle)
	layout := s.Layout
	if !layout.Valid() {
		layout = DefaultLayout
	}
	rowClass := rowBaseClass
	if layout.Reversed() {
		rowClass += " " + rowReverseClass
	}

	v := view{
		SectionClass: sectionBaseClass + " " + variant.Classes(),
		ColorStyle:   variant.Key,
		RowClass:     rowClass,
		Layout:       layout,

		ShowImage:  s.HasImage(),
		ShowAccent: s.HasAccent(),

		ShowButton: s.HasButton(),

		ContainerClass:      containerClass,
		ImageClusterClass:   imageClusterClass,
		MainFrameClass:      mainFrameClass,
		MainImageClass:      mainImageClass,
		AccentFrameClass:    accentFrameClass,
		AccentImageClass:    accentImageClass,
		AccentAlt:           accentAlt,
		ContentClusterClass: contentClusterClass,
		HeadingClass:        headingClass,
		BodyClass:           bodyClass,
		ActionFrameClass:    actionFrameClass,
		ActionClass:         actionClass,
	}
	if v.ShowImage {
		v.MainImage = s.MainImage
		v.MainImageSrc = srcAttr(s.MainImage)
		v.MainAlt = s.Title
	}
	if v.ShowAccent {
		v.SecondaryImage = s.SecondaryImage
		v.SecondarySrc = srcAttr(s.SecondaryImage)
	}
	if strings.TrimSpace(s.Title) != "" {
		v.Title = s.Title
	}
	if s.Description != "" {
		v.Description = template.HTML(s.Description)
	}
	if v.ShowButton {
		v.ButtonLabel = s.ButtonLabel
		v.ButtonLink = s.ButtonLink
	}
	return v
}

// srcAttr writes an image URL as a complete src attribute. Asset URLs are opaque, so
// the value is only entity-escaped, the same way the component tree writes attributes.
// A plain string here would go through html/template's URL filter and normaliser.
func srcAttr(url string) template.HTMLAttr {
	return template.HTMLAttr(`src="` + template.HTMLEscapeString(url) + `"`)
}
