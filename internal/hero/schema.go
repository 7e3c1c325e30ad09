package hero

import (
	"encoding/json"
	"strings"
)

// Setting ids shared by the schema, the settings store and preset files.
const (
	SettingTitle          = "title"
	SettingDescription    = "description"
	SettingMainImage      = "main_image"
	SettingSecondaryImage = "secondary_image"
	SettingButtonLabel    = "button_label"
	SettingButtonLink     = "button_link"
	SettingColorStyle     = "color_style"
	SettingLayout         = "layout"
)

// Authoring defaults offered when a merchant adds the section from the theme editor.
const (
	PresetTitle       = "Amazing Product"
	PresetDescription = "<p>Discover our incredible product that will transform your experience. Built with premium materials and innovative design.</p>"
	PresetButtonLabel = "Shop Now"
	PresetButtonLink  = "#"
)

// SectionSchema describes the section to a theme editor.
type SectionSchema struct {
	Name     string          `json:"name"`
	Tag      string          `json:"tag"`
	Class    string          `json:"class"`
	Settings []SettingSchema `json:"settings"`
	Presets  []SchemaPreset  `json:"presets"`
}

// SettingSchema is one configurable field.
type SettingSchema struct {
	Type    string         `json:"type"`
	ID      string         `json:"id"`
	Label   string         `json:"label"`
	Default string         `json:"default,omitempty"`
	Options []SelectOption `json:"options,omitempty"`
}

// SelectOption is a choice of a select setting.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SchemaPreset is a named starting configuration.
type SchemaPreset struct {
	Name     string            `json:"name"`
	Settings map[string]string `json:"settings,omitempty"`
}

// Schema returns the section schema. Select options come from the variant table.
func Schema() SectionSchema {
	colorOptions := make([]SelectOption, 0, len(variantOrder))
	for _, v := range variantOrder {
		colorOptions = append(colorOptions, SelectOption{Value: string(v.Key), Label: v.Label})
	}
	return SectionSchema{
		Name:  "Product Hero",
		Tag:   "section",
		Class: "product-hero",
		Settings: []SettingSchema{
			{Type: "text", ID: SettingTitle, Label: "Title", Default: PresetTitle},
			{Type: "richtext", ID: SettingDescription, Label: "Description", Default: PresetDescription},
			{Type: "image_picker", ID: SettingMainImage, Label: "Main image"},
			{Type: "image_picker", ID: SettingSecondaryImage, Label: "Secondary image"},
			{Type: "text", ID: SettingButtonLabel, Label: "Button label", Default: PresetButtonLabel},
			{Type: "url", ID: SettingButtonLink, Label: "Button link", Default: PresetButtonLink},
			{Type: "select", ID: SettingColorStyle, Label: "Color scheme", Default: string(DefaultColorStyle), Options: colorOptions},
			{Type: "select", ID: SettingLayout, Label: "Layout", Default: string(DefaultLayout), Options: []SelectOption{
				{Value: string(LayoutImageLeft), Label: "Image left"},
				{Value: string(LayoutImageRight), Label: "Image right"},
			}},
		},
		Presets: []SchemaPreset{{
			Name: "Product Hero",
			Settings: map[string]string{
				SettingTitle:       PresetTitle,
				SettingDescription: PresetDescription,
				SettingButtonLabel: PresetButtonLabel,
				SettingButtonLink:  PresetButtonLink,
			},
		}},
	}
}

// JSON renders the schema as indented JSON.
func (s SectionSchema) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Setting looks up a setting definition by id.
func (s SectionSchema) Setting(id string) (SettingSchema, bool) {
	for _, setting := range s.Settings {
		if setting.ID == id {
			return setting, true
		}
	}
	return SettingSchema{}, false
}

// PresetSettings returns the settings a freshly added section starts with.
func PresetSettings() Settings {
	preset := Schema().Presets[0]
	values := make(map[string]any, len(preset.Settings))
	for k, v := range preset.Settings {
		values[k] = v
	}
	return FromValues(values)
}

// FromValues reads a theme settings store payload. Unknown keys and non-string values
// are treated as absent. The store contract is that description markup is trusted.
func FromValues(values map[string]any) Settings {
	str := func(key string) string {
		v, ok := values[key].(string)
		if !ok {
			return ""
		}
		return strings.TrimSpace(v)
	}
	description, _ := values[SettingDescription].(string)
	return Settings{
		Title:          str(SettingTitle),
		Description:    TrustedHTML(description),
		MainImage:      str(SettingMainImage),
		SecondaryImage: str(SettingSecondaryImage),
		ButtonLabel:    str(SettingButtonLabel),
		ButtonLink:     str(SettingButtonLink),
		ColorStyle:     ColorStyle(str(SettingColorStyle)),
		Layout:         Layout(str(SettingLayout)),
	}.WithDefaults()
}

// Values is the inverse of FromValues; empty fields are omitted.
func (s Settings) Values() map[string]any {
	out := map[string]any{}
	put := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	put(SettingTitle, s.Title)
	put(SettingDescription, string(s.Description))
	put(SettingMainImage, s.MainImage)
	put(SettingSecondaryImage, s.SecondaryImage)
	put(SettingButtonLabel, s.ButtonLabel)
	put(SettingButtonLink, s.ButtonLink)
	put(SettingColorStyle, string(s.ColorStyle))
	put(SettingLayout, string(s.Layout))
	return out
}
