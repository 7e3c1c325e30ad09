package hero

// ColorStyle is a key into the variant table.
type ColorStyle string

const (
	Background1 ColorStyle = "background-1"
	Background2 ColorStyle = "background-2"
	Background3 ColorStyle = "background-3"
	Accent1     ColorStyle = "accent-1"
	Accent2     ColorStyle = "accent-2"

	DefaultColorStyle = Background1
)

// Variant is the surface and text tone applied to the outer section.
type Variant struct {
	Key     ColorStyle
	Label   string
	Surface string
	Text    string
}

// Classes returns the utility classes for the variant.
func (v Variant) Classes() string {
	return v.Surface + " " + v.Text
}

// variantOrder is also the option order of the schema select.
var variantOrder = []Variant{
	{Key: Background1, Label: "Background 1", Surface: "bg-gray-50", Text: "text-gray-900"},
	{Key: Background2, Label: "Background 2", Surface: "bg-white", Text: "text-gray-900"},
	{Key: Background3, Label: "Background 3", Surface: "bg-gray-100", Text: "text-gray-900"},
	{Key: Accent1, Label: "Accent 1", Surface: "bg-blue-50", Text: "text-blue-900"},
	{Key: Accent2, Label: "Accent 2", Surface: "bg-green-50", Text: "text-green-900"},
}

var variants = func() map[ColorStyle]Variant {
	m := make(map[ColorStyle]Variant, len(variantOrder))
	for _, v := range variantOrder {
		m[v.Key] = v
	}
	return m
}()

// Resolve returns the variant for style. Unknown keys, including the empty one,
// resolve to the background-1 entry.
func Resolve(style ColorStyle) Variant {
	if v, ok := variants[style]; ok {
		return v
	}
	return variants[DefaultColorStyle]
}

// Variants lists the table in schema order.
func Variants() []Variant {
	out := make([]Variant, len(variantOrder))
	copy(out, variantOrder)
	return out
}
