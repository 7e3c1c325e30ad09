// Package parity compares the section and component renditions of the hero.
package parity

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Zerubabel-J/HeroCraft/internal/hero"
)

// Report is the outcome of a comparison.
type Report struct {
	Equal bool     `json:"equal"`
	Diffs []string `json:"diffs,omitempty"`
}

// Check renders both siblings for s and compares them.
func Check(s hero.Settings) (Report, error) {
	section, err := hero.SectionHTML(s)
	if err != nil {
		return Report{}, fmt.Errorf("parity: render section: %w", err)
	}
	component, err := hero.ComponentHTML(s)
	if err != nil {
		return Report{}, fmt.Errorf("parity: render component: %w", err)
	}
	return Compare([]byte(section), []byte(component))
}

// Compare parses two fragments and reports structural differences. Whitespace-only
// text, attribute order and class token order are ignored.
func Compare(section, component []byte) (Report, error) {
	left, err := parse(section)
	if err != nil {
		return Report{}, fmt.Errorf("parity: parse section: %w", err)
	}
	right, err := parse(component)
	if err != nil {
		return Report{}, fmt.Errorf("parity: parse component: %w", err)
	}

	var diffs []string
	compareLists(&diffs, "", left, right)
	return Report{Equal: len(diffs) == 0, Diffs: diffs}, nil
}

type node struct {
	tag   string
	text  string
	attrs map[string]string
	kids  []*node
}

func (n *node) label() string {
	if n.tag == "" {
		return "#text"
	}
	return n.tag
}

func parse(markup []byte) ([]*node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	roots, err := html.ParseFragment(bytes.NewReader(markup), context)
	if err != nil {
		return nil, err
	}
	return convertAll(roots), nil
}

func convertAll(in []*html.Node) []*node {
	var out []*node
	for _, n := range in {
		if c := convert(n); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func convert(n *html.Node) *node {
	switch n.Type {
	case html.TextNode:
		text := strings.Join(strings.Fields(n.Data), " ")
		if text == "" {
			return nil
		}
		return &node{text: text}
	case html.ElementNode:
		out := &node{tag: n.Data, attrs: make(map[string]string, len(n.Attr))}
		for _, a := range n.Attr {
			value := a.Val
			if a.Key == "class" {
				tokens := strings.Fields(value)
				sort.Strings(tokens)
				value = strings.Join(tokens, " ")
			}
			out.attrs[a.Key] = value
		}
		var kids []*html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			kids = append(kids, c)
		}
		out.kids = convertAll(kids)
		return out
	default:
		return nil
	}
}

func compareLists(diffs *[]string, path string, left, right []*node) {
	if len(left) != len(right) {
		*diffs = append(*diffs, fmt.Sprintf("%s: section has %d children, component has %d", pathOrRoot(path), len(left), len(right)))
	}
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		compareNodes(diffs, fmt.Sprintf("%s/%s[%d]", path, left[i].label(), i), left[i], right[i])
	}
}

func compareNodes(diffs *[]string, path string, left, right *node) {
	if left.tag != right.tag {
		*diffs = append(*diffs, fmt.Sprintf("%s: section <%s>, component <%s>", path, left.label(), right.label()))
		return
	}
	if left.tag == "" {
		if left.text != right.text {
			*diffs = append(*diffs, fmt.Sprintf("%s: text %q != %q", path, left.text, right.text))
		}
		return
	}
	for _, key := range unionKeys(left.attrs, right.attrs) {
		lv, lok := left.attrs[key]
		rv, rok := right.attrs[key]
		switch {
		case !lok:
			*diffs = append(*diffs, fmt.Sprintf("%s: attribute %s only in component", path, key))
		case !rok:
			*diffs = append(*diffs, fmt.Sprintf("%s: attribute %s only in section", path, key))
		case lv != rv:
			*diffs = append(*diffs, fmt.Sprintf("%s: attribute %s %q != %q", path, key, lv, rv))
		}
	}
	compareLists(diffs, path, left.kids, right.kids)
}

func unionKeys(a, b map[string]string) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func pathOrRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
