/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

Besides wrapping douceur stylesheets, it parses and serializes the
declaration blocks of inline style attributes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/npillmayer/domcss/dom/style"
	"github.com/npillmayer/domcss/dom/style/cssom"
)

// tracer traces with key 'domcss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("domcss.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS source text into a stylesheet.
func Parse(source string) (*CSSStyles, error) {
	c, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("cannot append rules from stylesheet of type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet. At-rules
// (@media, @font-face, …) are not supported and left out.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping at-rule %s", r.Name)
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a key is declared more than once, the last declaration counts.
func (r Rule) Value(key string) style.Property {
	if d := r.last(key); d != nil {
		return style.Property(d.Value)
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	if d := r.last(key); d != nil {
		return d.Important
	}
	return false
}

func (r Rule) last(key string) *css.Declaration {
	decl := r.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if decl[i].Property == key {
			return decl[i]
		}
	}
	return nil
}

var _ cssom.Rule = &Rule{}

// --- Style elements --------------------------------------------------------

// ExtractStyleElements visits an HTML parse tree in document order and
// searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements which fail to parse
// are skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	walkElements(htmldoc, func(h *html.Node) {
		if h.DataAtom != atom.Style {
			return
		}
		text := textOf(h)
		if strings.TrimSpace(text) == "" {
			return
		}
		c, err := Parse(text)
		if err != nil {
			tracer().Errorf("skipping <style>: %v", err)
			return
		}
		sheets = append(sheets, c)
	})
	return sheets
}

func walkElements(h *html.Node, visit func(*html.Node)) {
	if h == nil {
		return
	}
	if h.Type == html.ElementNode {
		visit(h)
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		walkElements(ch, visit)
	}
}

func textOf(h *html.Node) string {
	var b strings.Builder
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		}
	}
	return b.String()
}

// --- Inline styles ---------------------------------------------------------

// ParseDeclarations parses a declaration block without braces, as found
// in a style attribute. Property keys are lower-cased.
func ParseDeclarations(text string) ([]cssom.Declaration, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimRight(text, "; \t\n")
	if text == "" {
		return nil, nil
	}
	// douceur drops the value of a final declaration unless it is terminated
	decls, err := parser.ParseDeclarations(text + ";")
	if err != nil {
		return nil, fmt.Errorf("parsing declarations: %w", err)
	}
	r := make([]cssom.Declaration, 0, len(decls))
	for _, d := range decls {
		if d.Property == "" {
			continue
		}
		r = append(r, cssom.Declaration{
			Key:       strings.ToLower(d.Property),
			Value:     style.Property(d.Value),
			Important: d.Important,
		})
	}
	return r, nil
}

// SerializeDeclarations is the inverse of ParseDeclarations.
func SerializeDeclarations(decls []cssom.Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		cd := css.Declaration{Property: d.Key, Value: d.Value.String(), Important: d.Important}
		parts[i] = cd.String()
	}
	return strings.Join(parts, " ")
}

// InlineStyles parses the style attribute of an element. It is intended to
// be handed to cssom.NewCSSOM. Unparsable style attributes are ignored.
func InlineStyles(h *html.Node) []cssom.Declaration {
	if h == nil {
		return nil
	}
	for _, a := range h.Attr {
		if a.Namespace == "" && a.Key == "style" {
			decls, err := ParseDeclarations(a.Val)
			if err != nil {
				tracer().P("style", a.Val).Infof("ignoring inline style: %v", err)
				return nil
			}
			return decls
		}
	}
	return nil
}

var _ cssom.InlineStyles = InlineStyles
