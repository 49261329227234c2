package dom

import (
	"strings"

	"github.com/npillmayer/domcss/dom/style"
	"github.com/npillmayer/domcss/dom/style/cssom"
	"github.com/npillmayer/domcss/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domcss/dom/w3cdom"
)

// InlineStyle is a view onto the style attribute of an element, as a
// declaration block. Every operation reads and writes the attribute,
// therefore an InlineStyle never goes stale.
//
// Property keys are hyphenated and lower-cased, so "zIndex" and "z-index"
// denote the same property.
type InlineStyle struct {
	node *W3CNode
}

func (s *InlineStyle) declarations() []cssom.Declaration {
	text, ok := s.node.Attribute("style")
	if !ok {
		return nil
	}
	decls, err := douceuradapter.ParseDeclarations(text)
	if err != nil {
		tracer().P("style", text).Errorf("cannot parse inline style: %v", err)
		return nil
	}
	return decls
}

func (s *InlineStyle) store(decls []cssom.Declaration) {
	if len(decls) == 0 {
		s.node.RemoveAttribute("style")
		return
	}
	s.node.SetAttribute("style", douceuradapter.SerializeDeclarations(decls))
}

func normalizeKey(key string) string {
	return strings.ToLower(style.Hyphenate(key))
}

// GetPropertyValue returns the value of a property, or "" if it is not set.
func (s *InlineStyle) GetPropertyValue(key string) string {
	key = normalizeKey(key)
	decls := s.declarations()
	for i := len(decls) - 1; i >= 0; i-- {
		if decls[i].Key == key {
			return decls[i].Value.String()
		}
	}
	return ""
}

// SetProperty sets the value of a property, replacing an existing value in
// place. Setting the empty string removes the property. A value may carry
// an "!important" suffix.
func (s *InlineStyle) SetProperty(key string, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		s.RemoveProperty(key)
		return
	}
	decl := cssom.Declaration{Key: normalizeKey(key)}
	if v := strings.TrimSuffix(value, "!important"); v != value {
		decl.Important = true
		value = strings.TrimSpace(v)
	}
	decl.Value = style.Property(value)
	decls := s.declarations()
	replaced := false
	for i := range decls {
		if decls[i].Key == decl.Key {
			if !replaced {
				decls[i] = decl
				replaced = true
			} else {
				decls[i].Key = "" // drop duplicates
			}
		}
	}
	if !replaced {
		decls = append(decls, decl)
	}
	s.store(compact(decls))
	tracer().P("key", decl.Key).Debugf("inline style set to %q", value)
}

// RemoveProperty removes a property and returns its previous value.
func (s *InlineStyle) RemoveProperty(key string) string {
	key = normalizeKey(key)
	prev := s.GetPropertyValue(key)
	decls := s.declarations()
	for i := range decls {
		if decls[i].Key == key {
			decls[i].Key = ""
		}
	}
	if prev != "" || len(decls) > 0 {
		s.store(compact(decls))
	}
	return prev
}

func compact(decls []cssom.Declaration) []cssom.Declaration {
	r := decls[:0]
	for _, d := range decls {
		if d.Key != "" {
			r = append(r, d)
		}
	}
	return r
}

// Length returns the number of declarations.
func (s *InlineStyle) Length() int {
	return len(s.declarations())
}

// Item returns the property key of the i-th declaration, or "".
func (s *InlineStyle) Item(i int) string {
	decls := s.declarations()
	if i < 0 || i >= len(decls) {
		return ""
	}
	return decls[i].Key
}

// CSSText returns the serialized declaration block.
func (s *InlineStyle) CSSText() string {
	return douceuradapter.SerializeDeclarations(s.declarations())
}

var _ w3cdom.StyleDeclaration = &InlineStyle{}
