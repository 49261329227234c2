package domcss

import (
	"strings"

	"github.com/npillmayer/domcss/dom/w3cdom"
)

// Resolver resolves computed values of CSS properties, using a table of
// hooks for elements not attached to their document.
// A Resolver is safe for concurrent use.
type Resolver struct {
	hooks map[string]Hook
}

// NewResolver creates a resolver with a table of hooks. Keys are property
// names, in CSS or in camel-case form. The table is copied.
func NewResolver(hooks map[string]Hook) *Resolver {
	r := &Resolver{hooks: make(map[string]Hook, len(hooks))}
	for k, h := range hooks {
		if h != nil {
			r.hooks[normalize(k)] = h
		}
	}
	return r
}

var defaultResolver = NewResolver(DefaultHooks())

func normalize(prop string) string {
	return strings.ToLower(Hyphenate(prop))
}

// Styles returns the computed styles of el, as resolved by the default view
// of el's document. It returns nil if el has no owner document or the
// document has no view.
func Styles(el w3cdom.Element) w3cdom.ComputedStyles {
	if el == nil {
		return nil
	}
	doc := el.OwnerDocument()
	if doc == nil {
		return nil
	}
	view := doc.DefaultView()
	if view == nil {
		return nil
	}
	return view.GetComputedStyle(el)
}

// Computed resolves the computed value of a property of el, using the
// default hooks. See Resolver.Computed.
func Computed(el w3cdom.Element, prop string, precomputed w3cdom.ComputedStyles) (string, bool) {
	return defaultResolver.Computed(el, prop, precomputed)
}

// Get resolves the computed value of a property of el. It returns false if
// the property is not recognized or no computed style is available.
func Get(el w3cdom.Element, prop string) (string, bool) {
	return defaultResolver.Computed(el, prop, nil)
}

// Computed resolves the computed value of a property of el. precomputed is
// an optional snapshot of el's computed styles; if it is nil, the snapshot
// is taken with Styles(el).
//
// If the snapshot yields an empty value and el is not attached to its
// document, the value is read from el's inline style, through the hook for
// prop if there is one.
//
// Computed returns false if there is no snapshot or the property is not
// recognized.
func (r *Resolver) Computed(el w3cdom.Element, prop string, precomputed w3cdom.ComputedStyles) (string, bool) {
	if el == nil {
		return "", false
	}
	cs := precomputed
	if cs == nil {
		cs = Styles(el)
	}
	if cs == nil {
		tracer().P("prop", prop).Debugf("no computed style available")
		return "", false
	}
	key := normalize(prop)
	var value string
	if acc, ok := cs.(w3cdom.PropertyValueAccessor); ok {
		value = acc.GetPropertyValue(key).String()
	}
	if value == "" {
		p, known := cs.Property(key)
		if !known {
			tracer().P("prop", key).Debugf("property not recognized")
			return "", false
		}
		value = p.String()
	}
	if value == "" && !attached(el) {
		tracer().P("prop", key).Debugf("element not within document, try finding from style attribute")
		value = r.inline(el, key, "")
	}
	tracer().P("prop", key).Debugf("computed value = %q", value)
	return value, true
}

func (r *Resolver) inline(el w3cdom.Element, key string, extra string) string {
	if hook, ok := r.hooks[key]; ok {
		if v, ok := hook.Get(el, false, extra); ok {
			tracer().Debugf("get hook defined, returning %q", v)
			return v
		}
	}
	s := el.Style()
	if s == nil {
		return ""
	}
	return s.GetPropertyValue(key)
}

func attached(el w3cdom.Element) bool {
	doc := el.OwnerDocument()
	return doc != nil && doc.Contains(el)
}
