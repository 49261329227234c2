package css

import (
	"strings"

	"github.com/npillmayer/domcss/dom/style"
	"github.com/npillmayer/domcss/dom/styledtree"
)

// ComputedStyle is a snapshot of the computed styles of a styled node.
// Values are computed on demand and memoized by the styled node.
type ComputedStyle struct {
	node *styledtree.StyNode
}

// NewComputedStyle creates a computed style snapshot for a styled node.
func NewComputedStyle(node *styledtree.StyNode) *ComputedStyle {
	return &ComputedStyle{node: node}
}

// Node returns the styled node of the snapshot.
func (cs *ComputedStyle) Node() *styledtree.StyNode {
	return cs.node
}

// Property returns the computed value for key, and false if key is not a
// known CSS property.
func (cs *ComputedStyle) Property(key string) (style.Property, bool) {
	p, err := GetProperty(cs.node, strings.ToLower(key))
	if err == ErrUnknownProperty {
		return style.NullStyle, false
	}
	return p, true
}

// GetPropertyValue returns the computed value for key, or the empty
// string for unknown properties.
func (cs *ComputedStyle) GetPropertyValue(key string) style.Property {
	p, _ := cs.Property(key)
	return p
}

// Styles returns the computed values of all known properties.
func (cs *ComputedStyle) Styles() *style.PropertyMap {
	pmap := style.NewPropertyMap()
	for _, key := range style.KnownProperties() {
		p, _ := cs.Property(key)
		pmap.Add(key, p)
	}
	return pmap
}

// EmptyStyle is a computed style snapshot without values. It stands in for
// elements which are not part of a rendered document: every recognized
// property has an empty value.
type EmptyStyle struct{}

// Property returns the empty string for recognized properties and false for
// unknown ones.
func (EmptyStyle) Property(key string) (style.Property, bool) {
	return style.NullStyle, style.IsRecognizedProperty(strings.ToLower(key))
}

// GetPropertyValue always returns the empty string.
func (EmptyStyle) GetPropertyValue(string) style.Property {
	return style.NullStyle
}

// Styles returns an empty property map.
func (EmptyStyle) Styles() *style.PropertyMap {
	return style.NewPropertyMap()
}
