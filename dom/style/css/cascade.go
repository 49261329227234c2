package css

import (
	"errors"
	"math"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"golang.org/x/net/html"

	"github.com/npillmayer/domcss/dom/style"
	"github.com/npillmayer/domcss/dom/styledtree"
)

// ErrUnknownProperty is flagged for property keys not in the property registry.
var ErrUnknownProperty = errors.New("unknown CSS property")

// ErrNoStyledNode is flagged if a property is requested for a nil node.
var ErrNoStyledNode = errors.New("no styled node")

// GetProperty gets the computed value of a property. If the property is not
// set locally on the style node and the property is inheritable, the value
// of the parent element is used, otherwise the user-agent default.
// Shorthands like margin are serialized from their longhands.
//
// Computed values are memoized in the styled node.
func GetProperty(node *styledtree.StyNode, key string) (style.Property, error) {
	if node == nil {
		return style.NullStyle, ErrNoStyledNode
	}
	key = strings.ToLower(key)
	if style.IsCompoundProperty(key) {
		return shorthandValue(node, key), nil
	}
	if !style.IsKnownProperty(key) {
		return style.NullStyle, ErrUnknownProperty
	}
	if p, ok := node.CachedValue(key); ok {
		return p, nil
	}
	p := computedValue(node, key)
	tracer().P("key", key).Debugf("computed value = %q", p)
	node.CacheValue(key, p)
	return p, nil
}

// shorthandValue serializes a four-sided shorthand from the computed values
// of its longhands, using the shortest form which round-trips:
// "1px 2px 1px 2px" becomes "1px 2px".
func shorthandValue(node *styledtree.StyNode, key string) style.Property {
	kv, err := style.SplitCompoundProperty(key, "0")
	if err != nil || len(kv) != 4 {
		return style.NullStyle
	}
	vals := make([]string, 4)
	for i := range kv {
		p, _ := GetProperty(node, kv[i].Key)
		if p.IsEmpty() {
			return style.NullStyle
		}
		vals[i] = p.String()
	}
	if vals[3] == vals[1] {
		vals = vals[:3]
		if vals[2] == vals[0] {
			vals = vals[:2]
			if vals[1] == vals[0] {
				vals = vals[:1]
			}
		}
	}
	return style.Property(strings.Join(vals, " "))
}

// GetCascadedProperty gets the value of a property from the nearest element
// up the ancestor chain which specifies it. No computation is performed.
// If no ancestor specifies key, the user-agent default for node is returned.
func GetCascadedProperty(node *styledtree.StyNode, key string) style.Property {
	for n := node; n != nil; n = parentElement(n) {
		if p := GetLocalProperty(n.Styles(), key); !p.IsEmpty() {
			return p
		}
	}
	if node == nil {
		return style.InitialValue(key)
	}
	return style.GetUserAgentDefaultProperty(node.HTMLNode(), key)
}

// GetLocalProperty returns a style property value, if it is set locally
// for a styled node's property map. No cascading is performed.
func GetLocalProperty(pmap *style.PropertyMap, key string) style.Property {
	groupname := style.GroupNameFromPropertyKey(key)
	group := pmap.Group(groupname)
	if group == nil {
		return style.NullStyle
	}
	p, _ := group.Get(key)
	return p
}

func computedValue(node *styledtree.StyNode, key string) style.Property {
	specified := GetLocalProperty(node.Styles(), key)
	parent := parentElement(node)
	var p style.Property
	switch {
	case specified == "unset" && style.IsCascading(key), specified.IsInherit():
		p = inherited(parent, key)
	case specified.IsEmpty() && style.IsCascading(key):
		if parent == nil {
			p = computeValue(node, key, style.GetUserAgentDefaultProperty(node.HTMLNode(), key))
		} else {
			p = inherited(parent, key)
		}
	case specified.IsEmpty():
		p = computeValue(node, key, style.GetUserAgentDefaultProperty(node.HTMLNode(), key))
	case specified == "unset", specified.IsInitial():
		p = computeValue(node, key, style.InitialValue(key))
	default:
		p = computeValue(node, key, specified)
	}
	switch key {
	case "display":
		if p != "none" && (parent == nil || isFloated(node) || outOfFlow(node)) {
			p = Blockify(p)
		}
	case "float":
		if outOfFlow(node) {
			p = "none"
		}
	}
	return p
}

func inherited(parent *styledtree.StyNode, key string) style.Property {
	if parent == nil {
		return style.InitialValue(key)
	}
	p, _ := GetProperty(parent, key)
	return p
}

// parentElement returns the styled node of the parent element. A document
// node does not count as a parent element.
func parentElement(node *styledtree.StyNode) *styledtree.StyNode {
	p := node.ParentNode()
	if p == nil || p.HTMLNode() == nil || p.HTMLNode().Type != html.ElementNode {
		return nil
	}
	return p
}

func rootElement(node *styledtree.StyNode) *styledtree.StyNode {
	for {
		p := parentElement(node)
		if p == nil {
			return node
		}
		node = p
	}
}

func isFloated(node *styledtree.StyNode) bool {
	f := GetLocalProperty(node.Styles(), "float")
	return f == "left" || f == "right" || f == "inline-start" || f == "inline-end"
}

func outOfFlow(node *styledtree.StyNode) bool {
	return Position(GetLocalProperty(node.Styles(), "position")).IsOutOfFlow()
}

// --- Computing values ------------------------------------------------------

// mediumFontSize is the font size for keyword 'medium'.
const mediumFontSize = 16

var fontSizeKeywords = map[style.Property]float64{
	"xx-small":  9,
	"x-small":   10,
	"small":     13,
	"medium":    16,
	"large":     18,
	"x-large":   24,
	"xx-large":  32,
	"xxx-large": 48,
}

// nonNegative lists length properties for which negative values are
// clamped to zero.
var nonNegative = map[string]bool{
	"width": true, "height": true,
	"min-width": true, "min-height": true,
	"max-width": true, "max-height": true,
	"padding-top": true, "padding-right": true,
	"padding-bottom": true, "padding-left": true,
	"column-gap": true, "column-width": true,
	"flex-basis": true,
}

var borderWidthKeywords = map[style.Property]float64{
	"thin":   1,
	"medium": 3,
	"thick":  5,
}

// computeValue turns a cascaded value into a computed value.
func computeValue(node *styledtree.StyNode, key string, value style.Property) style.Property {
	switch key {
	case "font-size":
		return style.Property(FormatPx(computeFontSize(node, value)))
	case "font-weight":
		return computeFontWeight(node, value)
	case "opacity", "fill-opacity", "stroke-opacity":
		return computeAlpha(value)
	case "z-index", "orphans", "widows", "column-count", "zoom",
		"flex-grow", "flex-shrink", "order", "animation-iteration-count":
		if x, ok := ParseNumber(value); ok {
			return style.Property(formatNumber(x))
		}
		return value
	case "line-height":
		if x, ok := ParseNumber(value); ok {
			return style.Property(formatNumber(x))
		}
		if d, err := ParseDimen(value); err == nil {
			own := fontSizeOf(node)
			// percentages refer to the element's own font size
			return style.Property(d.Resolve(own, rootFontSize(node), own).String())
		}
		return value
	case "top", "right", "bottom", "left":
		return computeOffset(node, key, value)
	case "border-top-width", "border-right-width", "border-bottom-width", "border-left-width":
		side := strings.TrimSuffix(key, "-width")
		if bs, _ := GetProperty(node, side+"-style"); bs == "none" || bs == "hidden" {
			return "0px"
		}
		if x, ok := borderWidthKeywords[value]; ok {
			return style.Property(FormatPx(Px(x)))
		}
	}
	return computeLength(node, key, value)
}

// computeLength converts absolute and font-relative lengths to px. Other
// values are returned unchanged.
func computeLength(node *styledtree.StyNode, key string, value style.Property) style.Property {
	d, err := ParseDimen(value)
	if err != nil {
		return value
	}
	var x float64
	switch m := d.Match(); m {
	case m.FontRelative(&x):
		d = d.Resolve(fontSizeOf(node), rootFontSize(node), 0)
	case m.Just(nil):
	default:
		return value // percentages and keywords need layout
	}
	var du dimen.DU
	d.Match().Just(&du)
	if du < 0 && nonNegative[key] {
		du = 0
	}
	return style.Property(FormatPx(du))
}

func computeFontSize(node *styledtree.StyNode, value style.Property) dimen.DU {
	parentSize := Px(mediumFontSize)
	parent := parentElement(node)
	if parent != nil {
		parentSize = fontSizeOf(parent)
	}
	if x, ok := fontSizeKeywords[value]; ok {
		return Px(x)
	}
	switch value {
	case "smaller":
		return scale(parentSize, 1/1.2)
	case "larger":
		return scale(parentSize, 1.2)
	}
	d, err := ParseDimen(value)
	if err != nil {
		tracer().P("font-size", value).Infof("invalid font size, using parent's")
		return parentSize
	}
	var x float64
	var du dimen.DU
	switch m := d.Match(); m {
	case m.Just(&du):
		if du < 0 {
			return parentSize
		}
		return du
	case m.FontRelative(&x), m.Percentage(&x):
		root := Px(mediumFontSize)
		if parent != nil {
			root = fontSizeOf(rootElement(node))
		}
		d.Resolve(parentSize, root, parentSize).Match().Just(&du)
		return du
	}
	return parentSize
}

// fontSizeOf returns the computed font size of a node in design units.
func fontSizeOf(node *styledtree.StyNode) dimen.DU {
	p, _ := GetProperty(node, "font-size")
	d, err := ParseDimen(p)
	if err != nil {
		return Px(mediumFontSize)
	}
	var du dimen.DU
	if d.Match().Just(&du) == nil {
		return Px(mediumFontSize)
	}
	return du
}

func rootFontSize(node *styledtree.StyNode) dimen.DU {
	return fontSizeOf(rootElement(node))
}

func computeAlpha(value style.Property) style.Property {
	x, ok := ParseNumber(value)
	if !ok {
		d, err := ParseDimen(value)
		if err != nil || d.Match().Percentage(&x) == nil {
			return value
		}
		x /= 100
	}
	x = math.Max(0, math.Min(1, x))
	return style.Property(formatNumber(x))
}

func computeFontWeight(node *styledtree.StyNode, value style.Property) style.Property {
	switch value {
	case "normal":
		return "400"
	case "bold":
		return "700"
	case "bolder", "lighter":
		w := 400.0
		if parent := parentElement(node); parent != nil {
			p, _ := GetProperty(parent, "font-weight")
			if x, ok := ParseNumber(p); ok {
				w = x
			}
		}
		if value == "bolder" {
			switch {
			case w < 400:
				w = 400
			case w < 600:
				w = 700
			default:
				w = 900
			}
		} else {
			switch {
			case w < 600:
				w = 100
			case w < 800:
				w = 400
			default:
				w = 700
			}
		}
		return style.Property(formatNumber(w))
	}
	if x, ok := ParseNumber(value); ok {
		return style.Property(formatNumber(x))
	}
	return value
}
