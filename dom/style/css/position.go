package css

import (
	"strings"

	"github.com/npillmayer/domcss/dom/style"
	"github.com/npillmayer/domcss/dom/styledtree"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
	positionSticky            // CSS sticky
)

// PositionT is an option type for CSS positions.
type PositionT struct {
	offsets []PositionOffset
	kind    position
}

// PositionOffset is one of the offset properties top, right, bottom, left.
type PositionOffset struct {
	Dim DimenT
	Dir PosDir
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

// Directions for position offsets.
const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

// NormalizeOffsets normalizes offset properties (Top, Right, Bottom, Left) into
// a 4-way slice, ordered by PDir. Invalid PDir-s are silently dropped.
func NormalizeOffsets(offsets []PositionOffset) []PositionOffset {
	norm := ZeroOffsets()
	for _, o := range offsets {
		if o.Dir <= Left {
			norm[int(o.Dir)] = o
		}
	}
	return norm
}

// ZeroOffsets returns (Top, Right, Bottom, Left) = (0, 0, 0, 0)
func ZeroOffsets() []PositionOffset {
	zeros := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		zeros[i].Dir = i
	}
	return zeros
}

/*
type PositionT
	= Undefined
	| Static
	| Relative top right bottom left
	| Absolute top right bottom left
	| Fixed top right bottom left
	| Sticky top right bottom left
*/

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`, given optional offsets.
// offsets may be provied partially or none at all.
func Relative(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionRelative, offsets: NormalizeOffsets(offsets)}
}

// Absolute creates a CSS position of value `absolute`, given optional offsets.
// offsets may be provied partially or none at all.
func Absolute(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionAbsolute, offsets: NormalizeOffsets(offsets)}
}

// Fixed creates a CSS position of value `fixed`, given optional offsets.
// offsets may be provied partially or none at all.
func Fixed(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionFixed, offsets: NormalizeOffsets(offsets)}
}

// Sticky creates a CSS position of value `sticky`, given optional offsets.
func Sticky(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionSticky, offsets: NormalizeOffsets(offsets)}
}

// Position returns an optional position type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset position.
func Position(p style.Property) PositionT {
	p = style.Property(strings.ToLower(strings.TrimSpace(string(p))))
	switch p {
	case "static":
		return Static()
	case "relative":
		return Relative(nil)
	case "absolute":
		return Absolute(nil)
	case "fixed":
		return Fixed(nil)
	case "sticky":
		return Sticky(nil)
	}
	return PositionT{}
}

// ---------------------------------------------------------------------------

// Match starts a pattern match on a position.
func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

// PMatcher is the helper type for PositionT.Match.
type PMatcher struct {
	pos PositionT
}

// IsKind matches positions of the same kind as p.
func (m *PMatcher) IsKind(p PositionT) *PMatcher {
	if p.kind == m.pos.kind {
		return m
	}
	return nil
}

// Absolute matches absolute positions and extracts their offsets.
func (m *PMatcher) Absolute(o *[]PositionOffset) *PMatcher {
	return m.kindWithOffsets(positionAbsolute, o)
}

// Relative matches relative positions and extracts their offsets.
func (m *PMatcher) Relative(o *[]PositionOffset) *PMatcher {
	return m.kindWithOffsets(positionRelative, o)
}

// Fixed matches fixed positions and extracts their offsets.
func (m *PMatcher) Fixed(o *[]PositionOffset) *PMatcher {
	return m.kindWithOffsets(positionFixed, o)
}

// Sticky matches sticky positions and extracts their offsets.
func (m *PMatcher) Sticky(o *[]PositionOffset) *PMatcher {
	return m.kindWithOffsets(positionSticky, o)
}

func (m *PMatcher) kindWithOffsets(k position, o *[]PositionOffset) *PMatcher {
	if m.pos.kind != k {
		return nil
	}
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

// ---------------------------------------------------------------------------

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsAbsolute returns true if p represents a valid absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if p represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}

// IsOutOfFlow returns true for absolute and fixed positions, which take a
// box out of normal flow.
func (p PositionT) IsOutOfFlow() bool {
	return p.IsAbsolute() || p.IsFixed()
}

// --- Computing offsets -----------------------------------------------------

var offsetDirs = map[string]PosDir{
	"top":    Top,
	"right":  Right,
	"bottom": Bottom,
	"left":   Left,
}

// positionOf reads the position of a styled node, together with the offsets
// it specifies locally. Offsets are resolved to px where possible, keywords
// are dropped.
func positionOf(node *styledtree.StyNode) PositionT {
	pos := Position(GetLocalProperty(node.Styles(), "position"))
	var offsets []PositionOffset
	for key, dir := range offsetDirs {
		v := GetLocalProperty(node.Styles(), key)
		if v.IsEmpty() {
			continue
		}
		d, err := ParseDimen(computeLength(node, key, v))
		if err != nil {
			continue
		}
		switch m := d.Match(); m {
		case m.Just(nil), m.Percentage(nil):
			offsets = append(offsets, PositionOffset{Dim: d, Dir: dir})
		}
	}
	if !pos.IsUnset() && pos.kind != positionStatic {
		pos.offsets = NormalizeOffsets(offsets)
	}
	return pos
}

// computeOffset computes one of top, right, bottom or left. Offsets do not
// apply to statically positioned boxes, which report 'auto'.
func computeOffset(node *styledtree.StyNode, key string, value style.Property) style.Property {
	var offsets []PositionOffset
	switch m := positionOf(node).Match(); m {
	case m.IsKind(Static()), m.IsKind(PositionT{}):
		return "auto"
	case m.Relative(&offsets), m.Absolute(&offsets), m.Fixed(&offsets), m.Sticky(&offsets):
		if o := offsets[offsetDirs[key]]; o.Dim != (DimenT{}) {
			return style.Property(o.Dim.String())
		}
	}
	return computeLength(node, key, value)
}
