package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	parse "github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"

	"github.com/npillmayer/domcss/dom/style"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenREM     uint32 = 0x0400
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// ErrNotADimension is returned by ParseDimen for property values which are not
// CSS lengths, percentages or one of the keywords 'auto', 'inherit', 'initial'.
var ErrNotADimension = errors.New("not a CSS dimension")

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	x     float64 // factor for font-relative and percentage values
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage x
	| FontRel unit x
*/

// Auto creates a dimension of value 'auto'.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a dimension of value 'inherit'.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a dimension of value 'initial'.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n float64) DimenT {
	return DimenT{x: n, flags: dimenPercent}
}

// EM creates a CSS dimension relative to the font size of an element.
func EM(n float64) DimenT {
	return DimenT{x: n, flags: dimenEM}
}

// REM creates a CSS dimension relative to the font size of the root element.
func REM(n float64) DimenT {
	return DimenT{x: n, flags: dimenREM}
}

// IsAbsolute returns true if d is a fixed dimension.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsRelative returns true if d is a font-relative or percentage value.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask > 0
}

// Resolve makes a relative dimension absolute. Font-relative units refer to
// fontSize (em) or rootFontSize (rem), percentages to base.
// Keywords and absolute dimensions are returned unchanged.
func (d DimenT) Resolve(fontSize, rootFontSize, base dimen.DU) DimenT {
	switch d.flags & relativeMask {
	case dimenEM:
		return JustDimen(scale(fontSize, d.x))
	case dimenREM:
		return JustDimen(scale(rootFontSize, d.x))
	case dimenPercent:
		return JustDimen(scale(base, d.x/100))
	}
	return d
}

func (d DimenT) String() string {
	switch {
	case d.flags&kindMask == dimenAuto:
		return "auto"
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	case d.flags&kindMask == dimenAbsolute:
		return FormatPx(d.d)
	case d.flags&relativeMask == dimenEM:
		return formatNumber(d.x) + "em"
	case d.flags&relativeMask == dimenREM:
		return formatNumber(d.x) + "rem"
	case d.flags&relativeMask == dimenPercent:
		return formatNumber(d.x) + "%"
	}
	return "none"
}

// --- Matching --------------------------------------------------------------

// Match starts a pattern match on a dimension:
//
//     switch m := d.Match(); m {
//     case m.Just(&du): …
//     case m.Percentage(&x): …
//     }
//
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is the helper type for Match.
type Matcher struct {
	dimen DimenT
}

// IsKind matches dimensions of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags & kindMask) != dimenNone && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (m.dimen.flags&relativeMask) == (d.flags&relativeMask):
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts the value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches percentages and extracts the numeric value.
func (m *Matcher) Percentage(x *float64) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if x != nil {
			*x = m.dimen.x
		}
		return m
	}
	return nil
}

// FontRelative matches em and rem values and extracts the factor.
func (m *Matcher) FontRelative(x *float64) *Matcher {
	if f := m.dimen.flags & relativeMask; f == dimenEM || f == dimenREM {
		if x != nil {
			*x = m.dimen.x
		}
		return m
	}
	return nil
}

// --- Parsing ---------------------------------------------------------------

// pixels per unit, CSS Values and Units Level 3
var absoluteUnits = map[string]float64{
	"px": 1,
	"pt": 4.0 / 3.0,
	"pc": 16,
	"in": 96,
	"cm": 96 / 2.54,
	"mm": 96 / 25.4,
	"q":  96 / 101.6,
}

// ParseDimen parses a property value into a dimension. A bare "0" is a
// valid length; other bare numbers are not.
func ParseDimen(p style.Property) (DimenT, error) {
	tok, data, err := singleToken(p)
	if err != nil {
		return DimenT{}, err
	}
	switch tok {
	case tcss.IdentToken:
		switch strings.ToLower(data) {
		case "auto":
			return Auto(), nil
		case "inherit":
			return Inherit(), nil
		case "initial":
			return Initial(), nil
		}
	case tcss.NumberToken:
		if x, err := strconv.ParseFloat(data, 64); err == nil && x == 0 {
			return JustDimen(0), nil
		}
	case tcss.PercentageToken:
		x, err := strconv.ParseFloat(strings.TrimSuffix(data, "%"), 64)
		if err == nil {
			return Percentage(x), nil
		}
	case tcss.DimensionToken:
		num, unit := splitDimension(data)
		x, err := strconv.ParseFloat(num, 64)
		if err != nil {
			break
		}
		unit = strings.ToLower(unit)
		switch unit {
		case "em":
			return EM(x), nil
		case "rem":
			return REM(x), nil
		}
		if f, ok := absoluteUnits[unit]; ok {
			return JustDimen(Px(x * f)), nil
		}
	}
	return DimenT{}, fmt.Errorf("%w: %q", ErrNotADimension, p)
}

// ParseNumber parses a property value consisting of a single CSS number.
func ParseNumber(p style.Property) (float64, bool) {
	tok, data, err := singleToken(p)
	if err != nil || tok != tcss.NumberToken {
		return 0, false
	}
	x, err := strconv.ParseFloat(data, 64)
	return x, err == nil
}

// singleToken lexes a property value which must consist of exactly one
// token, optionally surrounded by whitespace.
func singleToken(p style.Property) (tcss.TokenType, string, error) {
	l := tcss.NewLexer(parse.NewInputString(strings.TrimSpace(p.String())))
	tok, data := l.Next()
	if tok == tcss.ErrorToken {
		return tok, "", fmt.Errorf("%w: empty value", ErrNotADimension)
	}
	text := string(data)
	for {
		next, _ := l.Next()
		if next == tcss.ErrorToken {
			break
		}
		if next != tcss.WhitespaceToken {
			return tok, text, fmt.Errorf("%w: %q has more than one component", ErrNotADimension, p)
		}
	}
	return tok, text, nil
}

func splitDimension(s string) (string, string) {
	i := 0
	for i < len(s) && strings.IndexByte("+-.0123456789", s[i]) >= 0 {
		i++
	}
	return s[:i], s[i:]
}

// --- Units -----------------------------------------------------------------

// Px converts CSS pixels to design units. A CSS pixel is 0.75 points.
func Px(x float64) dimen.DU {
	return dimen.DU(math.Round(x * 0.75 * float64(dimen.PT)))
}

// ToPx converts design units to CSS pixels.
func ToPx(d dimen.DU) float64 {
	return float64(d) / float64(dimen.PT) / 0.75
}

// FormatPx formats a dimension as a pixel value, e.g. "16px".
func FormatPx(d dimen.DU) string {
	return formatNumber(ToPx(d)) + "px"
}

func scale(d dimen.DU, x float64) dimen.DU {
	return dimen.DU(math.Round(float64(d) * x))
}

// formatNumber prints a number in shortest form, rounded to 4 decimals.
func formatNumber(x float64) string {
	x = math.Round(x*1e4) / 1e4
	if x == 0 {
		x = 0 // no "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
