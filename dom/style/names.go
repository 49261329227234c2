package style

import (
	"strings"
	"unicode"
)

// Hyphenate converts a camel-cased property name into its CSS form, e.g.
//
//    Hyphenate("zIndex")           => "z-index"
//    Hyphenate("WebkitTransition") => "-webkit-transition"
//    Hyphenate("msTransform")      => "-ms-transform"
//
// Names already in CSS form are lower-cased and otherwise left unchanged.
func Hyphenate(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "ms") && len(name) > 2 && unicode.IsUpper(rune(name[2])) {
		name = "-" + name
	}
	rs := []rune(name)
	var b strings.Builder
	for i, r := range rs {
		if unicode.IsUpper(r) {
			switch {
			case i == 0 && len(rs) > 1 && unicode.IsLower(rs[1]): // vendor prefix
				b.WriteByte('-')
			case i > 0 && (unicode.IsLower(rs[i-1]) || unicode.IsDigit(rs[i-1])):
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Camelize converts a CSS property name into camel case, e.g.
//
//    Camelize("z-index")            => "zIndex"
//    Camelize("-webkit-transition") => "WebkitTransition"
//    Camelize("-ms-transform")      => "msTransform"
//
// Names already camel-cased are left unchanged.
func Camelize(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "-ms-") {
		name = name[1:]
	}
	var b strings.Builder
	upper := false
	for _, r := range name {
		if r == '-' || r == '_' || r == ' ' {
			upper = b.Len() > 0 || r == '-'
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
