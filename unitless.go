package domcss

import "github.com/npillmayer/domcss/dom/style"

// unitless holds the camel-cased names of properties which never get a unit
// appended to numeric values.
var unitless = map[string]struct{}{
	"animationIterationCount": {},
	"columnCount":             {},
	"fillOpacity":             {},
	"flexGrow":                {},
	"flexShrink":              {},
	"fontWeight":              {},
	"lineHeight":              {},
	"opacity":                 {},
	"order":                   {},
	"orphans":                 {},
	"widows":                  {},
	"zIndex":                  {},
	"zoom":                    {},
}

// IsUnitless returns true if numeric values of a property are used without
// a unit. prop may be given in CSS or in camel-case form.
func IsUnitless(prop string) bool {
	_, ok := unitless[style.Camelize(prop)]
	return ok
}

// Camelize converts a CSS property name to camel case, e.g. "z-index" to
// "zIndex".
func Camelize(prop string) string {
	return style.Camelize(prop)
}

// Hyphenate converts a camel-cased property name to CSS form, e.g. "zIndex"
// to "z-index".
func Hyphenate(prop string) string {
	return style.Hyphenate(prop)
}
