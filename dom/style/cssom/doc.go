/*
Package cssom provides functionality for CSS styling.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. This package
connects stylesheets to an HTML parse tree: it decides which declarations
apply to which element and in which order they override each other. The
result is a styled tree (see package styledtree), with every node holding
the values specified for it. Computing values from specified values is
left to package css.

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

This package relies on cascadia for selector matching and specificity
(https://godoc.org/github.com/andybalholm/cascadia).
CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation based on douceur may be
found in sub-package douceuradapter.

Declarations are ordered as CSS demands: normal author declarations by
specificity and source order, then the element's inline style, then
!important author declarations, then !important inline declarations.
Later declarations win.

We will have to compromise on many features: there are no media queries,
no pseudo-elements and no user stylesheets.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'domcss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("domcss.cssom")
}
