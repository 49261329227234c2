/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

Every node of a styled tree links to an HTML node and carries the
property map of style values specified for it (by stylesheet rules and
the element's inline style). Package cssom creates a styled tree from an
HTML parse tree and a set of stylesheets; package css computes property
values on top of it.

Styled nodes memoize computed values, as inheritance makes every lookup
walk up the tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domcss.styledtree'.
func tracer() tracing.Trace {
	return tracing.Select("domcss.styledtree")
}
