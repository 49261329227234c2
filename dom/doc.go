/*
Package dom provides a headless W3C-style DOM on top of golang.org/x/net/html.

Status

Early draft, API may change frequently.

Overview

A Document wraps an HTML parse tree. Nodes of the tree are handed out as
W3CNodes, which implement the interfaces of package w3cdom. Elements carry an
inline style (the style attribute, see InlineStyle) and may be asked for
their computed styles, which are resolved by the default view of the document
(see Window).

Elements may be created from markup with Document.Domify. These elements
belong to the document, but are not part of the document tree until they
are appended to a node of it:

    doc := dom.NewDocument()
    div, _ := doc.Domify(`<div style="height: 36px">`)
    doc.Body().AppendChild(div)

Tree Implementation

Styling involves operations on different trees.
We implement the styled tree on top of a general purpose tree type
(package tree), but in Go we resort to composition, thus including a
generic tree node in every node (sub-)type. The DOM itself simply wraps
the nodes of the HTML parse tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'domcss.dom'
func tracer() tracing.Trace {
	return tracing.Select("domcss.dom")
}
