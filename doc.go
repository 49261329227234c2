/*
Package domcss reads and writes CSS style properties of DOM elements.

Apply sets a mapping of properties on an element's inline style. Numbers
get a "px" unit appended, except for unit-less properties like opacity or
z-index:

    domcss.Apply(el, domcss.Props{"top": 5, "zIndex": 10, "display": "block"})

Get resolves the computed value of a property:

    h, ok := domcss.Get(el, "height")

For elements which are not part of their document's tree, the computed
style has no values. In this case the value is taken from the inline style,
through a Hook if one is registered for the property.

Elements are accessed through the interfaces of package dom/w3cdom only;
package dom provides a headless implementation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domcss

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domcss'.
func tracer() tracing.Trace {
	return tracing.Select("domcss")
}
