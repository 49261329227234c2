/*
Package w3cdom defines an interface type for W3C Document Object Models.

See also https://www.w3schools.com/XML/dom_intro.asp

The style utilities of this module depend on these interfaces only; package
dom provides the implementation.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"github.com/npillmayer/domcss/dom/style"
	"golang.org/x/net/html"
)

// Node represents W3C-type Node
type Node interface {
	NodeType() html.NodeType        // type of the underlying HTML node (ElementNode, TextNode, etc.)
	NodeName() string               // node name output depends on the node's type
	NodeValue() string              // node value output depends on the node's type
	HasAttributes() bool            // check for existence of attributes
	ParentNode() Node               // get the parent node, if any
	HasChildNodes() bool            // check for existende of sub-nodes
	ChildNodes() NodeList           // get a list of all children-nodes
	Children() NodeList             // get a list of element child-nodes
	FirstChild() Node               // get the first children-node
	NextSibling() Node              // get the Node's next sibling or nil if last
	Attributes() NamedNodeMap       // get all attributes of a node
	ComputedStyles() ComputedStyles // get computed CSS styles
	TextContent() (string, error)   // get text from node and all descendents
}

// Element represents a W3C-type Element, i.e. a node carrying an inline
// style and belonging to a document.
type Element interface {
	Node
	Style() StyleDeclaration // the inline style of the element
	OwnerDocument() Document // the document the element has been created for
}

// Document represents a W3C-type Document.
type Document interface {
	DefaultView() View  // nil for documents without a browsing context
	Contains(Node) bool // is a node part of the document tree?
}

// View represents a W3C-type Window, as far as styling is concerned.
type View interface {
	GetComputedStyle(Element) ComputedStyles
}

// StyleDeclaration represents a W3C-type CSSStyleDeclaration. Property keys
// are CSS property names, e.g. "margin-top".
type StyleDeclaration interface {
	GetPropertyValue(string) string       // "" if not set
	SetProperty(key string, value string) // an empty value removes the property
	RemoveProperty(string) string         // returns the previous value
	Length() int                          // number of declarations
	Item(int) string                      // property key of the i-th declaration
	CSSText() string                      // serialized declaration block
}

// NodeList represents W3C-type NodeList
type NodeList interface {
	Length() int
	Item(int) Node
	String() string
}

// Attr represents W3C-type Attr
type Attr interface {
	Namespace() string
	Key() string
	Value() string
}

// NamedNodeMap represents w3C-type NamedNodeMap
type NamedNodeMap interface {
	Length() int
	Item(int) Attr
	GetNamedItem(string) Attr
}

// ComputedStyles represents a snapshot of computed CSS styles.
// Property reports false for property keys the style engine does not know.
type ComputedStyles interface {
	Property(string) (style.Property, bool)
	Styles() *style.PropertyMap
}

// PropertyValueAccessor is implemented by snapshots which offer a W3C-style
// getter. Unknown or unset properties yield the empty string.
type PropertyValueAccessor interface {
	GetPropertyValue(string) style.Property
}
