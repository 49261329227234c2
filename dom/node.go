package dom

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/npillmayer/domcss/dom/w3cdom"
)

// W3CNode is a node of a Document, wrapping a node of the HTML parse tree.
// It implements w3cdom.Node and w3cdom.Element.
type W3CNode struct {
	h   *html.Node
	doc *Document
}

func (n *W3CNode) wrap(h *html.Node) *W3CNode {
	return n.doc.wrap(h)
}

// HTMLNode returns the underlying node of the HTML parse tree.
func (n *W3CNode) HTMLNode() *html.Node {
	return n.h
}

// Document returns the document n belongs to.
func (n *W3CNode) Document() *Document {
	return n.doc
}

// NodeType returns the type of the underlying HTML node.
func (n *W3CNode) NodeType() html.NodeType {
	return n.h.Type
}

// NodeName returns the tag name for elements and "#text", "#document"
// or "#comment" for other nodes.
func (n *W3CNode) NodeName() string {
	switch n.h.Type {
	case html.DocumentNode:
		return "#document"
	case html.ElementNode:
		return n.h.Data
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return "#doctype"
	}
	return "<unknown>"
}

// NodeValue returns the character data of text and comment nodes, and ""
// for all other nodes.
func (n *W3CNode) NodeValue() string {
	if n.h.Type == html.TextNode || n.h.Type == html.CommentNode {
		return n.h.Data
	}
	return ""
}

// HasAttributes is a predicate for elements with attributes.
func (n *W3CNode) HasAttributes() bool {
	return len(n.h.Attr) > 0
}

// ParentNode returns the parent node, if any.
func (n *W3CNode) ParentNode() w3cdom.Node {
	if p := n.Parent(); p != nil {
		return p
	}
	return nil
}

// Parent returns the parent node, if any.
func (n *W3CNode) Parent() *W3CNode {
	return n.wrap(n.h.Parent)
}

// HasChildNodes is a predicate for nodes with children.
func (n *W3CNode) HasChildNodes() bool {
	return n.h.FirstChild != nil
}

// ChildNodes returns all children of n.
func (n *W3CNode) ChildNodes() w3cdom.NodeList {
	var list nodeList
	for ch := n.h.FirstChild; ch != nil; ch = ch.NextSibling {
		list = append(list, n.wrap(ch))
	}
	return list
}

// Children returns the element children of n.
func (n *W3CNode) Children() w3cdom.NodeList {
	var list nodeList
	for ch := n.h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			list = append(list, n.wrap(ch))
		}
	}
	return list
}

// FirstChild returns the first child node, if any.
func (n *W3CNode) FirstChild() w3cdom.Node {
	if n.h.FirstChild == nil {
		return nil
	}
	return n.wrap(n.h.FirstChild)
}

// NextSibling returns the next sibling, or nil if n is the last child.
func (n *W3CNode) NextSibling() w3cdom.Node {
	if n.h.NextSibling == nil {
		return nil
	}
	return n.wrap(n.h.NextSibling)
}

// Attributes returns the attributes of an element.
func (n *W3CNode) Attributes() w3cdom.NamedNodeMap {
	return attrMap(n.h.Attr)
}

// TextContent returns the text of n and all its descendents.
func (n *W3CNode) TextContent() (string, error) {
	if NodeIsText(n) {
		return n.h.Data, nil
	}
	var b strings.Builder
	for _, t := range Filter(n, NodeIsText) {
		b.WriteString(t.h.Data)
	}
	return b.String(), nil
}

// SetTextContent replaces all children of n by a single text node.
// An empty string just removes all children.
func (n *W3CNode) SetTextContent(text string) {
	if NodeIsText(n) {
		n.h.Data = text
		return
	}
	for ch := n.h.FirstChild; ch != nil; ch = n.h.FirstChild {
		n.h.RemoveChild(ch)
	}
	if text != "" {
		n.h.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// ComputedStyles returns the computed styles of an element, as resolved by
// the default view of its document. For documents without a view, nil is
// returned.
func (n *W3CNode) ComputedStyles() w3cdom.ComputedStyles {
	if n == nil || n.doc == nil || n.doc.view == nil {
		return nil
	}
	return n.doc.view.GetComputedStyle(n)
}

// Style returns the inline style of an element, or nil for a nil node.
//
// Interface w3cdom.Element
func (n *W3CNode) Style() w3cdom.StyleDeclaration {
	if n == nil {
		return nil
	}
	return n.InlineStyle()
}

// InlineStyle returns the inline style of an element as a concrete type.
func (n *W3CNode) InlineStyle() *InlineStyle {
	if n == nil {
		return nil
	}
	return &InlineStyle{node: n}
}

// OwnerDocument returns the document n belongs to.
//
// Interface w3cdom.Element
func (n *W3CNode) OwnerDocument() w3cdom.Document {
	if n == nil || n.doc == nil {
		return nil
	}
	return n.doc
}

// IsAttached returns true if n is part of its document's tree.
func (n *W3CNode) IsAttached() bool {
	if n == nil {
		return false
	}
	h := n.h
	for h.Parent != nil {
		h = h.Parent
	}
	return h == n.doc.root
}

// --- Tree mutation ---------------------------------------------------------

// AppendChild appends ch as the last child of n. If ch is already part of a
// tree, it is moved.
func (n *W3CNode) AppendChild(ch *W3CNode) error {
	if ch == nil {
		return ErrHierarchy
	}
	if ch.doc != n.doc {
		return ErrWrongDocument
	}
	for h := n.h; h != nil; h = h.Parent {
		if h == ch.h {
			return fmt.Errorf("%w: cannot append an ancestor", ErrHierarchy)
		}
	}
	if n.h.Type != html.ElementNode && n.h.Type != html.DocumentNode {
		return fmt.Errorf("%w: %s cannot have children", ErrHierarchy, n.NodeName())
	}
	if ch.h.Parent != nil {
		ch.h.Parent.RemoveChild(ch.h)
	}
	n.h.AppendChild(ch.h)
	return nil
}

// RemoveChild removes a child node from n. The child stays in the
// document, detached from the tree.
func (n *W3CNode) RemoveChild(ch *W3CNode) error {
	if ch == nil || ch.h.Parent != n.h {
		return ErrNotAChild
	}
	n.h.RemoveChild(ch.h)
	return nil
}

// --- Attributes ------------------------------------------------------------

// Attribute returns the value of an attribute and true, if it is present.
func (n *W3CNode) Attribute(key string) (string, bool) {
	for _, a := range n.h.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets an attribute, replacing an existing value.
func (n *W3CNode) SetAttribute(key, value string) {
	for i, a := range n.h.Attr {
		if a.Namespace == "" && a.Key == key {
			n.h.Attr[i].Val = value
			return
		}
	}
	n.h.Attr = append(n.h.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttribute removes an attribute, if present.
func (n *W3CNode) RemoveAttribute(key string) {
	for i, a := range n.h.Attr {
		if a.Namespace == "" && a.Key == key {
			n.h.Attr = append(n.h.Attr[:i], n.h.Attr[i+1:]...)
			return
		}
	}
}

// --- Queries ---------------------------------------------------------------

// QuerySelector returns the first descendent element of n matching a CSS
// selector, or nil.
func (n *W3CNode) QuerySelector(selector string) (*W3CNode, error) {
	sel, err := compileSelector(selector)
	if err != nil {
		return nil, err
	}
	return n.wrap(cascadia.Query(n.h, sel)), nil
}

// QuerySelectorAll returns all descendent elements of n matching a CSS
// selector, in document order.
func (n *W3CNode) QuerySelectorAll(selector string) ([]*W3CNode, error) {
	sel, err := compileSelector(selector)
	if err != nil {
		return nil, err
	}
	matches := cascadia.QueryAll(n.h, sel)
	r := make([]*W3CNode, len(matches))
	for i, h := range matches {
		r[i] = n.wrap(h)
	}
	return r, nil
}

func (n *W3CNode) String() string {
	if n.h.Type == html.ElementNode {
		return "<" + n.h.Data + ">"
	}
	return n.NodeName()
}

var _ w3cdom.Element = &W3CNode{}

// --- Node lists and attributes ---------------------------------------------

type nodeList []*W3CNode

func (l nodeList) Length() int {
	return len(l)
}

func (l nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

func (l nodeList) String() string {
	names := make([]string, len(l))
	for i, n := range l {
		names[i] = n.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

type attrMap []html.Attribute

func (m attrMap) Length() int {
	return len(m)
}

func (m attrMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(m) {
		return nil
	}
	return attr{m[i]}
}

func (m attrMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range m {
		if a.Key == key {
			return attr{a}
		}
	}
	return nil
}

type attr struct {
	a html.Attribute
}

func (a attr) Namespace() string { return a.a.Namespace }
func (a attr) Key() string       { return a.a.Key }
func (a attr) Value() string     { return a.a.Val }
