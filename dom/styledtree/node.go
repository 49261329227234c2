package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"

	"github.com/npillmayer/domcss/dom/style"
	"github.com/npillmayer/domcss/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	specifiedStyles     *style.PropertyMap
	mx                  sync.Mutex
	computed            map[string]style.Property // memoized computed values
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = html
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// ParentNode returns the styled parent node, or nil for the root.
func (sn *StyNode) ParentNode() *StyNode {
	if sn == nil {
		return nil
	}
	return Node(sn.Parent())
}

// RootNode returns the root of the styled tree sn is part of.
func (sn *StyNode) RootNode() *StyNode {
	if sn == nil {
		return nil
	}
	return Node(sn.Root())
}

// ChildNodes returns the styled children of sn.
func (sn *StyNode) ChildNodes() []*StyNode {
	children := sn.Children()
	r := make([]*StyNode, len(children))
	for i, ch := range children {
		r[i] = Node(ch)
	}
	return r
}

// Styles returns the property map of specified values of a styled node.
// It may be nil.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.specifiedStyles
}

// SetStyles sets the styling properties of a styled node. Memoized
// computed values are dropped for sn; descendents are not touched.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	sn.specifiedStyles = styles
	sn.computed = nil
}

// CachedValue returns a memoized computed value for key, if present.
func (sn *StyNode) CachedValue(key string) (style.Property, bool) {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	p, ok := sn.computed[key]
	return p, ok
}

// CacheValue memoizes a computed value for key.
func (sn *StyNode) CacheValue(key string, p style.Property) {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	if sn.computed == nil {
		sn.computed = make(map[string]style.Property)
	}
	sn.computed[key] = p
}

// Find searches the styled (sub-)tree below root for the styled node
// linked to an HTML node. It returns nil if h is not part of the tree.
func Find(root *StyNode, h *html.Node) *StyNode {
	if root == nil || h == nil {
		return nil
	}
	var found *StyNode
	root.Walk(func(n *tree.Node[*StyNode]) bool {
		if found != nil {
			return false
		}
		if Node(n).htmlNode == h {
			found = Node(n)
			return false
		}
		return true
	})
	if found == nil {
		tracer().Debugf("no styled node for HTML node <%s>", h.Data)
	}
	return found
}
