package dom

// NodeIsText is a predicate to match text-nodes of a DOM.
// It is intended to be used with Walk or Filter.
func NodeIsText(n *W3CNode) bool {
	return n != nil && n.NodeName() == "#text"
}

// Walk visits n and its descendents in document order. If visit returns
// false, the children of the node just visited are skipped.
func Walk(n *W3CNode, visit func(*W3CNode) bool) {
	if n == nil || !visit(n) {
		return
	}
	for ch := n.h.FirstChild; ch != nil; ch = ch.NextSibling {
		Walk(n.wrap(ch), visit)
	}
}

// Filter collects the nodes of the sub-tree at n, which match a predicate,
// in document order.
func Filter(n *W3CNode, pred func(*W3CNode) bool) []*W3CNode {
	var r []*W3CNode
	Walk(n, func(node *W3CNode) bool {
		if pred(node) {
			r = append(r, node)
		}
		return true
	})
	return r
}
