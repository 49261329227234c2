package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/npillmayer/domcss/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domcss/dom/w3cdom"
)

// Errors of DOM operations.
var (
	ErrNoElement     = errors.New("markup contains no element")
	ErrWrongDocument = errors.New("node belongs to a different document")
	ErrHierarchy     = errors.New("node cannot be inserted here")
	ErrNotAChild     = errors.New("node is not a child of this node")
	ErrNoHead        = errors.New("document has no <head>")
	ErrAttached      = errors.New("node is part of the document tree")
)

// Document is an HTML document. Create one with NewDocument or Parse.
//
// Documents are not safe for concurrent mutation.
//
// Node wrappers live as long as their document, even after their nodes have
// been removed from the tree. Long-lived documents with a lot of churn should
// Release detached sub-trees they are done with.
type Document struct {
	root  *html.Node
	view  *Window
	nodes map[*html.Node]*W3CNode // wrappers, to keep node identity
}

// Option configures a document.
type Option func(*Document)

// WithoutView creates a document without a default view, i.e. a document
// which is not rendered and therefore has no computed styles.
func WithoutView() Option {
	return func(doc *Document) {
		doc.view = nil
	}
}

const emptyDocument = `<!DOCTYPE html><html><head></head><body></body></html>`

// NewDocument creates an empty HTML document.
func NewDocument(opts ...Option) *Document {
	doc, err := Parse(strings.NewReader(emptyDocument), opts...)
	if err != nil {
		panic(err) // cannot happen for a constant document
	}
	return doc
}

// Parse reads an HTML document.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	doc := &Document{
		root:  root,
		nodes: make(map[*html.Node]*W3CNode),
	}
	doc.view = &Window{doc: doc}
	for _, opt := range opts {
		opt(doc)
	}
	return doc, nil
}

func (doc *Document) wrap(h *html.Node) *W3CNode {
	if h == nil {
		return nil
	}
	if n, ok := doc.nodes[h]; ok {
		return n
	}
	n := &W3CNode{h: h, doc: doc}
	doc.nodes[h] = n
	return n
}

// Release drops the wrappers for the nodes of a detached sub-tree. Wrappers
// held by clients remain usable, but lookups will create fresh wrappers for
// released nodes. Releasing a node which is part of the document tree is an
// error.
func (doc *Document) Release(n *W3CNode) error {
	if n == nil {
		return nil
	}
	if n.doc != doc {
		return ErrWrongDocument
	}
	if n.IsAttached() {
		return ErrAttached
	}
	var release func(*html.Node)
	release = func(h *html.Node) {
		delete(doc.nodes, h)
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			release(ch)
		}
	}
	release(n.h)
	tracer().Debugf("released wrappers of detached %s", n.NodeName())
	return nil
}

// Root returns the document node.
func (doc *Document) Root() *W3CNode {
	return doc.wrap(doc.root)
}

// DocumentElement returns the <html> element.
func (doc *Document) DocumentElement() *W3CNode {
	return doc.wrap(childElement(doc.root, atom.Html))
}

// Head returns the <head> element, if present.
func (doc *Document) Head() *W3CNode {
	return doc.wrap(childElement(childElement(doc.root, atom.Html), atom.Head))
}

// Body returns the <body> element, if present.
func (doc *Document) Body() *W3CNode {
	return doc.wrap(childElement(childElement(doc.root, atom.Html), atom.Body))
}

func childElement(h *html.Node, a atom.Atom) *html.Node {
	if h == nil {
		return nil
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode && ch.DataAtom == a {
			return ch
		}
	}
	return nil
}

// Domify parses markup and returns the first element of it. The element
// belongs to doc, but is not attached to the document tree.
func (doc *Document) Domify(markup string) (*W3CNode, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}
	for _, h := range nodes {
		if h.Type == html.ElementNode {
			return doc.wrap(h), nil
		}
	}
	return nil, ErrNoElement
}

// AddStyleSheet parses CSS source and adds it as a <style> element to the
// head of the document. The style element is returned; removing it removes
// the stylesheet.
func (doc *Document) AddStyleSheet(source string) (*W3CNode, error) {
	if _, err := douceuradapter.Parse(source); err != nil {
		return nil, err
	}
	head := doc.Head()
	if head == nil {
		return nil, ErrNoHead
	}
	styleElem := &html.Node{Type: html.ElementNode, Data: "style", DataAtom: atom.Style}
	styleElem.AppendChild(&html.Node{Type: html.TextNode, Data: source})
	s := doc.wrap(styleElem)
	if err := head.AppendChild(s); err != nil {
		return nil, err
	}
	tracer().Debugf("stylesheet added to document")
	return s, nil
}

// DefaultView returns the window presenting the document, or nil.
//
// Interface w3cdom.Document
func (doc *Document) DefaultView() w3cdom.View {
	if doc.view == nil {
		return nil
	}
	return doc.view
}

// Window returns the default view as a concrete type, or nil.
func (doc *Document) Window() *Window {
	return doc.view
}

// Contains returns true if n is part of the document tree.
//
// Interface w3cdom.Document
func (doc *Document) Contains(n w3cdom.Node) bool {
	node, ok := n.(*W3CNode)
	if !ok || node == nil || node.doc != doc {
		return false
	}
	return node.IsAttached()
}

// QuerySelector returns the first element in the document matching a CSS
// selector, or nil.
func (doc *Document) QuerySelector(selector string) (*W3CNode, error) {
	return doc.Root().QuerySelector(selector)
}

// QuerySelectorAll returns all elements in the document matching a CSS
// selector.
func (doc *Document) QuerySelectorAll(selector string) ([]*W3CNode, error) {
	return doc.Root().QuerySelectorAll(selector)
}

// Render writes the document as HTML.
func (doc *Document) Render(w io.Writer) error {
	return html.Render(w, doc.root)
}

func compileSelector(selector string) (cascadia.SelectorGroup, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	return sel, nil
}

var _ w3cdom.Document = &Document{}
