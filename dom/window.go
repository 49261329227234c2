package dom

import (
	"github.com/npillmayer/domcss/dom/style/css"
	"github.com/npillmayer/domcss/dom/style/cssom"
	"github.com/npillmayer/domcss/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domcss/dom/styledtree"
	"github.com/npillmayer/domcss/dom/w3cdom"
)

// Window is the default view of a document. It resolves computed styles.
type Window struct {
	doc *Document
}

// GetComputedStyle returns a snapshot of the computed styles of an element.
// The cascade is performed for the document as it is at the time of the
// call: every <style> element in document order, plus inline styles.
//
// Elements not attached to the document get an empty snapshot, where all
// known properties have the empty value. Elements of other documents get nil.
//
// Interface w3cdom.View
func (w *Window) GetComputedStyle(el w3cdom.Element) w3cdom.ComputedStyles {
	n, ok := el.(*W3CNode)
	if !ok || n == nil || n.doc != w.doc {
		tracer().Infof("cannot compute style for foreign element")
		return nil
	}
	if !n.IsAttached() {
		tracer().P("node", n.String()).Debugf("element is detached, empty computed style")
		return css.EmptyStyle{}
	}
	sn := w.StyledTree()
	if sn == nil {
		return nil
	}
	return css.NewComputedStyle(styledtree.Find(sn, n.h))
}

// StyledTree performs the cascade for the document and returns the root of
// the styled tree.
func (w *Window) StyledTree() *styledtree.StyNode {
	om := cssom.NewCSSOM(douceuradapter.InlineStyles)
	for _, sheet := range douceuradapter.ExtractStyleElements(w.doc.root) {
		om.AddStyleSheet(sheet)
	}
	root, err := om.Style(w.doc.root)
	if err != nil {
		tracer().Errorf("cannot style document: %v", err)
		return nil
	}
	return root
}

var _ w3cdom.View = &Window{}
