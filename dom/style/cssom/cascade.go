package cssom

import (
	"errors"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/npillmayer/domcss/dom/style"
	"github.com/npillmayer/domcss/dom/styledtree"
)

// ErrNoDocument is returned if a styled tree is requested for a nil parse tree.
var ErrNoDocument = errors.New("cannot style empty document")

// CSSOM holds the compiled rules of a set of stylesheets.
// Create one with NewCSSOM; the zero value has no rules and ignores
// inline styles.
type CSSOM struct {
	rules  []compiledRule
	inline InlineStyles
	count  int // number of rules seen, for source order
}

// compiledRule is a rule together with one of the (comma separated)
// selectors of its prelude.
type compiledRule struct {
	sel   cascadia.Sel
	order int
	rule  Rule
}

// NewCSSOM creates a CSSOM from stylesheets, given in source order.
// inline may be nil, in which case style attributes are ignored.
func NewCSSOM(inline InlineStyles, sheets ...StyleSheet) *CSSOM {
	cssom := &CSSOM{inline: inline}
	for _, sheet := range sheets {
		cssom.AddStyleSheet(sheet)
	}
	return cssom
}

// AddStyleSheet compiles the rules of a stylesheet and appends them after
// all rules already present. Rules with invalid selectors or with
// pseudo-elements are dropped.
func (cssom *CSSOM) AddStyleSheet(sheet StyleSheet) {
	if sheet == nil || sheet.Empty() {
		return
	}
	for _, rule := range sheet.Rules() {
		cssom.count++
		group, err := cascadia.ParseGroupWithPseudoElements(rule.Selector())
		if err != nil {
			tracer().P("selector", rule.Selector()).Infof("cssom: dropping rule: %v", err)
			continue
		}
		for _, sel := range group {
			if sel.PseudoElement() != "" {
				tracer().Debugf("cssom: pseudo-elements not supported: %s", sel.String())
				continue
			}
			cssom.rules = append(cssom.rules, compiledRule{
				sel:   sel,
				order: cssom.count,
				rule:  rule,
			})
		}
	}
}

// RuleCount returns the number of compiled selector/rule pairs.
func (cssom *CSSOM) RuleCount() int {
	return len(cssom.rules)
}

// weightedDeclaration carries everything needed to order declarations
// for the cascade.
type weightedDeclaration struct {
	Declaration
	inline bool
	spec   cascadia.Specificity
	order  int
}

// precedes returns true if wd has lower precedence than other.
func (wd weightedDeclaration) precedes(other weightedDeclaration) bool {
	if wd.Important != other.Important {
		return !wd.Important
	}
	if wd.inline != other.inline {
		return !wd.inline
	}
	if wd.spec != other.spec {
		return wd.spec.Less(other.spec)
	}
	return wd.order < other.order
}

// MatchingDeclarations returns all declarations applying to an element,
// in ascending precedence. Property keys are lower-cased.
func (cssom *CSSOM) MatchingDeclarations(h *html.Node) []Declaration {
	if h == nil || h.Type != html.ElementNode {
		return nil
	}
	var decls []weightedDeclaration
	for _, r := range cssom.rules {
		if !r.sel.Match(h) {
			continue
		}
		for _, key := range r.rule.Properties() {
			decls = append(decls, weightedDeclaration{
				Declaration: Declaration{
					Key:       strings.ToLower(key),
					Value:     r.rule.Value(key),
					Important: r.rule.IsImportant(key),
				},
				spec:  r.sel.Specificity(),
				order: r.order,
			})
		}
	}
	if cssom.inline != nil {
		for i, d := range cssom.inline(h) {
			d.Key = strings.ToLower(d.Key)
			decls = append(decls, weightedDeclaration{Declaration: d, inline: true, order: i})
		}
	}
	sort.SliceStable(decls, func(i, j int) bool {
		return decls[i].precedes(decls[j])
	})
	r := make([]Declaration, len(decls))
	for i, d := range decls {
		r[i] = d.Declaration
	}
	return r
}

// SpecifiedStyles returns the property map of values specified for an
// element, with shorthand properties split into their longhands.
// The result is nil if no declaration applies.
func (cssom *CSSOM) SpecifiedStyles(h *html.Node) *style.PropertyMap {
	decls := cssom.MatchingDeclarations(h)
	if len(decls) == 0 {
		return nil
	}
	pmap := style.NewPropertyMap()
	for _, d := range decls {
		if style.IsCompoundProperty(d.Key) {
			kvs, err := style.SplitCompoundProperty(d.Key, d.Value)
			if err != nil {
				tracer().P("key", d.Key).Infof("cssom: %v", err)
				continue
			}
			for _, kv := range kvs {
				pmap.Add(kv.Key, kv.Value)
			}
			continue
		}
		pmap.Add(d.Key, d.Value)
	}
	return pmap
}

// Style creates a styled tree for an HTML parse tree. Every element node
// and the document node (if dom is one) get a styled node; text, comment
// and doctype nodes are skipped.
func (cssom *CSSOM) Style(dom *html.Node) (*styledtree.StyNode, error) {
	if dom == nil {
		return nil, ErrNoDocument
	}
	if dom.Type != html.DocumentNode && dom.Type != html.ElementNode {
		return nil, errors.New("can only style documents and elements")
	}
	root := cssom.styleNode(dom)
	tracer().Debugf("cssom: styled tree created for <%s> with %d rules", dom.Data, len(cssom.rules))
	return root, nil
}

func (cssom *CSSOM) styleNode(h *html.Node) *styledtree.StyNode {
	sn := styledtree.Node(styledtree.NewNodeForHTMLNode(h))
	sn.SetStyles(cssom.SpecifiedStyles(h))
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		sn.AddChild(&cssom.styleNode(ch).Node)
	}
	return sn
}
