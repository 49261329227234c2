package cssom_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/npillmayer/domcss/dom/style"
	"github.com/npillmayer/domcss/dom/style/cssom"
	"github.com/npillmayer/domcss/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domcss/dom/styledtree"
)

var myhtml = `
<html><head>
<style>
  p { margin-top: 3px; color: red; }
  #p1 { color: blue; }
</style>
</head><body>
  <p id="p1" class="x" style="margin: 1px 2px">Hello <b>World</b></p>
  <p id="p2">Second</p>
</body></html>
`

var mycss = `
p.x { color: green !important; }
p::first-line { color: yellow; }
p:bogus { color: black; }
`

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func TestCSSOMCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.cssom")
	defer teardown()
	//
	doc := parse(t, myhtml)
	sheets := douceuradapter.ExtractStyleElements(doc)
	require.Len(t, sheets, 1)
	extra, err := douceuradapter.Parse(mycss)
	require.NoError(t, err)
	om := cssom.NewCSSOM(nil, sheets[0], extra)
	// pseudo-element rule and broken selector are dropped
	assert.Equal(t, 3, om.RuleCount())
}

func TestMatchingDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.cssom")
	defer teardown()
	//
	doc := parse(t, myhtml)
	sheets := douceuradapter.ExtractStyleElements(doc)
	extra, _ := douceuradapter.Parse(mycss)
	om := cssom.NewCSSOM(douceuradapter.InlineStyles, sheets[0], extra)
	p1 := cascadia.MustCompile("#p1").MatchFirst(doc)
	decls := om.MatchingDeclarations(p1)
	keys := make([]string, len(decls))
	for i, d := range decls {
		keys[i] = d.Key + ":" + d.Value.String()
	}
	assert.Equal(t, []string{
		"margin-top:3px", "color:red", // p
		"color:blue",                  // #p1
		"margin:1px 2px",              // inline
		"color:green",                 // p.x !important
	}, keys)
	assert.True(t, decls[len(decls)-1].Important)
}

func TestSpecifiedStyles(t *testing.T) {
	doc := parse(t, myhtml)
	sheets := douceuradapter.ExtractStyleElements(doc)
	om := cssom.NewCSSOM(douceuradapter.InlineStyles, sheets[0])
	p1 := cascadia.MustCompile("#p1").MatchFirst(doc)
	pmap := om.SpecifiedStyles(p1)
	require.NotNil(t, pmap)
	for key, value := range map[string]style.Property{
		"margin-top":    "1px",
		"margin-right":  "2px",
		"margin-bottom": "1px",
		"margin-left":   "2px",
		"color":         "blue",
	} {
		p, ok := pmap.Property(key)
		assert.True(t, ok, key)
		assert.Equal(t, value, p, key)
	}
	b := cascadia.MustCompile("b").MatchFirst(doc)
	assert.Nil(t, om.SpecifiedStyles(b))
}

func TestStyledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.cssom")
	defer teardown()
	//
	doc := parse(t, myhtml)
	om := cssom.NewCSSOM(douceuradapter.InlineStyles, douceuradapter.ExtractStyleElements(doc)[0])
	root, err := om.Style(doc)
	require.NoError(t, err)
	assert.Equal(t, doc, root.HTMLNode())
	require.Equal(t, 1, root.ChildCount(), "document has a single <html> child")
	html := root.ChildNodes()[0]
	assert.Equal(t, "html", html.HTMLNode().Data)
	assert.Equal(t, 2, html.ChildCount(), "head and body, no text nodes")
	p2 := cascadia.MustCompile("#p2").MatchFirst(doc)
	sn := styledtree.Find(root, p2)
	require.NotNil(t, sn)
	assert.Equal(t, "body", sn.ParentNode().HTMLNode().Data)
	assert.Equal(t, root, sn.RootNode())
	_, err = om.Style(nil)
	assert.ErrorIs(t, err, cssom.ErrNoDocument)
}
