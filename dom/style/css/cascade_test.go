package css_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/npillmayer/domcss/dom/style"
	"github.com/npillmayer/domcss/dom/style/css"
	"github.com/npillmayer/domcss/dom/style/cssom"
	"github.com/npillmayer/domcss/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domcss/dom/styledtree"
)

var fontSizeSheet = `
#font-size { font-size: 16px; }
#font-size .em { font-size: 2em; }
#font-size .prct { font-size: 150%; }
`

// buildStyledTree parses markup, styles it with sheet and returns the styled
// tree together with a finder for styled nodes.
func buildStyledTree(t *testing.T, markup, sheet string) func(string) *styledtree.StyNode {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	c, err := douceuradapter.Parse(sheet)
	require.NoError(t, err)
	root, err := cssom.NewCSSOM(douceuradapter.InlineStyles, c).Style(doc)
	require.NoError(t, err)
	return func(selector string) *styledtree.StyNode {
		h := cascadia.MustCompile(selector).MatchFirst(doc)
		require.NotNil(t, h, "no element for %s", selector)
		sn := styledtree.Find(root, h)
		require.NotNil(t, sn, "no styled node for %s", selector)
		return sn
	}
}

func computed(t *testing.T, sn *styledtree.StyNode, key string) string {
	t.Helper()
	p, err := css.GetProperty(sn, key)
	require.NoError(t, err)
	return p.String()
}

func TestCascadingFontSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.css")
	defer teardown()
	//
	find := buildStyledTree(t, `<div id="font-size"><div id="child"></div>
		<div class="em"><p>x</p></div><div class="prct"></div></div>`, fontSizeSheet)
	assert.Equal(t, "16px", computed(t, find("#font-size"), "font-size"))
	assert.Equal(t, "16px", computed(t, find("#child"), "font-size"))
	assert.Equal(t, "32px", computed(t, find(".em"), "font-size"))
	assert.Equal(t, "32px", computed(t, find(".em p"), "font-size"), "inherited as computed value")
	assert.Equal(t, "24px", computed(t, find(".prct"), "font-size"))
	assert.Equal(t, "auto", computed(t, find(".prct"), "width"))
}

func TestFontSizeKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.css")
	defer teardown()
	//
	find := buildStyledTree(t, `<html style="font-size: 10px"><body>
		<p id="a" style="font-size: x-large"><span style="font-size: larger">s</span></p>
		<p id="b" style="font-size: 3rem"></p>
		<p id="c" style="font-size: 12pt; margin-top: 2em; padding-left: -4px"></p>
		<p id="d" style="font-size: bogus"></p>
		</body></html>`, "")
	assert.Equal(t, "10px", computed(t, find("html"), "font-size"))
	assert.Equal(t, "24px", computed(t, find("#a"), "font-size"))
	assert.Equal(t, "28.8px", computed(t, find("#a span"), "font-size"))
	assert.Equal(t, "30px", computed(t, find("#b"), "font-size"))
	assert.Equal(t, "16px", computed(t, find("#c"), "font-size"))
	assert.Equal(t, "32px", computed(t, find("#c"), "margin-top"))
	assert.Equal(t, "0px", computed(t, find("#c"), "padding-left"), "negative paddings are clamped")
	assert.Equal(t, "10px", computed(t, find("#d"), "font-size"), "invalid size falls back to parent")
}

func TestInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.css")
	defer teardown()
	//
	find := buildStyledTree(t, `<div id="outer" style="color: red; margin-top: 5px; font-weight: bold">
		<div id="inner" style="margin-top: inherit; color: initial; font-weight: lighter">
		<span id="leaf" style="font-weight: bolder"></span></div></div>`, "")
	assert.Equal(t, "red", computed(t, find("#outer"), "color"))
	assert.Equal(t, "canvastext", computed(t, find("#inner"), "color"))
	assert.Equal(t, "5px", computed(t, find("#inner"), "margin-top"))
	assert.Equal(t, "0px", computed(t, find("#leaf"), "margin-top"), "margins do not inherit")
	assert.Equal(t, "700", computed(t, find("#outer"), "font-weight"))
	assert.Equal(t, "400", computed(t, find("#inner"), "font-weight"))
	assert.Equal(t, "700", computed(t, find("#leaf"), "font-weight"))
}

func TestCascadeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.css")
	defer teardown()
	//
	sheet := `
	div { color: green; }
	#x { color: blue; height: 7px !important; }
	.c { color: yellow; }
	`
	find := buildStyledTree(t, `<div id="x" class="c" style="height: 20px"></div>
		<div id="y" class="c" style="color: black"></div>`, sheet)
	assert.Equal(t, "blue", computed(t, find("#x"), "color"), "id beats class")
	assert.Equal(t, "7px", computed(t, find("#x"), "height"), "important beats inline")
	assert.Equal(t, "black", computed(t, find("#y"), "color"), "inline beats author")
}

func TestOpacityAndNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.css")
	defer teardown()
	//
	find := buildStyledTree(t, `<div id="a" style="opacity: 1.5; z-index: 1000; line-height: 1.5"></div>
		<ol id="b" style="opacity: 0"></ol><div id="c" style="opacity: 25%; line-height: 2em"></div>
		<div id="d"></div>`, "")
	assert.Equal(t, "1", computed(t, find("#a"), "opacity"))
	assert.Equal(t, "1000", computed(t, find("#a"), "z-index"))
	assert.Equal(t, "1.5", computed(t, find("#a"), "line-height"))
	assert.Equal(t, "0", computed(t, find("#b"), "opacity"))
	assert.Equal(t, "0.25", computed(t, find("#c"), "opacity"))
	assert.Equal(t, "32px", computed(t, find("#c"), "line-height"))
	assert.Equal(t, "1", computed(t, find("#d"), "opacity"))
	assert.Equal(t, "auto", computed(t, find("#d"), "z-index"))
}

func TestDisplayAndFloat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.css")
	defer teardown()
	//
	find := buildStyledTree(t, `<div><span id="f" style="float: right">x</span>
		<span id="a" style="position: absolute; float: left">y</span>
		<span id="n">z</span><div id="h" style="display: none"></div>
		<p id="b" style="border-top-style: solid; border-top-width: thick"></p></div>`, "")
	assert.Equal(t, "block", computed(t, find("html"), "display"))
	assert.Equal(t, "none", computed(t, find("head"), "display"))
	assert.Equal(t, "block", computed(t, find("#f"), "display"))
	assert.Equal(t, "right", computed(t, find("#f"), "float"))
	assert.Equal(t, "block", computed(t, find("#a"), "display"))
	assert.Equal(t, "none", computed(t, find("#a"), "float"))
	assert.Equal(t, "inline", computed(t, find("#n"), "display"))
	assert.Equal(t, "none", computed(t, find("#h"), "display"))
	assert.Equal(t, "5px", computed(t, find("#b"), "border-top-width"))
	assert.Equal(t, "0px", computed(t, find("#b"), "border-left-width"))
}

func TestUnknownProperty(t *testing.T) {
	find := buildStyledTree(t, `<div id="x" style="fake: 1"></div>`, "")
	_, err := css.GetProperty(find("#x"), "fake")
	assert.ErrorIs(t, err, css.ErrUnknownProperty)
	_, err = css.GetProperty(nil, "color")
	assert.ErrorIs(t, err, css.ErrNoStyledNode)
}

func TestComputedStyleSnapshot(t *testing.T) {
	find := buildStyledTree(t, `<div id="x" style="height: 20px"></div>`, "")
	cs := css.NewComputedStyle(find("#x"))
	p, ok := cs.Property("Height")
	assert.True(t, ok)
	assert.Equal(t, style.Property("20px"), p)
	_, ok = cs.Property("fake")
	assert.False(t, ok)
	assert.Equal(t, style.Property(""), cs.GetPropertyValue("fake"))
	styles := cs.Styles()
	h, ok := styles.Property("height")
	assert.True(t, ok)
	assert.Equal(t, style.Property("20px"), h)
	assert.NotNil(t, styles.Group(style.PGFont))

	var empty css.EmptyStyle
	p, ok = empty.Property("width")
	assert.True(t, ok)
	assert.Empty(t, p)
	_, ok = empty.Property("fake")
	assert.False(t, ok)
}

func TestShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.css")
	defer teardown()
	//
	find := buildStyledTree(t, `<div id="a" style="margin: 3px; padding: 1px 2px 1px 2px"></div>
		<div id="b" style="margin: 1px 2px 3px; border-width: 1px 2px 3px 4px; border-style: solid"></div>
		<div id="c" style="margin-left: 1em; font-size: 10px"></div>`, "")
	assert.Equal(t, "3px", computed(t, find("#a"), "margin"))
	assert.Equal(t, "1px 2px", computed(t, find("#a"), "padding"))
	assert.Equal(t, "1px 2px 3px", computed(t, find("#b"), "margin"))
	assert.Equal(t, "1px 2px 3px 4px", computed(t, find("#b"), "border-width"))
	assert.Equal(t, "solid", computed(t, find("#b"), "border-style"))
	assert.Equal(t, "0px 0px 0px 10px", computed(t, find("#c"), "margin"))
	assert.Equal(t, "0px", computed(t, find("#c"), "border-radius"))
}

func TestFlexAndAnimationProperties(t *testing.T) {
	find := buildStyledTree(t, `<div id="x" style="flex-grow: 2.50; order: -1; animation-iteration-count: infinite;
		transform: rotate(10deg); box-sizing: border-box; flex-basis: -3px"></div>`, "")
	x := find("#x")
	assert.Equal(t, "2.5", computed(t, x, "flex-grow"))
	assert.Equal(t, "1", computed(t, x, "flex-shrink"))
	assert.Equal(t, "-1", computed(t, x, "order"))
	assert.Equal(t, "infinite", computed(t, x, "animation-iteration-count"))
	assert.Equal(t, "rotate(10deg)", computed(t, x, "transform"))
	assert.Equal(t, "border-box", computed(t, x, "box-sizing"))
	assert.Equal(t, "0px", computed(t, x, "flex-basis"))
}

func TestComputedOffsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.css")
	defer teardown()
	//
	find := buildStyledTree(t, `<div style="font-size: 10px">
		<p id="static" style="top: 5px; left: 2em"></p>
		<p id="rel" style="position: relative; top: 5px; left: 2em; bottom: 10%"></p>
		<p id="abs" style="position: absolute; right: initial"></p>
		<p id="sticky" style="position: sticky; top: 0"></p>
		</div>`, "")
	assert.Equal(t, "auto", computed(t, find("#static"), "top"))
	assert.Equal(t, "auto", computed(t, find("#static"), "left"))
	assert.Equal(t, "5px", computed(t, find("#rel"), "top"))
	assert.Equal(t, "20px", computed(t, find("#rel"), "left"))
	assert.Equal(t, "10%", computed(t, find("#rel"), "bottom"))
	assert.Equal(t, "auto", computed(t, find("#rel"), "right"))
	assert.Equal(t, "auto", computed(t, find("#abs"), "right"))
	assert.Equal(t, "0px", computed(t, find("#sticky"), "top"))
}
