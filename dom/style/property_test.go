package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestPropertyMapAddAndGet(t *testing.T) {
	pmap := NewPropertyMap()
	pmap.Add("margin-top", "10PX")
	pmap.Add("funny-margin", "big")
	p, ok := pmap.Property("margin-top")
	require.True(t, ok)
	assert.Equal(t, Property("10px"), p, "values are lower-cased")
	assert.NotNil(t, pmap.Group(PGMargins))
	assert.NotNil(t, pmap.Group(PGX), "unknown keys go to group X")
	assert.Equal(t, []string{PGMargins, PGX}, pmap.GroupNames())
	_, ok = pmap.Property("margin-left")
	assert.False(t, ok)
}

func TestNilPropertyMap(t *testing.T) {
	var pmap *PropertyMap
	assert.Equal(t, 0, pmap.Size())
	assert.Nil(t, pmap.Group(PGFont))
	_, ok := pmap.Property("font-size")
	assert.False(t, ok)
	pmap.Add("font-size", "12px") // must not panic
}

func TestPropertyGroupKeepsQuotedCase(t *testing.T) {
	pg := NewPropertyGroup(PGFont)
	pg.Set("font-family", `"Open Sans"`)
	p, _ := pg.Get("font-family")
	assert.Equal(t, Property(`"Open Sans"`), p)
	assert.True(t, pg.IsSet("font-family"))
	pg.Add("font-family", "serif")
	p, _ = pg.Get("font-family")
	assert.Equal(t, Property(`"Open Sans"`), p, "Add must not overwrite")
}

func TestSplitCompoundProperty(t *testing.T) {
	kv, err := SplitCompoundProperty("padding", "3px")
	require.NoError(t, err)
	require.Len(t, kv, 4)
	for _, x := range kv {
		assert.Equal(t, Property("3px"), x.Value)
	}
	kv, err = SplitCompoundProperty("margin", "1px 2px 3px")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{
		{"margin-top", "1px"},
		{"margin-right", "2px"},
		{"margin-bottom", "3px"},
		{"margin-left", "2px"},
	}, kv)
	kv, err = SplitCompoundProperty("border-radius", "1px 2px")
	require.NoError(t, err)
	assert.Equal(t, "border-top-left-radius", kv[0].Key)
	assert.Equal(t, Property("2px"), kv[1].Value)
	_, err = SplitCompoundProperty("font", "12px serif")
	assert.Error(t, err)
	_, err = SplitCompoundProperty("margin", "1px 2px 3px 4px 5px")
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	assert.True(t, IsKnownProperty("z-index"))
	assert.False(t, IsKnownProperty("fake"))
	assert.Equal(t, PGX, GroupNameFromPropertyKey("fake"))
	assert.Equal(t, PGFont, GroupNameFromPropertyKey("font-size"))
	assert.True(t, IsCascading("font-size"))
	assert.True(t, IsCascading("list-style-type"))
	assert.False(t, IsCascading("width"))
	assert.Equal(t, Property("1"), InitialValue("opacity"))
	assert.Equal(t, NullStyle, InitialValue("fake"))
	for _, key := range []string{"flex-grow", "flex-shrink", "order", "animation-iteration-count",
		"column-count", "fill-opacity", "transform", "box-sizing"} {
		assert.True(t, IsKnownProperty(key), key)
	}
	assert.False(t, IsKnownProperty("margin"), "shorthands are not longhands")
	assert.True(t, IsRecognizedProperty("margin"))
	assert.True(t, IsRecognizedProperty("border-radius"))
	assert.False(t, IsRecognizedProperty("fake"))
	assert.Equal(t, PGFlex, GroupNameFromPropertyKey("order"))
}

func TestUserAgentDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.style")
	defer teardown()
	//
	div := &html.Node{Type: html.ElementNode, Data: "div"}
	span := &html.Node{Type: html.ElementNode, Data: "span"}
	assert.Equal(t, Property("block"), GetUserAgentDefaultProperty(div, "display"))
	assert.Equal(t, Property("inline"), GetUserAgentDefaultProperty(span, "display"))
	assert.Equal(t, Property("auto"), GetUserAgentDefaultProperty(div, "width"))
	pmap := InitializeDefaultPropertyValues([]KeyValue{{"x-custom", "on"}})
	p, ok := pmap.Property("x-custom")
	assert.True(t, ok)
	assert.Equal(t, Property("on"), p)
	p, _ = pmap.Property("font-size")
	assert.Equal(t, Property("medium"), p)
}

func TestPropertyNames(t *testing.T) {
	for _, test := range []struct{ camel, css string }{
		{"zIndex", "z-index"},
		{"fontSize", "font-size"},
		{"WebkitTransition", "-webkit-transition"},
		{"msTransform", "-ms-transform"},
		{"height", "height"},
	} {
		assert.Equal(t, test.css, Hyphenate(test.camel))
		assert.Equal(t, test.camel, Camelize(test.css))
		assert.Equal(t, test.camel, Camelize(test.camel), "idempotent")
		assert.Equal(t, test.css, Hyphenate(test.css), "idempotent")
	}
	assert.Equal(t, "height", Hyphenate("HEIGHT"))
	assert.Equal(t, "z-index", Hyphenate("Z-Index"))
}
