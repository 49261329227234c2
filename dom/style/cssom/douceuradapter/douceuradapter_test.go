package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/npillmayer/domcss/dom/style"
	"github.com/npillmayer/domcss/dom/style/cssom"
)

func TestParseAndRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.cssom")
	defer teardown()
	//
	c, err := Parse(`@media print { p { color: black } } p, div { margin: 0; margin: 4px !important }`)
	require.NoError(t, err)
	assert.False(t, c.Empty())
	rules := c.Rules()
	require.Len(t, rules, 1, "at-rules are skipped")
	r := rules[0]
	assert.Equal(t, "p, div", r.Selector())
	assert.Equal(t, style.Property("4px"), r.Value("margin"), "last declaration wins")
	assert.True(t, r.IsImportant("margin"))
	assert.False(t, r.IsImportant("color"))
	assert.Equal(t, style.NullStyle, r.Value("color"))

	other, err := Parse(`b { color: red }`)
	require.NoError(t, err)
	c.AppendRules(other)
	assert.Len(t, c.Rules(), 2)
}

func TestExtractStyleElements(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><head><style>p { color: red }</style>
	<style></style></head><body><div><style>b { color: blue }</style></div></body></html>`))
	require.NoError(t, err)
	sheets := ExtractStyleElements(doc)
	require.Len(t, sheets, 2, "empty <style> is skipped, nested one found")
	assert.Equal(t, "b", sheets[1].Rules()[0].Selector())
}

func TestDeclarations(t *testing.T) {
	decls, err := ParseDeclarations(" Height: 36px; color: RED !important ;; ")
	require.NoError(t, err)
	assert.Equal(t, []cssom.Declaration{
		{Key: "height", Value: "36px"},
		{Key: "color", Value: "RED", Important: true},
	}, decls)
	assert.Equal(t, "height: 36px; color: RED !important;", SerializeDeclarations(decls))

	decls, err = ParseDeclarations("")
	assert.NoError(t, err)
	assert.Empty(t, decls)
}

func TestInlineStyles(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<div style="display: none; opacity: 0"></div>`))
	require.NoError(t, err)
	div := doc.FirstChild.LastChild.FirstChild // html > body > div
	require.Equal(t, "div", div.Data)
	decls := InlineStyles(div)
	require.Len(t, decls, 2)
	assert.Equal(t, "opacity", decls[1].Key)
	assert.Equal(t, style.Property("0"), decls[1].Value)
	assert.Nil(t, InlineStyles(doc))
	assert.Nil(t, InlineStyles(nil))
}
