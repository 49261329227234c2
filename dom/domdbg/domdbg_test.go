package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/domcss/dom"
	"github.com/npillmayer/domcss/dom/style"
)

var myhtml = `<html><head><style>p { margin-top: 2em; }</style></head><body>
<div id="main"><p class="x">Hello <b>World</b></p><span style="display:none">!</span></div>
</body></html>`

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.dom")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	var buf bytes.Buffer
	ToGraphViz(doc.Root(), &buf, []string{style.PGMargins})
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `label="p"`)
	assert.Contains(t, out, "margin-top:</td><td>32px")
}

func TestGraphVizWithoutView(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(myhtml), dom.WithoutView())
	require.NoError(t, err)
	var buf bytes.Buffer
	ToGraphViz(doc.Root(), &buf, nil)
	assert.NotContains(t, buf.String(), "Margins")
}

func TestPrintStyledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domcss.dom")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	main, _ := doc.QuerySelector("#main")
	var buf bytes.Buffer
	require.NoError(t, PrintStyledTree(main, &buf, "margin-top"))
	out := buf.String()
	t.Logf("\n%s", out)
	assert.Contains(t, out, `<div id="main"> margin-top: 0px;`)
	assert.Contains(t, out, `<p class="x"> margin-top: 32px;`)
	assert.Contains(t, out, "– <span>")

	detached, _ := doc.Domify("<div>")
	assert.Error(t, PrintStyledTree(detached, &buf))
}
