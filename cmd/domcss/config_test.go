package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := writeFile(t, dir, ".domcss.yaml", `
verbose: true
detach: true
stylesheets:
  - base.css
  - print.css
tracelevel:
  root: Info
  domcss:
    css: Debug
`)
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, getBoolWithFallback("verbose", "verbose", false))
	assert.True(t, getBoolWithFallback("detach", "detach", false))
	assert.Equal(t, []string{"base.css", "print.css"}, stylesheets())
	assert.Equal(t, "Info", getStringWithFallback("level", "tracelevel.root", "Error"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	require.NoError(t, loadConfigFromPath("/nonexistent/.domcss.yaml"))
	assert.False(t, getBoolWithFallback("detach", "detach", false))
	assert.Empty(t, stylesheets())
	assert.Equal(t, "Error", getStringWithFallback("level", "tracelevel.root", "Error"))
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := writeFile(t, dir, ".domcss.yaml", "detach: false\n")
	t.Setenv("DOMCSS_DETACH", "true")
	t.Setenv("DOMCSS_TRACELEVEL_ROOT", "Debug")

	require.NoError(t, loadConfigFromPath(configPath))
	assert.True(t, getBoolWithFallback("detach", "detach", false))
	assert.Equal(t, "Debug", k.String("tracelevel.root"))
}

func TestTraceLevelLookup(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := writeFile(t, dir, ".domcss.yaml", `
tracelevel:
  root: Error
  domcss:
    css: Debug
    dom: Info
`)
	require.NoError(t, loadConfigFromPath(configPath))
	conf := koanfConf{k: k}
	assert.Equal(t, "Error", conf.GetString("tracelevel.root"))
	assert.Equal(t, "Debug", conf.GetString("tracelevel.domcss.css"))
	assert.Equal(t, "Info", conf.GetString("tracelevel.domcss.dom"))
	assert.Equal(t, "Error", conf.GetString("tracelevel.domcss.cssom"), "falls back to root level")
	assert.Equal(t, "Error", conf.GetString("tracelevel.domcss"), "a group of levels is not a level")
	assert.Empty(t, conf.GetString("traceleveldomcss"))
	assert.True(t, conf.IsSet("tracelevel.domcss.css"))
}

func TestParseAssignments(t *testing.T) {
	props, err := parseAssignments([]string{"width=120", "opacity=.5", "color = red", "margin-top=1em"})
	require.NoError(t, err)
	assert.Equal(t, 120.0, props["width"])
	assert.Equal(t, 0.5, props["opacity"])
	assert.Equal(t, "red", props["color"])
	assert.Equal(t, "1em", props["margin-top"])

	_, err = parseAssignments([]string{"width"})
	assert.Error(t, err)
	_, err = parseAssignments([]string{"=5"})
	assert.Error(t, err)
}

// --- Commands --------------------------------------------------------------

const testPage = `<!DOCTYPE html>
<html><head><style>
#main { font-size: 20px; }
#main p { font-size: 2em; }
</style></head>
<body><div id="main"><p class="x" style="width: 10px">Hello</p></div></body>
</html>`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetKoanf()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestGetCommand(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "page.html", testPage)

	out, err := runCommand(t, "get", page, "#main p", "fontSize", "width", "display", "fake")
	require.NoError(t, err)
	assert.Equal(t, "fontSize: 40px\nwidth: 10px\ndisplay: block\nfake: <undefined>\n", out)

	_, err = runCommand(t, "get", page, "#nothing", "width")
	assert.Error(t, err)
	_, err = runCommand(t, "get", filepath.Join(dir, "missing.html"), "p", "width")
	assert.Error(t, err)
}

func TestGetCommandWithStylesheet(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "page.html", testPage)
	sheet := writeFile(t, dir, "extra.css", "p.x { font-size: 12px !important; color: green }")

	out, err := runCommand(t, "get", page, "p", "font-size", "color", "--stylesheet", sheet)
	require.NoError(t, err)
	assert.Equal(t, "font-size: 12px\ncolor: green\n", out)
}

func TestGetCommandDetached(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "page.html", testPage)

	out, err := runCommand(t, "get", page, "#main", "width", "height", "--detach")
	require.NoError(t, err)
	assert.Equal(t, "width: 0px\nheight: 0px\n", out)
}

func TestSetCommand(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "page.html", testPage)

	out, err := runCommand(t, "set", page, "p", "width=120", "opacity=.5", "z-index=3")
	require.NoError(t, err)
	assert.Contains(t, out, `style="width: 120px; opacity: 0.5; z-index: 3;"`)
	assert.Contains(t, out, `<div id="main">`)

	_, err = runCommand(t, "set", page, "p", "width")
	assert.Error(t, err)
}

func TestTreeCommand(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "page.html", testPage)

	out, err := runCommand(t, "tree", page, "font-size")
	require.NoError(t, err)
	assert.Contains(t, out, "#document")
	assert.Contains(t, out, `<div id="main"> font-size: 20px;`)
	assert.Contains(t, out, `<p class="x"> font-size: 40px;`)

	out, err = runCommand(t, "tree", page, "--dot")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph")
}
