package style

import (
	"golang.org/x/net/html"
)

// GetUserAgentDefaultProperty returns the user-agent default property for a given key.
// For most properties this is the CSS initial value; `display` depends on the
// type of HTML element.
func GetUserAgentDefaultProperty(node *html.Node, key string) Property {
	if key == "display" {
		return DisplayPropertyForHTMLNode(node)
	}
	return InitialValue(key)
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "style", "script", "title", "meta", "link", "template":
		return "none"
	case "html", "aside", "body", "div", "h1", "h2", "h3",
		"h4", "h5", "h6", "ol", "p", "section", "article",
		"header", "footer", "nav", "main", "ul", "form",
		"blockquote", "pre", "figure", "hr", "dl", "dd", "dt":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "a", "i", "b", "em", "span", "strong", "code", "small",
		"sub", "sup", "label", "abbr", "cite", "q":
		return "inline"
	case "img", "input", "textarea", "select", "button":
		return "inline-block"
	}
	tracer().Infof("unknown HTML element %s will be set to display: inline", node.Data)
	return "inline"
}

// InitializeDefaultPropertyValues creates an internal data structure to
// hold all the default values for CSS properties.
// In real-world browsers these are the user-agent CSS values.
// additionalProps will be put into the extension group X.
func InitializeDefaultPropertyValues(additionalProps []KeyValue) *PropertyMap {
	pmap := NewPropertyMap()
	for _, key := range KnownProperties() {
		pmap.Add(key, InitialValue(key))
	}
	for _, kv := range additionalProps {
		pmap.Add(kv.Key, kv.Value) // unknown keys end up in group X
	}
	return pmap
}
