package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npillmayer/domcss/dom"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "domcss",
		Short: "Read and write CSS properties of HTML elements",
		Long: `domcss resolves computed CSS property values of elements in HTML
documents, applying the document's stylesheets, inline styles and
user-agent defaults. It may also set inline styles, with numbers
converted to pixel lengths where appropriate.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			return setupTracing(getBoolWithFallback("verbose", "verbose", false))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug tracing")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")
	rootCmd.PersistentFlags().StringSlice("stylesheet", nil, "Additional CSS file (repeatable)")
	rootCmd.PersistentFlags().Bool("detach", false, "Detach the selected element from the document tree")

	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newTreeCmd())
	return rootCmd
}

// loadDocument parses an HTML file and adds the configured stylesheets.
func loadDocument(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, sheet := range stylesheets() {
		source, err := os.ReadFile(sheet)
		if err != nil {
			return nil, err
		}
		if _, err := doc.AddStyleSheet(string(source)); err != nil {
			return nil, fmt.Errorf("%s: %w", sheet, err)
		}
		tracer().P("stylesheet", sheet).Debugf("stylesheet loaded")
	}
	return doc, nil
}

// selectElement returns the first element matching selector. With option
// detach, the element is removed from its parent.
func selectElement(doc *dom.Document, selector string) (*dom.W3CNode, error) {
	el, err := doc.QuerySelector(selector)
	if err != nil {
		return nil, err
	}
	if el == nil {
		return nil, fmt.Errorf("no element matches %q", selector)
	}
	if getBoolWithFallback("detach", "detach", false) {
		if parent := el.Parent(); parent != nil {
			if err := parent.RemoveChild(el); err != nil {
				return nil, err
			}
			tracer().Debugf("detached %s", el.NodeName())
		}
	}
	return el, nil
}
