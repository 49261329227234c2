package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npillmayer/domcss"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file.html> <selector> <property>...",
		Short: "Print computed property values of an element",
		Long: `Print the computed values of CSS properties for the first element
matching a selector. Properties unknown to the CSS engine print as
<undefined>.`,
		Args: cobra.MinimumNArgs(3),
		RunE: runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	el, err := selectElement(doc, args[1])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, prop := range args[2:] {
		value, ok := domcss.Get(el, prop)
		if !ok {
			value = "<undefined>"
		}
		fmt.Fprintf(out, "%s: %s\n", prop, value)
	}
	return nil
}
