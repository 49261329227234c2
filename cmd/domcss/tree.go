package main

import (
	"github.com/spf13/cobra"

	"github.com/npillmayer/domcss/dom/domdbg"
)

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file.html> [property...]",
		Short: "Print the styled tree of a document",
		Long: `Print the styled tree of a document, showing the display mode of
every element and the computed values of the given properties.
With --dot, a GraphViz graph of the DOM is written instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runTree,
	}
	cmd.Flags().Bool("dot", false, "Write GraphViz DOT output")
	return cmd
}

func runTree(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	if getBoolWithFallback("dot", "tree.dot", false) {
		domdbg.ToGraphViz(doc.Root(), cmd.OutOrStdout(), nil)
		return nil
	}
	return domdbg.PrintStyledTree(doc.Root(), cmd.OutOrStdout(), args[1:]...)
}
