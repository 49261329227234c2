package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/npillmayer/domcss"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file.html> <selector> <property=value>...",
		Short: "Set inline style properties of an element",
		Long: `Set inline style properties of the first element matching a selector
and write the resulting document to stdout. Numeric values become
pixel lengths, unless the property is unit-less (opacity, z-index, …).`,
		Args: cobra.MinimumNArgs(3),
		RunE: runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	props, err := parseAssignments(args[2:])
	if err != nil {
		return err
	}
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	el, err := selectElement(doc, args[1])
	if err != nil {
		return err
	}
	domcss.Apply(el, props)
	return doc.Render(cmd.OutOrStdout())
}

// parseAssignments turns arguments of the form "prop=value" into properties.
// Values which parse as numbers are numbers.
func parseAssignments(args []string) (domcss.Props, error) {
	props := make(domcss.Props, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected property=value, got %q", arg)
		}
		value = strings.TrimSpace(value)
		if x, err := strconv.ParseFloat(value, 64); err == nil {
			props[key] = x
		} else {
			props[key] = value
		}
	}
	return props, nil
}
