// Copyright (c) 2026 ArtScope. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jenna9192/artscope/internal/taxonomy"
)

func taxonomyCmd(options *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "taxonomy [kind]",
		Short:     "Print the filter hierarchies (departments, mediums, periods)",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: taxonomy.Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := taxonomy.Kinds()
			if len(args) == 1 {
				kind, err := taxonomy.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []string{string(kind)}
			}

			catalog := taxonomy.DefaultCatalog()
			views := make([]taxonomy.TreeView, 0, len(kinds))
			for _, kind := range kinds {
				views = append(views, catalog.View(taxonomy.Kind(kind), nil, nil, nil))
			}

			out := cmd.OutOrStdout()
			if options.asJSON {
				return printJSON(out, views)
			}
			for i, view := range views {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printTree(out, view)
			}
			return nil
		},
	}
}

func printTree(out io.Writer, view taxonomy.TreeView) {
	fmt.Fprintf(out, "%s\n", view.Name)
	var walk func(nodes []taxonomy.NodeView, depth int)
	walk = func(nodes []taxonomy.NodeView, depth int) {
		for _, node := range nodes {
			line := strings.Repeat("  ", depth) + node.Name
			if node.Range != nil {
				line += fmt.Sprintf(" [%d, %d]", node.Range.MinYear, node.Range.MaxYear)
			}
			fmt.Fprintln(out, line)
			walk(node.Children, depth+1)
		}
	}
	walk(view.Nodes, 1)
}
