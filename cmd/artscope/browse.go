// Copyright (c) 2026 ArtScope. All rights reserved.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jenna9192/artscope/internal/browse"
	"github.com/jenna9192/artscope/internal/collection"
	"github.com/jenna9192/artscope/internal/taxonomy"
)

func browseCmd(options *globalOptions) *cobra.Command {
	var (
		departments []string
		mediums     []string
		period      string
		query       string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Run one reconciliation and print the resulting gallery",
		Long: `Searches the collection with the given filters, samples the candidates and
prints every record that passes the filters. A --query switches to free-text
search and ignores the other filters.

--period accepts a leaf ("1400–1600 CE"), a subgroup ("19th Century") or a
group name ("The Medieval World").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := taxonomy.DefaultCatalog()

			filter, err := buildFilter(catalog, departments, mediums, period, query)
			if err != nil {
				return err
			}
			if filter.IsEmpty() {
				return fmt.Errorf("select at least one department, medium or period, or pass --query")
			}

			logger := options.logger(cmd.ErrOrStderr())
			reconciler := browse.NewReconciler(options.client(logger),
				browse.WithFetchDelay(options.cfg.FetchDelay),
				browse.WithLogger(logger),
			)

			outcome, err := reconciler.Run(cmd.Context(), filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if options.asJSON {
				return printJSON(out, outcome)
			}
			if outcome.NoResults {
				fmt.Fprintln(out, "No artworks match these filters.")
				return nil
			}
			return printGallery(out, outcome.Artworks)
		},
	}

	cmd.Flags().StringArrayVar(&departments, "department", nil, "department name (repeatable)")
	cmd.Flags().StringArrayVar(&mediums, "medium", nil, "medium term (repeatable)")
	cmd.Flags().StringVar(&period, "period", "", "time period name")
	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search")
	return cmd
}

// buildFilter validates names against the catalog. Order of the flags is the
// selection order, so the first --department is the one sent upstream.
func buildFilter(catalog taxonomy.Catalog, departments, mediums []string, period, query string) (browse.Filter, error) {
	filter := browse.Filter{Query: query}

	for _, name := range departments {
		if !taxonomy.HasTerm(catalog.Departments, name) {
			return browse.Filter{}, fmt.Errorf("unknown department %q", name)
		}
		filter.Departments = filter.Departments.With(name)
	}

	for _, term := range mediums {
		if !taxonomy.HasTerm(catalog.Mediums, term) {
			return browse.Filter{}, fmt.Errorf("unknown medium %q", term)
		}
		filter.Mediums = filter.Mediums.With(term)
	}

	if period != "" {
		selected, ok := periodByName(catalog.Periods, period)
		if !ok {
			return browse.Filter{}, fmt.Errorf("unknown period %q", period)
		}
		filter.Period = &selected
	}

	return filter, nil
}

// periodByName resolves a leaf, subgroup or group name to its period.
func periodByName(h *taxonomy.Hierarchy[taxonomy.Period], name string) (taxonomy.Period, bool) {
	if selected, ok := taxonomy.ResolvePeriod(h, taxonomy.Path{Leaf: name}); ok {
		return selected, true
	}
	if selected, ok := taxonomy.ResolvePeriod(h, taxonomy.Path{Group: name}); ok {
		return selected, true
	}
	for _, group := range h.Groups {
		for _, sub := range group.Subgroups {
			if sub.Name == name {
				return taxonomy.ResolvePeriod(h, taxonomy.Path{Group: group.Name, Subgroup: sub.Name})
			}
		}
	}
	return taxonomy.Period{}, false
}

func printGallery(out io.Writer, artworks []collection.Artwork) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tARTIST\tDATE\tMEDIUM")
	for _, artwork := range artworks {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n",
			artwork.ObjectID,
			truncate(artwork.DisplayTitle(), 48),
			truncate(artwork.DisplayArtist(), 28),
			artwork.DisplayDate(),
			truncate(artwork.Medium, 32),
		)
	}
	return writer.Flush()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
