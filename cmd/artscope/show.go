// Copyright (c) 2026 ArtScope. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jenna9192/artscope/internal/collection"
)

func showCmd(options *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the full record of one artwork",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid object id %q", args[0])
			}

			client := options.client(options.logger(cmd.ErrOrStderr()))
			artwork, err := client.Object(cmd.Context(), id)
			if errors.Is(err, collection.ErrNotFound) {
				return fmt.Errorf("no artwork with id %d", id)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if options.asJSON {
				return printJSON(out, artwork)
			}
			printArtwork(out, artwork)
			return nil
		},
	}
}

// printArtwork mirrors the fields of the detail view; empty ones are omitted.
func printArtwork(out io.Writer, artwork *collection.Artwork) {
	fmt.Fprintf(out, "%s\n", artwork.DisplayTitle())
	fmt.Fprintf(out, "%s\n", artwork.DisplayArtist())

	fields := []struct {
		label string
		value string
	}{
		{"Date", artwork.DisplayDate()},
		{"Medium", artwork.Medium},
		{"Dimensions", artwork.Dimensions},
		{"Department", artwork.Department},
		{"Culture", artwork.Culture},
		{"Nationality", artwork.ArtistNationality},
		{"Credit", artwork.CreditLine},
		{"Image", artwork.PrimaryImage},
		{"More", artwork.ObjectURL},
	}
	for _, field := range fields {
		if field.value != "" {
			fmt.Fprintf(out, "  %-12s %s\n", field.label+":", field.value)
		}
	}
}
