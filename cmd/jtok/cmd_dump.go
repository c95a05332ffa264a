// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/creachadair/jtok"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var numTokens int

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the token table of a parsed document",
		Long: `Print the token table of a parsed document.

Each row is one token of the parse: its index in the pool, type, source
span, size, and the parent and sibling indices that encode the document
structure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ar := jtok.NewArena(numTokens)
			if err := jtok.Parse(data, ar); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "IDX\tTYPE\tSPAN\tSIZE\tPARENT\tSIBLING\tTEXT")
			for i, tok := range ar.Tokens() {
				text := ar.Text(i)
				if len(text) > 40 {
					text = append(text[:37:37], "..."...)
				}
				fmt.Fprintf(tw, "%d\t%v\t%d..%d\t%d\t%d\t%d\t%s\n",
					i, tok.Type, tok.Start, tok.End, tok.Size, tok.Parent, tok.Sibling, text)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&numTokens, "tokens", 128, "Token budget for the document")
	return cmd
}
