// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Program jtok validates and inspects JSON documents parsed under a fixed
// token budget.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jtok",
		Short: "Validate JSON documents under a fixed token budget",
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newDumpCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
