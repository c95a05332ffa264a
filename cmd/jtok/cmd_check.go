// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/creachadair/jtok"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
)

func newCheckCmd() *cobra.Command {
	var (
		numTokens int
		jwcc      bool
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Parse each file under a fixed token budget and report failures",
		Long: `Parse each file under a fixed token budget.

Each input must hold a single JSON object. A file that does not parse, or
that needs more tokens than the configured budget, is reported as a failure.

With --jwcc, inputs may carry comments and trailing commas; they are
standardized to plain JSON before parsing. Use --workers to fan a large file
set out over a pool of goroutines.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			check := func(path string) error {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				if jwcc {
					data, err = hujson.Standardize(data)
					if err != nil {
						return fmt.Errorf("standardize: %w", err)
					}
				}
				ar := jtok.NewArena(numTokens)
				if err := jtok.Parse(data, ar); err != nil {
					return err
				}
				if !ar.IsValid() {
					return errors.New("degenerate document shape")
				}
				return nil
			}

			var mu sync.Mutex
			var failed int
			report := func(path string, err error) {
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
				}
			}

			if workers > 1 && len(args) > 1 {
				pool, err := ants.NewPool(workers)
				if err != nil {
					return err
				}
				defer pool.Release()

				var wg sync.WaitGroup
				for _, path := range args {
					wg.Add(1)
					if err := pool.Submit(func() {
						defer wg.Done()
						report(path, check(path))
					}); err != nil {
						wg.Done()
						report(path, err)
					}
				}
				wg.Wait()
			} else {
				for _, path := range args {
					report(path, check(path))
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&numTokens, "tokens", 128, "Token budget per document")
	cmd.Flags().BoolVar(&jwcc, "jwcc", false, "Standardize JSON with comments before parsing")
	cmd.Flags().IntVar(&workers, "workers", 1, "Parse files on this many pooled workers")
	return cmd
}
