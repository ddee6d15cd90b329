// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/toeirei/leetlist/internal/core"
	"github.com/toeirei/leetlist/internal/i18n"
	"github.com/toeirei/leetlist/internal/mutate"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generation runs",
		Long: `Lists saved wordlists, newest first. Only counts, the year range, the
destination and a digest of the list are recorded, never the seed words or
the candidates themselves.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.history == nil {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history.disabled"))
				return nil
			}
			runs, err := a.history.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history.empty"))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tWHEN\tUSER\tSEEDS\tYEARS\tCANDIDATES\tDESTINATION\tDIGEST")
			for _, r := range runs {
				digest := r.Digest
				if len(digest) > 12 {
					digest = digest[:12]
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
					r.ID, humanize.Time(r.CreatedAt), r.Username, r.Seeds,
					mutate.YearRange{Start: r.YearStart, End: r.YearEnd},
					core.HumanCount(r.Candidates), r.Destination, digest)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Show at most this many runs (0 = all)")

	cmd.AddCommand(newHistoryPruneCmd(a))
	return cmd
}

func newHistoryPruneCmd(a *app) *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the newest runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.history == nil {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history.disabled"))
				return nil
			}
			n, err := a.history.Prune(cmd.Context(), keep)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history.pruned", n))
			return nil
		},
	}
	cmd.Flags().IntVar(&keep, "keep", 100, "Number of newest runs to keep")
	return cmd
}
