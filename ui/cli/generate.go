// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/leetlist/internal/core"
	"github.com/toeirei/leetlist/internal/export"
	"github.com/toeirei/leetlist/internal/i18n"
	"github.com/toeirei/leetlist/internal/leet"
	"github.com/toeirei/leetlist/internal/mutate"
	"github.com/toeirei/leetlist/internal/wordlist"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		seedFlags []string
		yearsFlag string
		outputs   []string
		maxFlag   int
		tableFlag string
		countOnly bool
	)

	cmd := &cobra.Command{
		Use:   "generate [seed...]",
		Short: "Generate a wordlist from personal seed words",
		Long: `Generates every leetspeak variant of each seed word, each with every
year of the range appended, and writes the sorted, de-duplicated list.

Destinations (-o, repeatable):
  path/to/file.txt            local file (.gz and .zst are compressed)
  -                           standard output
  clipboard:                  system clipboard
  sftp://user@host/path.txt   remote file, authenticated by your SSH agent`,
		Example: `  leetlist generate rex 1990 --seed name=alice -o list.txt
  leetlist generate alice --years 2000:2026 -o - | head
  leetlist generate alice --count`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds := make(wordlist.Seeds, 0, len(args)+len(seedFlags))
			for _, arg := range args {
				seeds = append(seeds, wordlist.Seed{Label: "arg", Value: arg})
			}
			for _, s := range seedFlags {
				seeds = append(seeds, parseSeedFlag(s))
			}

			years := a.cfg.Years
			if cmd.Flags().Changed("years") {
				y, err := mutate.ParseYearRange(yearsFlag)
				if err != nil {
					return err
				}
				years = y
			}
			maxCandidates := a.cfg.Generate.MaxCandidates
			if cmd.Flags().Changed("max") {
				maxCandidates = maxFlag
			}

			gen := a.gen
			if tableFlag != "" {
				t, err := leet.Load(tableFlag)
				if err != nil {
					return err
				}
				var opts []core.Option
				if a.history != nil {
					opts = append(opts, core.WithHistory(a.history))
				}
				gen = core.NewGenerator(t, opts...)
			}

			res, err := gen.Generate(cmd.Context(), core.Request{Seeds: seeds, Years: years, MaxCandidates: maxCandidates})
			if err != nil {
				return err
			}

			if countOnly {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.generate.count", core.HumanCount(res.Len())))
				return nil
			}

			if len(outputs) == 0 {
				outputs = []string{a.cfg.Output.Path}
			}
			written, err := gen.Save(cmd.Context(), res, outputs, export.WithStdout(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			if len(written) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.generate.nothing_written", core.HumanCount(res.Len())))
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.generate.saved", core.HumanCount(res.Len()), strings.Join(written, ", ")))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&seedFlags, "seed", nil, "Seed word, optionally labelled (label=value); repeatable")
	cmd.Flags().StringVar(&yearsFlag, "years", mutate.DefaultYears.String(), "Year range start:end (end exclusive)")
	cmd.Flags().StringArrayVarP(&outputs, "output", "o", nil, "Destination; repeatable (default from output.path)")
	cmd.Flags().IntVar(&maxFlag, "max", 0, "Refuse to generate more than this many candidates (0 = no limit)")
	cmd.Flags().StringVar(&tableFlag, "table", "", "YAML substitution table to use instead of the configured one")
	cmd.Flags().BoolVar(&countOnly, "count", false, "Only print how many candidates would be written")
	return cmd
}

// parseSeedFlag splits "label=value". A value without a label is labelled
// "seed".
func parseSeedFlag(s string) wordlist.Seed {
	if label, value, ok := strings.Cut(s, "="); ok && label != "" {
		return wordlist.Seed{Label: label, Value: value}
	}
	return wordlist.Seed{Label: "seed", Value: s}
}
