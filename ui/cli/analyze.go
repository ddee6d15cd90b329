// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/leetlist/internal/core"
	"github.com/toeirei/leetlist/internal/i18n"
	"github.com/toeirei/leetlist/internal/state"
	"github.com/toeirei/leetlist/internal/wordlist"
	"golang.org/x/term"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		seedFlags []string
		withList  bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [password]",
		Short: "Rate a password and check it against the generated wordlist",
		Long: `Scores a password from 0 to 4 with zxcvbn and prints an estimated online
crack time, a warning and suggestions. Seed words given with --seed are
treated as facts an attacker knows, and the password is checked against
the wordlist they produce.

Without an argument the password is read from the terminal without echo.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				state.Password.Set([]byte(args[0]))
			} else {
				pw, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				state.Password.Set(pw)
				state.Zero(pw)
			}
			secret := state.Password.Take()
			defer state.Zero(secret)
			if len(secret) == 0 {
				return errors.New(i18n.T("tui.error.password_required"))
			}

			seeds := make(wordlist.Seeds, 0, len(seedFlags))
			for _, s := range seedFlags {
				seeds = append(seeds, parseSeedFlag(s))
			}

			var res *core.Result
			if len(seeds.Values()) > 0 {
				r, err := a.gen.Generate(cmd.Context(), core.Request{Seeds: seeds, Years: a.cfg.Years, MaxCandidates: a.cfg.Generate.MaxCandidates})
				if err != nil {
					return err
				}
				res = r
			}

			analysis := a.gen.Analyze(string(secret), seeds, res)
			out := cmd.OutOrStdout()
			if withList {
				fmt.Fprintln(out, core.Report(analysis, res))
			} else {
				fmt.Fprint(out, analysis.Summary())
			}
			if analysis.InWordlist {
				fmt.Fprintln(out, i18n.T("cli.analyze.in_wordlist"))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&seedFlags, "seed", nil, "Known personal word (label=value); repeatable")
	cmd.Flags().BoolVar(&withList, "list", false, "Also print the generated wordlist")
	return cmd
}

// readPassword prompts on errOut and reads without echo when stdin is a
// terminal, or reads one line otherwise.
func readPassword(in io.Reader, errOut io.Writer) ([]byte, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(errOut, i18n.T("cli.analyze.prompt"))
		pw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(errOut)
		if err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}
		return pw, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
