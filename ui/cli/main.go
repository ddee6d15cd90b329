// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/leetlist/buildvars"
	"github.com/toeirei/leetlist/internal/config"
	"github.com/toeirei/leetlist/internal/core"
	"github.com/toeirei/leetlist/internal/history"
	"github.com/toeirei/leetlist/internal/i18n"
	"github.com/toeirei/leetlist/internal/leet"
	"github.com/toeirei/leetlist/internal/logging"
	"github.com/toeirei/leetlist/internal/tui"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

const modulePath = "github.com/toeirei/leetlist"

// app holds what setupDefaultServices wires for the running command.
type app struct {
	cfg     config.Config
	table   leet.Table
	gen     *core.Generator
	history *history.Store
}

// setupDefaultServices loads configuration, applies logging and language
// settings, and opens the history store when enabled.
func (a *app) setupDefaultServices(cmd *cobra.Command) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) && skipsDefaultConfig(cmd) {
		err = nil
	}
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		// First run: persist the defaults so the user has a file to edit.
		if path, writeErr := config.WriteConfigFile(&cfg, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Infof("%s", i18n.T("cli.config.default_written", path))
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	a.cfg = cfg

	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		logging.Warnf("%v", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logging.SetDebug(true)
	}
	i18n.Init(cfg.Language)

	a.table = leet.Default()
	if cfg.Substitutions.File != "" {
		t, err := leet.Load(cfg.Substitutions.File)
		if err != nil {
			return err
		}
		a.table = t
	}

	var opts []core.Option
	if cfg.History.Enabled {
		store, err := history.Open(cmd.Context(), cfg.Database.Type, cfg.Database.Dsn)
		if err != nil {
			// Generation still works without an audit trail.
			logging.Warnf("history disabled: %v", err)
		} else {
			a.history = store
			opts = append(opts, core.WithHistory(store))
		}
	}
	a.gen = core.NewGenerator(a.table, opts...)
	return nil
}

// annotationNoDefaultConfig marks commands that manage the config file
// themselves, so the first-run default file must not be written for them.
const annotationNoDefaultConfig = "leetlist/no-default-config"

func skipsDefaultConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationNoDefaultConfig]; ok {
			return true
		}
	}
	return false
}

func (a *app) close() {
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			logging.Warnf("closing history: %v", err)
		}
		a.history = nil
	}
}

// Execute runs the CLI entrypoint. main should call this and handle the
// process exit.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates the root command with all subcommands. Each call
// returns a fresh tree, so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "leetlist",
		Short: "Leetlist builds personal password wordlists and rates passwords.",
		Long: `Leetlist turns personal details (a name, a date of birth, a pet's
name) into the wordlist an attacker who knows them would try first: leetspeak
variants of each word, each with every year of a range appended.

It also scores a password with zxcvbn, using the same details as known
words, and tells you when the password is one of the generated candidates.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupDefaultServices(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			return tui.Run(tui.Options{
				Generator:     a.gen,
				Years:         a.cfg.Years,
				MaxCandidates: a.cfg.Generate.MaxCandidates,
				SavePath:      a.cfg.Output.Path,
				Theme:         a.cfg.Theme,
			})
		},
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Interface language ("en", "de")`)
	cmd.PersistentFlags().String("theme", "dark", `TUI theme ("dark", "light")`)

	cmd.AddCommand(
		newGenerateCmd(a),
		newAnalyzeCmd(a),
		newHistoryCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of leetlist",
		// No config or database needed.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "leetlist %s\n", compositeVersion())
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" && c != v {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date. If info is nil, it reads build info from the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// When built as a dependency, Main is the outer module.
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && resolvedCommit == "dev" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" && resolvedDate == "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
