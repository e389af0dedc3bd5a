package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hashuniq/internal/config"
	"hashuniq/internal/filter"
	"hashuniq/internal/hashfile"
	"hashuniq/internal/ignore"
	"hashuniq/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

type options struct {
	ignores      []string
	excludePaths []string
	configFile   string
	verbose      bool
	stats        bool
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logging.NewLogger(false).Error("%v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "hashuniq PRIMARY_HASHES_FILE OTHER_HASHES_FILE [OTHER2 ...]",
		Short: "Print paths from PRIMARY whose hash isn't in any OTHER listing",
		Long: `hashuniq compares a primary hash listing (sha256sum format) against one
or more other listings and prints every primary path whose content hash
has no match anywhere in the others. Matching is by hash value only;
paths and names are ignored.

Listings can be generated with commands like:

  find /some/dir -type f -exec sha256sum {} + > hashes.txt`,
		Version:       fmt.Sprintf("%s (commit: %s, built at: %s by %s)", version, commit, date, builtBy),
		Args:          cobra.MinimumNArgs(2),
		RunE:          func(cmd *cobra.Command, args []string) error { return run(cmd, args, &opts) },
		SilenceErrors: true,
	}

	cmd.Flags().StringArrayVarP(&opts.ignores, "ignore", "i", nil, "Glob pattern to ignore, * crosses separators (may be repeated)")
	cmd.Flags().StringArrayVar(&opts.excludePaths, "exclude-path", nil, "Path glob to ignore, ** crosses separators (may be repeated)")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "TOML file with default ignore patterns")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Report listing load progress on stderr")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print run counters to stderr after filtering")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	primary := args[0]
	others := args[1:]

	log := logging.NewLogger(!opts.verbose)

	ignores := opts.ignores
	excludePaths := opts.excludePaths
	if opts.configFile != "" {
		cfg, err := config.Load(opts.configFile)
		if err != nil {
			return err
		}
		// Defaults from the file come first so CLI patterns read as
		// additions to them. Order has no effect on the outcome.
		ignores = append(append([]string{}, cfg.Ignore...), ignores...)
		excludePaths = append(append([]string{}, cfg.ExcludePath...), excludePaths...)
	}

	start := time.Now()

	set, err := hashfile.LoadSets(others)
	if err != nil {
		return err
	}
	log.Info("loaded %d distinct hashes from %d listings", len(set), len(others))

	matcher := &ignore.Matcher{
		Globs:     ignores,
		PathGlobs: excludePaths,
	}

	stats, err := filter.Run(primary, set, matcher, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if opts.stats {
		log.PrintSummary(stats.Records, stats.Duplicate, stats.Ignored, stats.Emitted, time.Since(start))
	}

	return nil
}
