package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is the application version, set via ldflags.
var version string = "dev"

// loadTokenizer is swapped out in tests so they never fetch BPE files.
var loadTokenizer = getTokenizer

// newRootCmd builds the countlines command over fsys for the raw command-line
// args. Each call gets its own viper instance so that flags, env and config
// never leak between runs.
func newRootCmd(fsys afero.Fs, args []string) *cobra.Command {
	v := viper.New()
	var cfgFile string

	// Only the first raw argument selects the log mode, as in
	// "countlines --log-bad --chars"; a log flag anywhere else is ignored.
	var firstArg string
	if len(args) > 0 {
		firstArg = args[0]
	}

	cmd := &cobra.Command{
		Use:   "countlines [--log-all|--log-counted|--log-bad] [--chars]",
		Short: "Count lines of text files below the current directory.",
		Long: `countlines walks the current directory, counts the lines (and optionally
characters and tokens) of every text file that is not ignored, and prints
the totals. Files that cannot be decoded as UTF-8 text are reported as
BAD FILES.`,
		Version: version,
		// Stray arguments and unknown flags fall back to silent mode.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig(v, cfgFile, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, v, firstArg)
			if err != nil {
				return err
			}
			if opts.Tokenizer != nil {
				defer opts.Tokenizer.Close()
			}

			rep := NewReporter(cmd.OutOrStdout(), opts)
			_, err = runCount(fsys, opts, rep)
			return err
		},
	}
	cmd.SetArgs(append([]string{}, args...))

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/countlines/countlines.toml)")

	// Logging (only honoured as the first argument)
	cmd.Flags().Bool("log-all", false, "Log every counted and bad file (first argument only)")
	cmd.Flags().Bool("log-counted", false, "Log only counted files (first argument only)")
	cmd.Flags().Bool("log-bad", false, "Log only files that could not be counted (first argument only)")

	// Counting
	cmd.Flags().Bool("chars", false, "Also count characters (Unicode code points)")
	v.BindPFlag("chars", cmd.Flags().Lookup("chars"))

	// Token Counting
	cmd.Flags().Bool("tokens", false, "Also count model tokens")
	v.BindPFlag("tokens", cmd.Flags().Lookup("tokens"))
	cmd.Flags().String("tokenizer", defaultTokenizerType, "Tokenizer to use: tiktoken or huggingface")
	v.BindPFlag("tokenizer", cmd.Flags().Lookup("tokenizer"))
	cmd.Flags().String("model", "", "Model name for tokenizer (e.g., gpt-4o, gpt2)")
	v.BindPFlag("model", cmd.Flags().Lookup("model"))
	cmd.Flags().String("tokenizer-file", "", "Path to local tokenizer.json (huggingface only)")
	v.BindPFlag("tokenizer_file", cmd.Flags().Lookup("tokenizer-file"))

	v.SetDefault("log_mode", LogSilent.String())
	v.SetDefault("chars", false)
	v.SetDefault("tokens", false)
	v.SetDefault("tokenizer", defaultTokenizerType)
	v.SetDefault("model", "") // Rely on tokenizer specific defaults

	return cmd
}

// initConfig reads in the config file and COUNTLINES_* environment variables.
func initConfig(v *viper.Viper, cfgFile string, stderr io.Writer) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "countlines"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("countlines")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix("COUNTLINES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintln(stderr, "Using config file:", v.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintf(stderr, "Error reading config file: %s\n", err)
	}
}

// resolveOptions merges flags with viper settings. A log flag given as the
// first argument wins over the log_mode key; anything else leaves log_mode
// (silent by default) in charge.
func resolveOptions(cmd *cobra.Command, v *viper.Viper, firstArg string) (Options, error) {
	opts := Options{
		Root:       ".",
		CountChars: v.GetBool("chars"),
		Ignore:     defaultIgnoreSet(),
	}

	mode, ok := logModeFromArg(firstArg)
	if !ok {
		var err error
		mode, err = parseLogMode(v.GetString("log_mode"))
		if err != nil {
			return opts, err
		}
	}
	opts.LogMode = mode

	if v.GetBool("tokens") {
		tk, err := loadTokenizer(tokenizerConfig{
			Type:  v.GetString("tokenizer"),
			Model: v.GetString("model"),
			File:  v.GetString("tokenizer_file"),
		}, cmd.ErrOrStderr())
		if err != nil {
			return opts, fmt.Errorf("initializing tokenizer: %w", err)
		}
		opts.Tokenizer = tk
	}
	return opts, nil
}

// runCount walks opts.Root and prints the summary once the walk completes.
func runCount(fsys afero.Fs, opts Options, rep *Reporter) (Stats, error) {
	stats, err := walkDirectory(fsys, opts, rep)
	if err != nil {
		return stats, err
	}
	if err := rep.Summary(stats); err != nil {
		return stats, fmt.Errorf("writing summary: %w", err)
	}
	return stats, nil
}

func main() {
	if err := newRootCmd(afero.NewOsFs(), os.Args[1:]).Execute(); err != nil {
		os.Exit(1)
	}
}
