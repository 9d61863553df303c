package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lucrnz/readable/internal/config"
	"github.com/lucrnz/readable/internal/logging"
	"github.com/lucrnz/readable/internal/version"
)

type rootOptions struct {
	fs         afero.Fs
	logLevel   string
	logFormat  string
	configPath string
}

// NewRootCommand builds the command tree. Config files are read from fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "readable",
		Short: "Convert between readable durations and milliseconds",
		Long: `readable

Converts human-readable durations such as "1y 2mo 3w 4d 5h 6m 7s 8ms" to a
number of milliseconds, and back.

Months are 30 days and years are 365 days.
`,
		Version: version.Print(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			cmd.SetContext(logging.WithContext(cmd.Context(), logger))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML file with identifier and label overrides")

	rootCmd.AddCommand(newParseCommand(opts), newFormatCommand(opts), newVersionCommand())

	// Silence usage output for runtime errors, but show it for flag errors
	// SilenceErrors is true so we can control error output format in main()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Show usage only when there's a flag parsing error
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return err
	})

	return rootCmd
}

// ExecuteContext runs the root command against the OS filesystem.
func ExecuteContext(ctx context.Context) error {
	rootCmd := NewRootCommand(afero.NewOsFs())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Show usage for argument count errors (not caught by SetFlagErrorFunc)
		if strings.Contains(err.Error(), "arg(s)") {
			_ = rootCmd.Usage()
		}
		return err
	}
	return nil
}

// loadConfig returns the config named by --config, or an empty one.
func (o *rootOptions) loadConfig() (*config.File, error) {
	if o.configPath == "" {
		return &config.File{}, nil
	}
	return config.Load(o.fs, o.configPath)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Print())
			return nil
		},
	}
}
