package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/lucrnz/readable"
	"github.com/lucrnz/readable/internal/logging"
	"github.com/lucrnz/readable/internal/util"
)

type formatOptions struct {
	*rootOptions
	separator  string
	array      bool
	jsonOutput bool
	goDuration bool
}

func newFormatCommand(root *rootOptions) *cobra.Command {
	opts := &formatOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "format <milliseconds>",
		Short: "Convert milliseconds to a readable duration",
		Example: `  readable format 38898367008
  readable format --array 90061001
  readable format --go 1h30m`,
		Args: cobra.ExactArgs(1),
		RunE: opts.run,
	}

	cmd.Flags().StringVarP(&opts.separator, "separator", "s", "", "Separator between tokens (default: a single space)")
	cmd.Flags().BoolVarP(&opts.array, "array", "a", false, "Print one token per line")
	cmd.Flags().BoolVarP(&opts.jsonOutput, "json", "j", false, "Print the result as JSON")
	cmd.Flags().BoolVarP(&opts.goDuration, "go", "g", false, "Read the input as a Go duration (e.g. \"1h30m\", \"2d\")")

	return cmd
}

func (o *formatOptions) run(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	fopts, err := cfg.FormatOptions()
	if err != nil {
		return err
	}
	if o.separator != "" {
		fopts.Separator = o.separator
	}
	formatter, err := readable.NewFormatter(fopts)
	if err != nil {
		return err
	}

	var ms float64
	if o.goDuration {
		ms, err = util.ParseGoDuration(args[0])
		if err != nil {
			return fmt.Errorf("invalid Go duration %q: %w", args[0], err)
		}
	} else {
		ms, err = readable.ToNumber(args[0])
		if err != nil {
			return err
		}
	}

	tokens, err := formatter.Tokens(ms)
	if err != nil {
		return err
	}
	logger.Debug("formatted", "ms", ms, "tokens", tokens)

	w := cmd.OutOrStdout()
	if o.array {
		if o.jsonOutput {
			return json.NewEncoder(w).Encode(tokens)
		}
		for _, t := range tokens {
			fmt.Fprintln(w, t)
		}
		return nil
	}

	s, err := formatter.Format(ms)
	if err != nil {
		return err
	}
	if o.jsonOutput {
		return json.NewEncoder(w).Encode(s)
	}
	fmt.Fprintln(w, s)
	return nil
}
