package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucrnz/readable"
	"github.com/lucrnz/readable/internal/logging"
	"github.com/lucrnz/readable/internal/util"
)

type parseOptions struct {
	*rootOptions
	separator      string
	separatorRegex string
	tokens         bool
	human          bool
	duration       bool
}

func newParseCommand(root *rootOptions) *cobra.Command {
	opts := &parseOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "parse [duration...]",
		Short: "Convert a readable duration to milliseconds",
		Example: `  readable parse 1y 2mo 3w 4d 5h 6m 7s 8ms
  readable parse --separator , 1h,30m
  readable parse --tokens 1h 30m`,
		RunE: opts.run,
	}

	cmd.Flags().StringVarP(&opts.separator, "separator", "s", "", "Literal separator between tokens (default: whitespace)")
	cmd.Flags().StringVar(&opts.separatorRegex, "separator-regex", "", "Regular expression separating tokens")
	cmd.Flags().BoolVarP(&opts.tokens, "tokens", "t", false, "Treat every argument as exactly one token")
	cmd.Flags().BoolVarP(&opts.human, "human", "u", false, "Group thousands in the output (e.g. 1,000)")
	cmd.Flags().BoolVarP(&opts.duration, "duration", "d", false, "Also print the Go time.Duration form")
	cmd.MarkFlagsMutuallyExclusive("separator", "separator-regex")

	return cmd
}

func (o *parseOptions) run(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	popts, err := cfg.ParseOptions()
	if err != nil {
		return err
	}
	if o.separator != "" {
		popts.Separator = o.separator
	}
	if o.separatorRegex != "" {
		re, err := regexp.Compile(o.separatorRegex)
		if err != nil {
			return fmt.Errorf("invalid --separator-regex: %w", err)
		}
		popts.SeparatorPattern = re
	}

	parser, err := readable.NewParser(popts)
	if err != nil {
		return err
	}

	var ms float64
	if o.tokens {
		ms, err = parser.ParseTokens(args)
	} else {
		joiner := " "
		if popts.Separator != "" && popts.SeparatorPattern == nil {
			joiner = popts.Separator
		}
		ms, err = parser.Parse(strings.Join(args, joiner))
	}
	if err != nil {
		return err
	}
	logger.Debug("parsed", "input", args, "ms", ms)

	out := util.FormatMilliseconds(ms, o.human)
	if o.duration {
		out += "\t" + readable.ToDuration(ms).String()
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
