package cli

import (
	"github.com/spf13/cobra"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Count int
	Min   int
	Max   int
	Seed  int64
}

// generated is the payload of the generate command.
type generated struct {
	Values []int `json:"values"`
}

func (g generated) String() string {
	return "Generated array: " + formatInts(g.Values)
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions, e env) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random integers for a sort run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mergeSortConfig(cmd, opts.Config.Sort, nil, &opts.Count, &opts.Min, &opts.Max, &opts.Seed, nil)

			values, err := generateInput(e, opts.Count, opts.Min, opts.Max, opts.Seed)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid input", err)
			}
			return opts.formatter(cmd).Success(generated{Values: values})
		},
	}
	addGenerateFlags(cmd, &opts.Count, &opts.Min, &opts.Max, &opts.Seed)

	return cmd
}
