package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/dsviz/sequence"
	"github.com/katalvlaran/dsviz/sorting"
)

// SortOptions holds flags for the sort command.
type SortOptions struct {
	*RootOptions
	Algorithm string
	Count     int
	Min       int
	Max       int
	Seed      int64
	Values    string
	Delay     time.Duration
}

// sortReport is the JSON payload of a sort run.
type sortReport struct {
	RunID       string              `json:"run_id"`
	Algorithm   string              `json:"algorithm"`
	Input       []int               `json:"input"`
	Passes      []sorting.Pass[int] `json:"passes"`
	Sorted      []int               `json:"sorted"`
	Comparisons int                 `json:"comparisons"`
	Swaps       int                 `json:"swaps"`
	ElapsedMS   float64             `json:"elapsed_ms"`
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions, e env) *cobra.Command {
	opts := &SortOptions{RootOptions: rootOpts}
	def := DefaultConfig().Sort

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort generated or given integers, printing every pass",
		Long: `Sort an array with bubble or selection sort and print the array after every
pass, followed by the sorted result, comparison and swap counts, and elapsed time.

The array comes from --values, or is generated with --count/--min/--max/--seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, opts, e)
		},
	}

	cmd.Flags().StringVarP(&opts.Algorithm, "algorithm", "a", def.Algorithm, "sorting algorithm (bubble|selection)")
	cmd.Flags().StringVar(&opts.Values, "values", "", `explicit input, e.g. "5,3,8,1"`)
	addGenerateFlags(cmd, &opts.Count, &opts.Min, &opts.Max, &opts.Seed)
	cmd.Flags().DurationVar(&opts.Delay, "delay", def.Delay, "pause after each printed pass (e.g. 500ms)")

	return cmd
}

// addGenerateFlags registers the array-generation flags shared by sort and generate.
func addGenerateFlags(cmd *cobra.Command, count, lo, hi *int, seed *int64) {
	def := DefaultConfig().Sort
	cmd.Flags().IntVarP(count, "count", "n", def.Count, fmt.Sprintf("number of elements (1-%d)", sequence.MaxCount))
	cmd.Flags().IntVar(lo, "min", def.Min, "smallest generated value")
	cmd.Flags().IntVar(hi, "max", def.Max, "largest generated value")
	cmd.Flags().Int64Var(seed, "seed", def.Seed, "random seed (0 = new seed each run)")
}

// mergeSortConfig fills every flag the user did not set from the loaded config.
func mergeSortConfig(cmd *cobra.Command, cfg SortConfig, algorithm *string, count, lo, hi *int, seed *int64, delay *time.Duration) {
	flags := cmd.Flags()
	if algorithm != nil && !flags.Changed("algorithm") {
		*algorithm = cfg.Algorithm
	}
	if !flags.Changed("count") {
		*count = cfg.Count
	}
	if !flags.Changed("min") {
		*lo = cfg.Min
	}
	if !flags.Changed("max") {
		*hi = cfg.Max
	}
	if !flags.Changed("seed") {
		*seed = cfg.Seed
	}
	if delay != nil && !flags.Changed("delay") {
		*delay = cfg.Delay
	}
}

// generateInput draws count values in [lo,hi]; seed 0 is replaced by a clock-derived seed.
func generateInput(e env, count, lo, hi int, seed int64) ([]int, error) {
	if lo > hi {
		return nil, fmt.Errorf("%w: --min %d exceeds --max %d", sequence.ErrInvalidInput, lo, hi)
	}
	if seed == 0 {
		seed = e.now().UnixNano()
	}
	return sequence.Generate(count, sequence.WithSeed(seed), sequence.WithRange(lo, hi))
}

func runSort(cmd *cobra.Command, opts *SortOptions, e env) error {
	mergeSortConfig(cmd, opts.Config.Sort, &opts.Algorithm, &opts.Count, &opts.Min, &opts.Max, &opts.Seed, &opts.Delay)

	alg, err := sorting.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid input", err)
	}
	if opts.Delay < 0 {
		return NewExitError(ExitCommandError, "invalid input: --delay must not be negative")
	}

	label := "Generated"
	var input []int
	if opts.Values != "" {
		label = "Input"
		input, err = sequence.ParseInts(opts.Values)
	} else {
		input, err = generateInput(e, opts.Count, opts.Min, opts.Max, opts.Seed)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid input", err)
	}

	f := opts.formatter(cmd)
	w := cmd.OutOrStdout()
	p := message.NewPrinter(language.English)
	logger := opts.Logger

	if !f.IsJSON() {
		fmt.Fprintf(w, "%s array: %s\n", label, formatInts(input))
		fmt.Fprintf(w, "Algorithm: %s\n", alg)
	}

	var rec sorting.Recorder[int]
	onPass := func(snapshot []int, pass, comparisons, swaps int) {
		logger.Debug("sort pass",
			slog.Int("pass", pass),
			slog.Int("comparisons", comparisons),
			slog.Int("swaps", swaps),
		)
		if f.IsJSON() {
			rec.OnPass(snapshot, pass, comparisons, swaps)
		} else {
			fmt.Fprintf(w, "Pass %d: %s\n", pass, formatInts(snapshot))
		}
		if opts.Delay > 0 {
			e.sleep(opts.Delay)
		}
	}

	start := e.now()
	res, err := sorting.Sort(input, alg, sorting.WithOnPass(onPass))
	if err != nil {
		if errors.Is(err, sorting.ErrUnknownAlgorithm) {
			return WrapExitError(ExitCommandError, "invalid input", err)
		}
		return err
	}
	elapsed := e.now().Sub(start)

	logger.Info("sort finished",
		slog.String("algorithm", alg.String()),
		slog.Int("n", len(input)),
		slog.Int("comparisons", res.Comparisons),
		slog.Int("swaps", res.Swaps),
		slog.Duration("elapsed", elapsed),
	)

	if f.IsJSON() {
		return f.Success(sortReport{
			RunID:       e.newRunID(),
			Algorithm:   alg.String(),
			Input:       input,
			Passes:      rec.Passes,
			Sorted:      res.Sorted,
			Comparisons: res.Comparisons,
			Swaps:       res.Swaps,
			ElapsedMS:   float64(elapsed) / float64(time.Millisecond),
		})
	}

	fmt.Fprintf(w, "\nFinal sorted array: %s\n\n", formatInts(res.Sorted))
	p.Fprintf(w, "Time taken: %.3f seconds\n", elapsed.Seconds())
	p.Fprintf(w, "Final Stats - Comparisons: %d, Swaps: %d\n", res.Comparisons, res.Swaps)
	return nil
}
