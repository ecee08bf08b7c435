package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsviz/deque"
	"github.com/katalvlaran/dsviz/sequence"
)

// dequeStep is one parsed command-line operation.
type dequeStep struct {
	op    deque.Op
	value int
}

// parseDequeStep accepts front:<int>, rear:<int>, pop-front and pop-rear.
func parseDequeStep(arg string) (dequeStep, error) {
	switch arg {
	case "pop-front":
		return dequeStep{op: deque.OpRemoveFront}, nil
	case "pop-rear":
		return dequeStep{op: deque.OpRemoveRear}, nil
	}

	side, raw, ok := strings.Cut(arg, ":")
	if !ok {
		return dequeStep{}, fmt.Errorf("unknown operation %q (want front:<int>, rear:<int>, pop-front or pop-rear)", arg)
	}
	v, err := sequence.ParseInt(raw)
	if err != nil {
		return dequeStep{}, fmt.Errorf("operation %q: %w", arg, err)
	}
	switch side {
	case "front":
		return dequeStep{op: deque.OpInsertFront, value: v}, nil
	case "rear":
		return dequeStep{op: deque.OpInsertRear, value: v}, nil
	default:
		return dequeStep{}, fmt.Errorf("unknown operation %q (want front:<int>, rear:<int>, pop-front or pop-rear)", arg)
	}
}

// apply runs the step on d. For removals it returns the removed value and ok=true.
func (st dequeStep) apply(d *deque.Deque[int]) (int, bool, error) {
	switch st.op {
	case deque.OpInsertFront:
		d.InsertFront(st.value)
	case deque.OpInsertRear:
		d.InsertRear(st.value)
	case deque.OpRemoveFront:
		v, err := d.RemoveFront()
		return v, err == nil, err
	case deque.OpRemoveRear:
		v, err := d.RemoveRear()
		return v, err == nil, err
	}
	return 0, false, nil
}

// dequeReport is the rendered state of the deque after a session.
type dequeReport struct {
	Values  []string `json:"values"`
	Size    int      `json:"size"`
	Removed []int    `json:"removed,omitempty"`
	History []string `json:"history"`
}

// String renders the report like the visualizer's deque and history panes.
func (r dequeReport) String() string {
	var b strings.Builder
	for _, v := range r.Removed {
		fmt.Fprintf(&b, "Removed value: %d\n", v)
	}
	fmt.Fprintf(&b, "Size: %d\n\n", r.Size)

	content := "Empty"
	if len(r.Values) > 0 {
		content = strings.Join(r.Values, " -> ")
	}
	fmt.Fprintf(&b, "Content: %s\n\n", content)

	b.WriteString("Structure:\n")
	for i, v := range r.Values {
		fmt.Fprintf(&b, "Node %d: %s\n", i+1, v)
	}

	b.WriteString("\nHistory:")
	for _, line := range r.History {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

// NewDequeCommand creates the deque command.
func NewDequeCommand(rootOpts *RootOptions, e env) *cobra.Command {
	return &cobra.Command{
		Use:   "deque [ops...]",
		Short: "Apply operations to a fresh deque and show its contents and history",
		Long: `Apply operations, in order, to a freshly created deque of integers.

Operations:
  front:<int>   insert at the front
  rear:<int>    insert at the rear
  pop-front     remove from the front
  pop-rear      remove from the rear

Example:
  dsviz deque front:1 rear:2 front:3 pop-rear`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeque(cmd, rootOpts, e, args)
		},
	}
}

func runDeque(cmd *cobra.Command, rootOpts *RootOptions, e env, args []string) error {
	// Parse everything before touching the deque: bad input produces no output.
	steps := make([]dequeStep, 0, len(args))
	for _, arg := range args {
		st, err := parseDequeStep(arg)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid input", err)
		}
		steps = append(steps, st)
	}

	d := deque.New[int](deque.WithClock(e.now), deque.WithLogger(rootOpts.Logger))
	var removed []int
	var opErr error
	for _, st := range steps {
		v, ok, err := st.apply(d)
		if err != nil {
			opErr = err
			break
		}
		if ok {
			removed = append(removed, v)
		}
	}

	report := dequeReport{
		Values:  d.Values(),
		Size:    d.Size(),
		Removed: removed,
		History: d.HistoryLines(),
	}
	f := rootOpts.formatter(cmd)
	if opErr != nil {
		if err := f.Failure(CodeEmptyStructure, opErr.Error(), report); err != nil {
			return err
		}
		exitErr := WrapExitError(ExitFailure, "deque operation failed", opErr)
		exitErr.Reported = true
		return exitErr
	}
	return f.Success(report)
}
