package sorting

import "cmp"

// Pass is one observed pass, as captured by a Recorder.
type Pass[T cmp.Ordered] struct {
	Number      int `json:"pass"`
	State       []T `json:"state"`
	Comparisons int `json:"comparisons"`
	Swaps       int `json:"swaps"`
}

// Recorder accumulates every pass it observes, for replay after the run.
type Recorder[T cmp.Ordered] struct {
	Passes []Pass[T]
}

// OnPass is a PassFunc that appends to r.Passes.
func (r *Recorder[T]) OnPass(snapshot []T, pass, comparisons, swaps int) {
	r.Passes = append(r.Passes, Pass[T]{
		Number:      pass,
		State:       snapshot,
		Comparisons: comparisons,
		Swaps:       swaps,
	})
}
