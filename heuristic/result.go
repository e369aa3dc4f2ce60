package heuristic

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Kind tags a Result. The declaration order is the order of the extremes.
type Kind uint8

const (
	Loss Kind = iota
	Draw
	Unknown
	Win
)

// Result is either an exact outcome or a numeric estimate from the evaluating side's point of
// view. Estimates rank against Draw by their sign, and Win and Loss bound everything.
type Result[T Number] struct {
	Kind     Kind
	Estimate T // only meaningful for Unknown
}

func WinResult[T Number]() Result[T]  { return Result[T]{Kind: Win} }
func LossResult[T Number]() Result[T] { return Result[T]{Kind: Loss} }
func DrawResult[T Number]() Result[T] { return Result[T]{Kind: Draw} }

func Estimate[T Number](value T) Result[T] {
	return Result[T]{Kind: Unknown, Estimate: value}
}

// Compare returns -1, 0 or +1 as r ranks below, equal to or above other.
func (r Result[T]) Compare(other Result[T]) int {
	switch {
	case r.Kind == Unknown && other.Kind == Unknown:
		return cmp.Compare(r.Estimate, other.Estimate)
	case r.Kind == Unknown && other.Kind == Draw:
		return cmp.Compare(r.Estimate, 0)
	case r.Kind == Draw && other.Kind == Unknown:
		return cmp.Compare(0, other.Estimate)
	}
	return cmp.Compare(r.rank(), other.rank())
}

// rank orders the kinds when at most one side is an estimate.
func (r Result[T]) rank() int {
	switch r.Kind {
	case Loss:
		return 0
	case Win:
		return 2
	default:
		return 1
	}
}

func (r Result[T]) String() string {
	switch r.Kind {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("%v", r.Estimate)
	}
}

// results is the bound part of Heuristic shared by every Result-valued heuristic.
type results[T Number] struct{}

func (results[T]) Min() Result[T]  { return LossResult[T]() }
func (results[T]) Max() Result[T]  { return WinResult[T]() }
func (results[T]) Draw() Result[T] { return DrawResult[T]() }
