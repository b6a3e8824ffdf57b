package services

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Reorder when an index does not fall
// within the sequence.
var ErrIndexOutOfRange = errors.New("index out of range")

// Reorder returns a new sequence with the element at from removed and
// reinserted at to; all other elements keep their relative order. A
// negative to means the move was cancelled (drag released outside a valid
// drop target) and the input is returned unchanged.
func Reorder[T any](items []T, from, to int) ([]T, error) {
	if to < 0 {
		return items, nil
	}
	if from < 0 || from >= len(items) || to >= len(items) {
		return nil, fmt.Errorf("reorder from %d to %d in %d items: %w",
			from, to, len(items), ErrIndexOutOfRange)
	}

	moved := items[from]
	rest := make([]T, 0, len(items)-1)
	rest = append(rest, items[:from]...)
	rest = append(rest, items[from+1:]...)

	out := make([]T, 0, len(items))
	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)
	return out, nil
}
