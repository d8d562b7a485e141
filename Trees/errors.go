package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every *InvalidInputError through errors.Is.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound matches every *NotFoundError through errors.Is.
	ErrNotFound = errors.New("not found")
)

// InvalidInputError is returned when an absent value is passed to Op.
type InvalidInputError struct {
	Op string
}

func (e *InvalidInputError) Error() string {
	return "Trees: " + e.Op + ": absent value"
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotFoundError is returned when Op can't find an element equal to V.
type NotFoundError struct {
	Op string
	V  any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Trees: %s: %v isn't in the tree", e.Op, e.V)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidSliceError is returned by From when the slice isn't strictly ascending.
// Prev and Next are the adjacent elements at Index-1 and Index that break the order.
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("Trees: slice isn't strictly ascending at index %d: %v, %v", e.Index, e.Prev, e.Next)
}
