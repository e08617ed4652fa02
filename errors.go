package naru

import (
	"errors"
	"fmt"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrUnsupportedCategory is matched by every *UnsupportedCategoryError.
	ErrUnsupportedCategory = errors.New("naru: unsupported category")

	// ErrUnsupportedOperation is matched by every *UnsupportedOperationError.
	ErrUnsupportedOperation = errors.New("naru: unsupported operation")

	// ErrInvalidArgument wraps parameter errors, including ValidationErrors.
	ErrInvalidArgument = errors.New("naru: invalid argument")

	// ErrKeyCollision is returned when two mapping keys transform to the same key.
	ErrKeyCollision = errors.New("naru: key collision")

	// ErrInvalidSplit is returned when an item cannot be divided as requested.
	ErrInvalidSplit = errors.New("naru: invalid split")

	// ErrUnknownSlot is returned by Slots.Set for names outside the slot set.
	ErrUnknownSlot = errors.New("naru: unknown slot")

	// ErrSlotsDeclared is returned by AddSlots when item already has slots.
	ErrSlotsDeclared = errors.New("naru: slots already declared")
)

// ValidationErrors is a map of parameter names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation and is wrapped
// in ErrInvalidArgument when an operation rejects its parameters.
type ValidationErrors = validation.Errors

// UnsupportedCategoryError reports an item, or an element nested inside an
// item, whose category has no implementation for Op.
type UnsupportedCategoryError struct {
	Op       Operation
	Category Category
	Type     reflect.Type
}

func (e *UnsupportedCategoryError) Error() string {
	typ := "nil"
	if e.Type != nil {
		typ = e.Type.String()
	}
	return fmt.Sprintf("naru: %s does not support %s items (%s)", e.Op, e.Category, typ)
}

// Is makes errors.Is(err, ErrUnsupportedCategory) true.
func (e *UnsupportedCategoryError) Is(target error) bool {
	return target == ErrUnsupportedCategory
}

// UnsupportedOperationError reports an operation name with no registration.
type UnsupportedOperationError struct {
	Name string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("naru: unknown operation %q", e.Name)
}

// Is makes errors.Is(err, ErrUnsupportedOperation) true.
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

func unsupported(op Operation, rv reflect.Value) error {
	e := &UnsupportedCategoryError{Op: op, Category: classify(rv)}
	if rv = indirect(rv); rv.IsValid() {
		e.Type = rv.Type()
	}
	return e
}

func invalidArgument(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}
