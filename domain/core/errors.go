package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrWrongInputType  = errors.New("input is not a valid tabular structure")
	ErrEmptyInput      = errors.New("input has zero rows")
	ErrMissingColumn   = errors.New("column not found in input")
	ErrEmptyColumnList = errors.New("no columns requested")
	ErrEmptyResult     = errors.New("selection yields zero columns")

	// Fit/transform contract errors
	ErrSchemaMismatch = errors.New("column storage types changed between fit and transform")
	ErrShapeMismatch  = errors.New("column count changed between fit and transform")
	ErrNotFitted      = errors.New("transform called before fit")

	// Profiling errors
	ErrUnsupportedDtype  = errors.New("unsupported storage type")
	ErrInvalidTarget     = errors.New("target column has only one unique value")
	ErrInvalidImputation = errors.New("imputation configuration incompatible with dtype")

	// Extension points declared but not yet defined
	ErrNotImplemented = errors.New("not implemented")
)

// Error constructors with context

func NewMissingColumnError(names []string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(names, ", "))
}

func NewEmptyResultError(detail string) error {
	return fmt.Errorf("%w: %s", ErrEmptyResult, detail)
}

func NewSchemaMismatchError(fitTypes, currentTypes string) error {
	return fmt.Errorf("%w: fit types [%s], transform types [%s]", ErrSchemaMismatch, fitTypes, currentTypes)
}

func NewShapeMismatchError(fitCols, gotCols int) error {
	return fmt.Errorf("%w: trained on %d columns, got %d", ErrShapeMismatch, fitCols, gotCols)
}

func NewNotFittedError(component string) error {
	return fmt.Errorf("%w: %s", ErrNotFitted, component)
}

func NewUnsupportedDtypeError(storageType string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedDtype, storageType)
}

func NewInvalidTargetError(column string) error {
	return fmt.Errorf("%w: %s", ErrInvalidTarget, column)
}

func NewInvalidImputationError(scheme, dtype string) error {
	return fmt.Errorf("%w: scheme %q is not valid for dtype %q", ErrInvalidImputation, scheme, dtype)
}

func NewInvalidImputationValueError(value interface{}, dtype string) error {
	return fmt.Errorf("%w: value %v is not valid for dtype %q", ErrInvalidImputation, value, dtype)
}

// Error checking helpers

// IsInputError reports whether err concerns the shape or content of the input frame.
func IsInputError(err error) bool {
	return errors.Is(err, ErrWrongInputType) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrEmptyColumnList) ||
		errors.Is(err, ErrEmptyResult)
}

// IsContractError reports whether err concerns the fit/transform lifecycle.
func IsContractError(err error) bool {
	return errors.Is(err, ErrSchemaMismatch) ||
		errors.Is(err, ErrShapeMismatch) ||
		errors.Is(err, ErrNotFitted)
}

// IsProfilingError reports whether err was raised while building a descriptor.
func IsProfilingError(err error) bool {
	return errors.Is(err, ErrUnsupportedDtype) ||
		errors.Is(err, ErrInvalidTarget) ||
		errors.Is(err, ErrInvalidImputation)
}
