// Package ledgererror defines the typed errors surfaced by ledger operations.
package ledgererror

import "fmt"

// InvalidAmountError reports an amount that either does not parse as a number
// or is not strictly positive. Both cases are deliberately the same error:
// callers only need to know the amount was unusable.
type InvalidAmountError struct {
	Value string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount: '%s' must be a positive number", e.Value)
}

// UnknownCategoryError reports a transaction referencing a category that is
// not present in the document's category registry.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("category '%s' does not exist", e.Category)
}

// EmptyDescriptionError reports a transaction with no description text.
type EmptyDescriptionError struct{}

func (e *EmptyDescriptionError) Error() string {
	return "description cannot be empty"
}

// StoreError wraps an I/O failure while reading or writing the ledger file.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("ledger store: failed to %s '%s': %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
