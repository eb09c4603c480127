package repository

import "fmt"

// StoreError reports a failed document store operation.
// Err is the driver's own error; its text is what API clients see.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Cause returns the driver error text without the operation prefix.
func (e *StoreError) Cause() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Err.Error()
}
