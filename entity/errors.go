package entity

import "fmt"

// NetworkError is reported by backends on transport or parse failure.
type NetworkError struct {
	Cause error
}

func (err *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", err.Cause)
}

func (err *NetworkError) Unwrap() error {
	return err.Cause
}
