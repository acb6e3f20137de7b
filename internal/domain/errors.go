package domain

import "fmt"

// DomainError reports arithmetic that is undefined for the given inputs,
// such as a zero-beta equity in the Sharpe objective or a zero total
// investment when computing weights.
type DomainError struct {
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("domain error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("domain error: %s", e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// OptimizationError reports that the LP solver could not produce a solution
// (infeasible, unbounded, or a solver failure). When it is returned the
// portfolio has not been modified.
type OptimizationError struct {
	Message string
	Err     error
}

func (e *OptimizationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("optimization error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("optimization error: %s", e.Message)
}

func (e *OptimizationError) Unwrap() error {
	return e.Err
}

// ValidationError reports malformed portfolio input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
