package models

// Result is what services and ceremonies hand back to the UI layer. Callers
// branch on Success and Flag instead of on returned errors.
type Result[T any] struct {
	Success bool
	Value   T
	Flag    ErrorFlag
	Status  int
	Err     error
}

// OK wraps a successful value.
func OK[T any](v T) Result[T] {
	return Result[T]{Success: true, Value: v}
}

// Fail converts err into a failed result, extracting flag and status from
// the error taxonomy.
func Fail[T any](err error) Result[T] {
	return Result[T]{
		Success: false,
		Flag:    FlagOf(err),
		Status:  StatusOf(err),
		Err:     err,
	}
}

// Cancelled reports whether the result is a user or platform abort.
func (r Result[T]) Cancelled() bool {
	return !r.Success && r.Flag == FlagCancelled
}
