package services

import "github.com/camden-git/fyyur/forms"

// Status classifies the outcome of a directory operation.
type Status int

const (
	StatusOK Status = iota
	// StatusInvalid means the submitted form failed validation; nothing was written.
	StatusInvalid
	// StatusNotFound means the addressed venue or artist does not exist.
	StatusNotFound
	// StatusFailed means the store rejected the operation; any transaction was rolled back.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalid:
		return "invalid"
	case StatusNotFound:
		return "not_found"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Result carries the value of a directory operation or the reason it has none.
type Result[T any] struct {
	Status Status
	Value  T
	Errors forms.Errors
	Err    error
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool {
	return r.Status == StatusOK
}

func ok[T any](v T) Result[T] {
	return Result[T]{Status: StatusOK, Value: v}
}

func invalid[T any](v T, errs forms.Errors) Result[T] {
	return Result[T]{Status: StatusInvalid, Value: v, Errors: errs}
}

func notFound[T any](err error) Result[T] {
	return Result[T]{Status: StatusNotFound, Err: err}
}

func failed[T any](v T, err error) Result[T] {
	return Result[T]{Status: StatusFailed, Value: v, Err: err}
}
