package service

import (
	"errors"
	"fmt"
)

// Kind classifies a list storage failure.
type Kind int

const (
	// KindIO covers every failure that is not one of the kinds below.
	KindIO Kind = iota
	// KindAlreadyExists means the target list already exists.
	KindAlreadyExists
	// KindNotFound means the list does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindAlreadyExists:
		return "already exists"
	case KindNotFound:
		return "not found"
	default:
		return "io"
	}
}

// Sentinels for errors.Is matching against an *Error of the same kind.
var (
	ErrAlreadyExists = errors.New("list already exists")
	ErrNotFound      = errors.New("list not found")
	ErrIO            = errors.New("list io error")
)

// ErrInvalidName is wrapped in a KindIO error when a name cannot map to a file.
var ErrInvalidName = errors.New("invalid list name")

// Error is returned by Service implementations.
type Error struct {
	Kind Kind
	Op   string // "create", "rename", "delete", "enumerate"
	Name string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAlreadyExists:
		return fmt.Sprintf("list already exists: %s", e.Name)
	case KindNotFound:
		return fmt.Sprintf("list not found: %s", e.Name)
	}
	if e.Name == "" {
		return fmt.Sprintf("%s lists: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s list %s: %v", e.Op, e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrAlreadyExists:
		return e.Kind == KindAlreadyExists
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrIO:
		return e.Kind == KindIO
	}
	return false
}

// AlreadyExists builds a KindAlreadyExists error.
func AlreadyExists(op, name string) *Error {
	return &Error{Kind: KindAlreadyExists, Op: op, Name: name}
}

// NotFound builds a KindNotFound error.
func NotFound(op, name string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Name: name}
}

// IOError wraps err as a KindIO error.
func IOError(op, name string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Name: name, Err: err}
}

// KindOf returns the kind of err, or KindIO if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindIO
}
