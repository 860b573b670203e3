// Package service defines the backend-agnostic interface for list operations.
package service

import "context"

// Service defines the interface for list storage operations.
// The dispatcher reaches the filesystem only through this interface.
type Service interface {
	// ListLists returns the names of all lists in a deterministic order.
	ListLists(ctx context.Context) ([]string, error)

	// CreateList creates a new, empty list.
	// Returns an AlreadyExists error if a list with that name exists.
	CreateList(ctx context.Context, name string) (List, error)

	// RenameList renames a list.
	// Returns NotFound if from is missing, AlreadyExists if to is taken.
	RenameList(ctx context.Context, from, to string) error

	// DeleteList deletes a list.
	// Returns NotFound if the list does not exist.
	DeleteList(ctx context.Context, name string) error
}
