// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"path"
	"sort"
	"sync"

	"taskcli/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	lists map[string]struct{}

	// Error injection for testing
	ListListsErr  error
	CreateListErr error
	RenameListErr error
	DeleteListErr error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{lists: make(map[string]struct{})}
}

// AddList adds a list to the fake service.
func (f *FakeService) AddList(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[name] = struct{}{}
}

// Names returns the stored list names, sorted.
func (f *FakeService) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.lists))
	for name := range f.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListLists implements service.Service.
func (f *FakeService) ListLists(ctx context.Context) ([]string, error) {
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	return f.Names(), nil
}

// CreateList implements service.Service.
func (f *FakeService) CreateList(ctx context.Context, name string) (service.List, error) {
	if f.CreateListErr != nil {
		return service.List{}, f.CreateListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.lists[name]; ok {
		return service.List{}, service.AlreadyExists("create", name)
	}
	f.lists[name] = struct{}{}
	return service.List{Name: name, Path: path.Join("fake", name+".txt")}, nil
}

// RenameList implements service.Service.
func (f *FakeService) RenameList(ctx context.Context, from, to string) error {
	if f.RenameListErr != nil {
		return f.RenameListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.lists[from]; !ok {
		return service.NotFound("rename", from)
	}
	if _, ok := f.lists[to]; ok {
		return service.AlreadyExists("rename", to)
	}
	delete(f.lists, from)
	f.lists[to] = struct{}{}
	return nil
}

// DeleteList implements service.Service.
func (f *FakeService) DeleteList(ctx context.Context, name string) error {
	if f.DeleteListErr != nil {
		return f.DeleteListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.lists[name]; !ok {
		return service.NotFound("delete", name)
	}
	delete(f.lists, name)
	return nil
}
