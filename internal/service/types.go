package service

// List is a handle to a persisted task list.
type List struct {
	Name string
	Path string
}
