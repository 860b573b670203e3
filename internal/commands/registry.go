package commands

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry holds grammar rules keyed by name.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]Rule),
	}
}

// Register adds a rule to the registry.
// Returns an error if a rule with the same keywords is already registered.
func (r *Registry) Register(rule Rule) error {
	if len(rule.Keywords) == 0 {
		return errors.New("rule has no keywords")
	}
	if rule.Build == nil {
		return fmt.Errorf("rule has no builder: %s", rule.Name())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := rule.Name()
	if _, exists := r.rules[name]; exists {
		return fmt.Errorf("rule already registered: %s", name)
	}
	r.rules[name] = rule
	return nil
}

// Find looks up a rule by name.
func (r *Registry) Find(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[name]
	return rule, ok
}

// All returns all rules sorted by name.
func (r *Registry) All() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Rule, len(names))
	for i, name := range names {
		result[i] = r.rules[name]
	}
	return result
}

// DefaultRegistry is the grammar used by Parse.
var DefaultRegistry = NewRegistry()

// Register adds a rule to the default registry.
func Register(rule Rule) {
	if err := DefaultRegistry.Register(rule); err != nil {
		panic(err)
	}
}
