package core

import (
	"fmt"
	"sort"
	"sync"
)

// SchemaRegistry holds the schemas known to an engine, keyed by project
// code and module name. Safe for concurrent use.
type SchemaRegistry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewSchemaRegistry returns an empty registry.
func NewSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{schemas: make(map[string]*Schema)}
}

// Register validates a schema and adds it to the registry.
// Registering the same (project, module) pair twice is an error.
func (r *SchemaRegistry) Register(s *Schema) error {
	if s == nil {
		return fmt.Errorf("register: nil schema")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[s.Key()]; exists {
		return &ConfigurationError{
			Project: s.ProjectCode,
			Module:  s.ModuleName,
			Reason:  "schema already registered",
		}
	}
	r.schemas[s.Key()] = s
	return nil
}

// MustRegister is Register for wiring at startup.
// Panics if the schema is invalid or already registered.
func (r *SchemaRegistry) MustRegister(s *Schema) {
	if err := r.Register(s); err != nil {
		panic(fmt.Sprintf("register schema: %v", err))
	}
}

// Get returns the schema for a project and module. An empty module
// resolves the project-level default, when one is registered.
// Returns false if not found.
func (r *SchemaRegistry) Get(project, module string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[project+"/"+module]
	return s, ok
}

// All returns all registered schemas.
// Sorted by project then by module for consistent ordering.
func (r *SchemaRegistry) All() []*Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Schema, 0, len(r.schemas))
	for _, s := range r.schemas {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].ProjectCode != result[j].ProjectCode {
			return result[i].ProjectCode < result[j].ProjectCode
		}
		return result[i].ModuleName < result[j].ModuleName
	})

	return result
}

// ByProject returns all schemas for a specific project code.
// Sorted by module for consistent ordering.
func (r *SchemaRegistry) ByProject(project string) []*Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Schema
	for _, s := range r.schemas {
		if s.ProjectCode == project {
			result = append(result, s)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ModuleName < result[j].ModuleName
	})

	return result
}

// Projects returns all unique project codes.
// Sorted alphabetically.
func (r *SchemaRegistry) Projects() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	for _, s := range r.schemas {
		seen[s.ProjectCode] = true
	}

	projects := make([]string, 0, len(seen))
	for p := range seen {
		projects = append(projects, p)
	}

	sort.Strings(projects)
	return projects
}

// Len returns the number of registered schemas.
func (r *SchemaRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}
