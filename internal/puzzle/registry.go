package puzzle

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the solvers known to the runner, keyed by day.
type Registry struct {
	solvers map[int]Solver
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		solvers: make(map[int]Solver),
	}
}

// Register adds a solver. Registering a day twice is an error.
func (r *Registry) Register(s Solver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s == nil {
		return fmt.Errorf("solver cannot be nil")
	}
	day := s.Day()
	if day < 1 || day > 25 {
		return fmt.Errorf("day %d out of range 1-25", day)
	}
	if _, ok := r.solvers[day]; ok {
		return fmt.Errorf("day %d already registered", day)
	}
	r.solvers[day] = s
	return nil
}

// Get returns the solver for day.
func (r *Registry) Get(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// List returns all solvers sorted by day.
func (r *Registry) List() []Solver {
	r.mu.RLock()
	defer r.mu.RUnlock()

	solvers := make([]Solver, 0, len(r.solvers))
	for _, s := range r.solvers {
		solvers = append(solvers, s)
	}
	sort.Slice(solvers, func(i, j int) bool {
		return solvers[i].Day() < solvers[j].Day()
	})
	return solvers
}

// Days returns the registered day numbers in order.
func (r *Registry) Days() []int {
	solvers := r.List()
	days := make([]int, len(solvers))
	for i, s := range solvers {
		days[i] = s.Day()
	}
	return days
}

// Count returns the number of registered solvers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.solvers)
}
