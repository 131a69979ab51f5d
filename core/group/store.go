package group

import (
	"sort"

	"github.com/josephlewis42/groupshell/core/function"
	"github.com/josephlewis42/groupshell/core/worker"
)

// Component binds a function to an argument under a unique name.
type Component struct {
	Name     string
	Function function.Function
	Arg      int32
}

// Record is the execution record of a component's most recent launch.
type Record struct {
	Name   string
	Worker *worker.Worker
}

// Result is the value computed by a component's most recent successful run.
type Result struct {
	Name  string
	Value float64
}

// Store holds the components of a group and what happened when they ran.
// All listings are sorted by component name.
type Store struct {
	components map[string]Component
	records    map[string]*worker.Worker
	results    map[string]float64
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Put inserts or overwrites the component with c.Name.
func (s *Store) Put(c Component) {
	s.components[c.Name] = c
}

// Get looks up a component by name.
func (s *Store) Get(name string) (Component, bool) {
	c, ok := s.components[name]
	return c, ok
}

// Components lists every stored component.
func (s *Store) Components() []Component {
	out := make([]Component, 0, len(s.components))
	for _, name := range sortedKeys(s.components) {
		out = append(out, s.components[name])
	}
	return out
}

// SetRecord records the worker launched for the named component, replacing
// any earlier record.
func (s *Store) SetRecord(name string, wk *worker.Worker) {
	s.records[name] = wk
}

// Records lists every component that has been launched since the last reset.
func (s *Store) Records() []Record {
	out := make([]Record, 0, len(s.records))
	for _, name := range sortedKeys(s.records) {
		out = append(out, Record{Name: name, Worker: s.records[name]})
	}
	return out
}

// SetResult stores the value harvested from the named component.
func (s *Store) SetResult(name string, v float64) {
	s.results[name] = v
}

// Results lists every component that completed since the last reset.
func (s *Store) Results() []Result {
	out := make([]Result, 0, len(s.results))
	for _, name := range sortedKeys(s.results) {
		out = append(out, Result{Name: name, Value: s.results[name]})
	}
	return out
}

// Reset discards components, records and results.
func (s *Store) Reset() {
	s.components = make(map[string]Component)
	s.records = make(map[string]*worker.Worker)
	s.results = make(map[string]float64)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
