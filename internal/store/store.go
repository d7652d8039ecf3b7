// Package store owns the task collection and its persistence. The
// whole collection is read from a single JSON file at open and
// rewritten in full after every mutation.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alimert/todo/internal/logging"
	"github.com/alimert/todo/internal/task"
)

// Store holds the ordered task collection and the path of its backing
// file. It lives for a single invocation; there is no lock file and
// no protection against concurrent processes sharing the path.
type Store struct {
	mu    sync.RWMutex
	tasks []task.Task
	path  string
}

// Open loads the collection from path. A missing, unreadable, or
// malformed file starts the store empty; load problems are logged at
// debug level and never surfaced to the caller.
func Open(path string) *Store {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.WithError(err).Debugf("could not read task file %s, starting empty", path)
		}
		return s
	}

	if err := json.Unmarshal(data, &s.tasks); err != nil {
		logging.WithError(err).Debugf("could not parse task file %s, starting empty", path)
		s.tasks = nil
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Save rewrites the backing file with the full collection as indented
// JSON. The write is a plain overwrite; an interruption mid-write can
// leave the file truncated, after which the next Open starts empty.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.save()
}

// save assumes the lock is already held.
func (s *Store) save() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []task.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// NextID returns the id for the next added task: current size + 1.
// After a removal this can mint an id equal to an existing task's,
// since ids are never renumbered; the original numbering scheme is
// kept as-is.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks) + 1
}

// Add appends the task in insertion order and persists. The in-memory
// append is not rolled back if the write fails.
func (s *Store) Add(t *task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, *t)
	return s.save()
}

// Filters narrows a List result. Zero values impose no constraint.
// When both Completed and Pending are set, Completed wins.
type Filters struct {
	Category  string
	Priority  string
	Completed bool
	Pending   bool
}

func (f Filters) match(t *task.Task) bool {
	if f.Category != "" && !strings.EqualFold(t.Category.Label(), f.Category) {
		return false
	}
	if f.Priority != "" && !strings.EqualFold(string(t.Priority), f.Priority) {
		return false
	}
	if f.Completed {
		return t.Completed
	}
	if f.Pending {
		return !t.Completed
	}
	return true
}

// List returns the tasks matching f in insertion order. The returned
// pointers reference the store's own records.
func (s *Store) List(f Filters) []*task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*task.Task
	for i := range s.tasks {
		if f.match(&s.tasks[i]) {
			out = append(out, &s.tasks[i])
		}
	}
	return out
}

// find assumes the lock is already held.
func (s *Store) find(id int) *task.Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i]
		}
	}
	return nil
}

// Complete marks the first task with the given id completed and
// persists.
func (s *Store) Complete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(id)
	if t == nil {
		return &NotFoundError{ID: id}
	}
	t.Completed = true
	return s.save()
}

// Remove deletes the first task with the given id, shifting the rest,
// and persists. Remaining tasks keep their original ids.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.save()
		}
	}
	return &NotFoundError{ID: id}
}

// Edit applies the updates to the task with the given id and
// persists. A validation failure leaves both the task and the file
// untouched.
func (s *Store) Edit(id int, u task.Updates) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(id)
	if t == nil {
		return &NotFoundError{ID: id}
	}
	if err := t.Apply(u); err != nil {
		return err
	}
	return s.save()
}

// Show returns the first task with the given id.
func (s *Store) Show(id int) (*task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.find(id)
	if t == nil {
		return nil, &NotFoundError{ID: id}
	}
	return t, nil
}
