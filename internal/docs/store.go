package docs

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested article or example does not exist.
var ErrNotFound = errors.New("not found")

// Store is the immutable Document Store. Iteration order matches the
// order articles were given to NewStore.
type Store struct {
	byID  map[string]*Article
	order []*Article
}

// NewStore builds a Store from the given articles.
// Every article must have a unique ID and a known category.
func NewStore(articles []Article) (*Store, error) {
	s := &Store{
		byID:  make(map[string]*Article, len(articles)),
		order: make([]*Article, 0, len(articles)),
	}
	for i := range articles {
		a := articles[i]
		if a.ID == "" {
			return nil, fmt.Errorf("article %d: empty id", i)
		}
		if _, dup := s.byID[a.ID]; dup {
			return nil, fmt.Errorf("article %q: duplicate id", a.ID)
		}
		if !a.Category.Valid() {
			return nil, fmt.Errorf("article %q: unknown category %q", a.ID, a.Category)
		}
		s.byID[a.ID] = &a
		s.order = append(s.order, &a)
	}
	return s, nil
}

// Get returns the article with the given id.
// Returns ErrNotFound if the id is absent.
func (s *Store) Get(id string) (*Article, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("document %q: %w", id, ErrNotFound)
	}
	return a, nil
}

// All returns every article in insertion order.
func (s *Store) All() []*Article {
	return s.order
}

// ByCategory returns the articles in the given category, insertion order.
func (s *Store) ByCategory(c Category) []*Article {
	var out []*Article
	for _, a := range s.order {
		if a.Category == c {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the number of articles in the store.
func (s *Store) Len() int {
	return len(s.order)
}

// ExampleStore is the immutable Example Store, parallel to Store.
type ExampleStore struct {
	byName map[string]*Example
	order  []*Example
}

// NewExampleStore builds an ExampleStore from the given examples.
func NewExampleStore(examples []Example) (*ExampleStore, error) {
	s := &ExampleStore{
		byName: make(map[string]*Example, len(examples)),
		order:  make([]*Example, 0, len(examples)),
	}
	for i := range examples {
		e := examples[i]
		if e.Name == "" {
			return nil, fmt.Errorf("example %d: empty name", i)
		}
		if _, dup := s.byName[e.Name]; dup {
			return nil, fmt.Errorf("example %q: duplicate name", e.Name)
		}
		s.byName[e.Name] = &e
		s.order = append(s.order, &e)
	}
	return s, nil
}

// Get returns the example with the given name.
// Returns ErrNotFound if the name is absent.
func (s *ExampleStore) Get(name string) (*Example, error) {
	e, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("example %q: %w", name, ErrNotFound)
	}
	return e, nil
}

// All returns every example in insertion order.
func (s *ExampleStore) All() []*Example {
	return s.order
}

// Names returns the example names in insertion order.
func (s *ExampleStore) Names() []string {
	names := make([]string, len(s.order))
	for i, e := range s.order {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of examples in the store.
func (s *ExampleStore) Len() int {
	return len(s.order)
}
