package model

import (
	"fmt"
)

// Handle references a model in a Store. Handles are cheap to copy and
// compare by id.
type Handle struct {
	id int
	m  *Model
}

func (h Handle) ID() int       { return h.id }
func (h Handle) Name() string  { return h.m.Name() }
func (h Handle) Model() *Model { return h.m }

func (h Handle) String() string { return h.m.Name() }

// Store is an append-only arena of immutable models. Models are only
// ever added, so handles stay valid for the life of the store.
type Store struct {
	models []*Model
}

func NewStore() *Store {
	return &Store{}
}

// Add stores a model and returns its handle.
func (s *Store) Add(m *Model) Handle {
	h := Handle{id: len(s.models), m: m}
	s.models = append(s.models, m)
	return h
}

// Count returns how many models are stored.
func (s *Store) Count() int { return len(s.models) }

// Handle rebuilds the handle for an id. An id that was never issued is
// a programming error.
func (s *Store) Handle(id int) Handle {
	if id < 0 || id >= len(s.models) {
		panic(fmt.Sprintf("model: handle %d does not exist", id))
	}
	return Handle{id: id, m: s.models[id]}
}

// Handles returns handles for every stored model in insertion order.
func (s *Store) Handles() []Handle {
	out := make([]Handle, len(s.models))
	for i, m := range s.models {
		out[i] = Handle{id: i, m: m}
	}
	return out
}
