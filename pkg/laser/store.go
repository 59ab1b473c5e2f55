package laser

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"golang.org/x/xerrors"
)

// Store owns the named laser conditions. It is mutable and exclusively
// owned by the application layer; generation code only reads from it.
type Store struct {
	defaultID  *ConditionID
	conditions map[ConditionID]*Condition
	names      map[string]ConditionID
	nextID     ConditionID
}

func NewStore() *Store {
	return &Store{
		conditions: map[ConditionID]*Condition{},
		names:      map[string]ConditionID{},
	}
}

// Get returns the condition for id. A missing id means referential
// integrity was broken by the caller, which is a programming error.
func (s *Store) Get(id ConditionID) *Condition {
	c, ok := s.conditions[id]
	if !ok {
		panic(fmt.Sprintf("laser: condition %d does not exist", id))
	}
	return c
}

// Lookup is the non-panicking form of Get, for user-facing name/id
// resolution.
func (s *Store) Lookup(id ConditionID) (*Condition, bool) {
	c, ok := s.conditions[id]
	return c, ok
}

// FindByName resolves a condition by display name.
func (s *Store) FindByName(name string) (*Condition, bool) {
	id, ok := s.names[name]
	if !ok {
		return nil, false
	}
	return s.conditions[id], true
}

// NewCondition creates a condition with a generated name and one
// starter sequence item.
func (s *Store) NewCondition() *Condition {
	id := s.nextID
	s.nextID++
	c := &Condition{
		ID:    id,
		Name:  fmt.Sprintf("New Condition %d", id),
		Color: White,
		Sequence: Sequence{
			GrblConst{Passes: 1, Power: 300, Feed: 1000},
		},
	}
	s.conditions[id] = c
	s.names[c.Name] = id
	return c
}

// Rename changes a condition's display name. Names must stay unique.
func (s *Store) Rename(id ConditionID, name string) error {
	if existing, ok := s.names[name]; ok && existing != id {
		return xerrors.Errorf("there is already a condition with the name %q", name)
	}
	c := s.Get(id)
	delete(s.names, c.Name)
	c.Name = name
	s.names[name] = id
	return nil
}

// Remove deletes a condition. Entities referencing it must be updated
// by the caller first.
func (s *Store) Remove(id ConditionID) {
	c := s.Get(id)
	delete(s.names, c.Name)
	delete(s.conditions, id)
	if s.defaultID != nil && *s.defaultID == id {
		s.defaultID = nil
	}
}

// SetDefault marks id as the condition applied to new placements.
func (s *Store) SetDefault(id ConditionID) {
	s.Get(id)
	s.defaultID = &id
}

// Default returns the default condition id, creating a condition if
// the store is empty and electing one if none is marked.
func (s *Store) Default() ConditionID {
	if len(s.conditions) == 0 {
		s.NewCondition()
	}
	if s.defaultID == nil {
		ids := s.ids()
		s.defaultID = &ids[0]
	}
	return *s.defaultID
}

// Count returns the number of stored conditions.
func (s *Store) Count() int { return len(s.conditions) }

// Conditions returns the conditions ordered by id.
func (s *Store) Conditions() []*Condition {
	ids := s.ids()
	out := make([]*Condition, len(ids))
	for i, id := range ids {
		out[i] = s.conditions[id]
	}
	return out
}

func (s *Store) ids() []ConditionID {
	ids := make([]ConditionID, 0, len(s.conditions))
	for id := range s.conditions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// storeFile is the on-disk shape: the default id plus the ordered
// condition list.
type storeFile struct {
	Default    *ConditionID `json:"default,omitempty"`
	Conditions []*Condition `json:"conditions"`
}

// Load reads a condition store from a JSON file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("read conditions: %w", err)
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, xerrors.Errorf("parse conditions: %w", err)
	}

	s := NewStore()
	for _, c := range file.Conditions {
		s.conditions[c.ID] = c
		s.names[c.Name] = c.ID
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
	}
	if file.Default != nil {
		if _, ok := s.conditions[*file.Default]; ok {
			s.defaultID = file.Default
		}
	}
	return s, nil
}

// Save writes the store to a JSON file.
func (s *Store) Save(path string) error {
	file := storeFile{
		Default:    s.defaultID,
		Conditions: s.Conditions(),
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return xerrors.Errorf("encode conditions: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return xerrors.Errorf("write conditions: %w", err)
	}
	return nil
}
