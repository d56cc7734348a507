// SPDX-License-Identifier: GPL-2.0-or-later

package spray

import "strings"

// Set is an ordered collection of sprays keyed by ID, ignoring case. Adding
// an existing ID replaces the spray in place.
type Set struct {
	list []*Spray
	byID map[string]int
}

func NewSet() *Set {
	return &Set{byID: map[string]int{}}
}

// NewBaseSet returns a set holding the base game sprays.
func NewBaseSet() *Set {
	s := NewSet()
	for _, sp := range BaseGame() {
		s.Add(sp)
	}
	return s
}

func key(id string) string {
	return strings.ToUpper(id)
}

func (s *Set) Add(sp *Spray) {
	k := key(sp.ID)
	if i, ok := s.byID[k]; ok {
		s.list[i] = sp
		return
	}
	s.byID[k] = len(s.list)
	s.list = append(s.list, sp)
}

func (s *Set) Get(id string) (*Spray, bool) {
	i, ok := s.byID[key(id)]
	if !ok {
		return nil, false
	}
	return s.list[i], true
}

// getOrCreate returns the spray for id, adding a blank one if needed.
func (s *Set) getOrCreate(id string) *Spray {
	if sp, ok := s.Get(id); ok {
		return sp
	}
	sp := &Spray{ID: id, Name: DisplayName(id)}
	s.Add(sp)
	return sp
}

// Merge adds every spray of o, in order.
func (s *Set) Merge(o *Set) {
	for _, sp := range o.list {
		s.Add(sp)
	}
}

// List returns the sprays in insertion order.
func (s *Set) List() []*Spray {
	return append([]*Spray(nil), s.list...)
}

func (s *Set) Len() int {
	return len(s.list)
}

// Find returns the first spray whose name or ID matches n, ignoring case.
// The SKINCOLOR_ prefix of IDs is optional.
func (s *Set) Find(n string) (*Spray, bool) {
	for _, sp := range s.list {
		if strings.EqualFold(sp.Name, n) || strings.EqualFold(sp.ID, n) || strings.EqualFold(sp.ID, idPrefix+n) {
			return sp, true
		}
	}
	return nil, false
}
