package petri

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// Transition is an atomic state change. Preconditions may mix regular and inhibitor
// arcs; postconditions are regular only. A Transition never changes after construction,
// so it can be shared freely between nets and goroutines.
type Transition[P comparable] struct {
	name string
	pre  map[P]Arc
	post map[P]Arc
}

// NewTransition validates the arcs and returns the transition. The name is only used
// for display and need not be unique.
//
// An inhibitor arc in post yields an *ArcError matching ErrInhibitorPostcondition; a
// regular arc with a weight below 1 yields one matching ErrInvalidWeight.
func NewTransition[P comparable](name string, pre, post map[P]Arc) (*Transition[P], error) {
	for p, arc := range post {
		if arc.IsInhibitor() {
			return nil, &ArcError{Transition: name, Place: p, Arc: arc, Err: ErrInhibitorPostcondition}
		}
		if arc.Weight() < 1 {
			return nil, &ArcError{Transition: name, Place: p, Arc: arc, Err: ErrInvalidWeight}
		}
	}
	for p, arc := range pre {
		if !arc.IsInhibitor() && arc.Weight() < 1 {
			return nil, &ArcError{Transition: name, Place: p, Arc: arc, Err: ErrInvalidWeight}
		}
	}
	t := &Transition[P]{
		name: name,
		pre:  make(map[P]Arc, len(pre)),
		post: make(map[P]Arc, len(post)),
	}
	maps.Copy(t.pre, pre)
	maps.Copy(t.post, post)
	return t, nil
}

// MustTransition is like NewTransition but panics on a malformed arc. It is meant for
// nets whose shape is fixed at compile time.
func MustTransition[P comparable](name string, pre, post map[P]Arc) *Transition[P] {
	t, err := NewTransition(name, pre, post)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Transition[P]) Name() string { return t.name }

func (t *Transition[P]) Preconditions() map[P]Arc { return maps.Clone(t.pre) }

func (t *Transition[P]) Postconditions() map[P]Arc { return maps.Clone(t.post) }

// IsFireable reports whether every precondition holds in m. A regular arc needs at
// least its weight in tokens and an inhibitor arc needs the place to be empty; absent
// places count as empty. A transition without preconditions is always fireable.
func (t *Transition[P]) IsFireable(m Marking[P]) bool {
	for p, arc := range t.pre {
		n := m.Tokens(p)
		if arc.IsInhibitor() {
			if n != 0 {
				return false
			}
			continue
		}
		if n < arc.Weight() {
			return false
		}
	}
	return true
}

// Fire returns the marking reached by firing t from m. The input marking is never
// modified.
//
// If t is not fireable the error matches ErrNotEnabled. If a place written by a
// regular arc is missing from m the error matches ErrUnknownPlace. In both cases
// the returned marking is nil.
func (t *Transition[P]) Fire(m Marking[P]) (Marking[P], error) {
	if !t.IsFireable(m) {
		return nil, NotEnabled(t.name)
	}
	for _, arcs := range []map[P]Arc{t.pre, t.post} {
		for p, arc := range arcs {
			if arc.IsInhibitor() {
				continue
			}
			if !m.Has(p) {
				return nil, &UnknownPlaceError{Transition: t.name, Place: p}
			}
		}
	}
	next := m.Clone()
	for p, arc := range t.pre {
		if arc.IsInhibitor() {
			continue
		}
		next[p] -= arc.Weight()
	}
	for p, arc := range t.post {
		next[p] += arc.Weight()
	}
	return next, nil
}

func (t *Transition[P]) String() string {
	return fmt.Sprintf("%s(%s -> %s)", t.name, arcString(t.pre), arcString(t.post))
}

func arcString[P comparable](arcs map[P]Arc) string {
	parts := make([]string, 0, len(arcs))
	for p, arc := range arcs {
		parts = append(parts, fmt.Sprintf("%v:%s", p, arc))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, " ") + "}"
}
