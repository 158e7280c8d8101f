package petrifile

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jt05610/petri-inhibitor"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownPlace    = errors.New("place is not declared")
	ErrNegativeMarking = errors.New("token count must not be negative")
	ErrBadArc          = errors.New("arc must be a positive integer or \"inhibitor\"")
)

// Arc is the file form of a petri.Arc: an integer weight for a regular arc or the
// word inhibitor.
type Arc struct {
	petri.Arc
}

func (a *Arc) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", value.Line, ErrBadArc)
	}
	if value.Value == "inhibitor" {
		a.Arc = petri.Inhibitor()
		return nil
	}
	w, err := strconv.Atoi(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %q: %w", value.Line, value.Value, ErrBadArc)
	}
	a.Arc = petri.Regular(w)
	return nil
}

func (a Arc) MarshalYAML() (interface{}, error) {
	if a.IsInhibitor() {
		return "inhibitor", nil
	}
	return a.Weight(), nil
}

type Transition struct {
	Name string         `yaml:"name"`
	Pre  map[string]Arc `yaml:"pre,omitempty"`
	Post map[string]Arc `yaml:"post,omitempty"`
}

// Petrifile describes a net over string places and its initial marking.
type Petrifile struct {
	Petri       Version        `yaml:"petri,omitempty"`
	Name        string         `yaml:"name"`
	Places      []string       `yaml:"places"`
	Transitions []Transition   `yaml:"transitions"`
	Initial     map[string]int `yaml:"marking,omitempty"`
}

func arcs(in map[string]Arc) map[string]petri.Arc {
	out := make(map[string]petri.Arc, len(in))
	for p, a := range in {
		out[p] = a.Arc
	}
	return out
}

// Net builds the described net, in file order. Malformed transitions are reported with
// the petri construction error wrapped.
func (p *Petrifile) Net() (*petri.Net[string], error) {
	tt := make([]*petri.Transition[string], 0, len(p.Transitions))
	for _, t := range p.Transitions {
		tr, err := petri.NewTransition(t.Name, arcs(t.Pre), arcs(t.Post))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		tt = append(tt, tr)
	}
	return petri.NewNet(p.Places, tt...), nil
}

// Marking returns every declared place at 0 overlaid with the file's marking section.
func (p *Petrifile) Marking() (petri.Marking[string], error) {
	declared := make(map[string]bool, len(p.Places))
	m := make(petri.Marking[string], len(p.Places))
	for _, pl := range p.Places {
		declared[pl] = true
		m[pl] = 0
	}
	for pl, n := range p.Initial {
		if !declared[pl] {
			return nil, fmt.Errorf("%s: marking %s: %w", p.Name, pl, ErrUnknownPlace)
		}
		if n < 0 {
			return nil, fmt.Errorf("%s: marking %s=%d: %w", p.Name, pl, n, ErrNegativeMarking)
		}
		m[pl] = n
	}
	return m, nil
}
