package petri

// Net is a set of places and a set of transitions. It does not track a marking and does
// not check that transition arcs only reference declared places; the place set is the
// vocabulary callers use to enumerate the state of the net.
type Net[P comparable] struct {
	places      []P
	placeIndex  map[P]int
	transitions []*Transition[P]
}

// NewNet builds a net. Duplicate places and duplicate transition pointers are dropped,
// keeping the first occurrence; nil transitions are skipped.
func NewNet[P comparable](places []P, transitions ...*Transition[P]) *Net[P] {
	net := &Net[P]{
		places:      make([]P, 0, len(places)),
		placeIndex:  make(map[P]int, len(places)),
		transitions: make([]*Transition[P], 0, len(transitions)),
	}
	for _, p := range places {
		if _, seen := net.placeIndex[p]; seen {
			continue
		}
		net.placeIndex[p] = len(net.places)
		net.places = append(net.places, p)
	}
	seen := make(map[*Transition[P]]bool, len(transitions))
	for _, t := range transitions {
		if t == nil || seen[t] {
			continue
		}
		seen[t] = true
		net.transitions = append(net.transitions, t)
	}
	return net
}

// Places returns the declared places in the order they were first given.
func (n *Net[P]) Places() []P {
	out := make([]P, len(n.places))
	copy(out, n.places)
	return out
}

func (n *Net[P]) Transitions() []*Transition[P] {
	out := make([]*Transition[P], len(n.transitions))
	copy(out, n.transitions)
	return out
}

func (n *Net[P]) HasPlace(p P) bool {
	_, ok := n.placeIndex[p]
	return ok
}

// Transition returns the first transition with the given name.
func (n *Net[P]) Transition(name string) (*Transition[P], bool) {
	for _, t := range n.transitions {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

// Enabled returns the transitions fireable from m, in declaration order. Picking one
// and firing it is left to the caller.
func (n *Net[P]) Enabled(m Marking[P]) []*Transition[P] {
	enabled := make([]*Transition[P], 0)
	for _, t := range n.transitions {
		if t.IsFireable(m) {
			enabled = append(enabled, t)
		}
	}
	return enabled
}

// NewMarking returns a marking tracking every declared place with no tokens.
func (n *Net[P]) NewMarking() Marking[P] {
	m := make(Marking[P], len(n.places))
	for _, p := range n.places {
		m[p] = 0
	}
	return m
}
