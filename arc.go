package petri

import "strconv"

// ArcKind distinguishes regular arcs from inhibitor arcs.
type ArcKind int

const (
	RegularArc ArcKind = iota
	InhibitorArc
)

func (k ArcKind) String() string {
	switch k {
	case RegularArc:
		return "regular"
	case InhibitorArc:
		return "inhibitor"
	}
	return "ArcKind(" + strconv.Itoa(int(k)) + ")"
}

// Arc relates a transition to one place. A regular arc consumes (as a precondition) or
// produces (as a postcondition) Weight tokens. An inhibitor arc only appears in
// preconditions and blocks the transition while its place holds any token.
//
// Arc is a comparable value; two arcs are equal when their kind and weight match.
type Arc struct {
	kind   ArcKind
	weight int
}

// Regular returns a regular arc of the given weight.
func Regular(weight int) Arc {
	return Arc{kind: RegularArc, weight: weight}
}

// Inhibitor returns an inhibitor arc.
func Inhibitor() Arc {
	return Arc{kind: InhibitorArc}
}

func (a Arc) Kind() ArcKind { return a.kind }

// Weight is the number of tokens moved by a regular arc, and 0 for inhibitor arcs.
func (a Arc) Weight() int { return a.weight }

func (a Arc) IsInhibitor() bool { return a.kind == InhibitorArc }

func (a Arc) String() string {
	if a.IsInhibitor() {
		return "inhibitor"
	}
	return strconv.Itoa(a.weight)
}
