package analysis

import (
	"github.com/jt05610/petri-inhibitor"
	"gonum.org/v1/gonum/mat"
)

// Net wraps a petri net with the linear-algebra view used for the state equation
// M' = M + Cᵀσ. Rows of C are transitions and columns are places, both in the order
// the net declares them.
type Net[P comparable] struct {
	*petri.Net[P]
	places      []P
	transitions []*petri.Transition[P]
}

func New[P comparable](n *petri.Net[P]) *Net[P] {
	return &Net[P]{
		Net:         n,
		places:      n.Places(),
		transitions: n.Transitions(),
	}
}

func (net *Net[P]) transitionIndex(t *petri.Transition[P]) int {
	for i := range net.transitions {
		if net.transitions[i] == t {
			return i
		}
	}
	return -1
}

func (net *Net[P]) FiringVector(t int) *mat.VecDense {
	v := make([]float64, len(net.transitions))
	v[t] = 1
	return mat.NewVecDense(len(net.transitions), v)
}

// Incidence returns C where C[t][p] is the postcondition weight minus the
// precondition weight of place p for transition t. Inhibitor arcs move no tokens and
// contribute 0; see Inhibitors for them.
func (net *Net[P]) Incidence() *mat.Dense {
	m := len(net.places)
	n := len(net.transitions)
	d := make([]float64, m*n)
	for i, t := range net.transitions {
		pre := t.Preconditions()
		post := t.Postconditions()
		for j, p := range net.places {
			d[i*m+j] = float64(post[p].Weight() - pre[p].Weight())
		}
	}
	return mat.NewDense(n, m, d)
}

// Inhibitors returns a 0/1 matrix shaped like Incidence marking which places inhibit
// which transitions.
func (net *Net[P]) Inhibitors() *mat.Dense {
	m := len(net.places)
	n := len(net.transitions)
	d := make([]float64, m*n)
	for i, t := range net.transitions {
		pre := t.Preconditions()
		for j, p := range net.places {
			if arc, ok := pre[p]; ok && arc.IsInhibitor() {
				d[i*m+j] = 1
			}
		}
	}
	return mat.NewDense(n, m, d)
}

// Vector lays a marking out in place order. Places the marking does not track are 0.
func (net *Net[P]) Vector(marking petri.Marking[P]) *mat.VecDense {
	v := make([]float64, len(net.places))
	for i, p := range net.places {
		v[i] = float64(marking.Tokens(p))
	}
	return mat.NewVecDense(len(v), v)
}

// Marking converts a place-ordered vector back into a marking of the declared places.
func (net *Net[P]) Marking(v mat.Vector) petri.Marking[P] {
	marking := make(petri.Marking[P], len(net.places))
	for i, p := range net.places {
		marking[p] = int(v.AtVec(i))
	}
	return marking
}

// Predict computes the marking reached by firing t from marking using the state
// equation. It returns false if t does not belong to the net or is not fireable.
func (net *Net[P]) Predict(marking petri.Marking[P], t *petri.Transition[P]) (petri.Marking[P], bool) {
	idx := net.transitionIndex(t)
	if idx < 0 || !t.IsFireable(marking) {
		return nil, false
	}
	var out mat.VecDense
	out.MulVec(net.Incidence().T(), net.FiringVector(idx))
	out.AddVec(&out, net.Vector(marking))
	return net.Marking(&out), true
}
