package petri

// Add combines nets into one. Places shared between nets are merged, and a transition
// appearing in several nets (the same *Transition) is kept once. Order follows the
// arguments.
func Add[P comparable](nets ...*Net[P]) *Net[P] {
	places := make([]P, 0)
	transitions := make([]*Transition[P], 0)
	for _, net := range nets {
		if net == nil {
			continue
		}
		places = append(places, net.places...)
		transitions = append(transitions, net.transitions...)
	}
	return NewNet(places, transitions...)
}
