package petri

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// Marking holds the token count of each place. A place missing from the map holds no
// tokens as far as reads are concerned.
type Marking[P comparable] map[P]int

// Tokens returns the count at p, defaulting to 0.
func (m Marking[P]) Tokens(p P) int {
	return m[p]
}

// Has reports whether p is tracked by the marking.
func (m Marking[P]) Has(p P) bool {
	_, ok := m[p]
	return ok
}

func (m Marking[P]) Clone() Marking[P] {
	if m == nil {
		return Marking[P]{}
	}
	return maps.Clone(m)
}

// Equal compares counts place by place, treating absent places as 0.
func (m Marking[P]) Equal(other Marking[P]) bool {
	for p, n := range m {
		if other[p] != n {
			return false
		}
	}
	for p, n := range other {
		if m[p] != n {
			return false
		}
	}
	return true
}

// String renders the marking with places sorted by their printed form so output is
// stable across runs.
func (m Marking[P]) String() string {
	keys := make([]string, 0, len(m))
	counts := make(map[string]int, len(m))
	for p, n := range m {
		k := fmt.Sprint(p)
		keys = append(keys, k)
		counts[k] = n
	}
	sort.Strings(keys)
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%s:%d", k, counts[k])
	}
	sb.WriteString("}")
	return sb.String()
}
