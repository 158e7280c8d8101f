package petri_test

import (
	"testing"

	"github.com/jt05610/petri-inhibitor"
	"github.com/stretchr/testify/assert"
)

func TestMarking_Tokens(t *testing.T) {
	m := petri.Marking[string]{"a": 3}
	assert.Equal(t, 3, m.Tokens("a"))
	assert.Equal(t, 0, m.Tokens("missing"))
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("missing"))

	var empty petri.Marking[string]
	assert.Equal(t, 0, empty.Tokens("a"))
}

func TestMarking_Clone(t *testing.T) {
	m := petri.Marking[string]{"a": 3}
	c := m.Clone()
	c["a"] = 7
	assert.Equal(t, 3, m["a"])

	var empty petri.Marking[string]
	assert.NotNil(t, empty.Clone())
}

func TestMarking_Equal(t *testing.T) {
	a := petri.Marking[string]{"a": 1, "b": 0}
	assert.True(t, a.Equal(petri.Marking[string]{"a": 1}))
	assert.True(t, petri.Marking[string]{"a": 1}.Equal(a))
	assert.False(t, a.Equal(petri.Marking[string]{"a": 2}))
	assert.False(t, a.Equal(petri.Marking[string]{"a": 1, "c": 1}))
}

func TestMarking_String(t *testing.T) {
	m := petri.Marking[string]{"sto": 1, "opa": 5, "res": 0}
	assert.Equal(t, "{opa:5 res:0 sto:1}", m.String())
	assert.Equal(t, "{}", petri.Marking[int]{}.String())
}
