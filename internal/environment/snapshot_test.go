package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnviron(t *testing.T) {
	s := FromEnviron([]string{"A=1", "B=x=y", "=ignored", "NOEQUALS", "EMPTY="})

	assert.Equal(t, map[string]string{"A": "1", "B": "x=y", "EMPTY": ""}, s.Map())
	assert.Equal(t, []string{"A=1", "B=x=y", "EMPTY="}, s.Environ())
}

func TestSnapshot_IsolatedFromSource(t *testing.T) {
	source := map[string]string{"A": "1"}
	s := NewSnapshot(source)

	source["A"] = "2"
	s.Set("B", "3")

	assert.Equal(t, "1", s.Get("A"))
	_, ok := source["B"]
	assert.False(t, ok)

	m := s.Map()
	m["A"] = "changed"
	assert.Equal(t, "1", s.Get("A"))
}
