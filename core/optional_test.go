package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-graph/lattice/core"
)

func TestOptionalSomeIsPresent(t *testing.T) {
	o := core.Some(42)
	require.True(t, o.IsPresent())
	v, ok := o.Get()
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestOptionalNoneIsAbsent(t *testing.T) {
	o := core.None[int]()
	require.False(t, o.IsPresent())
	_, ok := o.Get()
	require.False(t, ok)
}

func TestOptionalZeroValueIsAbsent(t *testing.T) {
	var o core.Optional[string]
	require.False(t, o.IsPresent())
}
