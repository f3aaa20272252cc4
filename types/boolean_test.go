package types_test

import (
	"testing"

	"github.com/spinda/cedar/internal/testutil"
	"github.com/spinda/cedar/types"
)

func TestBoolean(t *testing.T) {
	t.Parallel()

	t.Run("Equal", func(t *testing.T) {
		t.Parallel()
		testutil.Equals(t, types.True.Equal(types.Boolean(true)), true)
		testutil.Equals(t, types.False.Equal(types.Boolean(false)), true)
		testutil.Equals(t, types.True.Equal(types.False), false)
		testutil.Equals(t, types.True.Equal(types.Long(1)), false)
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		testutil.Equals(t, types.True.String(), "true")
		testutil.Equals(t, types.False.String(), "false")
		testutil.Equals(t, string(types.True.MarshalCedar()), "true")
	})

	t.Run("Hash", func(t *testing.T) {
		t.Parallel()
		testutil.Equals(t, types.True.Hash(), types.Boolean(true).Hash())
		testutil.FatalIf(t, types.True.Hash() == types.False.Hash(), "unexpected Hash collision")
	})
}
