package types_test

import (
	"encoding/json"
	"testing"

	"github.com/spinda/cedar/internal/testutil"
	"github.com/spinda/cedar/types"
)

func TestEntityUID(t *testing.T) {
	t.Parallel()

	t.Run("new", func(t *testing.T) {
		t.Parallel()
		e := types.NewEntityUID("Team", "example")
		testutil.Equals(t, e.Type, types.EntityType("Team"))
		testutil.Equals(t, e.ID, types.String("example"))
	})

	t.Run("IsZero", func(t *testing.T) {
		t.Parallel()
		testutil.Equals(t, types.EntityUID{}.IsZero(), true)
		testutil.Equals(t, types.NewEntityUID("Team", "").IsZero(), false)
		testutil.Equals(t, types.NewEntityUID("", "example").IsZero(), false)
	})

	t.Run("Equal", func(t *testing.T) {
		t.Parallel()
		a := types.NewEntityUID("Team", "example")
		testutil.Equals(t, a.Equal(types.NewEntityUID("Team", "example")), true)
		testutil.Equals(t, a.Equal(types.NewEntityUID("Team", "other")), false)
		testutil.Equals(t, a.Equal(types.NewEntityUID("User", "example")), false)
		testutil.Equals(t, a.Equal(types.String("Team")), false)
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		testutil.Equals(t, types.NewEntityUID("Team", "example").String(), `Team::"example"`)
		testutil.Equals(t, types.NewEntityUID("A::B", "c").String(), `A::B::"c"`)
	})

	t.Run("Hash", func(t *testing.T) {
		t.Parallel()
		a := types.NewEntityUID("Team", "example")
		testutil.Equals(t, a.Hash(), types.NewEntityUID("Team", "example").Hash())
		testutil.FatalIf(
			t,
			types.NewEntityUID("Team", "example").Hash() == types.NewEntityUID("Teamex", "ample").Hash(),
			"unexpected Hash collision")
	})

	t.Run("json implicit", func(t *testing.T) {
		t.Parallel()
		var e types.EntityUID
		testutil.OK(t, json.Unmarshal([]byte(`{"type":"User","id":"alice"}`), &e))
		testutil.Equals(t, e, types.NewEntityUID("User", "alice"))
	})

	t.Run("json explicit", func(t *testing.T) {
		t.Parallel()
		var e types.EntityUID
		testutil.OK(t, json.Unmarshal([]byte(`{"__entity":{"type":"User","id":"alice"}}`), &e))
		testutil.Equals(t, e, types.NewEntityUID("User", "alice"))
	})

	t.Run("json marshal", func(t *testing.T) {
		t.Parallel()
		out, err := json.Marshal(types.NewEntityUID("User", "alice"))
		testutil.OK(t, err)
		testutil.Equals(t, string(out), `{"__entity":{"type":"User","id":"alice"}}`)
	})
}
