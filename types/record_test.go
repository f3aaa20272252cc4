package types_test

import (
	"testing"

	"github.com/spinda/cedar/internal/testutil"
	"github.com/spinda/cedar/types"
)

func TestRecord(t *testing.T) {
	t.Parallel()

	t.Run("immutable", func(t *testing.T) {
		t.Parallel()

		m := types.RecordMap{"k": types.Long(42)}
		r := types.NewRecord(m)
		m["k"] = types.Long(1337)

		got, ok := r.Get("k")
		testutil.Equals(t, ok, true)
		testutil.Equals(t, got, types.Value(types.Long(42)))

		clone := r.Map()
		clone["k"] = types.Long(1337)
		got, _ = r.Get("k")
		testutil.Equals(t, got, types.Value(types.Long(42)))
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		r := types.NewRecord(types.RecordMap{"a": types.Long(1)})
		testutil.Equals(t, r.Len(), 1)

		_, ok := r.Get("missing")
		testutil.Equals(t, ok, false)
	})

	t.Run("Equal", func(t *testing.T) {
		t.Parallel()

		a := types.NewRecord(types.RecordMap{"a": types.Long(1), "b": types.String("two")})
		b := types.NewRecord(types.RecordMap{"b": types.String("two"), "a": types.Long(1)})
		testutil.Equals(t, a.Equal(b), true)
		testutil.Equals(t, b.Equal(a), true)

		c := types.NewRecord(types.RecordMap{"a": types.Long(1)})
		testutil.Equals(t, a.Equal(c), false)
		testutil.Equals(t, c.Equal(a), false)

		d := types.NewRecord(types.RecordMap{"a": types.Long(1), "b": types.String("three")})
		testutil.Equals(t, a.Equal(d), false)

		testutil.Equals(t, a.Equal(types.Long(1)), false)
		testutil.Equals(t, types.Record{}.Equal(types.NewRecord(nil)), true)
	})

	t.Run("Hash", func(t *testing.T) {
		t.Parallel()

		a := types.NewRecord(types.RecordMap{"a": types.Long(1), "b": types.String("two")})
		b := types.NewRecord(types.RecordMap{"b": types.String("two"), "a": types.Long(1)})
		testutil.Equals(t, a.Hash(), b.Hash())

		testutil.Equals(t, types.Record{}.Hash(), types.NewRecord(types.RecordMap{}).Hash())

		c := types.NewRecord(types.RecordMap{"a": types.Long(1)})
		testutil.FatalIf(t, a.Hash() == c.Hash(), "unexpected Hash collision")
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		r := types.NewRecord(types.RecordMap{"b": types.String("two"), "a": types.Long(1)})
		testutil.Equals(t, r.String(), `{"a": 1, "b": "two"}`)
		testutil.Equals(t, types.Record{}.String(), "{}")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var r types.Record
		testutil.OK(t, r.UnmarshalJSON([]byte(`{"a":1,"b":"two","c":[true]}`)))
		testutil.Equals(t, r.Len(), 3)

		got, ok := r.Get("c")
		testutil.Equals(t, ok, true)
		testutil.Equals(t, got.Equal(types.NewSet([]types.Value{types.True})), true)

		out, err := r.MarshalJSON()
		testutil.OK(t, err)
		testutil.Equals(t, string(out), `{"a":1,"b":"two","c":[true]}`)
	})

	t.Run("json nested entity", func(t *testing.T) {
		t.Parallel()

		var r types.Record
		testutil.OK(t, r.UnmarshalJSON([]byte(`{"owner":{"type":"User","id":"alice"}}`)))
		got, ok := r.Get("owner")
		testutil.Equals(t, ok, true)
		testutil.Equals(t, got.Equal(types.NewEntityUID("User", "alice")), true)
	})
}
