package schema

import (
	"encoding/json"
	"testing"

	"github.com/spinda/cedar/internal/testutil"
)

func TestWalkObject(t *testing.T) {
	t.Parallel()

	t.Run("visitsInDocumentOrder", func(t *testing.T) {
		t.Parallel()
		var names []string
		err := walkObject([]byte(`{"b": 1, "a": 2, "c": 3}`), "field", func(name string, dec *json.Decoder) error {
			names = append(names, name)
			var raw json.RawMessage
			return dec.Decode(&raw)
		})
		testutil.OK(t, err)
		testutil.Equals(t, names, []string{"b", "a", "c"})
	})

	t.Run("notAnObject", func(t *testing.T) {
		t.Parallel()
		err := walkObject([]byte(`[1]`), "field", func(string, *json.Decoder) error { return nil })
		testutil.Error(t, err)
	})

	t.Run("duplicateKey", func(t *testing.T) {
		t.Parallel()
		err := walkObject([]byte(`{"a": 1, "a": 2}`), "thing", func(name string, dec *json.Decoder) error {
			var raw json.RawMessage
			return dec.Decode(&raw)
		})
		testutil.ErrorIs(t, err, ErrDuplicateKey)
		testutil.Equals(t, err.Error(), `duplicate key: thing "a"`)
	})

	t.Run("truncated", func(t *testing.T) {
		t.Parallel()
		err := walkObject([]byte(`{"a": 1`), "field", func(name string, dec *json.Decoder) error {
			var raw json.RawMessage
			return dec.Decode(&raw)
		})
		testutil.Error(t, err)
	})
}

func TestDecodeFieldBag(t *testing.T) {
	t.Parallel()
	fields, err := decodeFieldBag([]byte(`{"type": "String", "required": false}`))
	testutil.OK(t, err)
	testutil.Equals(t, len(fields), 2)
	testutil.Equals(t, string(fields["type"]), `"String"`)

	_, err = decodeFieldBag([]byte(`{"a": 1, "a": 2}`))
	testutil.ErrorIs(t, err, ErrDuplicateKey)
}

func TestUnmarshalFieldNull(t *testing.T) {
	t.Parallel()
	var s string
	err := unmarshalField(json.RawMessage(`null`), "name", &s)
	testutil.Error(t, err)
	err = unmarshalField(json.RawMessage(` null `), "name", &s)
	testutil.Error(t, err)
	testutil.OK(t, unmarshalField(json.RawMessage(`"x"`), "name", &s))
	testutil.Equals(t, s, "x")
}

func TestDecodeNames(t *testing.T) {
	t.Parallel()
	names, err := decodeNames(json.RawMessage(`["a", "b"]`), "memberOfTypes")
	testutil.OK(t, err)
	testutil.Equals(t, names, []string{"a", "b"})

	names, err = decodeNames(json.RawMessage(`[]`), "memberOfTypes")
	testutil.OK(t, err)
	testutil.FatalIf(t, names == nil, "empty array must decode to a non-nil slice")

	_, err = decodeNames(json.RawMessage(`null`), "memberOfTypes")
	testutil.Error(t, err)
	_, err = decodeNames(json.RawMessage(`["a", null]`), "memberOfTypes")
	testutil.Error(t, err)
	_, err = decodeNames(json.RawMessage(`"a"`), "memberOfTypes")
	testutil.Error(t, err)
}

func TestMarshalTypeUnknown(t *testing.T) {
	t.Parallel()
	_, err := marshalType(nil)
	testutil.Error(t, err)
}

func TestDefaultAttributesOrContext(t *testing.T) {
	t.Parallel()
	d := defaultAttributesOrContext()
	rec, ok := d.Type.(TypeRecord)
	testutil.FatalIf(t, !ok, "default shape is %T, want record", d.Type)
	testutil.Equals(t, len(rec.Attributes), 0)
	testutil.Equals(t, rec.AdditionalAttributes, false)
}

func TestErrorStrings(t *testing.T) {
	t.Parallel()
	testutil.Equals(t,
		(&DuplicateKeyError{Kind: "entity type", Key: "User"}).Error(),
		`duplicate key: entity type "User"`)
	testutil.Equals(t,
		(&UnknownFieldError{Field: "shap", In: "entity type"}).Error(),
		`unknown field: "shap" in entity type`)
	testutil.Equals(t,
		(&MissingFieldError{Field: "id", In: "action reference"}).Error(),
		`missing field: "id" in action reference`)
}
