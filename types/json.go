package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	errNullValue                = errors.New("null is not a valid value")
	errExtensionEscape          = errors.New("malformed __extn escape")
	errUnknownExtensionFunction = errors.New("unknown extension function")
)

// entityValueJSON is the wire form of an EntityUID's payload.
type entityValueJSON struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// extnValueJSON is the wire form of an extension value's payload.
type extnValueJSON struct {
	Fn  string `json:"fn"`
	Arg string `json:"arg"`
}

// explicitValue triggers Value-aware unmarshalling of payloads embedded in
// other structures.
type explicitValue struct {
	Value Value
}

func (v *explicitValue) UnmarshalJSON(b []byte) error {
	return UnmarshalJSON(b, &v.Value)
}

// UnmarshalJSON parses a JSON-encoded Cedar value into a Value.
//
// Object forms are disambiguated by their key shape: `{"__entity": ...}` and
// objects with exactly a string "type" and a string "id" decode to an
// EntityUID, `{"__extn": ...}` decodes to the named extension type, and any
// other object decodes to a Record. null is not a Cedar value.
func UnmarshalJSON(b []byte, v *Value) error {
	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) == 0 {
		// Let encoding/json produce its standard error for empty input.
		var raw json.RawMessage
		return json.Unmarshal(b, &raw)
	}
	switch trimmed[0] {
	case '{':
		return unmarshalObject(trimmed, v)
	case '[':
		var res Set
		if err := res.UnmarshalJSON(trimmed); err != nil {
			return err
		}
		*v = res
		return nil
	case '"':
		var res String
		if err := json.Unmarshal(trimmed, &res); err != nil {
			return err
		}
		*v = res
		return nil
	case 't', 'f':
		var res Boolean
		if err := json.Unmarshal(trimmed, &res); err != nil {
			return err
		}
		*v = res
		return nil
	case 'n':
		return errNullValue
	default:
		var res Long
		if err := json.Unmarshal(trimmed, &res); err != nil {
			return err
		}
		*v = res
		return nil
	}
}

func unmarshalObject(b []byte, v *Value) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	if len(fields) == 1 {
		if raw, ok := fields["__entity"]; ok {
			var body entityValueJSON
			if err := json.Unmarshal(raw, &body); err != nil {
				return fmt.Errorf("parsing __entity escape: %w", err)
			}
			*v = NewEntityUID(EntityType(body.Type), String(body.ID))
			return nil
		}
		if raw, ok := fields["__extn"]; ok {
			var body extnValueJSON
			if err := json.Unmarshal(raw, &body); err != nil {
				return fmt.Errorf("parsing __extn escape: %w", err)
			}
			return unmarshalExtension(body, v)
		}
	}

	if len(fields) == 2 {
		t, hasType := fields["type"]
		id, hasID := fields["id"]
		if hasType && hasID && isJSONString(t) && isJSONString(id) {
			var body entityValueJSON
			if err := json.Unmarshal(b, &body); err != nil {
				return err
			}
			*v = NewEntityUID(EntityType(body.Type), String(body.ID))
			return nil
		}
	}

	var res Record
	if err := res.UnmarshalJSON(b); err != nil {
		return err
	}
	*v = res
	return nil
}

func isJSONString(b []byte) bool {
	b = bytes.TrimLeft(b, " \t\r\n")
	return len(b) > 0 && b[0] == '"'
}

func unmarshalExtension(body extnValueJSON, v *Value) error {
	switch body.Fn {
	case "ip":
		a, err := ParseIPAddr(body.Arg)
		if err != nil {
			return err
		}
		*v = a
	case "decimal":
		d, err := ParseDecimal(body.Arg)
		if err != nil {
			return err
		}
		*v = d
	default:
		return fmt.Errorf("%w %q", errUnknownExtensionFunction, body.Fn)
	}
	return nil
}

// unmarshalExtensionArg extracts the string argument of an extension value
// encoded either as a plain JSON string or as an explicit __extn escape whose
// fn matches.
func unmarshalExtensionArg(b []byte, fn string) (string, error) {
	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var arg string
		if err := json.Unmarshal(trimmed, &arg); err != nil {
			return "", err
		}
		return arg, nil
	}
	var res struct {
		Extn *extnValueJSON `json:"__extn"`
	}
	if err := json.Unmarshal(b, &res); err != nil {
		return "", err
	}
	if res.Extn == nil {
		return "", errExtensionEscape
	}
	if res.Extn.Fn != fn {
		return "", fmt.Errorf("%w: want fn %q, got %q", errExtensionEscape, fn, res.Extn.Fn)
	}
	return res.Extn.Arg, nil
}

func marshalExtensionValue(fn, arg string) ([]byte, error) {
	return json.Marshal(struct {
		Extn extnValueJSON `json:"__extn"`
	}{Extn: extnValueJSON{Fn: fn, Arg: arg}})
}
