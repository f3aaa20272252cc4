package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// walkObject steps through the JSON object in b, invoking field once per key
// in document order. The callback must consume the key's value from dec.
// Keys may not repeat; kind names the mapping in the duplicate key error.
func walkObject(b []byte, kind string, field func(name string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return errors.New("expected a JSON object")
	}
	seen := map[string]struct{}{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		if _, ok := seen[name]; ok {
			return &DuplicateKeyError{Kind: kind, Key: name}
		}
		seen[name] = struct{}{}
		if err := field(name, dec); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

// decodeKeyedMap decodes a JSON object into a map, sending each key's raw
// value through decode. Kind names the mapping in duplicate key errors and
// in the context added to element errors. The map is non-nil even when the
// object is empty.
func decodeKeyedMap[V any](b []byte, kind string, decode func([]byte) (V, error)) (map[string]V, error) {
	out := map[string]V{}
	err := walkObject(b, kind, func(name string, dec *json.Decoder) error {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		v, err := decode(raw)
		if err != nil {
			return fmt.Errorf("parsing %s %q: %w", kind, name, err)
		}
		out[name] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// decodeValue decodes one JSON value into a fresh V.
func decodeValue[V any](raw []byte) (V, error) {
	var v V
	err := json.Unmarshal(raw, &v)
	return v, err
}

// decodeFieldBag captures an object's fields without interpreting them,
// rejecting repeated names.
func decodeFieldBag(b []byte) (map[string]json.RawMessage, error) {
	return decodeKeyedMap(b, "field", func(raw []byte) (json.RawMessage, error) {
		return json.RawMessage(raw), nil
	})
}

func isJSONNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

// unmarshalField decodes a single field value. JSON null is rejected rather
// than left as a silent no-op, which is how encoding/json treats null
// against most non-pointer targets.
func unmarshalField(raw json.RawMessage, field string, v any) error {
	if isJSONNull(raw) {
		return fmt.Errorf("field %q must not be null", field)
	}
	return json.Unmarshal(raw, v)
}

// decodeNames decodes an array of names. Null is rejected for the array and
// for its elements.
func decodeNames(raw json.RawMessage, field string) ([]string, error) {
	var elems []json.RawMessage
	if err := unmarshalField(raw, field, &elems); err != nil {
		return nil, err
	}
	names := make([]string, len(elems))
	for i, e := range elems {
		if err := unmarshalField(e, field, &names[i]); err != nil {
			return nil, err
		}
	}
	return names, nil
}

func requireField(fields map[string]json.RawMessage, name, in string) (json.RawMessage, error) {
	raw, ok := fields[name]
	if !ok {
		return nil, &MissingFieldError{Field: name, In: in}
	}
	return raw, nil
}

// onlyFields rejects any field other than the type tag and the names
// allowed for the form being decoded.
func onlyFields(fields map[string]json.RawMessage, in string, allowed ...string) error {
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		if name == "type" || slices.Contains(allowed, name) {
			continue
		}
		return &UnknownFieldError{Field: name, In: in}
	}
	return nil
}

// UnmarshalType decodes a single type expression from JSON.
func UnmarshalType(data []byte) (Type, error) {
	fields, err := decodeFieldBag(data)
	if err != nil {
		return nil, err
	}
	return typeFromFields(fields)
}

// typeFromFields interprets the decoded fields of a type expression. A
// reserved tag decodes as that built-in form and nothing else: when the
// form's required fields are missing the decode fails instead of falling
// through. Any other tag is a common type reference, which admits no
// further fields.
func typeFromFields(fields map[string]json.RawMessage) (Type, error) {
	rawTag, err := requireField(fields, "type", "type expression")
	if err != nil {
		return nil, err
	}
	var tag string
	if err := unmarshalField(rawTag, "type", &tag); err != nil {
		return nil, err
	}
	switch tag {
	case "String":
		if err := onlyFields(fields, "String type"); err != nil {
			return nil, err
		}
		return TypeString{}, nil
	case "Long":
		if err := onlyFields(fields, "Long type"); err != nil {
			return nil, err
		}
		return TypeLong{}, nil
	case "Boolean":
		if err := onlyFields(fields, "Boolean type"); err != nil {
			return nil, err
		}
		return TypeBoolean{}, nil
	case "Set":
		if err := onlyFields(fields, "Set type", "element"); err != nil {
			return nil, err
		}
		raw, err := requireField(fields, "element", "Set type")
		if err != nil {
			return nil, err
		}
		element, err := UnmarshalType(raw)
		if err != nil {
			return nil, err
		}
		return TypeSet{Element: element}, nil
	case "Record":
		if err := onlyFields(fields, "Record type", "attributes", "additionalAttributes"); err != nil {
			return nil, err
		}
		raw, err := requireField(fields, "attributes", "Record type")
		if err != nil {
			return nil, err
		}
		attrs, err := decodeAttributes(raw)
		if err != nil {
			return nil, err
		}
		t := TypeRecord{Attributes: attrs}
		if raw, ok := fields["additionalAttributes"]; ok {
			if err := unmarshalField(raw, "additionalAttributes", &t.AdditionalAttributes); err != nil {
				return nil, err
			}
		}
		return t, nil
	case "Entity":
		if err := onlyFields(fields, "Entity type", "name"); err != nil {
			return nil, err
		}
		raw, err := requireField(fields, "name", "Entity type")
		if err != nil {
			return nil, err
		}
		var name string
		if err := unmarshalField(raw, "name", &name); err != nil {
			return nil, err
		}
		return TypeEntity{Name: name}, nil
	case "Extension":
		if err := onlyFields(fields, "Extension type", "name"); err != nil {
			return nil, err
		}
		raw, err := requireField(fields, "name", "Extension type")
		if err != nil {
			return nil, err
		}
		var name string
		if err := unmarshalField(raw, "name", &name); err != nil {
			return nil, err
		}
		return TypeExtension{Name: name}, nil
	default:
		if err := onlyFields(fields, "type reference"); err != nil {
			return nil, err
		}
		return TypeRef{Name: tag}, nil
	}
}

func decodeAttributes(b []byte) (Attributes, error) {
	m, err := decodeKeyedMap(b, "attribute", decodeAttribute)
	if err != nil {
		return nil, err
	}
	return Attributes(m), nil
}

// decodeAttribute decodes a record attribute declaration: a type expression
// carrying one extra field, required, which defaults to true. The two
// layers share a single JSON object, so the field bag is split by hand
// before the remainder goes through the type grammar.
func decodeAttribute(b []byte) (Attribute, error) {
	fields, err := decodeFieldBag(b)
	if err != nil {
		return Attribute{}, err
	}
	att := Attribute{Required: true}
	if raw, ok := fields["required"]; ok {
		if err := unmarshalField(raw, "required", &att.Required); err != nil {
			return Attribute{}, err
		}
		delete(fields, "required")
	}
	att.Type, err = typeFromFields(fields)
	if err != nil {
		return Attribute{}, err
	}
	return att, nil
}

// UnmarshalJSON decodes a record attribute declaration.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	att, err := decodeAttribute(data)
	if err != nil {
		return err
	}
	*a = att
	return nil
}

// UnmarshalJSON decodes a record's attribute mapping, rejecting repeated
// attribute names.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	attrs, err := decodeAttributes(data)
	if err != nil {
		return err
	}
	*a = attrs
	return nil
}

type jsonTypeTag struct {
	Type string `json:"type"`
}

type jsonTypeName struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type jsonTypeSet struct {
	Type    string          `json:"type"`
	Element json.RawMessage `json:"element"`
}

type jsonTypeRecord struct {
	Type                 string     `json:"type"`
	Attributes           Attributes `json:"attributes"`
	AdditionalAttributes bool       `json:"additionalAttributes,omitempty"`
}

func marshalType(t Type) ([]byte, error) {
	switch t := t.(type) {
	case TypeString:
		return json.Marshal(jsonTypeTag{Type: "String"})
	case TypeLong:
		return json.Marshal(jsonTypeTag{Type: "Long"})
	case TypeBoolean:
		return json.Marshal(jsonTypeTag{Type: "Boolean"})
	case TypeSet:
		element, err := marshalType(t.Element)
		if err != nil {
			return nil, err
		}
		return json.Marshal(jsonTypeSet{Type: "Set", Element: element})
	case TypeRecord:
		attrs := t.Attributes
		if attrs == nil {
			attrs = Attributes{}
		}
		return json.Marshal(jsonTypeRecord{Type: "Record", Attributes: attrs, AdditionalAttributes: t.AdditionalAttributes})
	case TypeEntity:
		return json.Marshal(jsonTypeName{Type: "Entity", Name: t.Name})
	case TypeExtension:
		return json.Marshal(jsonTypeName{Type: "Extension", Name: t.Name})
	case TypeRef:
		return json.Marshal(jsonTypeTag{Type: t.Name})
	default:
		return nil, fmt.Errorf("unknown type: %T", t)
	}
}

func (t TypeString) MarshalJSON() ([]byte, error)    { return marshalType(t) }
func (t TypeLong) MarshalJSON() ([]byte, error)      { return marshalType(t) }
func (t TypeBoolean) MarshalJSON() ([]byte, error)   { return marshalType(t) }
func (t TypeSet) MarshalJSON() ([]byte, error)       { return marshalType(t) }
func (t TypeRecord) MarshalJSON() ([]byte, error)    { return marshalType(t) }
func (t TypeEntity) MarshalJSON() ([]byte, error)    { return marshalType(t) }
func (t TypeExtension) MarshalJSON() ([]byte, error) { return marshalType(t) }
func (t TypeRef) MarshalJSON() ([]byte, error)       { return marshalType(t) }

// MarshalJSON encodes the attribute as its type expression, adding the
// required field only when the attribute is optional.
func (a Attribute) MarshalJSON() ([]byte, error) {
	raw, err := marshalType(a.Type)
	if err != nil {
		return nil, err
	}
	if a.Required {
		return raw, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["required"] = json.RawMessage("false")
	return json.Marshal(fields)
}
