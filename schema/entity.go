package schema

import (
	"encoding/json"
)

// An AttributesOrContext is the declared shape of an entity type or of an
// action's context. The wrapped type is a record, or a common type
// reference expected to resolve to one. That expectation is the validator's
// to check, not this package's.
type AttributesOrContext struct {
	Type Type
}

// defaultAttributesOrContext is the shape of an entity type or context
// declared without one: a closed record with no attributes.
func defaultAttributesOrContext() AttributesOrContext {
	return AttributesOrContext{Type: TypeRecord{Attributes: Attributes{}}}
}

// UnmarshalJSON decodes the wrapped type through the type expression
// grammar.
func (a *AttributesOrContext) UnmarshalJSON(data []byte) error {
	t, err := UnmarshalType(data)
	if err != nil {
		return err
	}
	a.Type = t
	return nil
}

// MarshalJSON encodes the wrapped type.
func (a AttributesOrContext) MarshalJSON() ([]byte, error) {
	return marshalType(a.Type)
}

// An Entity declares one entity type: the entity types its members may
// belong to, and the shape of its attributes.
type Entity struct {
	MemberOfTypes []string
	Shape         AttributesOrContext
}

type jsonEntity struct {
	MemberOfTypes []string             `json:"memberOfTypes,omitempty"`
	Shape         *AttributesOrContext `json:"shape,omitempty"`
}

// UnmarshalJSON decodes an entity type declaration. Unrecognized and
// repeated fields are rejected. A missing shape defaults to an empty closed
// record.
func (e *Entity) UnmarshalJSON(data []byte) error {
	var hasShape bool
	err := walkObject(data, "field", func(name string, dec *json.Decoder) error {
		switch name {
		case "memberOfTypes":
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return err
			}
			names, err := decodeNames(raw, "memberOfTypes")
			if err != nil {
				return err
			}
			e.MemberOfTypes = names
			return nil
		case "shape":
			hasShape = true
			return dec.Decode(&e.Shape)
		default:
			return &UnknownFieldError{Field: name, In: "entity type"}
		}
	})
	if err != nil {
		return err
	}
	if !hasShape {
		e.Shape = defaultAttributesOrContext()
	}
	return nil
}

// MarshalJSON encodes the entity type declaration, omitting memberOfTypes
// when empty and shape when unset.
func (e Entity) MarshalJSON() ([]byte, error) {
	out := jsonEntity{MemberOfTypes: e.MemberOfTypes}
	if e.Shape.Type != nil {
		out.Shape = &e.Shape
	}
	return json.Marshal(out)
}
