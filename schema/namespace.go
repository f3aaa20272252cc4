package schema

import (
	"encoding/json"
)

// CommonTypes maps common type names to their definitions within a
// namespace. The definitions are left unresolved here; substituting
// references to them is the validator's resolution pass.
type CommonTypes map[string]Type

// Entities maps entity type names to their declarations within a
// namespace.
type Entities map[string]Entity

// Actions maps action names to their declarations within a namespace.
type Actions map[string]Action

// UnmarshalJSON decodes a common type mapping, rejecting repeated names.
func (c *CommonTypes) UnmarshalJSON(data []byte) error {
	m, err := decodeKeyedMap(data, "common type", UnmarshalType)
	if err != nil {
		return err
	}
	*c = m
	return nil
}

// UnmarshalJSON decodes an entity type mapping, rejecting repeated names.
func (e *Entities) UnmarshalJSON(data []byte) error {
	m, err := decodeKeyedMap(data, "entity type", decodeValue[Entity])
	if err != nil {
		return err
	}
	*e = m
	return nil
}

// UnmarshalJSON decodes an action mapping, rejecting repeated names.
func (a *Actions) UnmarshalJSON(data []byte) error {
	m, err := decodeKeyedMap(data, "action", decodeValue[Action])
	if err != nil {
		return err
	}
	*a = m
	return nil
}

// A Namespace holds one namespace's declarations. CommonTypes may be absent
// from the document; entityTypes and actions must be present, even when
// empty.
type Namespace struct {
	CommonTypes CommonTypes
	EntityTypes Entities
	Actions     Actions
}

// NewNamespace returns a namespace with the given entity types and actions
// and no common types.
func NewNamespace(entityTypes Entities, actions Actions) Namespace {
	if entityTypes == nil {
		entityTypes = Entities{}
	}
	if actions == nil {
		actions = Actions{}
	}
	return Namespace{
		CommonTypes: CommonTypes{},
		EntityTypes: entityTypes,
		Actions:     actions,
	}
}

type jsonNamespace struct {
	CommonTypes CommonTypes `json:"commonTypes,omitempty"`
	EntityTypes Entities    `json:"entityTypes"`
	Actions     Actions     `json:"actions"`
}

// UnmarshalJSON decodes a namespace definition. Unrecognized and repeated
// fields are rejected, and entityTypes and actions must both be present.
func (n *Namespace) UnmarshalJSON(data []byte) error {
	var hasEntityTypes, hasActions bool
	err := walkObject(data, "field", func(name string, dec *json.Decoder) error {
		switch name {
		case "commonTypes":
			return dec.Decode(&n.CommonTypes)
		case "entityTypes":
			hasEntityTypes = true
			return dec.Decode(&n.EntityTypes)
		case "actions":
			hasActions = true
			return dec.Decode(&n.Actions)
		default:
			return &UnknownFieldError{Field: name, In: "namespace"}
		}
	})
	if err != nil {
		return err
	}
	if !hasEntityTypes {
		return &MissingFieldError{Field: "entityTypes", In: "namespace"}
	}
	if !hasActions {
		return &MissingFieldError{Field: "actions", In: "namespace"}
	}
	if n.CommonTypes == nil {
		n.CommonTypes = CommonTypes{}
	}
	return nil
}

// MarshalJSON encodes the namespace definition with commonTypes omitted
// when empty. EntityTypes and actions are always present, matching what
// decode requires.
func (n Namespace) MarshalJSON() ([]byte, error) {
	out := jsonNamespace{
		CommonTypes: n.CommonTypes,
		EntityTypes: n.EntityTypes,
		Actions:     n.Actions,
	}
	if out.EntityTypes == nil {
		out.EntityTypes = Entities{}
	}
	if out.Actions == nil {
		out.Actions = Actions{}
	}
	return json.Marshal(out)
}

// String renders the namespace as indented JSON.
func (n Namespace) String() string {
	b, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}
