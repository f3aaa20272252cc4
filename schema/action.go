package schema

import (
	"encoding/json"
	"fmt"

	"github.com/spinda/cedar/types"
)

// An ActionRef names an action entity, by id plus an optional entity type
// defaulting to Action.
type ActionRef struct {
	ID   string
	Type string
}

// String renders the reference in entity UID form, such as Action::"view".
func (r ActionRef) String() string {
	ty := r.Type
	if ty == "" {
		ty = "Action"
	}
	return fmt.Sprintf("%s::%q", ty, r.ID)
}

type jsonActionRef struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

// UnmarshalJSON decodes an action reference. The id is required; the type
// may be absent or null.
func (r *ActionRef) UnmarshalJSON(data []byte) error {
	var hasID bool
	err := walkObject(data, "field", func(name string, dec *json.Decoder) error {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		switch name {
		case "id":
			hasID = true
			return unmarshalField(raw, "id", &r.ID)
		case "type":
			if isJSONNull(raw) {
				return nil
			}
			return json.Unmarshal(raw, &r.Type)
		default:
			return &UnknownFieldError{Field: name, In: "action reference"}
		}
	})
	if err != nil {
		return err
	}
	if !hasID {
		return &MissingFieldError{Field: "id", In: "action reference"}
	}
	return nil
}

// MarshalJSON encodes the action reference, omitting the type when it is
// the implicit Action.
func (r ActionRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonActionRef{ID: r.ID, Type: r.Type})
}

// An AppliesTo constrains the entity types an action applies to and gives
// the action's context shape. A nil type list leaves that side
// unconstrained, while an empty non-nil list admits no types at all; the
// two are distinct and survive a decode and re-encode.
type AppliesTo struct {
	PrincipalTypes []string
	ResourceTypes  []string
	Context        AttributesOrContext
}

type jsonAppliesTo struct {
	PrincipalTypes json.RawMessage `json:"principalTypes,omitempty"`
	ResourceTypes  json.RawMessage `json:"resourceTypes,omitempty"`
	Context        json.RawMessage `json:"context,omitempty"`
}

// UnmarshalJSON decodes an appliesTo declaration. Absent or null type lists
// decode as nil, an unconstrained side. A missing context defaults to an
// empty closed record.
func (a *AppliesTo) UnmarshalJSON(data []byte) error {
	var hasContext bool
	err := walkObject(data, "field", func(name string, dec *json.Decoder) error {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		switch name {
		case "principalTypes":
			if isJSONNull(raw) {
				return nil
			}
			names, err := decodeNames(raw, "principalTypes")
			if err != nil {
				return err
			}
			a.PrincipalTypes = names
			return nil
		case "resourceTypes":
			if isJSONNull(raw) {
				return nil
			}
			names, err := decodeNames(raw, "resourceTypes")
			if err != nil {
				return err
			}
			a.ResourceTypes = names
			return nil
		case "context":
			hasContext = true
			return json.Unmarshal(raw, &a.Context)
		default:
			return &UnknownFieldError{Field: name, In: "appliesTo"}
		}
	})
	if err != nil {
		return err
	}
	if !hasContext {
		a.Context = defaultAttributesOrContext()
	}
	return nil
}

// MarshalJSON encodes the appliesTo declaration. Nil type lists are
// omitted; empty non-nil lists are encoded as empty arrays.
func (a AppliesTo) MarshalJSON() ([]byte, error) {
	var out jsonAppliesTo
	if a.PrincipalTypes != nil {
		raw, err := json.Marshal(a.PrincipalTypes)
		if err != nil {
			return nil, err
		}
		out.PrincipalTypes = raw
	}
	if a.ResourceTypes != nil {
		raw, err := json.Marshal(a.ResourceTypes)
		if err != nil {
			return nil, err
		}
		out.ResourceTypes = raw
	}
	if a.Context.Type != nil {
		raw, err := a.Context.MarshalJSON()
		if err != nil {
			return nil, err
		}
		out.Context = raw
	}
	return json.Marshal(out)
}

// An Action declares one action: optional literal attribute values, the
// entity types the action applies to, and the action groups it belongs to.
// A nil AppliesTo leaves the action unconstrained.
type Action struct {
	Attributes map[string]types.Value
	AppliesTo  *AppliesTo
	MemberOf   []ActionRef
}

type jsonAction struct {
	Attributes json.RawMessage `json:"attributes,omitempty"`
	AppliesTo  json.RawMessage `json:"appliesTo,omitempty"`
	MemberOf   json.RawMessage `json:"memberOf,omitempty"`
}

// UnmarshalJSON decodes an action declaration. All fields are optional and
// accept null for absence.
func (a *Action) UnmarshalJSON(data []byte) error {
	return walkObject(data, "field", func(name string, dec *json.Decoder) error {
		switch name {
		case "attributes":
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return err
			}
			if isJSONNull(raw) {
				return nil
			}
			attrs, err := decodeKeyedMap(raw, "attribute", decodeValueJSON)
			if err != nil {
				return err
			}
			a.Attributes = attrs
			return nil
		case "appliesTo":
			return dec.Decode(&a.AppliesTo)
		case "memberOf":
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return err
			}
			if isJSONNull(raw) {
				return nil
			}
			var refs []ActionRef
			if err := json.Unmarshal(raw, &refs); err != nil {
				return err
			}
			a.MemberOf = refs
			return nil
		default:
			return &UnknownFieldError{Field: name, In: "action"}
		}
	})
}

func decodeValueJSON(raw []byte) (types.Value, error) {
	var v types.Value
	if err := types.UnmarshalJSON(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// MarshalJSON encodes the action declaration, preserving the difference
// between absent fields and present but empty ones.
func (a Action) MarshalJSON() ([]byte, error) {
	var out jsonAction
	if a.Attributes != nil {
		raw, err := json.Marshal(a.Attributes)
		if err != nil {
			return nil, err
		}
		out.Attributes = raw
	}
	if a.AppliesTo != nil {
		raw, err := a.AppliesTo.MarshalJSON()
		if err != nil {
			return nil, err
		}
		out.AppliesTo = raw
	}
	if a.MemberOf != nil {
		raw, err := json.Marshal(a.MemberOf)
		if err != nil {
			return nil, err
		}
		out.MemberOf = raw
	}
	return json.Marshal(out)
}
