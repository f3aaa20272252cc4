package types

import (
	"encoding/json"
	"hash/fnv"
)

// An EntityType is the type part of an EntityUID.
type EntityType string

// An EntityUID is the identifier for a principal, action, or resource,
// composed of an entity type and an identifier unique within that type.
type EntityUID struct {
	Type EntityType
	ID   String
}

// NewEntityUID returns an EntityUID given an EntityType and identifier.
func NewEntityUID(typ EntityType, id String) EntityUID {
	return EntityUID{
		Type: typ,
		ID:   id,
	}
}

// IsZero returns true if the EntityUID has an empty Type and ID.
func (a EntityUID) IsZero() bool {
	return a.Type == "" && a.ID == ""
}

// Equal returns true if the input represents the same EntityUID.
func (a EntityUID) Equal(bi Value) bool {
	b, ok := bi.(EntityUID)
	return ok && a == b
}

// String produces a string representation of the EntityUID, e.g. `Team::"example"`.
func (v EntityUID) String() string { return string(v.MarshalCedar()) }

// MarshalCedar produces a valid MarshalCedar language representation of the EntityUID, e.g. `Team::"example"`.
func (v EntityUID) MarshalCedar() []byte {
	buf := []byte(v.Type)
	buf = append(buf, ':', ':')
	return append(buf, v.ID.MarshalCedar()...)
}

func (v EntityUID) Hash() uint64 {
	h := fnv.New64()
	_, _ = h.Write([]byte(v.Type))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(v.ID))
	return h.Sum64()
}

// UnmarshalJSON parses a JSON-encoded EntityUID, in either the implicit
// `{"type":"T","id":"i"}` form or the explicit `{"__entity":{...}}` form.
func (v *EntityUID) UnmarshalJSON(b []byte) error {
	var res struct {
		entityValueJSON
		Entity *entityValueJSON `json:"__entity"`
	}
	if err := json.Unmarshal(b, &res); err != nil {
		return err
	}
	if res.Entity != nil {
		v.Type = EntityType(res.Entity.Type)
		v.ID = String(res.Entity.ID)
		return nil
	}
	v.Type = EntityType(res.Type)
	v.ID = String(res.ID)
	return nil
}

// MarshalJSON marshals the EntityUID into JSON using the explicit form, which
// cannot be mistaken for a record on a round trip.
func (v EntityUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Entity entityValueJSON `json:"__entity"`
	}{
		Entity: entityValueJSON{
			Type: string(v.Type),
			ID:   string(v.ID),
		},
	})
}
