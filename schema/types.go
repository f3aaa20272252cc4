package schema

import (
	"cmp"
	"maps"
	"slices"
)

// A Type is a Cedar schema type expression: one of the built-in type forms,
// or a reference to a common type by name. Type is implemented only by the
// types in this package.
type Type interface {
	// IsExtension reports whether values of this type are extension values.
	// The answer is TernaryUnknown when it cannot be known without resolving
	// common type references.
	IsExtension() Ternary

	isType()
}

// A Ternary is a three-valued answer: true, false, or unknown until more
// information is available.
type Ternary int8

const (
	TernaryUnknown Ternary = iota
	TernaryFalse
	TernaryTrue
)

func (t Ternary) String() string {
	switch t {
	case TernaryFalse:
		return "false"
	case TernaryTrue:
		return "true"
	default:
		return "unknown"
	}
}

// A TypeString is the type of string values.
type TypeString struct{}

// A TypeLong is the type of signed 64-bit integer values.
type TypeLong struct{}

// A TypeBoolean is the type of true and false.
type TypeBoolean struct{}

// A TypeSet is the type of sets whose elements have the Element type.
type TypeSet struct {
	Element Type
}

// A TypeRecord is the type of records with the given attributes. When
// AdditionalAttributes is true the record is open: values may carry
// attributes beyond the declared ones.
type TypeRecord struct {
	Attributes           Attributes
	AdditionalAttributes bool
}

// A TypeEntity is the type of references to entities of the named entity
// type.
type TypeEntity struct {
	Name string
}

// A TypeExtension is the type of values of the named extension type, such as
// ipaddr or decimal.
type TypeExtension struct {
	Name string
}

// A TypeRef is an unresolved reference to a common type by name. Which
// declaration it refers to is decided later, during resolution.
type TypeRef struct {
	Name string
}

func (TypeString) isType()    {}
func (TypeLong) isType()      {}
func (TypeBoolean) isType()   {}
func (TypeSet) isType()       {}
func (TypeRecord) isType()    {}
func (TypeEntity) isType()    {}
func (TypeExtension) isType() {}
func (TypeRef) isType()       {}

func (TypeString) IsExtension() Ternary  { return TernaryFalse }
func (TypeLong) IsExtension() Ternary    { return TernaryFalse }
func (TypeBoolean) IsExtension() Ternary { return TernaryFalse }

func (t TypeSet) IsExtension() Ternary {
	if t.Element == nil {
		return TernaryUnknown
	}
	return t.Element.IsExtension()
}

func (t TypeRecord) IsExtension() Ternary {
	res := TernaryFalse
	for _, name := range slices.Sorted(maps.Keys(t.Attributes)) {
		att := t.Attributes[name]
		if att.Type == nil {
			res = TernaryUnknown
			continue
		}
		switch att.Type.IsExtension() {
		case TernaryTrue:
			return TernaryTrue
		case TernaryUnknown:
			res = TernaryUnknown
		}
	}
	return res
}

func (TypeEntity) IsExtension() Ternary    { return TernaryFalse }
func (TypeExtension) IsExtension() Ternary { return TernaryTrue }
func (TypeRef) IsExtension() Ternary       { return TernaryUnknown }

// An Attribute declares one attribute of a record type: its type and whether
// it must be present. Attributes are required unless declared otherwise.
type Attribute struct {
	Type     Type
	Required bool
}

// Attributes maps attribute names to their declarations within a record
// type.
type Attributes map[string]Attribute

// SetOf returns a set type with the given element type.
func SetOf(element Type) TypeSet {
	return TypeSet{Element: element}
}

// RecordOf returns a closed record type with the given attributes.
func RecordOf(attrs Attributes) TypeRecord {
	return TypeRecord{Attributes: attrs}
}

// EntityOf returns an entity reference type naming the given entity type.
func EntityOf(name string) TypeEntity {
	return TypeEntity{Name: name}
}

// ExtensionOf returns an extension type with the given name.
func ExtensionOf(name string) TypeExtension {
	return TypeExtension{Name: name}
}

// Ref returns a reference to the common type with the given name.
func Ref(name string) TypeRef {
	return TypeRef{Name: name}
}

// ReservedTypeName reports whether name is one of the built-in type names. A
// common type may not be declared under a reserved name, and a type
// expression whose tag is reserved never decodes as a common type reference.
func ReservedTypeName(name string) bool {
	switch name {
	case "String", "Long", "Boolean", "Set", "Record", "Entity", "Extension":
		return true
	}
	return false
}

// Compare gives a total ordering over type expressions: it returns a
// negative number when a sorts before b, a positive number when after, and
// zero exactly when the two are structurally identical.
func Compare(a, b Type) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch a := a.(type) {
	case TypeSet:
		return Compare(a.Element, b.(TypeSet).Element)
	case TypeRecord:
		return compareRecords(a, b.(TypeRecord))
	case TypeEntity:
		return cmp.Compare(a.Name, b.(TypeEntity).Name)
	case TypeExtension:
		return cmp.Compare(a.Name, b.(TypeExtension).Name)
	case TypeRef:
		return cmp.Compare(a.Name, b.(TypeRef).Name)
	default:
		return 0
	}
}

// Equal reports whether two type expressions are structurally identical.
func Equal(a, b Type) bool {
	return Compare(a, b) == 0
}

func typeRank(t Type) int {
	switch t.(type) {
	case TypeString:
		return 1
	case TypeLong:
		return 2
	case TypeBoolean:
		return 3
	case TypeSet:
		return 4
	case TypeRecord:
		return 5
	case TypeEntity:
		return 6
	case TypeExtension:
		return 7
	case TypeRef:
		return 8
	default:
		return 0
	}
}

func compareRecords(a, b TypeRecord) int {
	akeys := slices.Sorted(maps.Keys(a.Attributes))
	bkeys := slices.Sorted(maps.Keys(b.Attributes))
	for i := 0; i < len(akeys) && i < len(bkeys); i++ {
		if c := cmp.Compare(akeys[i], bkeys[i]); c != 0 {
			return c
		}
		aa, ba := a.Attributes[akeys[i]], b.Attributes[bkeys[i]]
		if aa.Required != ba.Required {
			if aa.Required {
				return -1
			}
			return 1
		}
		if c := Compare(aa.Type, ba.Type); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(len(akeys), len(bkeys)); c != 0 {
		return c
	}
	if a.AdditionalAttributes != b.AdditionalAttributes {
		if b.AdditionalAttributes {
			return -1
		}
		return 1
	}
	return 0
}
