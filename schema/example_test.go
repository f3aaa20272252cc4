package schema_test

import (
	"errors"
	"fmt"

	"github.com/spinda/cedar/schema"
)

func ExampleNewFragmentFromBytes() {
	fragment, err := schema.NewFragmentFromBytes([]byte(`{
		"PhotoApp": {
			"entityTypes": {
				"User": {"memberOfTypes": ["UserGroup"]},
				"UserGroup": {}
			},
			"actions": {
				"viewPhoto": {
					"appliesTo": {"principalTypes": ["User"], "resourceTypes": ["Photo"]}
				}
			}
		}
	}`))
	if err != nil {
		panic(err)
	}
	ns := fragment["PhotoApp"]
	fmt.Println(ns.EntityTypes["User"].MemberOfTypes)
	fmt.Println(ns.Actions["viewPhoto"].AppliesTo.PrincipalTypes)
	// Output:
	// [UserGroup]
	// [User]
}

func ExampleNewFragmentFromBytes_duplicateKey() {
	_, err := schema.NewFragmentFromBytes([]byte(`{
		"NS": {
			"entityTypes": {"User": {}, "User": {}},
			"actions": {}
		}
	}`))
	fmt.Println(errors.Is(err, schema.ErrDuplicateKey))
	// Output: true
}

func ExampleUnmarshalType() {
	set, err := schema.UnmarshalType([]byte(`{"type": "Set", "element": {"type": "String"}}`))
	if err != nil {
		panic(err)
	}
	ref, err := schema.UnmarshalType([]byte(`{"type": "Manager"}`))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%#v\n", set)
	fmt.Printf("%#v\n", ref)
	// Output:
	// schema.TypeSet{Element:schema.TypeString{}}
	// schema.TypeRef{Name:"Manager"}
}

func ExampleType_IsExtension() {
	direct := schema.ExtensionOf("ipaddr")
	nested := schema.RecordOf(schema.Attributes{
		"addr": {Type: schema.ExtensionOf("ipaddr"), Required: true},
		"name": {Type: schema.TypeString{}, Required: true},
	})
	alias := schema.Ref("NetworkInfo")

	fmt.Println(direct.IsExtension())
	fmt.Println(nested.IsExtension())
	fmt.Println(alias.IsExtension())
	// Output:
	// true
	// true
	// unknown
}
