// JSON Schema generation for the record models, used by the `schema` CLI
// command so external tooling can validate seed files and API payloads.

package models

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaFor returns the JSON Schema of the given collection's record model.
func SchemaFor(collection string) (*jsonschema.Schema, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	switch collection {
	case CollectionAreas:
		return r.Reflect(&Area{}), nil
	case CollectionRaces:
		return r.Reflect(&Race{}), nil
	case CollectionCharacters:
		return r.Reflect(&Character{}), nil
	case CollectionAffiliations:
		return r.Reflect(&Affiliation{}), nil
	}
	return nil, fmt.Errorf("unknown collection %q", collection)
}
