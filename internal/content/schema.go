package content

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// CatalogSchema returns a JSON Schema describing the content file.
func CatalogSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "yaml",
	}
	sch := r.Reflect(&Catalog{})
	sch.Title = "caid content catalog"
	sch.Description = "Company, roadmap, team and funding content served by caid."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
