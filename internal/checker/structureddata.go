package checker

import (
	"encoding/json"
	"fmt"

	"github.com/olocus/seolint/internal/config"
	"github.com/olocus/seolint/internal/model"
)

// StructuredDataCheck validates the page's JSON-LD structured data.
//
// Every <script type="application/ld+json"> block is parsed independently;
// a parse failure in one block does not short-circuit the rest. After
// parsing, the expected schema.org @type values (Organization, WebSite,
// WebPage by default) are looked for across all successfully parsed blocks,
// descending into a top-level @graph array if one is present. A missing
// schema type is advisory, not fatal.
//
// A page with no JSON-LD blocks at all yields exactly one error and the
// schema-type warnings are skipped entirely: they only apply once a block
// was successfully parsed.
type StructuredDataCheck struct{}

// Name returns the check name.
func (c *StructuredDataCheck) Name() string {
	return "structured data"
}

// Check inspects the document's JSON-LD blocks.
func (c *StructuredDataCheck) Check(doc *Document, rules *config.Rules, rep *model.Report) {
	if len(doc.JSONLD) == 0 {
		rep.AddError("no structured data found")
		return
	}

	foundTypes := make(map[string]bool)
	parsedAny := false

	for i, block := range doc.JSONLD {
		var data any
		if err := json.Unmarshal([]byte(block), &data); err != nil {
			rep.AddError(fmt.Sprintf("invalid JSON-LD in block %d: %v", i+1, err))
			continue
		}

		parsedAny = true
		rep.AddPass(fmt.Sprintf("JSON-LD block %d is valid JSON", i+1))
		collectSchemaTypes(data, foundTypes)
	}

	if !parsedAny {
		return
	}

	for _, schemaType := range rules.SchemaTypes {
		if foundTypes[schemaType] {
			rep.AddPass(fmt.Sprintf("%s schema present", schemaType))
		} else {
			rep.AddWarning(fmt.Sprintf("missing %s schema", schemaType))
		}
	}
}

// collectSchemaTypes records the @type values found in a parsed JSON-LD
// value. It descends into top-level arrays and into a @graph array, and
// accepts @type as either a string or an array of strings.
func collectSchemaTypes(data any, found map[string]bool) {
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			collectSchemaTypes(item, found)
		}

	case map[string]any:
		switch t := v["@type"].(type) {
		case string:
			found[t] = true
		case []any:
			for _, item := range t {
				if s, ok := item.(string); ok {
					found[s] = true
				}
			}
		}

		if graph, ok := v["@graph"].([]any); ok {
			for _, item := range graph {
				collectSchemaTypes(item, found)
			}
		}
	}
}
