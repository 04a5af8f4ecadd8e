package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/corpusgraph/corpusgraph/internal/ontology"
)

// buildResponseSchema compiles the JSON-Schema validator for §6.2's wire
// response, with the classification and relationship type enums drawn from
// the loaded ontology rather than hardcoded, since valid_classes and the
// relationship vocabulary are both ontology-supplied. The classification
// enum also admits ErrorClassification; the direction enum is the fixed
// outgoing/incoming pair.
func buildResponseSchema(o *ontology.Ontology) (*jsonschema.Schema, error) {
	schemaDoc := map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "object",
		"required": []string{"classification", "relationships"},
		"properties": map[string]any{
			"classification": map[string]any{
				"type": "string",
				"enum": append(o.ValidClasses(), ErrorClassification),
			},
			"justification": map[string]any{"type": "string"},
			"relationships": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"target_id", "type", "direction", "justification"},
					"properties": map[string]any{
						"target_id":     map[string]any{"type": "string"},
						"type":          map[string]any{"type": "string", "enum": o.RelationshipTypes()},
						"direction":     map[string]any{"type": "string", "enum": []string{"outgoing", "incoming"}},
						"justification": map[string]any{"type": "string"},
					},
				},
			},
		},
	}

	raw, err := json.Marshal(schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("marshaling classifier response schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("classifier-response.json", bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("loading classifier response schema: %w", err)
	}
	schema, err := compiler.Compile("classifier-response.json")
	if err != nil {
		return nil, fmt.Errorf("compiling classifier response schema: %w", err)
	}
	return schema, nil
}

// validateResponse parses and validates raw model output against schema,
// returning the decoded response on success.
func validateResponse(schema *jsonschema.Schema, raw string) (*response, error) {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("response does not match expected shape: %w", err)
	}

	var r response
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &r, nil
}
