package deckstore

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-deck/slides"
)

// slideSchemaTemplate constrains stored slide payloads before they are
// decoded into the tagged union. The kind enum is injected at compile time
// so the schema never drifts from the registered slide kinds.
const slideSchemaTemplate = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "type"],
		"properties": {
			"id": {"type": "integer", "minimum": 1},
			"type": {"type": "string", "enum": [%s]},
			"title": {"type": "string"},
			"subtitle": {"type": "string"},
			"headline": {"type": "string"},
			"description": {"type": "string"},
			"quote": {"type": "string"},
			"attribution": {"type": "string"},
			"src": {"type": "string"},
			"alt": {"type": "string"},
			"caption": {"type": "string"},
			"backgroundImage": {"type": "string"},
			"showBottomBar": {"type": "boolean"},
			"items": {
				"type": "array",
				"items": {"type": "string"}
			},
			"columns": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["heading"],
					"properties": {
						"heading": {"type": "string"},
						"body": {"type": "string"},
						"bullets": {"type": "array", "items": {"type": "string"}},
						"backgroundColor": {"type": "string"}
					}
				}
			},
			"timelineItems": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["label"],
					"properties": {
						"label": {"type": "string"},
						"description": {"type": "string"}
					}
				}
			},
			"iconItems": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["text"],
					"properties": {
						"text": {"type": "string"},
						"icon": {"type": "string"}
					}
				}
			}
		}
	}
}`

var compileSlideSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	kinds := slides.Kinds()
	quoted := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		quoted = append(quoted, fmt.Sprintf("%q", string(kind)))
	}
	source := fmt.Sprintf(slideSchemaTemplate, strings.Join(quoted, ", "))

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("slides.schema.json", strings.NewReader(source)); err != nil {
		return nil, fmt.Errorf("deckstore: register slide schema: %w", err)
	}
	return compiler.Compile("slides.schema.json")
})

// validateSlidePayload checks a raw content payload against the slide schema.
func validateSlidePayload(data []byte) error {
	schema, err := compileSlideSchema()
	if err != nil {
		return err
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("deckstore: decode slide payload: %w", err)
	}
	return schema.Validate(payload)
}
