package quiz

import (
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

const createQuizSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["title", "questions"],
  "properties": {
    "title": {"type": "string"},
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type", "text"],
        "properties": {
          "type": {"type": "string", "enum": ["BOOLEAN", "INPUT", "CHECKBOX"]},
          "text": {"type": "string"},
          "options": {"type": ["array", "null"], "items": {"type": "string"}},
          "answer": {"type": ["boolean", "string", "array", "null"], "items": {"type": "string"}}
        }
      }
    }
  }
}`

const rootField = "(root)"

var loadCreateQuizSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(createQuizSchema))
})

// ValidateSchema checks the raw create-quiz body against the wire shape before
// it is decoded. Semantic rules are left to Validate.
func ValidateSchema(body []byte) error {
	schema, err := loadCreateQuizSchema()
	if err != nil {
		return fmt.Errorf("failed to load create quiz schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		verr := NewValidationError()
		verr.Add("body", "request body is not valid JSON")
		return verr
	}
	if result.Valid() {
		return nil
	}

	verr := NewValidationError()
	for _, re := range result.Errors() {
		field := re.Field()
		if field == "" || field == rootField {
			field = "body"
		}
		verr.Add(field, re.Description())
	}
	return verr
}
