package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// responseSchema declares the envelope shape the extractor relies on. Output
// item kinds are a closed enum; a message content item claiming output_text
// must carry a string text field. Unknown content kinds are permitted, they
// just contribute no text.
const responseSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["output"],
  "properties": {
    "output": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "type": {"enum": ["message", "reasoning", "web_search_call"]}
        },
        "if": {"properties": {"type": {"const": "message"}}},
        "then": {
          "properties": {
            "content": {
              "type": "array",
              "items": {
                "type": "object",
                "required": ["type"],
                "if": {"properties": {"type": {"const": "output_text"}}},
                "then": {
                  "required": ["text"],
                  "properties": {"text": {"type": "string"}}
                }
              }
            }
          }
        }
      }
    }
  }
}`

var compiledResponseSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(responseSchema))
	if err != nil {
		panic(fmt.Sprintf("parse response schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("response.schema.json", doc); err != nil {
		panic(fmt.Sprintf("add response schema: %v", err))
	}
	sch, err := c.Compile("response.schema.json")
	if err != nil {
		panic(fmt.Sprintf("compile response schema: %v", err))
	}
	return sch
}

// ValidateResponse checks raw against the expected envelope and decodes it.
// A shape mismatch is a recoverable condition reported as an error, never a
// panic: the caller falls back to lenient extraction over the raw bytes.
func ValidateResponse(raw []byte) (*Response, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if err := compiledResponseSchema.Validate(inst); err != nil {
		return nil, fmt.Errorf("response shape mismatch: %w", err)
	}
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &resp, nil
}
