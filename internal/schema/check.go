package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Check compiles every descriptor's input contract as a JSON Schema and
// verifies names are unique. It runs once at startup.
func Check(tools []mcp.Tool) error {
	seen := make(map[string]bool, len(tools))
	c := jsonschema.NewCompiler()

	for _, tool := range tools {
		if tool.Name == "" {
			return fmt.Errorf("descriptor without a name")
		}
		if seen[tool.Name] {
			return fmt.Errorf("duplicate action %q", tool.Name)
		}
		seen[tool.Name] = true

		for _, req := range tool.InputSchema.Required {
			if _, ok := tool.InputSchema.Properties[req]; !ok {
				return fmt.Errorf("action %q: required parameter %q is not declared", tool.Name, req)
			}
		}

		data, err := json.Marshal(tool.InputSchema)
		if err != nil {
			return fmt.Errorf("action %q: encoding input contract: %w", tool.Name, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("action %q: decoding input contract: %w", tool.Name, err)
		}
		url := tool.Name + ".schema.json"
		if err := c.AddResource(url, doc); err != nil {
			return fmt.Errorf("action %q: adding input contract: %w", tool.Name, err)
		}
		if _, err := c.Compile(url); err != nil {
			return fmt.Errorf("action %q: compiling input contract: %w", tool.Name, err)
		}
	}
	return nil
}
