package schema

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTools_ContractsCompile(t *testing.T) {
	require.NoError(t, Check(Tools()))
}

func TestTools_RequiredParameters(t *testing.T) {
	want := map[string][]string{
		CreateProject:        {"name", "type", "path"},
		InstallPackages:      {"packages", "path"},
		GenerateComponent:    {"name", "path", "type"},
		CreateTypeDefinition: {"name", "path", "properties"},
		AddScript:            {"path", "name", "command"},
		UpdateTSConfig:       {"path", "options"},
		CreateDocumentation:  {"path", "type"},
	}

	tools := Tools()
	require.Len(t, tools, len(want))
	for _, tool := range tools {
		req, ok := want[tool.Name]
		require.True(t, ok, "unexpected action %s", tool.Name)
		assert.ElementsMatch(t, req, Required(tool), tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
	}
}

func TestTools_ProjectTypeEnum(t *testing.T) {
	var create mcp.Tool
	for _, tool := range Tools() {
		if tool.Name == CreateProject {
			create = tool
		}
	}
	prop, ok := create.InputSchema.Properties["type"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, ProjectTypes, prop["enum"])
}

func TestCheck_RejectsDuplicates(t *testing.T) {
	tool := mcp.NewTool("dup", mcp.WithString("a"))
	err := Check([]mcp.Tool{tool, tool})
	assert.ErrorContains(t, err, "duplicate")
}

func TestCheck_RejectsUndeclaredRequired(t *testing.T) {
	tool := mcp.NewTool("broken", mcp.WithString("a"))
	tool.InputSchema.Required = []string{"b"}
	assert.ErrorContains(t, Check([]mcp.Tool{tool}), `"b"`)
}
