package schema

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Action names.
const (
	CreateProject        = "create_project"
	InstallPackages      = "install_packages"
	GenerateComponent    = "generate_component"
	CreateTypeDefinition = "create_type_definition"
	AddScript            = "add_script"
	UpdateTSConfig       = "update_tsconfig"
	CreateDocumentation  = "create_documentation"
)

// Enumerations shared with the orchestrator.
var (
	ProjectTypes       = []string{"react", "node", "next", "express", "fastify"}
	ComponentTypes     = []string{"functional", "class"}
	DocumentationTypes = []string{"readme", "api", "component"}
)

var stringType = map[string]interface{}{"type": "string"}

// Tools returns the descriptor of every action, in listing order.
func Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(CreateProject,
			mcp.WithDescription("Create a new project from a template: generator, dependencies, tsconfig and README"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Project name")),
			mcp.WithString("type", mcp.Required(), mcp.Enum(ProjectTypes...), mcp.Description("Project type")),
			mcp.WithString("path", mcp.Required(), mcp.Description("Parent directory the project is created in")),
			mcp.WithBoolean("typescript", mcp.DefaultBool(true), mcp.Description("Use TypeScript")),
		),
		mcp.NewTool(InstallPackages,
			mcp.WithDescription("Install packages into an existing project"),
			mcp.WithArray("packages", mcp.Required(), mcp.Items(stringType), mcp.Description("Packages to install")),
			mcp.WithString("path", mcp.Required(), mcp.Description("Project directory containing package.json")),
			mcp.WithBoolean("dev", mcp.DefaultBool(false), mcp.Description("Install as dev dependencies")),
		),
		mcp.NewTool(GenerateComponent,
			mcp.WithDescription("Generate a React component and its documentation"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Component name")),
			mcp.WithString("path", mcp.Required(), mcp.Description("Directory to write the component to")),
			mcp.WithString("type", mcp.Required(), mcp.Enum(ComponentTypes...), mcp.Description("Component style")),
			mcp.WithObject("props", mcp.Description("Prop name to TypeScript type")),
		),
		mcp.NewTool(CreateTypeDefinition,
			mcp.WithDescription("Create a TypeScript interface declaration"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Type name")),
			mcp.WithString("path", mcp.Required(), mcp.Description("Directory to write the declaration to")),
			mcp.WithObject("properties", mcp.Required(), mcp.Description("Property name to TypeScript type")),
		),
		mcp.NewTool(AddScript,
			mcp.WithDescription("Add or replace a script in package.json"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Project directory containing package.json")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Script name")),
			mcp.WithString("command", mcp.Required(), mcp.Description("Script command")),
		),
		mcp.NewTool(UpdateTSConfig,
			mcp.WithDescription("Merge compiler options into tsconfig.json"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Project directory")),
			mcp.WithObject("options", mcp.Required(), mcp.Description("Compiler options to set")),
		),
		mcp.NewTool(CreateDocumentation,
			mcp.WithDescription("Generate project, API or component documentation"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Project or component directory")),
			mcp.WithString("type", mcp.Required(), mcp.Enum(DocumentationTypes...), mcp.Description("Documentation kind")),
			mcp.WithString("name", mcp.Description("Component name, required for component documentation")),
		),
	}
}

// Required returns the declared required parameters of a descriptor.
func Required(tool mcp.Tool) []string {
	out := make([]string, len(tool.InputSchema.Required))
	copy(out, tool.InputSchema.Required)
	return out
}
