package actions

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/agentx-labs/devkit/internal/protocol"
	"github.com/agentx-labs/devkit/internal/router"
	"github.com/agentx-labs/devkit/internal/scaffold"
	"github.com/agentx-labs/devkit/internal/schema"
)

type handlerFunc func(ctx context.Context, o *scaffold.Orchestrator, args protocol.Arguments) (*scaffold.Result, error)

var handlers = map[string]handlerFunc{
	schema.CreateProject:        createProject,
	schema.InstallPackages:      installPackages,
	schema.GenerateComponent:    generateComponent,
	schema.CreateTypeDefinition: createTypeDefinition,
	schema.AddScript:            addScript,
	schema.UpdateTSConfig:       updateTSConfig,
	schema.CreateDocumentation:  createDocumentation,
}

// Bindings returns one router tool per registered descriptor, in descriptor
// order. It fails when a descriptor has no handler or a handler has no
// descriptor.
func Bindings(o *scaffold.Orchestrator) ([]router.Tool, error) {
	tools := schema.Tools()
	if len(tools) != len(handlers) {
		return nil, fmt.Errorf("%d descriptors but %d handlers", len(tools), len(handlers))
	}

	out := make([]router.Tool, 0, len(tools))
	for _, def := range tools {
		h, ok := handlers[def.Name]
		if !ok {
			return nil, fmt.Errorf("no handler for action %q", def.Name)
		}
		out = append(out, bind(def, h, o))
	}
	return out, nil
}

func bind(def mcp.Tool, h handlerFunc, o *scaffold.Orchestrator) router.Tool {
	return router.Tool{
		Definition: def,
		Handle: func(ctx context.Context, args protocol.Arguments) (string, error) {
			result, err := h(ctx, o, args)
			if err != nil {
				return "", err
			}
			return result.Text(), nil
		},
	}
}

func createProject(ctx context.Context, o *scaffold.Orchestrator, args protocol.Arguments) (*scaffold.Result, error) {
	var req scaffold.ProjectRequest
	var err error
	if req.Name, err = args.String("name"); err != nil {
		return nil, err
	}
	if req.Type, err = args.String("type"); err != nil {
		return nil, err
	}
	if req.Path, err = args.String("path"); err != nil {
		return nil, err
	}
	if req.TypeScript, err = args.Bool("typescript", true); err != nil {
		return nil, err
	}
	return o.CreateProject(ctx, req)
}

func installPackages(ctx context.Context, o *scaffold.Orchestrator, args protocol.Arguments) (*scaffold.Result, error) {
	var req scaffold.InstallRequest
	var err error
	if req.Packages, err = args.Strings("packages"); err != nil {
		return nil, err
	}
	if req.Path, err = args.String("path"); err != nil {
		return nil, err
	}
	if req.Dev, err = args.Bool("dev", false); err != nil {
		return nil, err
	}
	return o.InstallPackages(ctx, req)
}

func generateComponent(ctx context.Context, o *scaffold.Orchestrator, args protocol.Arguments) (*scaffold.Result, error) {
	var req scaffold.ComponentRequest
	var err error
	if req.Name, err = args.String("name"); err != nil {
		return nil, err
	}
	if req.Path, err = args.String("path"); err != nil {
		return nil, err
	}
	if req.Type, err = args.String("type"); err != nil {
		return nil, err
	}
	if req.Props, err = args.OptionalFields("props"); err != nil {
		return nil, err
	}
	return o.GenerateComponent(ctx, req)
}

func createTypeDefinition(ctx context.Context, o *scaffold.Orchestrator, args protocol.Arguments) (*scaffold.Result, error) {
	var req scaffold.TypeRequest
	var err error
	if req.Name, err = args.String("name"); err != nil {
		return nil, err
	}
	if req.Path, err = args.String("path"); err != nil {
		return nil, err
	}
	if req.Properties, err = args.Fields("properties"); err != nil {
		return nil, err
	}
	return o.CreateTypeDefinition(ctx, req)
}

func addScript(ctx context.Context, o *scaffold.Orchestrator, args protocol.Arguments) (*scaffold.Result, error) {
	var req scaffold.ScriptRequest
	var err error
	if req.Path, err = args.String("path"); err != nil {
		return nil, err
	}
	if req.Name, err = args.String("name"); err != nil {
		return nil, err
	}
	if req.Command, err = args.String("command"); err != nil {
		return nil, err
	}
	return o.AddScript(ctx, req)
}

func updateTSConfig(ctx context.Context, o *scaffold.Orchestrator, args protocol.Arguments) (*scaffold.Result, error) {
	var req scaffold.TSConfigRequest
	var err error
	if req.Path, err = args.String("path"); err != nil {
		return nil, err
	}
	if req.Options, err = args.Object("options"); err != nil {
		return nil, err
	}
	return o.UpdateTSConfig(ctx, req)
}

func createDocumentation(ctx context.Context, o *scaffold.Orchestrator, args protocol.Arguments) (*scaffold.Result, error) {
	var req scaffold.DocumentationRequest
	var err error
	if req.Path, err = args.String("path"); err != nil {
		return nil, err
	}
	if req.Type, err = args.String("type"); err != nil {
		return nil, err
	}
	if req.Name, err = args.OptionalString("name"); err != nil {
		return nil, err
	}
	return o.CreateDocumentation(ctx, req)
}
