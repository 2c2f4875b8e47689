package scaffold

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"github.com/agentx-labs/devkit/internal/protocol"
	"github.com/agentx-labs/devkit/internal/schema"
)

// ComponentRequest holds the arguments of generate_component.
type ComponentRequest struct {
	Name  string
	Path  string
	Type  string
	Props []protocol.Field
}

type componentData struct {
	Name  string
	Style string
	Props []protocol.Field
}

// GenerateComponent writes <Name>.tsx and its companion <Name>.md.
func (o *Orchestrator) GenerateComponent(_ context.Context, req ComponentRequest) (*Result, error) {
	if !slices.Contains(schema.ComponentTypes, req.Type) {
		return nil, protocol.InvalidParams("Unsupported component type: %s", req.Type)
	}
	if err := o.validatePath(req.Path); err != nil {
		return nil, err
	}

	data := componentData{Name: req.Name, Style: req.Type, Props: req.Props}

	source, err := render(req.Type+".tsx.tmpl", data)
	if err != nil {
		return nil, err
	}
	doc, err := render("component.md.tmpl", data)
	if err != nil {
		return nil, err
	}

	sourcePath := filepath.Join(req.Path, req.Name+".tsx")
	docPath := filepath.Join(req.Path, req.Name+".md")
	if err := o.writeFile(sourcePath, source); err != nil {
		return nil, err
	}
	if err := o.writeFile(docPath, doc); err != nil {
		return nil, err
	}

	o.logger.Info("generated component",
		zap.String("name", req.Name),
		zap.String("type", req.Type),
		zap.Int("props", len(req.Props)),
	)
	return &Result{
		Message: fmt.Sprintf("Generated %s component %s in %s", req.Type, req.Name, req.Path),
		Files:   []string{sourcePath, docPath},
	}, nil
}

// TypeRequest holds the arguments of create_type_definition.
type TypeRequest struct {
	Name       string
	Path       string
	Properties []protocol.Field
}

// CreateTypeDefinition writes <name>.ts declaring an interface with one
// member per property, in the given order. An existing file is replaced.
func (o *Orchestrator) CreateTypeDefinition(_ context.Context, req TypeRequest) (*Result, error) {
	if err := o.validatePath(req.Path); err != nil {
		return nil, err
	}

	source, err := render("type.ts.tmpl", req)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(req.Path, req.Name+".ts")
	if err := o.writeFile(path, source); err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Created type definition %s", req.Name),
		Files:   []string{path},
	}, nil
}
