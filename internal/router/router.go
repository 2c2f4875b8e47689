package router

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/agentx-labs/devkit/internal/docstore"
	"github.com/agentx-labs/devkit/internal/protocol"
)

// ResourceScheme is the URI scheme of content items.
const ResourceScheme = "docs"

// Tool is an action descriptor paired with its handler. Handlers receive
// the raw arguments; required arguments are not checked before the call.
type Tool struct {
	Definition mcp.Tool
	Handle     func(ctx context.Context, args protocol.Arguments) (string, error)
}

// PromptEngine lists and renders prompt templates.
type PromptEngine interface {
	Prompts() []mcp.Prompt
	Render(name string, args map[string]string) ([]mcp.PromptMessage, error)
}

// Router holds the per-surface dispatch tables of one server instance.
type Router struct {
	tools     map[string]Tool
	toolOrder []string

	prompts     map[string]mcp.Prompt
	promptOrder []string
	engine      PromptEngine

	docs   *docstore.Store
	logger *zap.Logger

	table map[string]methodFunc
}

// New builds a router. Duplicate names within a surface are an error.
func New(tools []Tool, engine PromptEngine, docs *docstore.Store, logger *zap.Logger) (*Router, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Router{
		tools:   make(map[string]Tool, len(tools)),
		prompts: make(map[string]mcp.Prompt),
		engine:  engine,
		docs:    docs,
		logger:  logger,
	}

	for _, t := range tools {
		name := t.Definition.Name
		if t.Handle == nil {
			return nil, fmt.Errorf("action %q has no handler", name)
		}
		if _, dup := r.tools[name]; dup {
			return nil, fmt.Errorf("duplicate action %q", name)
		}
		r.tools[name] = t
		r.toolOrder = append(r.toolOrder, name)
	}

	if engine != nil {
		for _, p := range engine.Prompts() {
			if _, dup := r.prompts[p.Name]; dup {
				return nil, fmt.Errorf("duplicate prompt %q", p.Name)
			}
			r.prompts[p.Name] = p
			r.promptOrder = append(r.promptOrder, p.Name)
		}
	}
	r.table = r.methods()
	return r, nil
}

// ListTools returns every action descriptor in registration order.
func (r *Router) ListTools() []mcp.Tool {
	out := make([]mcp.Tool, 0, len(r.toolOrder))
	for _, name := range r.toolOrder {
		out = append(out, r.tools[name].Definition)
	}
	return out
}

// CallTool invokes the named action. Typed protocol errors from the handler
// are returned unchanged; any other error is wrapped as an internal error
// naming the action.
func (r *Router) CallTool(ctx context.Context, name string, args protocol.Arguments) (*mcp.CallToolResult, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, protocol.MethodNotFound("Unknown tool: %s", name)
	}
	if args == nil {
		args = protocol.Arguments{}
	}

	log := r.logger.With(
		zap.String("call_id", uuid.NewString()),
		zap.String("action", name),
	)
	start := time.Now()
	log.Info("action started")

	text, err := tool.Handle(ctx, args)
	elapsed := time.Since(start)
	if err != nil {
		pe, typed := protocol.AsError(err)
		if !typed {
			pe = protocol.Internal(name, err)
		}
		log.Warn("action failed",
			zap.Duration("duration", elapsed),
			zap.String("kind", pe.Kind()),
			zap.Error(err),
		)
		return nil, pe
	}

	log.Info("action completed", zap.Duration("duration", elapsed))
	return mcp.NewToolResultText(text), nil
}

// ResourceURI returns the content item URI for a document id. The id is
// path-escaped so ids with spaces, percent signs or slashes survive a
// round trip through ReadResource.
func ResourceURI(id string) string {
	return ResourceScheme + "://" + url.PathEscape(id)
}

// resourceID recovers the document id from a docs:// URI.
func resourceID(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, ResourceScheme+"://")
	if !ok || rest == "" {
		return "", protocol.InvalidParams("Invalid resource URI %q: expected %s://<id>", uri, ResourceScheme)
	}
	id, err := url.PathUnescape(rest)
	if err != nil {
		return "", protocol.InvalidParams("Invalid resource URI %q: %v", uri, err)
	}
	return id, nil
}

// ListResources describes every document currently in the store.
func (r *Router) ListResources() []mcp.Resource {
	docs := r.docs.List()
	out := make([]mcp.Resource, 0, len(docs))
	for _, d := range docs {
		out = append(out, mcp.NewResource(ResourceURI(d.ID), d.ID,
			mcp.WithResourceDescription(fmt.Sprintf("Generated documentation for %s", d.ID)),
			mcp.WithMIMEType("text/markdown"),
		))
	}
	return out
}

// ReadResource returns the document addressed by a docs:// URI.
func (r *Router) ReadResource(uri string) ([]mcp.TextResourceContents, error) {
	id, err := resourceID(uri)
	if err != nil {
		return nil, err
	}

	content, ok := r.docs.Get(id)
	if !ok {
		return nil, protocol.MethodNotFound("Resource not found: %s", uri)
	}
	return []mcp.TextResourceContents{{
		URI:      uri,
		MIMEType: "text/markdown",
		Text:     content,
	}}, nil
}

// ListPrompts returns every prompt template in catalogue order.
func (r *Router) ListPrompts() []mcp.Prompt {
	out := make([]mcp.Prompt, 0, len(r.promptOrder))
	for _, name := range r.promptOrder {
		out = append(out, r.prompts[name])
	}
	return out
}

// GetPrompt checks the prompt's required arguments and renders it.
func (r *Router) GetPrompt(name string, args map[string]string) (*GetPromptResult, error) {
	p, ok := r.prompts[name]
	if !ok {
		return nil, protocol.MethodNotFound("Unknown prompt: %s", name)
	}
	for _, a := range p.Arguments {
		if a.Required && args[a.Name] == "" {
			return nil, protocol.InvalidParams("Missing required argument: %s", a.Name)
		}
	}

	messages, err := r.engine.Render(name, args)
	if err != nil {
		if pe, typed := protocol.AsError(err); typed {
			return nil, pe
		}
		return nil, protocol.Internal(name, err)
	}
	return &GetPromptResult{Description: p.Description, Messages: messages}, nil
}
