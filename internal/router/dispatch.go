package router

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/agentx-labs/devkit/internal/protocol"
)

// Capability surface methods.
const (
	MethodToolsList     = "tools/list"
	MethodToolsCall     = "tools/call"
	MethodResourcesList = "resources/list"
	MethodResourcesRead = "resources/read"
	MethodPromptsList   = "prompts/list"
	MethodPromptsGet    = "prompts/get"
)

// ListToolsResult is the result of tools/list.
type ListToolsResult struct {
	Tools []mcp.Tool `json:"tools"`
}

// ListResourcesResult is the result of resources/list.
type ListResourcesResult struct {
	Resources []mcp.Resource `json:"resources"`
}

// ReadResourceResult is the result of resources/read.
type ReadResourceResult struct {
	Contents []mcp.TextResourceContents `json:"contents"`
}

// ListPromptsResult is the result of prompts/list.
type ListPromptsResult struct {
	Prompts []mcp.Prompt `json:"prompts"`
}

// GetPromptResult is the result of prompts/get.
type GetPromptResult struct {
	Description string              `json:"description,omitempty"`
	Messages    []mcp.PromptMessage `json:"messages"`
}

type callToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type readResourceParams struct {
	URI string `json:"uri"`
}

type getPromptParams struct {
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments"`
}

type methodFunc func(ctx context.Context, params json.RawMessage) (interface{}, error)

func (r *Router) methods() map[string]methodFunc {
	return map[string]methodFunc{
		MethodToolsList: func(context.Context, json.RawMessage) (interface{}, error) {
			return ListToolsResult{Tools: r.ListTools()}, nil
		},
		MethodToolsCall: func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
			var p callToolParams
			if err := decodeParams(raw, &p); err != nil {
				return nil, err
			}
			args, err := protocol.ParseArguments(p.Arguments)
			if err != nil {
				return nil, protocol.InvalidParams("%v", err)
			}
			return r.CallTool(ctx, p.Name, args)
		},
		MethodResourcesList: func(context.Context, json.RawMessage) (interface{}, error) {
			return ListResourcesResult{Resources: r.ListResources()}, nil
		},
		MethodResourcesRead: func(_ context.Context, raw json.RawMessage) (interface{}, error) {
			var p readResourceParams
			if err := decodeParams(raw, &p); err != nil {
				return nil, err
			}
			contents, err := r.ReadResource(p.URI)
			if err != nil {
				return nil, err
			}
			return ReadResourceResult{Contents: contents}, nil
		},
		MethodPromptsList: func(context.Context, json.RawMessage) (interface{}, error) {
			return ListPromptsResult{Prompts: r.ListPrompts()}, nil
		},
		MethodPromptsGet: func(_ context.Context, raw json.RawMessage) (interface{}, error) {
			var p getPromptParams
			if err := decodeParams(raw, &p); err != nil {
				return nil, err
			}
			return r.GetPrompt(p.Name, p.Arguments)
		},
	}
}

// Handles reports whether method belongs to a capability surface.
func (r *Router) Handles(method string) bool {
	_, ok := r.table[method]
	return ok
}

// Dispatch routes a capability method to its surface. Unknown methods fail
// with MethodNotFound.
func (r *Router) Dispatch(ctx context.Context, method string, params json.RawMessage) (interface{}, error) {
	fn, ok := r.table[method]
	if !ok {
		return nil, protocol.MethodNotFound("Method not found: %s", method)
	}
	return fn(ctx, params)
}

func decodeParams(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return protocol.InvalidParams("Invalid params: %v", err)
	}
	return nil
}
