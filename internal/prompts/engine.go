package prompts

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"github.com/mark3labs/mcp-go/mcp"
	"go.yaml.in/yaml/v3"

	"github.com/agentx-labs/devkit/internal/protocol"
)

//go:embed prompts.yaml
var catalogue []byte

type catalogueFile struct {
	Prompts []promptDef `yaml:"prompts"`
}

type promptDef struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Arguments   []argumentDef `yaml:"arguments"`
	Messages    []messageDef  `yaml:"messages"`
}

type argumentDef struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
}

type messageDef struct {
	Role string `yaml:"role"`
	Text string `yaml:"text"`
}

type compiledMessage struct {
	role mcp.Role
	tmpl *template.Template
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

// Engine renders the prompt catalogue.
type Engine struct {
	prompts  []mcp.Prompt
	messages map[string][]compiledMessage
}

// New parses the embedded catalogue.
func New() (*Engine, error) {
	return parse(catalogue)
}

func parse(data []byte) (*Engine, error) {
	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing prompt catalogue: %w", err)
	}

	e := &Engine{messages: make(map[string][]compiledMessage, len(file.Prompts))}
	for _, def := range file.Prompts {
		if _, dup := e.messages[def.Name]; dup {
			return nil, fmt.Errorf("duplicate prompt %q", def.Name)
		}

		opts := []mcp.PromptOption{mcp.WithPromptDescription(def.Description)}
		for _, arg := range def.Arguments {
			argOpts := []mcp.ArgumentOption{mcp.ArgumentDescription(arg.Description)}
			if arg.Required {
				argOpts = append(argOpts, mcp.RequiredArgument())
			}
			opts = append(opts, mcp.WithArgument(arg.Name, argOpts...))
		}
		e.prompts = append(e.prompts, mcp.NewPrompt(def.Name, opts...))

		compiled := make([]compiledMessage, 0, len(def.Messages))
		for i, msg := range def.Messages {
			tmpl, err := template.New(fmt.Sprintf("%s#%d", def.Name, i)).Funcs(funcs).Parse(msg.Text)
			if err != nil {
				return nil, fmt.Errorf("parsing prompt %q message %d: %w", def.Name, i, err)
			}
			compiled = append(compiled, compiledMessage{role: mcp.Role(msg.Role), tmpl: tmpl})
		}
		e.messages[def.Name] = compiled
	}
	return e, nil
}

// Prompts returns every prompt descriptor in catalogue order.
func (e *Engine) Prompts() []mcp.Prompt {
	out := make([]mcp.Prompt, len(e.prompts))
	copy(out, e.prompts)
	return out
}

// Render produces the message sequence of the named prompt. It does not check
// required arguments; missing ones render as empty text.
func (e *Engine) Render(name string, args map[string]string) ([]mcp.PromptMessage, error) {
	compiled, ok := e.messages[name]
	if !ok {
		return nil, protocol.InvalidParams("Unknown prompt: %s", name)
	}

	data := renderData{args: args, Features: ParseFeatures(args["features"])}
	out := make([]mcp.PromptMessage, 0, len(compiled))
	for _, msg := range compiled {
		var buf bytes.Buffer
		if err := msg.tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("rendering prompt %q: %w", name, err)
		}
		text := strings.TrimRight(buf.String(), "\n")
		out = append(out, mcp.NewPromptMessage(msg.role, mcp.NewTextContent(text)))
	}
	return out, nil
}

// ParseFeatures splits a comma-separated feature list, trimming each entry
// and dropping empty ones.
func ParseFeatures(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// renderData is the dot value of every prompt template.
type renderData struct {
	args     map[string]string
	Features []string
}

// Arg returns a caller argument, or "" when absent.
func (d renderData) Arg(name string) string {
	return d.args[name]
}

// Has reports whether the feature list contains exactly token.
func (d renderData) Has(token string) bool {
	return slices.Contains(d.Features, token)
}
