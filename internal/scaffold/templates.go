package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"go.yaml.in/yaml/v3"

	"github.com/agentx-labs/devkit/internal/protocol"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed projects.yaml
var projectsYAML []byte

var templates = template.Must(template.New("scaffold").Funcs(template.FuncMap{
	"kebab":     kebabCase,
	"propNames": propNames,
	"example":   ExampleValue,
}).ParseFS(templateFS, "templates/*.tmpl"))

// render executes the named embedded template.
func render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// projectBundle is the per-type recipe for create_project.
type projectBundle struct {
	Generator struct {
		TypeScript []string `yaml:"typescript"`
		JavaScript []string `yaml:"javascript"`
	} `yaml:"generator"`
	Dependencies    []string `yaml:"dependencies"`
	DevDependencies struct {
		TypeScript []string `yaml:"typescript"`
		JavaScript []string `yaml:"javascript"`
	} `yaml:"devDependencies"`
	JSX bool `yaml:"jsx"`
}

func (b projectBundle) generator(typescript bool) []string {
	if typescript {
		return b.Generator.TypeScript
	}
	return b.Generator.JavaScript
}

func (b projectBundle) devDependencies(typescript bool) []string {
	if typescript {
		return b.DevDependencies.TypeScript
	}
	return b.DevDependencies.JavaScript
}

func loadBundles(data []byte) (map[string]projectBundle, error) {
	var bundles map[string]projectBundle
	if err := yaml.Unmarshal(data, &bundles); err != nil {
		return nil, fmt.Errorf("parsing project bundles: %w", err)
	}
	for name, b := range bundles {
		if len(b.Generator.TypeScript) == 0 || len(b.Generator.JavaScript) == 0 {
			return nil, fmt.Errorf("project bundle %q: generator command is required", name)
		}
	}
	return bundles, nil
}

// ExampleValue returns the JSX attribute value used for a prop of the given
// TypeScript type in generated usage snippets.
func ExampleValue(typ string) string {
	switch strings.TrimSpace(typ) {
	case "string":
		return `"example"`
	case "number":
		return "{42}"
	case "boolean":
		return "{true}"
	case "array", "string[]":
		return "{['item1', 'item2']}"
	case "object":
		return "{{ key: 'value' }}"
	default:
		return "{undefined}"
	}
}

func propNames(props []protocol.Field) string {
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// kebabCase converts a component name such as "UserCard" to "user-card".
func kebabCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
