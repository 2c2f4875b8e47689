package scaffold

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/agentx-labs/devkit/internal/jsonx"
	"github.com/agentx-labs/devkit/internal/pkgjson"
	"github.com/agentx-labs/devkit/internal/protocol"
	"github.com/agentx-labs/devkit/internal/schema"
)

// NoPropsDefined is used when no props interface can be found in a
// component's source.
const NoPropsDefined = "No props defined"

// propsBlock matches the body of the first "interface XProps { ... }" in a
// component source. Nested braces end the match early; this is a textual
// scan, not a parse.
var propsBlock = regexp.MustCompile(`(?s)interface\s+\w+Props\s*\{(.*?)\}`)

// DocumentationRequest holds the arguments of create_documentation.
type DocumentationRequest struct {
	Path string
	Type string
	Name string
}

type projectDocData struct {
	Name            string
	Description     string
	Scripts         []jsonx.Entry
	Dependencies    []jsonx.Entry
	DevDependencies []jsonx.Entry
}

type componentDocData struct {
	Name  string
	Props string
}

// CreateDocumentation renders project, API or component documentation into
// req.Path and records it in the document store under the last element of
// req.Path.
func (o *Orchestrator) CreateDocumentation(_ context.Context, req DocumentationRequest) (*Result, error) {
	if !slices.Contains(schema.DocumentationTypes, req.Type) {
		return nil, protocol.InvalidParams("Unsupported documentation type: %s", req.Type)
	}
	if req.Type == "component" && req.Name == "" {
		return nil, protocol.InvalidParams("Component name is required for component documentation")
	}
	if err := o.validatePath(req.Path); err != nil {
		return nil, err
	}

	var (
		content string
		file    string
		err     error
	)
	switch req.Type {
	case "readme":
		content, err = o.projectDoc(req.Path)
		file = "README.md"
	case "api":
		content, err = render("api-docs.md.tmpl", nil)
		file = "API.md"
	case "component":
		content, err = o.componentDoc(req.Path, req.Name)
		file = req.Name + ".md"
	}
	if err != nil {
		return nil, err
	}

	path := filepath.Join(req.Path, file)
	if err := o.writeFile(path, content); err != nil {
		return nil, err
	}

	id := documentID(req.Path)
	o.docs.Put(id, content)
	o.logger.Info("recorded documentation",
		zap.String("id", id),
		zap.String("type", req.Type),
	)

	return &Result{
		Message: fmt.Sprintf("Created %s documentation at %s (docs://%s)", req.Type, path, url.PathEscape(id)),
		Files:   []string{path},
	}, nil
}

func (o *Orchestrator) projectDoc(dir string) (string, error) {
	path := filepath.Join(dir, pkgjson.FileName)
	data, err := o.readFile(path)
	if err != nil {
		return "", err
	}
	manifest, err := pkgjson.ParseManifest(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	name := manifest.Name()
	if name == "" {
		name = documentID(dir)
	}
	return render("project-docs.md.tmpl", projectDocData{
		Name:            name,
		Description:     manifest.Description(),
		Scripts:         manifest.Scripts(),
		Dependencies:    manifest.Dependencies(),
		DevDependencies: manifest.DevDependencies(),
	})
}

func (o *Orchestrator) componentDoc(dir, name string) (string, error) {
	source, err := o.readFile(filepath.Join(dir, name+".tsx"))
	if err != nil {
		return "", err
	}
	return render("component-docs.md.tmpl", componentDocData{
		Name:  name,
		Props: ExtractProps(string(source)),
	})
}

// ExtractProps returns the members of the first props interface in a
// component source, one per line, or NoPropsDefined when none is found.
func ExtractProps(source string) string {
	m := propsBlock.FindStringSubmatch(source)
	if m == nil {
		return NoPropsDefined
	}
	var lines []string
	for _, line := range strings.Split(m[1], "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return NoPropsDefined
	}
	return strings.Join(lines, "\n")
}
