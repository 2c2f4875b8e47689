package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentx-labs/devkit/internal/pkgjson"
	"github.com/agentx-labs/devkit/internal/protocol"
	"github.com/agentx-labs/devkit/internal/runtime"
)

var titleCase = cases.Title(language.English)

// ProjectRequest holds the arguments of create_project.
type ProjectRequest struct {
	Name       string
	Type       string
	Path       string
	TypeScript bool
}

type readmeData struct {
	Name       string
	Type       string
	Label      string
	TypeScript bool
	Frontend   bool
	Manager    PackageManager
}

// step is one stage of project creation. Steps run in order; the first
// failure stops the sequence and earlier side effects are left in place.
type step struct {
	name string
	run  func(ctx context.Context) error
}

// CreateProject creates a new project directory at req.Path/req.Name, runs
// the type's generator, installs its dependencies, writes tsconfig.json when
// TypeScript is enabled and writes a README, which is also recorded in the
// document store under the project name.
func (o *Orchestrator) CreateProject(ctx context.Context, req ProjectRequest) (*Result, error) {
	bundle, ok := o.bundles[req.Type]
	if !ok {
		return nil, protocol.InvalidParams("Unsupported project type: %s", req.Type)
	}

	dir := filepath.Join(req.Path, req.Name)
	result := &Result{
		Message: fmt.Sprintf("Created %s project %q at %s", req.Type, req.Name, dir),
	}
	var readme string

	steps := []step{
		{"create project directory", func(context.Context) error {
			if err := o.fs.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
			return nil
		}},
		{"run generator", func(ctx context.Context) error {
			argv := bundle.generator(req.TypeScript)
			_, err := runtime.Check(ctx, o.runner, dir, argv[0], argv[1:]...)
			return err
		}},
		{"install dependencies", func(ctx context.Context) error {
			if len(bundle.Dependencies) == 0 {
				return nil
			}
			_, err := o.install(ctx, dir, bundle.Dependencies, false)
			return err
		}},
		{"install dev dependencies", func(ctx context.Context) error {
			dev := bundle.devDependencies(req.TypeScript)
			if len(dev) == 0 {
				return nil
			}
			_, err := o.install(ctx, dir, dev, true)
			return err
		}},
		{"write tsconfig", func(context.Context) error {
			if !req.TypeScript {
				return nil
			}
			if err := o.fs.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
				return fmt.Errorf("creating src: %w", err)
			}
			data, err := pkgjson.DefaultTSConfig(bundle.JSX).Marshal()
			if err != nil {
				return err
			}
			result.Files = append(result.Files, pkgjson.TSConfigFileName)
			return o.writeFile(filepath.Join(dir, pkgjson.TSConfigFileName), string(data))
		}},
		{"write README", func(context.Context) error {
			var err error
			readme, err = render("readme.md.tmpl", readmeData{
				Name:       req.Name,
				Type:       req.Type,
				Label:      titleCase.String(req.Type),
				TypeScript: req.TypeScript,
				Frontend:   bundle.JSX,
				Manager:    o.pm,
			})
			if err != nil {
				return err
			}
			result.Files = append(result.Files, "README.md")
			return o.writeFile(filepath.Join(dir, "README.md"), readme)
		}},
		{"record README", func(context.Context) error {
			o.docs.Put(req.Name, readme)
			return nil
		}},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		o.logger.Debug("create_project step",
			zap.String("project", req.Name),
			zap.String("step", s.name),
		)
		if err := s.run(ctx); err != nil {
			o.logger.Warn("create_project step failed",
				zap.String("project", req.Name),
				zap.String("step", s.name),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
	}

	return result, nil
}
