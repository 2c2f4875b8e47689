package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/agentx-labs/devkit/internal/jsonx"
	"github.com/agentx-labs/devkit/internal/pkgjson"
)

// ScriptRequest holds the arguments of add_script.
type ScriptRequest struct {
	Path    string
	Name    string
	Command string
}

// AddScript inserts or replaces a script in the package.json at req.Path.
func (o *Orchestrator) AddScript(_ context.Context, req ScriptRequest) (*Result, error) {
	if err := o.validatePath(req.Path); err != nil {
		return nil, err
	}

	path := filepath.Join(req.Path, pkgjson.FileName)
	data, err := o.readFile(path)
	if err != nil {
		return nil, err
	}
	manifest, err := pkgjson.ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := manifest.SetScript(req.Name, req.Command); err != nil {
		return nil, err
	}
	out, err := manifest.Marshal()
	if err != nil {
		return nil, err
	}
	if err := o.writeFile(path, string(out)); err != nil {
		return nil, err
	}

	return &Result{
		Message: fmt.Sprintf("Added script %q: %s", req.Name, req.Command),
		Files:   []string{path},
	}, nil
}

// TSConfigRequest holds the arguments of update_tsconfig.
type TSConfigRequest struct {
	Path    string
	Options *jsonx.Object
}

// UpdateTSConfig merges req.Options into the compilerOptions of the
// tsconfig.json at req.Path, creating the file when absent.
func (o *Orchestrator) UpdateTSConfig(_ context.Context, req TSConfigRequest) (*Result, error) {
	if err := o.validatePath(req.Path); err != nil {
		return nil, err
	}

	path := filepath.Join(req.Path, pkgjson.TSConfigFileName)
	ok, err := o.exists(path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	cfg := pkgjson.EmptyTSConfig()
	if ok {
		data, err := o.readFile(path)
		if err != nil {
			return nil, err
		}
		if cfg, err = pkgjson.ParseTSConfig(data); err != nil {
			return nil, err
		}
	}

	options := req.Options
	if options == nil {
		options = jsonx.NewObject()
	}
	if err := cfg.MergeCompilerOptions(options); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out, err := cfg.Marshal()
	if err != nil {
		return nil, err
	}
	if err := o.writeFile(path, string(out)); err != nil {
		return nil, err
	}

	return &Result{
		Message: fmt.Sprintf("Updated %s with %d compiler option(s)", path, options.Len()),
		Files:   []string{path},
	}, nil
}
