package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/agentx-labs/devkit/internal/docstore"
	"github.com/agentx-labs/devkit/internal/protocol"
	"github.com/agentx-labs/devkit/internal/runtime"
)

// Options configures an Orchestrator. Zero values select the real
// filesystem, real subprocesses, a fresh document store, npm and a no-op
// logger.
type Options struct {
	Fs             afero.Fs
	Runner         runtime.Runner
	Docs           *docstore.Store
	PackageManager string
	Logger         *zap.Logger
}

// Orchestrator performs the scaffolding actions.
type Orchestrator struct {
	fs      afero.Fs
	runner  runtime.Runner
	docs    *docstore.Store
	pm      PackageManager
	logger  *zap.Logger
	bundles map[string]projectBundle
}

// Result is the outcome of a successful action.
type Result struct {
	Message string
	Files   []string
	Output  string
}

// Text renders the result as the confirmation text returned to callers.
func (r *Result) Text() string {
	var b strings.Builder
	b.WriteString(r.Message)
	if len(r.Files) > 0 {
		b.WriteString("\n\nFiles:")
		for _, f := range r.Files {
			b.WriteString("\n- ")
			b.WriteString(f)
		}
	}
	if r.Output != "" {
		b.WriteString("\n\n")
		b.WriteString(r.Output)
	}
	return b.String()
}

// New creates an Orchestrator.
func New(opts Options) (*Orchestrator, error) {
	pm, err := ParsePackageManager(opts.PackageManager)
	if err != nil {
		return nil, err
	}
	bundles, err := loadBundles(projectsYAML)
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{
		fs:      opts.Fs,
		runner:  opts.Runner,
		docs:    opts.Docs,
		pm:      pm,
		logger:  opts.Logger,
		bundles: bundles,
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.runner == nil {
		o.runner = &runtime.ExecRunner{}
	}
	if o.docs == nil {
		o.docs = docstore.New()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o, nil
}

// Docs returns the document store the orchestrator records into.
func (o *Orchestrator) Docs() *docstore.Store { return o.docs }

// ProjectTypes returns the project types with a bundle, sorted.
func (o *Orchestrator) ProjectTypes() []string {
	out := make([]string, 0, len(o.bundles))
	for name := range o.bundles {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// validatePath ensures path is a directory, creating it when absent.
func (o *Orchestrator) validatePath(path string) error {
	info, err := o.fs.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return protocol.InvalidParams("Path is not a directory: %s", path)
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if err := o.fs.MkdirAll(path, 0o755); err != nil {
			return protocol.InvalidParams("Cannot create directory %s: %v", path, err)
		}
		o.logger.Debug("created directory", zap.String("path", path))
		return nil
	default:
		return protocol.InvalidParams("Cannot access path %s: %v", path, err)
	}
}

func (o *Orchestrator) writeFile(path, content string) error {
	if err := afero.WriteFile(o.fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	o.logger.Debug("wrote file", zap.String("path", path), zap.Int("bytes", len(content)))
	return nil
}

func (o *Orchestrator) readFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(o.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s not found", path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func (o *Orchestrator) exists(path string) (bool, error) {
	return afero.Exists(o.fs, path)
}

// documentID is the store key for documentation generated at path.
func documentID(path string) string {
	return filepath.Base(filepath.Clean(path))
}
