package scaffold

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/agentx-labs/devkit/internal/docstore"
	"github.com/agentx-labs/devkit/internal/runtime"
)

type runCall struct {
	Dir  string
	Line string
}

// fakeRunner records commands. A command whose line starts with failPrefix
// exits non-zero; one starting with errPrefix cannot be started.
type fakeRunner struct {
	calls      []runCall
	failPrefix string
	errPrefix  string
	stdout     string
	stderr     string
	onRun      func(dir, line string)
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (*runtime.Output, error) {
	line := runtime.CommandLine(name, args...)
	f.calls = append(f.calls, runCall{Dir: dir, Line: line})
	if f.errPrefix != "" && strings.HasPrefix(line, f.errPrefix) {
		return nil, errors.New(name + " is not available")
	}
	if f.failPrefix != "" && strings.HasPrefix(line, f.failPrefix) {
		return &runtime.Output{ExitCode: 1, Stderr: "boom"}, nil
	}
	if f.onRun != nil {
		f.onRun(dir, line)
	}
	return &runtime.Output{Stdout: f.stdout, Stderr: f.stderr}, nil
}

func (f *fakeRunner) lines() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Line
	}
	return out
}

type fixture struct {
	fs     afero.Fs
	runner *fakeRunner
	docs   *docstore.Store
	orch   *Orchestrator
}

func newFixture(t *testing.T, pm string) *fixture {
	t.Helper()
	f := &fixture{
		fs:     afero.NewMemMapFs(),
		runner: &fakeRunner{},
		docs:   docstore.New(),
	}
	orch, err := New(Options{
		Fs:             f.fs,
		Runner:         f.runner,
		Docs:           f.docs,
		PackageManager: pm,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	f.orch = orch
	return f
}

func (f *fixture) write(t *testing.T, path, content string) {
	t.Helper()
	if err := f.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(f.fs, path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func (f *fixture) read(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected content to contain %q, got:\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("expected content not to contain %q, got:\n%s", substr, content)
	}
}
