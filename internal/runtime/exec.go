package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// nonInteractiveEnv keeps generators and installers from prompting; the
// server has no terminal to answer them.
var nonInteractiveEnv = map[string]string{
	"CI":             "true",
	"npm_config_yes": "true",
}

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	// Stderr, when set, also receives the child's stderr as it is produced.
	// Stdout is never streamed: in server mode it is the protocol channel.
	Stderr io.Writer

	// LookPath resolves executables; defaults to exec.LookPath.
	LookPath func(file string) (string, error)
}

// Run executes name with args in dir, capturing stdout and stderr.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Output, error) {
	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	bin, err := lookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s is not available: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Env = buildEnv(os.Environ())

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(r.Stderr, &stderrBuf)
	}

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", CommandLine(name, args...), err)
	}

	return output, nil
}

// buildEnv returns base with the non-interactive variables applied.
func buildEnv(base []string) []string {
	env := append([]string(nil), base...)
	for _, key := range []string{"CI", "npm_config_yes"} {
		env = setEnv(env, key, nonInteractiveEnv[key])
	}
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
