package runtime

import (
	"context"
	"fmt"
	"strings"
)

// Runner executes an external command in a working directory.
type Runner interface {
	// Run executes name with args in dir. A command that starts and exits
	// non-zero is not an error; the exit code is reported in Output.
	Run(ctx context.Context, dir, name string, args ...string) (*Output, error)
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Combined returns stdout followed by stderr, each trimmed, separated by a
// blank line when both are present.
func (o *Output) Combined() string {
	if o == nil {
		return ""
	}
	var parts []string
	for _, s := range []string{o.Stdout, o.Stderr} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Check runs a command and converts a non-zero exit into an error carrying
// the command line and its stderr.
func Check(ctx context.Context, r Runner, dir, name string, args ...string) (*Output, error) {
	out, err := r.Run(ctx, dir, name, args...)
	if err != nil {
		return out, err
	}
	if out.ExitCode != 0 {
		msg := strings.TrimSpace(out.Stderr)
		if msg == "" {
			msg = strings.TrimSpace(out.Stdout)
		}
		return out, fmt.Errorf("%s exited with status %d: %s", CommandLine(name, args...), out.ExitCode, msg)
	}
	return out, nil
}

// CommandLine renders a command for logs and error messages.
func CommandLine(name string, args ...string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
