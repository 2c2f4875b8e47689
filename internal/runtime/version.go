package runtime

import (
	"context"
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`v?(\d+\.\d+\.\d+(?:[-+][0-9A-Za-z.+-]+)?)`)

// ToolVersion runs "<name> --version" and parses the first semantic version
// in its output.
func ToolVersion(ctx context.Context, r Runner, name string) (*semver.Version, error) {
	out, err := Check(ctx, r, "", name, "--version")
	if err != nil {
		return nil, err
	}
	m := versionPattern.FindStringSubmatch(out.Stdout + " " + out.Stderr)
	if m == nil {
		return nil, fmt.Errorf("no version found in %s --version output", name)
	}
	v, err := semver.NewVersion(m[1])
	if err != nil {
		return nil, fmt.Errorf("parsing %s version %q: %w", name, m[1], err)
	}
	return v, nil
}

// Requirement is a minimum-version constraint on an external tool.
type Requirement struct {
	Name       string
	Constraint string
}

// DefaultRequirements are the tools the scaffolder shells out to.
var DefaultRequirements = []Requirement{
	{Name: "node", Constraint: ">= 18.0.0"},
	{Name: "npm", Constraint: ">= 9.0.0"},
	{Name: "npx", Constraint: ">= 9.0.0"},
}

// RequirementStatus is the outcome of checking one requirement.
type RequirementStatus struct {
	Requirement
	Version   *semver.Version
	Satisfied bool
	Err       error
}

// CheckRequirements probes each tool and evaluates its constraint.
func CheckRequirements(ctx context.Context, r Runner, reqs []Requirement) []RequirementStatus {
	out := make([]RequirementStatus, 0, len(reqs))
	for _, req := range reqs {
		status := RequirementStatus{Requirement: req}
		c, err := semver.NewConstraint(req.Constraint)
		if err != nil {
			status.Err = fmt.Errorf("invalid constraint %q: %w", req.Constraint, err)
			out = append(out, status)
			continue
		}
		v, err := ToolVersion(ctx, r, req.Name)
		if err != nil {
			status.Err = err
			out = append(out, status)
			continue
		}
		status.Version = v
		status.Satisfied = c.Check(v)
		out = append(out, status)
	}
	return out
}
