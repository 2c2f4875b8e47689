package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/agentx-labs/devkit/internal/pkgjson"
	"github.com/agentx-labs/devkit/internal/runtime"
)

// PackageManager is the installer used for dependency installation.
type PackageManager string

// Supported package managers.
const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
)

// ParsePackageManager validates a package manager name; "" selects npm.
func ParsePackageManager(s string) (PackageManager, error) {
	switch PackageManager(s) {
	case "":
		return NPM, nil
	case NPM, PNPM, Yarn:
		return PackageManager(s), nil
	default:
		return "", fmt.Errorf("unsupported package manager %q (want npm, pnpm or yarn)", s)
	}
}

// InstallCommand returns the command line that installs packages.
func (pm PackageManager) InstallCommand(packages []string, dev bool) (string, []string) {
	var args []string
	switch pm {
	case PNPM, Yarn:
		args = append(args, "add")
		if dev {
			args = append(args, "-D")
		}
	default:
		args = append(args, "install")
		if dev {
			args = append(args, "--save-dev")
		}
	}
	return string(pm), append(args, packages...)
}

// InstallRequest holds the arguments of install_packages.
type InstallRequest struct {
	Packages []string
	Path     string
	Dev      bool
}

// InstallPackages installs packages into the project at req.Path.
func (o *Orchestrator) InstallPackages(ctx context.Context, req InstallRequest) (*Result, error) {
	if err := o.validatePath(req.Path); err != nil {
		return nil, err
	}

	manifest := filepath.Join(req.Path, pkgjson.FileName)
	ok, err := o.exists(manifest)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", manifest, err)
	}
	if !ok {
		return nil, fmt.Errorf("no %s found in %s", pkgjson.FileName, req.Path)
	}

	out, err := o.install(ctx, req.Path, req.Packages, req.Dev)
	if err != nil {
		return nil, err
	}

	kind := "packages"
	if req.Dev {
		kind = "dev packages"
	}
	return &Result{
		Message: fmt.Sprintf("Installed %d %s in %s", len(req.Packages), kind, req.Path),
		Output:  out.Combined(),
	}, nil
}

func (o *Orchestrator) install(ctx context.Context, dir string, packages []string, dev bool) (*runtime.Output, error) {
	name, args := o.pm.InstallCommand(packages, dev)
	o.logger.Info("installing packages",
		zap.String("dir", dir),
		zap.String("command", runtime.CommandLine(name, args...)),
		zap.Bool("dev", dev),
	)
	return runtime.Check(ctx, o.runner, dir, name, args...)
}
