// Package scaffold implements the scaffolding actions: project creation,
// package installation, component and type generation, package.json and
// tsconfig.json mutation, and documentation generation.
//
// The Orchestrator owns every filesystem and subprocess side effect of the
// server. File content comes from embedded text/template files; per-type
// project bundles (generator command and dependency lists) come from the
// embedded projects.yaml.
package scaffold
