// Package runtime runs the external tools the scaffolder drives: project
// generators, package managers and their version probes. The Runner
// interface lets the orchestrator be exercised without spawning processes.
package runtime
