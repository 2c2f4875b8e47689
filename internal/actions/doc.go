// Package actions pairs every action descriptor from the schema registry with
// the handler that decodes its arguments and calls the orchestrator.
package actions
