// Package prompts renders the server's conversation starters. Templates are
// declared in an embedded YAML catalogue and rendered with text/template;
// rendering is pure and touches nothing outside the returned messages.
package prompts
