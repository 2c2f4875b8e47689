// Package router dispatches requests on the three capability surfaces:
// actions (tools), content items (resources) and prompts. Each surface has a
// lookup table built once from an explicit list; unknown names are rejected
// with typed protocol errors.
package router
