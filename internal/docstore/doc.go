// Package docstore keeps generated documentation for the lifetime of one
// server instance. Entries are keyed by project identifier, overwritten on
// re-creation and never evicted or persisted.
package docstore
