// Package schema is the static registry of invocable actions: their names,
// summaries and input contracts. Descriptors are built once and only read.
package schema
