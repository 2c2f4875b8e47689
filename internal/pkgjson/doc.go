// Package pkgjson reads and rewrites the two project metadata documents the
// scaffolder mutates: package.json and tsconfig.json.
//
// Both documents are held as order-preserving JSON objects so that a rewrite
// keeps the author's key order and only appends new keys. package.json is
// checked against an embedded JSON Schema covering the members the
// scaffolder reads.
package pkgjson
