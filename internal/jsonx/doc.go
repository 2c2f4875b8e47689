// Package jsonx holds JSON helpers shared by the argument decoder and the
// package.json / tsconfig.json rewriters. Its Object type keeps member order
// so that documents rewritten on disk keep the layout their authors chose.
package jsonx
