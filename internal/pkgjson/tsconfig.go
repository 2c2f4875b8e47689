package pkgjson

import (
	"encoding/json"
	"fmt"

	"github.com/agentx-labs/devkit/internal/jsonx"
)

// TSConfigFileName is the TypeScript compiler configuration file name.
const TSConfigFileName = "tsconfig.json"

var (
	defaultInclude = []string{"src/**/*"}
	defaultExclude = []string{"node_modules", "dist"}
)

// TSConfig is a parsed tsconfig.json.
type TSConfig struct {
	obj *jsonx.Object
}

// DefaultTSConfig returns the configuration written for new TypeScript
// projects. jsx enables the React JSX transform.
func DefaultTSConfig(jsx bool) *TSConfig {
	opts := jsonx.NewObject()
	set := func(key string, value interface{}) {
		// Values are plain literals; marshaling cannot fail.
		_ = opts.Set(key, value)
	}
	set("target", "ES2020")
	set("module", "commonjs")
	if jsx {
		set("lib", []string{"ES2020", "DOM", "DOM.Iterable"})
		set("jsx", "react-jsx")
	} else {
		set("lib", []string{"ES2020"})
	}
	set("outDir", "./dist")
	set("rootDir", "./src")
	set("strict", true)
	set("esModuleInterop", true)
	set("skipLibCheck", true)
	set("forceConsistentCasingInFileNames", true)
	set("resolveJsonModule", true)

	cfg := EmptyTSConfig()
	_ = cfg.obj.Set("compilerOptions", opts)
	cfg.obj = reorder(cfg.obj, "compilerOptions", "include", "exclude")
	return cfg
}

// EmptyTSConfig returns a configuration with no compiler options and the
// default include/exclude globs.
func EmptyTSConfig() *TSConfig {
	obj := jsonx.NewObject()
	_ = obj.Set("include", defaultInclude)
	_ = obj.Set("exclude", defaultExclude)
	return &TSConfig{obj: obj}
}

// ParseTSConfig parses tsconfig.json content. Comments are not supported.
func ParseTSConfig(data []byte) (*TSConfig, error) {
	obj := jsonx.NewObject()
	if err := json.Unmarshal(data, obj); err != nil {
		return nil, fmt.Errorf("parsing tsconfig.json: %w", err)
	}
	return &TSConfig{obj: obj}, nil
}

// CompilerOptions returns the compilerOptions section; it is empty when the
// configuration has none.
func (t *TSConfig) CompilerOptions() (*jsonx.Object, error) {
	opts, ok, err := t.obj.Object("compilerOptions")
	if err != nil {
		return nil, err
	}
	if !ok {
		return jsonx.NewObject(), nil
	}
	return opts, nil
}

// MergeCompilerOptions shallow-merges options into compilerOptions. Caller
// keys overwrite existing keys of the same name; nested objects are replaced
// as a whole.
func (t *TSConfig) MergeCompilerOptions(options *jsonx.Object) error {
	current, err := t.CompilerOptions()
	if err != nil {
		return err
	}
	for _, key := range options.Keys() {
		raw, _ := options.Raw(key)
		current.SetRaw(key, raw)
	}
	return t.obj.Set("compilerOptions", current)
}

// Marshal renders the configuration with two-space indentation.
func (t *TSConfig) Marshal() ([]byte, error) {
	return t.obj.Indent()
}

// reorder returns a copy of obj with the named keys first, in order.
func reorder(obj *jsonx.Object, first ...string) *jsonx.Object {
	out := jsonx.NewObject()
	for _, k := range first {
		if raw, ok := obj.Raw(k); ok {
			out.SetRaw(k, raw)
		}
	}
	for _, k := range obj.Keys() {
		if raw, ok := obj.Raw(k); ok && !out.Has(k) {
			out.SetRaw(k, raw)
		}
	}
	return out
}
