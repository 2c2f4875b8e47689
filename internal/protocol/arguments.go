package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/agentx-labs/devkit/internal/jsonx"
)

// Arguments are the named arguments of an action invocation, kept as raw JSON
// until a handler asks for a value. Absent members and explicit nulls are
// treated the same way.
type Arguments map[string]json.RawMessage

// Field is one name/type pair of a string-to-string mapping argument, such as
// component props or type properties.
type Field struct {
	Name string
	Type string
}

// ParseArguments decodes a JSON object into Arguments. Empty input and null
// yield empty arguments.
func ParseArguments(data []byte) (Arguments, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Arguments{}, nil
	}
	var args Arguments
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("arguments must be a JSON object: %w", err)
	}
	if args == nil {
		args = Arguments{}
	}
	return args, nil
}

func (a Arguments) raw(key string) (json.RawMessage, bool) {
	v, ok := a[key]
	if !ok || len(v) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return nil, false
	}
	return v, true
}

// Has reports whether key is present and not null.
func (a Arguments) Has(key string) bool {
	_, ok := a.raw(key)
	return ok
}

// String returns a required string argument.
func (a Arguments) String(key string) (string, error) {
	raw, ok := a.raw(key)
	if !ok {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("argument %q must be a string", key)
	}
	return s, nil
}

// OptionalString returns a string argument or "" when absent.
func (a Arguments) OptionalString(key string) (string, error) {
	if !a.Has(key) {
		return "", nil
	}
	return a.String(key)
}

// Bool returns a boolean argument or def when absent.
func (a Arguments) Bool(key string, def bool) (bool, error) {
	raw, ok := a.raw(key)
	if !ok {
		return def, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, fmt.Errorf("argument %q must be a boolean", key)
	}
	return b, nil
}

// Strings returns a required list-of-strings argument.
func (a Arguments) Strings(key string) ([]string, error) {
	raw, ok := a.raw(key)
	if !ok {
		return nil, fmt.Errorf("missing required argument %q", key)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("argument %q must be a list of strings", key)
	}
	return list, nil
}

// Object returns a required object argument with its members in the order
// the caller sent them.
func (a Arguments) Object(key string) (*jsonx.Object, error) {
	raw, ok := a.raw(key)
	if !ok {
		return nil, fmt.Errorf("missing required argument %q", key)
	}
	obj := jsonx.NewObject()
	if err := json.Unmarshal(raw, obj); err != nil {
		return nil, fmt.Errorf("argument %q must be an object", key)
	}
	return obj, nil
}

// Fields returns a required name-to-type mapping in caller order.
func (a Arguments) Fields(key string) ([]Field, error) {
	obj, err := a.Object(key)
	if err != nil {
		return nil, err
	}
	return objectFields(key, obj)
}

// OptionalFields is Fields for an optional mapping; absent yields nil.
func (a Arguments) OptionalFields(key string) ([]Field, error) {
	if !a.Has(key) {
		return nil, nil
	}
	return a.Fields(key)
}

func objectFields(key string, obj *jsonx.Object) ([]Field, error) {
	fields := make([]Field, 0, obj.Len())
	for _, name := range obj.Keys() {
		raw, _ := obj.Raw(name)
		var typ string
		if err := json.Unmarshal(raw, &typ); err != nil {
			return nil, fmt.Errorf("argument %q: type of %q must be a string", key, name)
		}
		fields = append(fields, Field{Name: name, Type: typ})
	}
	return fields, nil
}
