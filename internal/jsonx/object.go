package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is a JSON object that remembers the order of its members.
// Values are kept as raw JSON and decoded on demand.
type Object struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]json.RawMessage)}
}

// Keys returns member names in document order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Has reports whether key is a member.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.values[key]
	return ok
}

// Raw returns the raw JSON value stored under key.
func (o *Object) Raw(key string) (json.RawMessage, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// SetRaw inserts or replaces a member. Replaced members keep their position;
// new members are appended.
func (o *Object) SetRaw(key string, value json.RawMessage) {
	if o.values == nil {
		o.values = make(map[string]json.RawMessage)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Set marshals value and stores it under key. HTML characters are written
// literally so shell commands such as "a && b" survive a rewrite as typed.
func (o *Object) Set(key string, value interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	o.SetRaw(key, bytes.TrimRight(buf.Bytes(), "\n"))
	return nil
}

// Object decodes the member key as a nested ordered object.
// A missing member yields (nil, false, nil).
func (o *Object) Object(key string) (*Object, bool, error) {
	raw, ok := o.Raw(key)
	if !ok {
		return nil, false, nil
	}
	child := NewObject()
	if err := json.Unmarshal(raw, child); err != nil {
		return nil, true, fmt.Errorf("member %q: %w", key, err)
	}
	return child, true, nil
}

// String decodes the member key as a string. Missing or non-string members
// yield an empty string.
func (o *Object) String(key string) string {
	raw, ok := o.Raw(key)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Entry is one member whose value is a JSON string.
type Entry struct {
	Key   string
	Value string
}

// StringEntries returns every member whose value is a string, in order.
func (o *Object) StringEntries() []Entry {
	if o == nil {
		return nil
	}
	var out []Entry
	for _, k := range o.keys {
		var s string
		if err := json.Unmarshal(o.values[k], &s); err != nil {
			continue
		}
		out = append(out, Entry{Key: k, Value: s})
	}
	return out
}

// UnmarshalJSON implements json.Unmarshaler. Duplicate keys keep the first
// position and the last value.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	o.keys = nil
	o.values = make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decoding %q: %w", key, err)
		}
		o.SetRaw(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if o != nil {
		for i, k := range o.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(o.values[k])
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Indent renders the object as two-space indented JSON with a trailing newline,
// the layout npm itself writes.
func (o *Object) Indent() ([]byte, error) {
	compact, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
