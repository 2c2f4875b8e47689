package pkgjson

import (
	"encoding/json"
	"fmt"

	"github.com/agentx-labs/devkit/internal/jsonx"
)

// FileName is the package manifest file name.
const FileName = "package.json"

// Manifest is a parsed package.json. Members the scaffolder does not touch
// are carried through a rewrite unchanged.
type Manifest struct {
	obj *jsonx.Object
}

// ParseManifest parses and validates package.json content.
func ParseManifest(data []byte) (*Manifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &ValidationError{Issues: result.Issues}
	}

	obj := jsonx.NewObject()
	if err := json.Unmarshal(data, obj); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	return &Manifest{obj: obj}, nil
}

// Name returns the package name, or "" when unset.
func (m *Manifest) Name() string { return m.obj.String("name") }

// Description returns the package description, or "" when unset.
func (m *Manifest) Description() string { return m.obj.String("description") }

// Scripts returns the scripts section in document order.
func (m *Manifest) Scripts() []jsonx.Entry { return m.section("scripts") }

// Dependencies returns the dependencies section in document order.
func (m *Manifest) Dependencies() []jsonx.Entry { return m.section("dependencies") }

// DevDependencies returns the devDependencies section in document order.
func (m *Manifest) DevDependencies() []jsonx.Entry { return m.section("devDependencies") }

func (m *Manifest) section(key string) []jsonx.Entry {
	// The schema guarantees these members are string maps when present.
	obj, _, err := m.obj.Object(key)
	if err != nil {
		return nil
	}
	return obj.StringEntries()
}

// SetScript inserts or overwrites a script entry, creating the scripts
// section when the manifest has none.
func (m *Manifest) SetScript(name, command string) error {
	scripts, _, err := m.obj.Object("scripts")
	if err != nil {
		return err
	}
	if scripts == nil {
		scripts = jsonx.NewObject()
	}
	if err := scripts.Set(name, command); err != nil {
		return err
	}
	return m.obj.Set("scripts", scripts)
}

// Marshal renders the manifest in npm's two-space layout.
func (m *Manifest) Marshal() ([]byte, error) {
	return m.obj.Indent()
}
