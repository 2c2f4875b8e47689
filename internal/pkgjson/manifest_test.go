package pkgjson

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agentx-labs/devkit/internal/jsonx"
)

const samplePackage = `{
  "name": "my-app",
  "version": "1.0.0",
  "description": "A sample app",
  "main": "index.js",
  "scripts": {
    "start": "node index.js",
    "test": "jest"
  },
  "dependencies": {
    "express": "^4.18.2"
  },
  "devDependencies": {
    "typescript": "^5.3.0",
    "@types/node": "^20.0.0"
  }
}
`

func TestParseManifest_Accessors(t *testing.T) {
	m, err := ParseManifest([]byte(samplePackage))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name() != "my-app" {
		t.Errorf("Name() = %q, want %q", m.Name(), "my-app")
	}
	if m.Description() != "A sample app" {
		t.Errorf("Description() = %q", m.Description())
	}

	wantScripts := []jsonx.Entry{{Key: "start", Value: "node index.js"}, {Key: "test", Value: "jest"}}
	if diff := cmp.Diff(wantScripts, m.Scripts()); diff != "" {
		t.Errorf("Scripts() mismatch (-want +got):\n%s", diff)
	}
	wantDev := []jsonx.Entry{{Key: "typescript", Value: "^5.3.0"}, {Key: "@types/node", Value: "^20.0.0"}}
	if diff := cmp.Diff(wantDev, m.DevDependencies()); diff != "" {
		t.Errorf("DevDependencies() mismatch (-want +got):\n%s", diff)
	}
	if got := len(m.Dependencies()); got != 1 {
		t.Errorf("expected 1 dependency, got %d", got)
	}
}

func TestParseManifest_Minimal(t *testing.T) {
	m, err := ParseManifest([]byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name() != "" || m.Scripts() != nil || m.Dependencies() != nil {
		t.Errorf("expected empty accessors for {}, got name=%q scripts=%v", m.Name(), m.Scripts())
	}
}

func TestParseManifest_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: `{"name": `},
		{name: "not an object", input: `["a"]`},
		{name: "script not a string", input: `{"scripts": {"build": 1}}`},
		{name: "name not a string", input: `{"name": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseManifest([]byte(tt.input)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestParseManifest_ValidationError(t *testing.T) {
	_, err := ParseManifest([]byte(`{"scripts": {"build": 1}}`))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if len(ve.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
	if !strings.HasPrefix(ve.Error(), "invalid package.json: ") {
		t.Errorf("unexpected message: %s", ve.Error())
	}
}

func TestManifest_SetScript(t *testing.T) {
	m, err := ParseManifest([]byte(samplePackage))
	if err != nil {
		t.Fatal(err)
	}

	if err := m.SetScript("build", "tsc"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetScript("test", "vitest"); err != nil {
		t.Fatal(err)
	}

	out, err := m.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	reparsed, err := ParseManifest(out)
	if err != nil {
		t.Fatalf("rewritten manifest does not parse: %v", err)
	}

	want := []jsonx.Entry{
		{Key: "start", Value: "node index.js"},
		{Key: "test", Value: "vitest"},
		{Key: "build", Value: "tsc"},
	}
	if diff := cmp.Diff(want, reparsed.Scripts()); diff != "" {
		t.Errorf("Scripts() mismatch (-want +got):\n%s", diff)
	}
	if reparsed.Name() != "my-app" {
		t.Errorf("unrelated members must survive, name = %q", reparsed.Name())
	}
	if !strings.Contains(string(out), `"main": "index.js"`) {
		t.Errorf("expected unknown member preserved, got:\n%s", out)
	}
}

func TestManifest_SetScript_NoScriptsSection(t *testing.T) {
	m, err := ParseManifest([]byte(`{"name": "bare"}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetScript("lint", "eslint ."); err != nil {
		t.Fatal(err)
	}

	want := []jsonx.Entry{{Key: "lint", Value: "eslint ."}}
	if diff := cmp.Diff(want, m.Scripts()); diff != "" {
		t.Errorf("Scripts() mismatch (-want +got):\n%s", diff)
	}

	out, err := m.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	wantJSON := "{\n  \"name\": \"bare\",\n  \"scripts\": {\n    \"lint\": \"eslint .\"\n  }\n}\n"
	if string(out) != wantJSON {
		t.Errorf("Marshal() =\n%s\nwant\n%s", out, wantJSON)
	}
}
