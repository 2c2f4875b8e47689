package scaffold

import (
	"context"
	"testing"

	"github.com/spf13/afero"

	"github.com/agentx-labs/devkit/internal/protocol"
)

func TestCreateDocumentation_Readme(t *testing.T) {
	f := newFixture(t, "")
	f.write(t, "/work/shop/package.json", `{
  "name": "shop",
  "description": "Online shop",
  "scripts": {"dev": "next dev", "build": "next build"},
  "dependencies": {"next": "14.0.0"}
}`)

	if _, err := f.orch.CreateDocumentation(context.Background(), DocumentationRequest{Path: "/work/shop", Type: "readme"}); err != nil {
		t.Fatal(err)
	}

	content := f.read(t, "/work/shop/README.md")
	assertContains(t, content, "# shop\n\nOnline shop\n")
	assertContains(t, content, "- `dev`: `next dev`\n- `build`: `next build`")
	assertContains(t, content, "- next `14.0.0`")
	assertContains(t, content, "No dev dependencies.")

	stored, ok := f.docs.Get("shop")
	if !ok || stored != content {
		t.Errorf("expected stored document to equal written README")
	}
}

func TestCreateDocumentation_ReadmeMissingPackageJSON(t *testing.T) {
	f := newFixture(t, "")
	_, err := f.orch.CreateDocumentation(context.Background(), DocumentationRequest{Path: "/work/shop", Type: "readme"})
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := protocol.AsError(err); ok {
		t.Errorf("expected plain error, got typed %v", err)
	}
}

func TestCreateDocumentation_API(t *testing.T) {
	f := newFixture(t, "")
	if _, err := f.orch.CreateDocumentation(context.Background(), DocumentationRequest{Path: "/work/api/", Type: "api"}); err != nil {
		t.Fatal(err)
	}
	content := f.read(t, "/work/api/API.md")
	assertContains(t, content, "# API Documentation")

	stored, ok := f.docs.Get("api")
	if !ok || stored != content {
		t.Error("expected document keyed by the last path element")
	}
}

func TestCreateDocumentation_Component(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()
	if _, err := f.orch.GenerateComponent(ctx, ComponentRequest{
		Name:  "Badge",
		Path:  "/ui",
		Type:  "functional",
		Props: []protocol.Field{{Name: "label", Type: "string"}, {Name: "count", Type: "number"}},
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := f.orch.CreateDocumentation(ctx, DocumentationRequest{Path: "/ui", Type: "component", Name: "Badge"}); err != nil {
		t.Fatal(err)
	}
	content := f.read(t, "/ui/Badge.md")
	assertContains(t, content, "# Badge")
	assertContains(t, content, "label: string;\ncount: number;")

	stored, _ := f.docs.Get("ui")
	if stored != content {
		t.Error("expected stored document to equal written file")
	}
}

func TestCreateDocumentation_ComponentWithoutProps(t *testing.T) {
	f := newFixture(t, "")
	f.write(t, "/ui/Plain.tsx", "export const Plain = () => null;\n")

	if _, err := f.orch.CreateDocumentation(context.Background(), DocumentationRequest{Path: "/ui", Type: "component", Name: "Plain"}); err != nil {
		t.Fatal(err)
	}
	assertContains(t, f.read(t, "/ui/Plain.md"), NoPropsDefined)
}

func TestCreateDocumentation_ComponentNameRequired(t *testing.T) {
	f := newFixture(t, "")
	_, err := f.orch.CreateDocumentation(context.Background(), DocumentationRequest{Path: "/ui", Type: "component"})
	if !protocol.IsCode(err, protocol.CodeInvalidParams) {
		t.Fatalf("expected InvalidParams, got %v", err)
	}
	if ok, _ := afero.Exists(f.fs, "/ui"); ok {
		t.Error("no I/O expected before the name check")
	}
}

func TestCreateDocumentation_UnsupportedType(t *testing.T) {
	f := newFixture(t, "")
	_, err := f.orch.CreateDocumentation(context.Background(), DocumentationRequest{Path: "/ui", Type: "changelog"})
	if !protocol.IsCode(err, protocol.CodeInvalidParams) {
		t.Fatalf("expected InvalidParams, got %v", err)
	}
}

func TestExtractProps(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "interface",
			source: "interface CardProps {\n  title: string;\n  onClick: () => void;\n}\n",
			want:   "title: string;\nonClick: () => void;",
		},
		{
			name:   "no interface",
			source: "export default function A() {}",
			want:   NoPropsDefined,
		},
		{
			name:   "empty interface",
			source: "interface EmptyProps {}",
			want:   NoPropsDefined,
		},
		{
			name:   "nested braces end early",
			source: "interface XProps {\n  style: { color: string };\n}",
			want:   "style: { color: string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractProps(tt.source); got != tt.want {
				t.Errorf("ExtractProps() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	f := newFixture(t, "")
	f.write(t, "/data/file", "x")

	if err := f.orch.validatePath("/data/new/nested"); err != nil {
		t.Fatalf("missing directory should be created: %v", err)
	}
	if ok, _ := afero.DirExists(f.fs, "/data/new/nested"); !ok {
		t.Error("expected directory to exist")
	}
	if err := f.orch.validatePath("/data"); err != nil {
		t.Errorf("existing directory: %v", err)
	}
	if err := f.orch.validatePath("/data/file"); !protocol.IsCode(err, protocol.CodeInvalidParams) {
		t.Errorf("file path: expected InvalidParams, got %v", err)
	}
}
