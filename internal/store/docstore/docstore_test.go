package docstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/msto63/dsh/internal/namespace"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func openDoc(t *testing.T, name, content string) *Store {
	t.Helper()
	store, err := Open(writeDoc(t, name, content), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return store
}

const yamlFixture = `
instrument: &inst
  name: detector-7 # serial name
  channels: [1, 2, 3]
runs:
  - id: 12
    instrument: *inst
  - id: 13
title: calibration scan
`

func TestYAMLMappingBecomesGroup(t *testing.T) {
	store := openDoc(t, "run.yaml", yamlFixture)

	node, err := store.Node(namespace.NewPath("instrument"))
	if err != nil {
		t.Fatalf("Node failed: %v", err)
	}
	if node.Kind != namespace.KindGroup {
		t.Errorf("kind = %v, want group", node.Kind)
	}
}

func TestYAMLChildrenKeepDocumentOrder(t *testing.T) {
	store := openDoc(t, "run.yaml", yamlFixture)

	entries, err := store.Children(namespace.Root())
	if err != nil {
		t.Fatalf("Children failed: %v", err)
	}

	want := []string{"instrument", "runs", "title"}
	if len(entries) != len(want) {
		t.Fatalf("got %d children, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("child[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestYAMLScalarBecomesDataset(t *testing.T) {
	store := openDoc(t, "run.yaml", yamlFixture)

	value, err := store.Value(namespace.NewPath("title"))
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if value != "calibration scan" {
		t.Errorf("value = %q, want 'calibration scan'", value)
	}
}

func TestYAMLScalarSequenceBecomesDataset(t *testing.T) {
	store := openDoc(t, "run.yaml", yamlFixture)

	value, err := store.Value(namespace.NewPath("instrument", "channels"))
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if value != "[1, 2, 3]" {
		t.Errorf("value = %q, want '[1, 2, 3]'", value)
	}
}

func TestYAMLStructuredSequenceBecomesGroup(t *testing.T) {
	store := openDoc(t, "run.yaml", yamlFixture)

	entries, err := store.Children(namespace.NewPath("runs"))
	if err != nil {
		t.Fatalf("Children failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "0" || entries[1].Name != "1" {
		t.Errorf("sequence children = %v, want index names 0, 1", entries)
	}
}

func TestYAMLAliasBecomesLink(t *testing.T) {
	store := openDoc(t, "run.yaml", yamlFixture)

	node, err := store.Node(namespace.NewPath("runs", "0", "instrument"))
	if err != nil {
		t.Fatalf("Node failed: %v", err)
	}
	if node.Kind != namespace.KindLink {
		t.Fatalf("kind = %v, want link", node.Kind)
	}
	if !node.Target.Equal(namespace.NewPath("instrument")) {
		t.Errorf("link target = %q, want /instrument", node.Target)
	}
}

func TestYAMLCommentSurfacesAsAttribute(t *testing.T) {
	store := openDoc(t, "run.yaml", yamlFixture)

	attr, err := store.Attribute(namespace.NewPath("instrument", "name"), "comment")
	if err != nil {
		t.Fatalf("Attribute failed: %v", err)
	}
	if attr.Value != "serial name" {
		t.Errorf("comment = %q, want 'serial name'", attr.Value)
	}
}

func TestYAMLAnchorSurfacesAsAttribute(t *testing.T) {
	store := openDoc(t, "run.yaml", yamlFixture)

	attr, err := store.Attribute(namespace.NewPath("instrument"), "anchor")
	if err != nil {
		t.Fatalf("Attribute failed: %v", err)
	}
	if attr.Value != "inst" {
		t.Errorf("anchor = %q, want inst", attr.Value)
	}
}

func TestJSONDocument(t *testing.T) {
	store := openDoc(t, "cfg.json", `{"server": {"port": 8080}, "debug": true}`)

	value, err := store.Value(namespace.NewPath("server", "port"))
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if value != "8080" {
		t.Errorf("value = %q, want 8080", value)
	}
}

const tomlFixture = `
title = "experiment"

[owner]
name = "nobody"

[[samples]]
id = 1

[[samples]]
id = 2
`

func TestTOMLDocument(t *testing.T) {
	store := openDoc(t, "exp.toml", tomlFixture)

	entries, err := store.Children(namespace.Root())
	if err != nil {
		t.Fatalf("Children failed: %v", err)
	}
	want := []string{"title", "owner", "samples"}
	if len(entries) != len(want) {
		t.Fatalf("got %d children %v, want %d", len(entries), entries, len(want))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("child[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestTOMLArrayOfTables(t *testing.T) {
	store := openDoc(t, "exp.toml", tomlFixture)

	value, err := store.Value(namespace.NewPath("samples", "1", "id"))
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if value != "2" {
		t.Errorf("value = %q, want 2", value)
	}
}

func TestUnsupportedExtension(t *testing.T) {
	_, err := Open(writeDoc(t, "data.bin", "xx"), nil)
	if err == nil {
		t.Fatal("Open should reject unknown formats")
	}
}

func TestMissingNodeReturnsSentinel(t *testing.T) {
	store := openDoc(t, "cfg.json", `{"a": 1}`)

	_, err := store.Node(namespace.NewPath("missing"))
	if !namespace.IsNotFound(err) {
		t.Errorf("want not-found sentinel, got %v", err)
	}
}

func TestEmptyDocumentIsRootOnly(t *testing.T) {
	store := openDoc(t, "empty.yaml", "")

	entries, err := store.Children(namespace.Root())
	if err != nil {
		t.Fatalf("Children failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("empty document should have no children, got %v", entries)
	}
}
