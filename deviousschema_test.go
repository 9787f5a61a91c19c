package deviousschema_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	deviousschema "github.com/ryn-cx/devious-schema"
	"github.com/ryn-cx/devious-schema/pkg/sample"
)

func TestGetSchema(t *testing.T) {
	got, err := deviousschema.GetSchema(context.Background(),
		map[string]any{"name": "ada", "age": 36}, "Person")
	if err != nil {
		t.Fatalf("GetSchema: %v", err)
	}

	want := strings.Join([]string{
		"from pydantic import BaseModel, Field, ConfigDict",
		"from typing import Any",
		"",
		"",
		"class Person(BaseModel):",
		`    model_config = ConfigDict(extra="forbid")`,
		"    age: int",
		"    name: str",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSchemaFromValues(t *testing.T) {
	got, err := deviousschema.GetSchemaFromValues(context.Background(), []sample.Value{
		map[string]any{"id": 1},
		map[string]any{"id": 2.5},
	}, "Metric")
	if err != nil {
		t.Fatalf("GetSchemaFromValues: %v", err)
	}
	if !strings.Contains(got, "    id: int | float") {
		t.Fatalf("missing widened field in output:\n%s", got)
	}
}

func TestGetSchemaFromFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "one.json"),
		filepath.Join(dir, "two.json"),
	}
	if err := os.WriteFile(paths[0], []byte(`{"id": 1, "tags": ["a"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths[1], []byte(`{"id": 2}`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := deviousschema.GetSchemaFromFiles(context.Background(), paths, "Record")
	if err != nil {
		t.Fatalf("GetSchemaFromFiles: %v", err)
	}

	want := strings.Join([]string{
		"from pydantic import BaseModel, Field, ConfigDict",
		"from typing import Any",
		"",
		"",
		"class Record(BaseModel):",
		`    model_config = ConfigDict(extra="forbid")`,
		"    id: int",
		"    tags: None | list[str]",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSchemaFromFolder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sample.yaml"), []byte("flag: yes-ish\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := deviousschema.GetSchemaFromFolder(context.Background(), dir, "Config")
	if err != nil {
		t.Fatalf("GetSchemaFromFolder: %v", err)
	}
	if !strings.Contains(got, "class Config(BaseModel):") {
		t.Fatalf("missing root class in output:\n%s", got)
	}
	if !strings.Contains(got, "    flag: str") {
		t.Fatalf("missing field line in output:\n%s", got)
	}
}

func TestGetSchemaFromFolderMissing(t *testing.T) {
	_, err := deviousschema.GetSchemaFromFolder(context.Background(), filepath.Join(t.TempDir(), "absent"), "Config")
	if err == nil {
		t.Fatal("expected error for missing folder")
	}
}
