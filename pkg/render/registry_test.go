package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ryn-cx/devious-schema/pkg/infer"
	"github.com/ryn-cx/devious-schema/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string {
	return s.name
}

func (s stubRenderer) ContentType() string {
	return "text/plain"
}

func (s stubRenderer) Render(ctx context.Context, info *infer.TypeInfo, options render.Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(stubRenderer{name: "stub"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	renderer, err := registry.Get("stub")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if renderer.Name() != "stub" {
		t.Fatalf("renderer name = %q", renderer.Name())
	}
	if !registry.Has("stub") {
		t.Fatal("Has returned false for registered renderer")
	}
}

func TestRegistryDuplicate(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(stubRenderer{name: "stub"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "stub"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistryRejectsInvalid(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestRegistryGetMissing(t *testing.T) {
	registry := render.NewRegistry()
	_, err := registry.Get("missing")
	if err == nil {
		t.Fatal("expected lookup error")
	}
	if !strings.Contains(err.Error(), `"missing"`) {
		t.Fatalf("error %q does not name the renderer", err)
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "zeta"})
	registry.MustRegister(stubRenderer{name: "alpha"})

	names := registry.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Fatalf("List() = %v", names)
	}
}

func TestRegistryMustRegisterPanics(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "stub"})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate MustRegister")
		}
	}()
	registry.MustRegister(stubRenderer{name: "stub"})
}
