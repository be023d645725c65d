package scene

import (
	"errors"
	"sort"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"spheregrid", "Spheregrid"},
		{"sphere-grid", "Sphere Grid"},
		{"cornell_box", "Cornell Box"},
		{"my-test_scene", "My Test Scene"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := titleCase(tt.input); got != tt.expected {
				t.Errorf("titleCase(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	registry := DefaultRegistry()

	for _, name := range []string{"default", "Normals", " triangles "} {
		s, err := registry.Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
			continue
		}
		if s.World == nil {
			t.Errorf("Lookup(%q) returned a scene without a world", name)
		}
	}

	_, err := registry.Lookup("nonexistent")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestRegistry_LookupAppliesOverrides(t *testing.T) {
	s, err := Lookup("default", renderer.CameraConfig{Width: 32, SamplesPerPixel: 3})
	if err != nil {
		t.Fatal(err)
	}
	if s.Camera.Width != 32 || s.Camera.SamplesPerPixel != 3 {
		t.Errorf("Overrides not applied: %+v", s.Camera)
	}
	if s.Camera.VFov != 40 {
		t.Errorf("Expected scene default vfov to survive, got %f", s.Camera.VFov)
	}
}

func TestRegistry_List(t *testing.T) {
	infos := List()

	expected := []string{"default", "empty", "normals", "spheregrid", "triangles"}
	if len(infos) != len(expected) {
		t.Fatalf("Expected %d scenes, got %d", len(expected), len(infos))
	}
	if !sort.SliceIsSorted(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID }) {
		t.Error("Expected scenes sorted by ID")
	}
	for i, info := range infos {
		if info.ID != expected[i] {
			t.Errorf("Scene %d: expected %q, got %q", i, expected[i], info.ID)
		}
		if info.DisplayName == "" || info.Description == "" {
			t.Errorf("Scene %q is missing a display name or description", info.ID)
		}
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	registry := NewRegistry()
	registry.Register("Custom-Scene", NewEmptyScene)
	registry.Register("custom-scene", NewNormalsScene)

	infos := registry.List()
	if len(infos) != 1 {
		t.Fatalf("Expected one scene, got %d", len(infos))
	}
	if infos[0].DisplayName != "Custom Scene" || infos[0].Description != NewNormalsScene().Description {
		t.Errorf("Unexpected scene info %+v", infos[0])
	}

	s, err := registry.Lookup("CUSTOM-SCENE")
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "normals" {
		t.Errorf("Expected the later constructor to win, got %q", s.Name)
	}
}

func TestRegistry_DescriptionsMatchScenes(t *testing.T) {
	registry := DefaultRegistry()
	for _, info := range registry.List() {
		s, err := registry.Lookup(info.ID)
		if err != nil {
			t.Fatal(err)
		}
		if info.Description != s.Description {
			t.Errorf("Scene %q: listed description %q differs from scene description %q", info.ID, info.Description, s.Description)
		}
	}
}
