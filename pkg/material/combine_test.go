package material

import (
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// fixedMaterial scatters every ray into a fixed direction with a fixed
// attenuation, recording the ray it received
type fixedMaterial struct {
	attenuation core.Vec3
	direction   core.Vec3
	absorbs     bool
	received    *[]core.Ray
}

func (f fixedMaterial) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	if f.received != nil {
		*f.received = append(*f.received, rayIn)
	}
	if f.absorbs {
		return ScatterResult{}, false
	}
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, f.direction),
		Attenuation: f.attenuation,
	}, true
}

func TestCombine_AveragesAttenuationAndThreadsRay(t *testing.T) {
	var received []core.Ray
	first := fixedMaterial{attenuation: core.NewVec3(1, 0, 0), direction: core.NewVec3(0, 1, 0), received: &received}
	second := fixedMaterial{attenuation: core.NewVec3(0, 0, 1), direction: core.NewVec3(1, 0, 0), received: &received}
	combined := NewCombine(first, second)

	rayIn := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	result, ok := combined.Scatter(rayIn, hit, constantSampler{value: 0.5})
	if !ok {
		t.Fatal("Combine should scatter when its layers scatter")
	}

	if expected := core.NewVec3(0.5, 0, 0.5); result.Attenuation != expected {
		t.Errorf("Expected averaged attenuation %v, got %v", expected, result.Attenuation)
	}

	// The last layer decides the outgoing ray
	if result.Scattered.Direction != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected outgoing direction from last layer, got %v", result.Scattered.Direction)
	}

	// The second layer must see the first layer's output, not the original ray
	if len(received) != 2 {
		t.Fatalf("Expected 2 scatter calls, got %d", len(received))
	}
	if received[0] != rayIn {
		t.Errorf("First layer should receive the incoming ray, got %v", received[0])
	}
	if received[1].Direction != core.NewVec3(0, 1, 0) {
		t.Errorf("Second layer should receive the first layer's ray, got %v", received[1])
	}
}

func TestCombine_OrderDependent(t *testing.T) {
	a := fixedMaterial{attenuation: core.NewVec3(1, 1, 1), direction: core.NewVec3(0, 1, 0)}
	b := fixedMaterial{attenuation: core.NewVec3(1, 1, 1), direction: core.NewVec3(1, 0, 0)}
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	ab, _ := NewCombine(a, b).Scatter(ray, hit, constantSampler{})
	ba, _ := NewCombine(b, a).Scatter(ray, hit, constantSampler{})
	if ab.Scattered.Direction == ba.Scattered.Direction {
		t.Error("Expected layer order to change the outgoing ray")
	}
}

func TestCombine_AbsorbingLayer(t *testing.T) {
	scatters := fixedMaterial{attenuation: core.NewVec3(0.8, 0.8, 0.8), direction: core.NewVec3(0, 1, 0)}
	absorbs := fixedMaterial{absorbs: true}
	combined := NewCombine(scatters).Add(absorbs)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	result, ok := combined.Scatter(ray, hit, constantSampler{})
	if !ok {
		t.Fatal("Combine should still scatter when one layer absorbs")
	}
	// The absorbing layer counts in the average with zero attenuation
	if expected := core.NewVec3(0.4, 0.4, 0.4); result.Attenuation != expected {
		t.Errorf("Expected attenuation %v, got %v", expected, result.Attenuation)
	}
	if result.Scattered.Direction != core.NewVec3(0, 1, 0) {
		t.Errorf("Absorbing layer should leave the ray unchanged, got %v", result.Scattered.Direction)
	}
}

func TestCombine_Empty(t *testing.T) {
	combined := NewCombine()
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	if _, ok := combined.Scatter(ray, HitRecord{}, constantSampler{}); ok {
		t.Error("Empty Combine should absorb")
	}
}
