package life

import (
	"testing"

	"counterlife/pkg/core"
)

func BenchmarkStep(b *testing.B) {
	u, err := New(512, 512, 1, WithEntropy(core.NewRNG(1)))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.Step()
	}
}

func BenchmarkReferenceStep(b *testing.B) {
	ref, err := NewReference(512, 512)
	if err != nil {
		b.Fatal(err)
	}
	ref.Reset(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref.Step()
	}
}

func BenchmarkStepRender(b *testing.B) {
	u, err := New(256, 256, 3, WithEntropy(core.NewRNG(1)))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.Step()
		u.Render()
	}
}
