package nnps

import (
	"math/rand"
	"sort"
	"testing"
)

func randomPoints(n int, seed int64) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64()*2 - 1
		y[i] = rng.Float64()*2 - 1
	}
	return
}

func TestLinkedCellMatchesBruteForce(t *testing.T) {
	x, y := randomPoints(400, 42)
	radius := 0.13

	brute := NewBruteForce(radius)
	cell := NewLinkedCell(radius)
	brute.Update(x, y)
	cell.Update(x, y)

	var bufA, bufB []int
	for i := range x {
		a := append([]int(nil), brute.Neighbors(i, bufA)...)
		b := append([]int(nil), cell.Neighbors(i, bufB)...)
		sort.Ints(a)
		sort.Ints(b)

		if len(a) != len(b) {
			t.Fatalf("particle %d: brute found %d neighbors, cell %d", i, len(a), len(b))
		}
		for k := range a {
			if a[k] != b[k] {
				t.Fatalf("particle %d: neighbor lists differ: %v vs %v", i, a, b)
			}
		}
	}
}

func TestNeighborsIncludesSelf(t *testing.T) {
	x := []float64{0, 10}
	y := []float64{0, 10}
	for _, idx := range []Index{NewBruteForce(1.0), NewLinkedCell(1.0)} {
		idx.Update(x, y)
		nbrs := idx.Neighbors(0, nil)
		if len(nbrs) != 1 || nbrs[0] != 0 {
			t.Errorf("%T: expected self-only neighbor list, got %v", idx, nbrs)
		}
	}
}

func TestUpdateFollowsMovedParticles(t *testing.T) {
	x := []float64{0, 0.5}
	y := []float64{0, 0}
	cell := NewLinkedCell(1.0)
	cell.Update(x, y)

	if got := len(cell.Neighbors(0, nil)); got != 2 {
		t.Fatalf("expected 2 neighbors, got %d", got)
	}

	x[1] = 5.0
	cell.Update(x, y)
	if got := len(cell.Neighbors(0, nil)); got != 1 {
		t.Fatalf("expected 1 neighbor after move, got %d", got)
	}
}

func BenchmarkLinkedCell(b *testing.B) {
	x, y := randomPoints(5000, 7)
	cell := NewLinkedCell(0.05)
	cell.Update(x, y)
	var buf []int

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = cell.Neighbors(i%len(x), buf)
	}
}

func BenchmarkBruteForce(b *testing.B) {
	x, y := randomPoints(5000, 7)
	brute := NewBruteForce(0.05)
	brute.Update(x, y)
	var buf []int

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = brute.Neighbors(i%len(x), buf)
	}
}
