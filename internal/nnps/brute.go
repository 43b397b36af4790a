package nnps

// BruteForce checks every pair. O(n^2) per full sweep; the reference
// implementation the cell index is validated against.
type BruteForce struct {
	radius float64
	x, y   []float64
}

func NewBruteForce(radius float64) *BruteForce {
	return &BruteForce{radius: radius}
}

func (b *BruteForce) Update(x, y []float64) {
	b.x, b.y = x, y
}

func (b *BruteForce) Neighbors(i int, buf []int) []int {
	buf = buf[:0]
	r2 := b.radius * b.radius
	xi, yi := b.x[i], b.y[i]
	for j := range b.x {
		dx := xi - b.x[j]
		dy := yi - b.y[j]
		if dx*dx+dy*dy <= r2 {
			buf = append(buf, j)
		}
	}
	return buf
}
