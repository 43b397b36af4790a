package nnps

import "math"

type cellKey struct{ cx, cy int }

// LinkedCell bins particles into a uniform grid with cell edge equal to the
// search radius, so a query only visits the 3x3 block of cells around the
// query point.
type LinkedCell struct {
	radius float64
	x, y   []float64
	cells  map[cellKey][]int
}

func NewLinkedCell(radius float64) *LinkedCell {
	return &LinkedCell{
		radius: radius,
		cells:  make(map[cellKey][]int),
	}
}

func (l *LinkedCell) key(x, y float64) cellKey {
	return cellKey{
		cx: int(math.Floor(x / l.radius)),
		cy: int(math.Floor(y / l.radius)),
	}
}

func (l *LinkedCell) Update(x, y []float64) {
	l.x, l.y = x, y
	for k := range l.cells {
		delete(l.cells, k)
	}
	for i := range x {
		k := l.key(x[i], y[i])
		l.cells[k] = append(l.cells[k], i)
	}
}

func (l *LinkedCell) Neighbors(i int, buf []int) []int {
	buf = buf[:0]
	r2 := l.radius * l.radius
	xi, yi := l.x[i], l.y[i]
	center := l.key(xi, yi)

	for dcx := -1; dcx <= 1; dcx++ {
		for dcy := -1; dcy <= 1; dcy++ {
			k := cellKey{center.cx + dcx, center.cy + dcy}
			for _, j := range l.cells[k] {
				dx := xi - l.x[j]
				dy := yi - l.y[j]
				if dx*dx+dy*dy <= r2 {
					buf = append(buf, j)
				}
			}
		}
	}
	return buf
}
