package export

import (
	"fmt"
	"os"
	"strings"

	"sphlab/internal/solver"
	"sphlab/internal/viz"
)

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SnapshotToSVG renders one particle snapshot straight to SVG, bypassing the
// braille raster so the dot positions keep full resolution.
func SnapshotToSVG(snap solver.Snapshot, width, height int) string {
	v := viz.DropViewport()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	for i := range snap.X {
		px := (snap.X[i] - v.XMin) / (v.XMax - v.XMin) * float64(width)
		py := float64(height) - (snap.Y[i]-v.YMin)/(v.YMax-v.YMin)*float64(height)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="1.5"/>
`, px, py))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// WriteSnapshotSVG writes the snapshot rendering to a file.
func WriteSnapshotSVG(path string, snap solver.Snapshot, width, height int) error {
	return os.WriteFile(path, []byte(SnapshotToSVG(snap, width, height)), 0644)
}
