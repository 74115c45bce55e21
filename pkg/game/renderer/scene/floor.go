package scene

import "stonecrawl/pkg/engine/surface"

// drawFloorAndCeiling dithers the ceiling from the top of the frame down to
// the horizon limit and mirrors each row onto the floor. Dots thin out
// toward the horizon.
func (r *Renderer) drawFloorAndCeiling(s surface.Surface) {
	limit := r.table.CeilingLimit(MinWallHeight)

	for y := 0; y < limit; y++ {
		stride := r.shadingStride(y)
		start := 0
		if y%2 == 0 {
			start = stride/2 + stride%2
		}
		for x := start; x < FrameWidth; x += stride {
			s.Plot(x, y, surface.White)
			// Row 0 would mirror onto the status bar.
			if y > 0 {
				s.Plot(x, FrameHeight-y, surface.White)
			}
		}
	}
}

// shadingStride is the dot spacing for a row or shading reference v.
func (r *Renderer) shadingStride(v int) int {
	stride := 1 + v/r.depth
	if v%r.depth >= r.depth/2+r.depth%2 {
		stride++
	}
	return stride
}
