package scene

import (
	"time"

	"stonecrawl/pkg/engine/surface"
)

// drawHumanoid draws an orc-like figure: shaded legs, waist and torso with
// bare arms and head.
func (sp sprite) drawHumanoid() {
	u := sp.unit

	sp.quad(-2*u, -3*u, -u, 0, 4)
	sp.quad(u, -3*u, 2*u, 0, 4)
	sp.quad(-2*u, -4*u, 2*u, -3*u, 4)
	sp.quad(-2*u, -8*u, 2*u, -4*u, -10)

	sp.box(-3*u, -8*u, u, 3*u, u/2, surface.CornersLeft, surface.White)
	sp.box(2*u, -8*u, u, 4*u, u/2, surface.CornersRight, surface.White)
	sp.box(-u, -10*u, 2*u+1, 2*u, u, surface.CornersTop, surface.White)

	sp.dot(-u/2, -9*u, u/4, surface.Black)
	sp.dot(u/2, -9*u, u/4, surface.Black)
}

// drawBeast draws a wolf-like figure whose jaw opens on even seconds.
func (sp sprite) drawBeast(now time.Time) {
	u := sp.unit

	sp.box(-3*u, -4*u, 2*u, 4*u, 0, surface.CornersNone, surface.Black)
	sp.box(u, -4*u, 2*u, 4*u, 0, surface.CornersNone, surface.Black)
	sp.dot(0, -5*u, 3*u, surface.Black)

	sp.box(-(u + u/2), -7*u, u, u/2, u/4, surface.CornersAll, surface.White)
	sp.box(u/2, -7*u, u, u/2, u/4, surface.CornersAll, surface.White)

	jaw := u + u/2
	if now.Unix()%2 == 0 {
		jaw += u / 2
	}
	for _, x := range []int{-(u + u/2), -u / 2, u / 2} {
		sp.box(x, -5*u, u, jaw, u/2, surface.CornersAll, surface.White)
	}
}

// drawAmorphous draws a slime: a small body under a large head.
func (sp sprite) drawAmorphous() {
	u := sp.unit

	sp.dot(0, -2*u, 2*u, surface.Black)
	sp.dot(0, -6*u, 4*u, surface.Black)

	sp.box(-3*u, -7*u, 2*u, u, u/2, surface.CornersAll, surface.White)
	sp.box(u, -7*u, 2*u, u, u/2, surface.CornersAll, surface.White)
}
