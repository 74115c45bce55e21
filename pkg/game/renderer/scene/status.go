package scene

import (
	"image"
	"math"

	"stonecrawl/pkg/engine/surface"
	"stonecrawl/pkg/engine/world"
	gameworld "stonecrawl/pkg/game/world"
)

// Status bar layout.
const (
	CompassRadius = 5
	MeterPadding  = 4
	MeterWidth    = FrameWidth/2 - CompassRadius - 2*MeterPadding
	MeterHeight   = StatusBarHeight - 2*MeterPadding
	meterRadius   = 3
)

// Meter and compass positions.
var (
	HPMeterOrigin = image.Pt(MeterPadding, FrameHeight+MeterPadding)
	MPMeterOrigin = image.Pt(FrameWidth/2+MeterPadding+CompassRadius+1, FrameHeight+MeterPadding)
	CompassCenter = image.Pt(FrameWidth/2, FrameHeight+StatusBarHeight/2)
)

// needle points down when unrotated.
var needle = [3]image.Point{{-3, -3}, {3, -3}, {0, 6}}

var needleRotation = map[world.Direction]float64{
	world.North: 180,
	world.East:  270,
	world.South: 0,
	world.West:  90,
}

func drawStatusBar(s surface.Surface, p *gameworld.Player) {
	drawMeter(s, HPMeterOrigin, p.Stats.HPRatio())
	drawMeter(s, MPMeterOrigin, p.Stats.MPRatio())

	s.FillCircle(CompassCenter, CompassRadius, surface.White)
	pts := rotate(needle, needleRotation[p.Facing])
	for i := range pts {
		pts[i] = pts[i].Add(CompassCenter)
	}
	fillTriangle(s, pts, surface.Black)
}

// drawMeter draws a full rounded bar and checkers the part right of ratio.
func drawMeter(s surface.Surface, origin image.Point, ratio float64) {
	s.FillRect(rect(origin.X, origin.Y, MeterWidth, MeterHeight), meterRadius, surface.CornersAll, surface.White)

	filled := float64(origin.X) + ratio*MeterWidth
	for i := origin.X + MeterWidth; float64(i) >= filled; i-- {
		for j := origin.Y + i%2; j <= origin.Y+MeterHeight; j += 2 {
			s.Plot(i, j, surface.Black)
		}
	}
}

// rotate turns pts clockwise by deg degrees about the origin.
func rotate(pts [3]image.Point, deg float64) [3]image.Point {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	var out [3]image.Point
	for i, p := range pts {
		x, y := float64(p.X), float64(p.Y)
		out[i] = image.Pt(int(math.Round(x*cos-y*sin)), int(math.Round(x*sin+y*cos)))
	}
	return out
}

// fillTriangle scans the triangle's bounding box and plots every pixel
// inside or on its edges.
func fillTriangle(s surface.Surface, pts [3]image.Point, c surface.Color) {
	b := image.Rectangle{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X, b.Min.Y = min(b.Min.X, p.X), min(b.Min.Y, p.Y)
		b.Max.X, b.Max.Y = max(b.Max.X, p.X), max(b.Max.Y, p.Y)
	}

	for y := b.Min.Y; y <= b.Max.Y; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			q := image.Pt(x, y)
			d0 := cross(pts[0], pts[1], q)
			d1 := cross(pts[1], pts[2], q)
			d2 := cross(pts[2], pts[0], q)
			neg := d0 < 0 || d1 < 0 || d2 < 0
			pos := d0 > 0 || d1 > 0 || d2 > 0
			if !(neg && pos) {
				s.Plot(x, y, c)
			}
		}
	}
	for i := range pts {
		s.Line(pts[i], pts[(i+1)%3], c)
	}
}

func cross(a, b, p image.Point) int {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// Attack bolt geometry.
const (
	boltBaseWidth = 12
	boltTipY      = FrameHeight/2 + 4
)

// drawAttack draws a bolt from the bottom of the frame toward the centre,
// narrower on the second step of the pose.
func drawAttack(s surface.Surface, step int) {
	half := boltBaseWidth / 2 / step
	cx := FrameWidth / 2
	for i := 0; i <= half; i++ {
		c := surface.White
		if i == half {
			c = surface.Black
		}
		s.Line(image.Pt(cx-i, FrameHeight-1), image.Pt(cx-i/3, boltTipY), c)
		s.Line(image.Pt(cx+i, FrameHeight-1), image.Pt(cx+i/3, boltTipY), c)
	}
}
