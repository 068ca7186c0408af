package hull

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/mvickers/chalkboard/dbg"
	"github.com/mvickers/chalkboard/geom"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// Renders the input points and their hull to a PNG and cats it to the
// terminal (iTerm only). Hull vertices draw green, interior points red, and
// the starting vertex cyan, the same colors dbgLegend uses.
func dbgDraw(points, hullPoints []geom.Point, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	if len(hullPoints) > 0 {
		c.SetLineWidth(2)
		c.MoveTo(float64(hullPoints[0].X), float64(hullPoints[0].Y))
		for _, p := range hullPoints[1:] {
			c.LineTo(float64(p.X), float64(p.Y))
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	for _, p := range points {
		switch {
		case len(hullPoints) > 0 && p == hullPoints[0]:
			c.SetRGB(0, 1, 1)
		case onHull(p, hullPoints):
			c.SetRGB(0, 1, 0)
		default:
			c.SetRGB(1, 0, 0)
		}
		c.DrawCircle(float64(p.X), float64(p.Y), 4/scale)
		c.Fill()
	}

	c.SavePNG("/tmp/hull.png")
	imgcat.CatFile("/tmp/hull.png", os.Stdout)
}

// Prints one line per input point with its readable name, colored the same
// way dbgDraw colors it.
func dbgLegend(points, hullPoints []geom.Point) {
	for _, p := range points {
		name := dbg.Name(p)
		switch {
		case len(hullPoints) > 0 && p == hullPoints[0]:
			name = aurora.Cyan(name).String()
		case onHull(p, hullPoints):
			name = aurora.Green(name).String()
		default:
			name = aurora.Red(name).String()
		}
		fmt.Printf("%s (%d, %d)\n", name, p.X, p.Y)
	}
}

func onHull(p geom.Point, hullPoints []geom.Point) bool {
	for _, h := range hullPoints {
		if p == h {
			return true
		}
	}
	return false
}
